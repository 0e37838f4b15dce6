package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads, schema-checks and validates the config file at path.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, doc, err := decode(path, data)
	if err != nil {
		return nil, err
	}
	if err := validateSchema(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// decode parses data by file extension into the config (over the defaults)
// and into a generic document for schema validation.
func decode(path string, data []byte) (*Config, any, error) {
	cfg := DefaultConfig()
	var doc map[string]any

	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, nil, fmt.Errorf("decode TOML: %w", err)
		}
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, nil, fmt.Errorf("decode TOML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, nil, fmt.Errorf("decode JSON: %w", err)
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, nil, fmt.Errorf("decode JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, nil, fmt.Errorf("decode YAML: %w", err)
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		return nil, nil, fmt.Errorf("unsupported config format %q (use .toml, .yaml, .yml or .json)", filepath.Ext(path))
	}

	if doc == nil {
		doc = map[string]any{}
	}
	return cfg, doc, nil
}
