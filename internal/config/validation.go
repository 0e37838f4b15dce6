package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"arialint/internal/diag"
)

// ErrInvalid marks every schema or validation failure.
var ErrInvalid = errors.New("invalid configuration")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks values the schema cannot express: code ids, severities
// and glob syntax.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Diag.MaxDiagnostics < 0 {
		errs = append(errs, ValidationError{Field: "diag.max_diagnostics", Message: "must not be negative"})
	}
	if _, err := diag.ParseSeverity(c.Diag.MinSeverity); err != nil {
		errs = append(errs, ValidationError{Field: "diag.min_severity", Message: err.Error()})
	}
	for _, id := range c.Diag.Disabled {
		if _, err := diag.ParseCode(id); err != nil {
			errs = append(errs, ValidationError{Field: "diag.disabled", Message: err.Error()})
		}
	}
	for id, n := range c.Diag.Caps {
		if _, err := diag.ParseCode(id); err != nil {
			errs = append(errs, ValidationError{Field: "diag.caps", Message: err.Error()})
		}
		if n < 0 {
			errs = append(errs, ValidationError{Field: "diag.caps." + id, Message: "must not be negative"})
		}
	}
	for _, field := range []struct {
		name     string
		patterns []string
	}{
		{"files.include", c.Files.Include},
		{"files.exclude", c.Files.Exclude},
	} {
		for _, p := range field.patterns {
			if !doublestar.ValidatePattern(p) {
				errs = append(errs, ValidationError{Field: field.name, Message: fmt.Sprintf("bad glob %q", p)})
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errs)
}

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "arialint.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// validateSchema checks a decoded document against the embedded schema.
func validateSchema(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	// TOML and YAML decoders produce Go integer types; the validator wants
	// plain JSON values.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode config for schema check: %w", err)
	}
	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return fmt.Errorf("decode config for schema check: %w", err)
	}

	err = schema.Validate(instance)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	var errs ValidationErrors
	collectLeaves(ve, &errs)
	return fmt.Errorf("%w: %w", ErrInvalid, errs)
}

func collectLeaves(ve *jsonschema.ValidationError, out *ValidationErrors) {
	if len(ve.Causes) == 0 {
		field := strings.ReplaceAll(strings.TrimPrefix(ve.InstanceLocation, "/"), "/", ".")
		if field == "" {
			field = "(root)"
		}
		*out = append(*out, ValidationError{Field: field, Message: ve.Message})
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, out)
	}
}
