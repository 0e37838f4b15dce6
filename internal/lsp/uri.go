package lsp

import (
	"net/url"
	"path/filepath"
)

// uriToPath maps a file:// URI to a local path; other schemes yield "".
func uriToPath(uri string) string {
	if uri == "" {
		return ""
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	if parsed.Scheme != "" && parsed.Scheme != "file" {
		return ""
	}
	path := parsed.Path
	if parsed.Scheme == "" {
		path = uri
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	return filepath.Clean(filepath.FromSlash(path))
}

func pathToURI(path string) string {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

// canonicalURI normalises file URIs so the same document always maps to one
// key; untitled and other schemes are kept verbatim.
func canonicalURI(uri string) string {
	if uri == "" {
		return ""
	}
	if path := uriToPath(uri); path != "" && filepath.IsAbs(path) {
		return pathToURI(path)
	}
	return uri
}

// displayName is the name diagnostics are reported under.
func displayName(uri string) string {
	if path := uriToPath(uri); path != "" {
		return path
	}
	return uri
}
