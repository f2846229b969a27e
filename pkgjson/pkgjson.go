// Package pkgjson rewrites the metadata fields of a package.json file while keeping its key order.
package pkgjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/buger/jsonparser"
	"github.com/layervue/create-layervue/filesystem"
)

// FileName is the manifest every template folder carries.
const FileName = "package.json"

// ErrEmptyName is returned by Meta.Validate for a blank project name.
var ErrEmptyName = errors.New("project name must not be empty")

// Meta holds the fields written into package.json.
type Meta struct {
	Name        string
	Description string
	Author      string
	Version     string
}

// Validate checks that the name is set and the version is a semantic version.
func (m Meta) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	return ValidateVersion(m.Version)
}

// ValidateVersion reports whether v is a strict semantic version such as 0.0.1.
func ValidateVersion(v string) error {
	if _, err := semver.StrictNewVersion(v); err != nil {
		return fmt.Errorf("invalid version %q: %w", v, err)
	}
	return nil
}

// Apply returns data with name, description, author and version set and license removed,
// re-indented with two spaces.
func Apply(data []byte, meta Meta) ([]byte, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return nil, fmt.Errorf("package.json is not valid JSON: %w", err)
	}
	data = compact.Bytes()

	var err error
	for _, field := range []struct{ key, value string }{
		{"name", meta.Name},
		{"description", meta.Description},
		{"author", meta.Author},
		{"version", meta.Version},
	} {
		encoded := quote(field.value)
		// jsonparser appends into spare capacity when inserting a missing key.
		data, err = jsonparser.Set(data[:len(data):len(data)], encoded, field.key)
		if err != nil {
			return nil, fmt.Errorf("set %s: %w", field.key, err)
		}
	}

	data = jsonparser.Delete(data, "license")

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return nil, fmt.Errorf("format package.json: %w", err)
	}
	return out.Bytes(), nil
}

// quote encodes s as a JSON string without HTML escaping.
func quote(s string) []byte {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return bytes.TrimSuffix(b.Bytes(), []byte("\n"))
}

// Rewrite applies meta to the package.json at path in place.
func Rewrite(path string, meta Meta) error {
	fs := filesystem.API()

	info, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	data, err = Apply(data, meta)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return fs.WriteFile(path, data, info.Mode().Perm()|os.FileMode(0o200))
}
