package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type unmarshalFunc func(data []byte, v any) error

// WithJSONFile loads rule templates from a JSON object in fsys.
//
// Example file:
//
//	{"required": "Dieses Feld ist ein Pflichtfeld."}
func WithJSONFile(fsys fs.FS, name string) Option {
	return func(c *Catalog) error {
		return loadFile(c, fsys, name, json.Unmarshal)
	}
}

// WithYAMLFile loads rule templates from a YAML mapping in fsys.
func WithYAMLFile(fsys fs.FS, name string) Option {
	return func(c *Catalog) error {
		return loadFile(c, fsys, name, yaml.Unmarshal)
	}
}

// WithTOMLFile loads rule templates from a TOML table in fsys.
func WithTOMLFile(fsys fs.FS, name string) Option {
	return func(c *Catalog) error {
		return loadFile(c, fsys, name, toml.Unmarshal)
	}
}

// WithFile picks the decoder from the file extension: .json, .yaml/.yml or
// .toml (case-insensitive).
func WithFile(fsys fs.FS, name string) Option {
	return func(c *Catalog) error {
		unmarshal, err := decoderFor(name)
		if err != nil {
			return err
		}
		return loadFile(c, fsys, name, unmarshal)
	}
}

func decoderFor(name string) (unmarshalFunc, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return json.Unmarshal, nil
	case ".yaml", ".yml":
		return yaml.Unmarshal, nil
	case ".toml":
		return toml.Unmarshal, nil
	default:
		return nil, fmt.Errorf("%w: unsupported extension of %q", ErrInvalidFile, name)
	}
}

func loadFile(c *Catalog, fsys fs.FS, name string, unmarshal unmarshalFunc) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("%w: reading %q: %w", ErrInvalidFile, name, err)
	}

	// Nested values are rejected: a catalog is a flat rule -> template table.
	var messages map[string]string
	if err := unmarshal(data, &messages); err != nil {
		return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, name, err)
	}

	if err := c.merge(messages); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidFile, name, err)
	}
	return nil
}
