// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package layout analyses the memory layout of struct descriptors and
// computes a field order that minimizes padding, using hera's type sort.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// SchemaConstraint is the range of descriptor schema versions this package
// understands.
const SchemaConstraint = "^1"

// Descriptor describes a struct as an ordered list of typed fields.
type Descriptor struct {
	// Schema is the descriptor schema version (e.g. "1.0").
	Schema string `yaml:"schema" toml:"schema"`

	// Name names the described struct.
	Name string `yaml:"name" toml:"name"`

	// Fields lists the fields in declaration order.
	Fields []Field `yaml:"fields" toml:"fields"`
}

// Field is one descriptor field.
type Field struct {
	Name string `yaml:"name" toml:"name"`

	// Type is a Go type expression, e.g. "int64", "*string", "[4]byte".
	Type string `yaml:"type" toml:"type"`
}

// Format is a descriptor encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported descriptor extension: %q", filepath.Ext(path))
	}
}

// Load reads and validates the descriptor at path.
func Load(path string) (*Descriptor, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}
	d, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Decode parses and validates a descriptor.
func Decode(data []byte, format Format) (*Descriptor, error) {
	var d Descriptor
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &d); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

var (
	ErrMissingSchema = errors.New("missing schema version")
	ErrFieldName     = errors.New("invalid field name")
)

// Validate checks the schema version and field names.
func (d *Descriptor) Validate() error {
	if d.Schema == "" {
		return ErrMissingSchema
	}
	v, err := semver.NewVersion(d.Schema)
	if err != nil {
		return fmt.Errorf("invalid schema version %q: %w", d.Schema, err)
	}
	c, err := semver.NewConstraint(SchemaConstraint)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("unsupported schema version %s (want %s)", v, SchemaConstraint)
	}

	seen := make(map[string]bool, len(d.Fields))
	for i, f := range d.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: field %d has no name", ErrFieldName, i)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: duplicate field %q", ErrFieldName, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}
