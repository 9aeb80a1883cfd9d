package replacement

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed curated.yaml
var curatedYAML []byte

// LoadFile loads and parses a YAML replacement table from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read replacement table %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse replacement YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// Curated returns the built-in curated replacement table definition.
func Curated() (*File, error) {
	f, err := Parse(curatedYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded curated table: %w", err)
	}

	return f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal replacement table: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write replacement table %s: %w", path, err)
	}

	return nil
}
