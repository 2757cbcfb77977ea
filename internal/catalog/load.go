package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileTable struct {
	ValueFields   []ValueField   `yaml:"value_fields"`
	DocumentTypes []DocumentType `yaml:"document_types"`
	Mappings      []Mapping      `yaml:"mappings"`
}

// Load reads a complete rule table from a YAML file. Deployments use this to
// version the table independently of releases; tests use it for fixture
// tables.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var table fileTable
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return New(table.ValueFields, table.DocumentTypes, table.Mappings)
}
