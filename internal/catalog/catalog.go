// Package catalog holds the read-only property table. The table is built
// once at startup, either from the built-in sample listings or from a YAML
// file, and is never mutated afterwards.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
)

type Catalog struct {
	properties []domain.Property
	byID       map[string]int
}

// New builds an immutable catalog from the given listings.
func New(properties []domain.Property) (*Catalog, error) {
	byID := make(map[string]int, len(properties))
	for i, property := range properties {
		if property.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if _, exists := byID[property.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog id %q", property.ID)
		}
		byID[property.ID] = i
	}

	owned := make([]domain.Property, len(properties))
	copy(owned, properties)
	return &Catalog{properties: owned, byID: byID}, nil
}

// Default returns the catalog of built-in sample listings.
func Default() *Catalog {
	c, err := New(sampleProperties())
	if err != nil {
		// The built-in data is validated by tests; a failure here is a
		// programming error.
		panic(fmt.Sprintf("default catalog: %v", err))
	}
	return c
}

type catalogFile struct {
	Properties []domain.Property `yaml:"properties"`
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	if len(file.Properties) == 0 {
		return nil, fmt.Errorf("catalog file %s has no properties", path)
	}
	return New(file.Properties)
}

// All returns every listing. The returned slice is a copy; the catalog
// itself cannot be mutated through it.
func (c *Catalog) All() []domain.Property {
	out := make([]domain.Property, len(c.properties))
	copy(out, c.properties)
	return out
}

func (c *Catalog) ByID(id string) (domain.Property, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Property{}, false
	}
	return c.properties[idx], true
}

func (c *Catalog) Len() int {
	return len(c.properties)
}
