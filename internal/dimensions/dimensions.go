// Package dimensions serves the read-only maturity dimension catalog: for
// each scored focus area, a description of what the four maturity levels
// look like in practice. The catalog ships embedded in the binary.
package dimensions

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed catalog.json
var catalogJSON []byte

type Dimension struct {
	ID          string            `json:"id"`
	Pillar      string            `json:"pillar"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Levels      map[string]string `json:"levels"`
}

type catalogFile struct {
	Dimensions []Dimension `json:"dimensions"`
}

// Catalog holds the parsed dimension content in file order.
type Catalog struct {
	dimensions []Dimension
	byID       map[string]Dimension
}

// Load parses the embedded catalog. It fails only if the embedded file is
// malformed, which a package test guards against.
func Load() (*Catalog, error) {
	var file catalogFile
	if err := json.Unmarshal(catalogJSON, &file); err != nil {
		return nil, fmt.Errorf("parse dimension catalog: %w", err)
	}
	byID := make(map[string]Dimension, len(file.Dimensions))
	for _, d := range file.Dimensions {
		byID[d.ID] = d
	}
	return &Catalog{dimensions: file.Dimensions, byID: byID}, nil
}

// List returns all dimensions in catalog order.
func (c *Catalog) List() []Dimension {
	out := make([]Dimension, len(c.dimensions))
	copy(out, c.dimensions)
	return out
}

// Get returns the dimension with the given id.
func (c *Catalog) Get(id string) (Dimension, bool) {
	d, ok := c.byID[id]
	return d, ok
}
