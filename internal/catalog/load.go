package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
})

// Default returns the built-in catalog. It is parsed once per process.
func Default() (*Catalog, error) {
	return loadDefault()
}

// LoadFile reads and validates a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cat, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return cat, nil
}

// Load decodes a catalog and validates it. Unknown keys are rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cat Catalog
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks the data-integrity rules every entry must satisfy.
// A tire whose inner and outer reference radii coincide cannot be deformed
// and is rejected here rather than during deformation.
func (c *Catalog) Validate() error {
	for _, id := range sortedKeys(c.Vehicles) {
		v := c.Vehicles[id]
		if v.Model == "" {
			return fmt.Errorf("%w: vehicle %q has no model", ErrInvalidEntry, id)
		}
		if v.Wheelbase <= 0 {
			return fmt.Errorf("%w: vehicle %q wheelbase %v", ErrInvalidEntry, id, v.Wheelbase)
		}
		if len(v.Spare) != 0 && len(v.Spare) != 3 {
			return fmt.Errorf("%w: vehicle %q spare needs 3 coordinates, got %d", ErrInvalidEntry, id, len(v.Spare))
		}
	}

	for _, id := range sortedKeys(c.Rims) {
		r := c.Rims[id]
		if r.Model == "" {
			return fmt.Errorf("%w: rim %q has no model", ErrInvalidEntry, id)
		}
		if r.OD <= 0 || r.Width <= 0 {
			return fmt.Errorf("%w: rim %q od=%v width=%v", ErrInvalidEntry, id, r.OD, r.Width)
		}
	}

	for _, id := range sortedKeys(c.Tires) {
		t := c.Tires[id]
		if t.Model == "" {
			return fmt.Errorf("%w: tire %q has no model", ErrInvalidEntry, id)
		}
		if t.OD <= 0 || t.Width <= 0 || t.ID < 0 {
			return fmt.Errorf("%w: tire %q od=%v id=%v width=%v", ErrInvalidEntry, id, t.OD, t.ID, t.Width)
		}
		if !(t.RadialSpan() > 0) {
			return fmt.Errorf("%w: tire %q", ErrDegenerateTire, id)
		}
	}

	return nil
}

func sortedKeys[E any](m map[string]E) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
