package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/catalog.yaml
var defaultCatalogYAML []byte

// ErrInvalidCatalog is returned when catalog data fails validation.
var ErrInvalidCatalog = errors.New("catalog: invalid catalog")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load parses and validates a YAML catalog.
func Load(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := c.check(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	c.index()
	return &c, nil
}

// Default returns the embedded catalog.
// Falls back to the hardcoded tables if the embedded YAML cannot be used.
func Default() *Catalog {
	c, err := Load(defaultCatalogYAML)
	if err != nil {
		return Builtin()
	}
	return c
}

// check validates cross references that struct tags cannot express.
func (c *Catalog) check() error {
	metals := make(map[string]bool, len(c.Metals))
	for _, m := range c.Metals {
		if metals[m.ID] {
			return fmt.Errorf("duplicate metal %q", m.ID)
		}
		metals[m.ID] = true
	}

	variants := make(map[string]bool, len(c.Variants))
	normals := 0
	for _, v := range c.Variants {
		if variants[v.ID] {
			return fmt.Errorf("duplicate variant %q", v.ID)
		}
		variants[v.ID] = true
		if v.IsNormal() {
			normals++
		}
	}
	if normals != 1 {
		return fmt.Errorf("expected exactly one %q variant, found %d", NormalVariantID, normals)
	}

	for i, d := range c.Detectors {
		if d.Level != i+1 {
			return fmt.Errorf("detector %q has level %d, expected %d", d.ID, d.Level, i+1)
		}
	}
	for i, b := range c.Bags {
		if b.Level != i+1 {
			return fmt.Errorf("bag %q has level %d, expected %d", b.ID, b.Level, i+1)
		}
	}

	areas := make(map[string]bool, len(c.Areas))
	for _, a := range c.Areas {
		if areas[a.ID] {
			return fmt.Errorf("duplicate area %q", a.ID)
		}
		areas[a.ID] = true
		for _, id := range a.Metals {
			if !metals[id] {
				return fmt.Errorf("area %q permits unknown metal %q", a.ID, id)
			}
		}
	}
	return nil
}
