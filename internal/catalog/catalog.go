// Package catalog holds the static game data: metals, variants and the
// detector, bag and area tiers offered in the shop. A Catalog is immutable
// once loaded and is passed explicitly to everything that needs it.
package catalog

import "sort"

// NormalVariantID is the variant that stands for "no variant". It is never rolled.
const NormalVariantID = "normal"

// Metal is a material tier that can be found in the ground.
type Metal struct {
	ID          string  `yaml:"id" validate:"required"`
	Name        string  `yaml:"name" validate:"required"`
	Symbol      string  `yaml:"symbol"`
	Tier        int     `yaml:"tier" validate:"min=1,max=10"`
	BaseValue   int64   `yaml:"base_value" validate:"gt=0"`
	SpawnRate   float64 `yaml:"spawn_rate" validate:"gt=0"` // weight, renormalized among eligible metals
	MinDetector int     `yaml:"min_detector" validate:"min=1"`
	Color       string  `yaml:"color" validate:"omitempty,hexcolor"`
}

// Variant is a modifier rolled independently for each item.
// Multipliers of several variants compound.
type Variant struct {
	ID         string  `yaml:"id" validate:"required"`
	Name       string  `yaml:"name" validate:"required"`
	Symbol     string  `yaml:"symbol"`
	Multiplier int64   `yaml:"multiplier" validate:"min=1"`
	Chance     float64 `yaml:"chance" validate:"gte=0,lte=1"`
}

// IsNormal reports whether v is the placeholder "normal" variant.
func (v Variant) IsNormal() bool {
	return v.ID == NormalVariantID
}

// Catalog is the full set of lookup tables.
// Slices keep declaration order, which generation relies on for reproducibility.
type Catalog struct {
	Metals    []Metal    `yaml:"metals" validate:"required,min=1,dive"`
	Variants  []Variant  `yaml:"variants" validate:"required,min=1,dive"`
	Detectors []Detector `yaml:"detectors" validate:"required,min=1,dive"`
	Bags      []Bag      `yaml:"bags" validate:"required,min=1,dive"`
	Areas     []Area     `yaml:"areas" validate:"required,min=1,dive"`

	metalIdx   map[string]int
	variantIdx map[string]int
	areaIdx    map[string]int
}

// index builds the id lookup maps. Called once after loading.
func (c *Catalog) index() {
	c.metalIdx = make(map[string]int, len(c.Metals))
	for i, m := range c.Metals {
		c.metalIdx[m.ID] = i
	}
	c.variantIdx = make(map[string]int, len(c.Variants))
	for i, v := range c.Variants {
		c.variantIdx[v.ID] = i
	}
	c.areaIdx = make(map[string]int, len(c.Areas))
	for i, a := range c.Areas {
		c.areaIdx[a.ID] = i
	}
}

// Metal looks up a metal by id.
func (c *Catalog) Metal(id string) (Metal, bool) {
	i, ok := c.metalIdx[id]
	if !ok {
		return Metal{}, false
	}
	return c.Metals[i], true
}

// Variant looks up a variant by id.
func (c *Catalog) Variant(id string) (Variant, bool) {
	i, ok := c.variantIdx[id]
	if !ok {
		return Variant{}, false
	}
	return c.Variants[i], true
}

// Area looks up an area by id.
func (c *Catalog) Area(id string) (Area, bool) {
	i, ok := c.areaIdx[id]
	if !ok {
		return Area{}, false
	}
	return c.Areas[i], true
}

// Detector looks up a detector tier by level.
func (c *Catalog) Detector(level int) (Detector, bool) {
	for _, d := range c.Detectors {
		if d.Level == level {
			return d, true
		}
	}
	return Detector{}, false
}

// Bag looks up a bag tier by level.
func (c *Catalog) Bag(level int) (Bag, bool) {
	for _, b := range c.Bags {
		if b.Level == level {
			return b, true
		}
	}
	return Bag{}, false
}

// DetectorOrStarter returns the detector for level, or the first tier on a miss.
func (c *Catalog) DetectorOrStarter(level int) Detector {
	if d, ok := c.Detector(level); ok {
		return d
	}
	return c.Detectors[0]
}

// BagOrStarter returns the bag for level, or the first tier on a miss.
func (c *Catalog) BagOrStarter(level int) Bag {
	if b, ok := c.Bag(level); ok {
		return b
	}
	return c.Bags[0]
}

// StarterArea returns the first declared area.
func (c *Catalog) StarterArea() Area {
	return c.Areas[0]
}

// LowestMetal returns the lowest-tier metal in the whole catalog.
// Ties keep declaration order.
func (c *Catalog) LowestMetal() Metal {
	lowest := c.Metals[0]
	for _, m := range c.Metals[1:] {
		if m.Tier < lowest.Tier {
			lowest = m
		}
	}
	return lowest
}

// AreaMetals returns the metals permitted in an area, sorted by tier ascending.
// Unknown ids in the allow-list are skipped.
func (c *Catalog) AreaMetals(areaID string) []Metal {
	area, ok := c.Area(areaID)
	if !ok {
		return nil
	}
	metals := make([]Metal, 0, len(area.Metals))
	for _, id := range area.Metals {
		if m, ok := c.Metal(id); ok {
			metals = append(metals, m)
		}
	}
	sort.SliceStable(metals, func(i, j int) bool {
		return metals[i].Tier < metals[j].Tier
	})
	return metals
}

// RollableVariants returns every variant except "normal", in declaration order.
func (c *Catalog) RollableVariants() []Variant {
	out := make([]Variant, 0, len(c.Variants))
	for _, v := range c.Variants {
		if !v.IsNormal() {
			out = append(out, v)
		}
	}
	return out
}

// MetalIDs returns all metal ids in declaration order.
func (c *Catalog) MetalIDs() []string {
	ids := make([]string, len(c.Metals))
	for i, m := range c.Metals {
		ids[i] = m.ID
	}
	return ids
}

// VariantIDs returns all variant ids in declaration order.
func (c *Catalog) VariantIDs() []string {
	ids := make([]string, len(c.Variants))
	for i, v := range c.Variants {
		ids[i] = v.ID
	}
	return ids
}

// AreaIDs returns all area ids in declaration order.
func (c *Catalog) AreaIDs() []string {
	ids := make([]string, len(c.Areas))
	for i, a := range c.Areas {
		ids[i] = a.ID
	}
	return ids
}
