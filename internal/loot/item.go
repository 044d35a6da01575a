package loot

import "github.com/vovakirdan/metal-tycoon/internal/catalog"

// Position is where an item lies. Y is negative below the surface.
type Position struct {
	X, Y, Z float64
}

// Item is a generated find. Value is derived from Metal and Variants and is
// only ever set through CalculateValue.
type Item struct {
	ID       string
	Metal    catalog.Metal
	Variants []catalog.Variant
	Value    int64
	FoundAt  int64 // unix milliseconds
	Position Position
	Depth    int
	Found    bool
}

// HasVariants reports whether any variant was rolled.
func (it Item) HasVariants() bool {
	return len(it.Variants) > 0
}

// VariantIDs returns the ids of the applied variants in roll order.
func (it Item) VariantIDs() []string {
	ids := make([]string, len(it.Variants))
	for i, v := range it.Variants {
		ids[i] = v.ID
	}
	return ids
}

// Label is a short display name such as "Shiny Large Gold".
func (it Item) Label() string {
	label := ""
	for _, v := range it.Variants {
		label += v.Name + " "
	}
	return label + it.Metal.Name
}

// Clone returns a copy that shares no slices with it.
func (it Item) Clone() Item {
	out := it
	if it.Variants != nil {
		out.Variants = append([]catalog.Variant(nil), it.Variants...)
	}
	return out
}

// Reprice recomputes Value from the metal and variants.
func (it *Item) Reprice() {
	it.Value = CalculateValue(it.Metal, it.Variants)
}
