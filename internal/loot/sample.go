package loot

// Tally counts outcomes of repeated rolls.
type Tally struct {
	Rolls       int
	Metals      map[string]int
	Variants    map[string]int
	WithVariant int
	TotalValue  int64
}

// Sample rolls n items with the current configuration and counts the results.
// Used for balance checks; it draws from the generator's source like real play.
func (g *Generator) Sample(n int) Tally {
	t := Tally{
		Metals:   make(map[string]int),
		Variants: make(map[string]int),
	}
	for i := 0; i < n; i++ {
		metal := g.GenerateMetal()
		variants := g.GenerateVariants(1)

		t.Rolls++
		t.Metals[metal.ID]++
		for _, v := range variants {
			t.Variants[v.ID]++
		}
		if len(variants) > 0 {
			t.WithVariant++
		}
		t.TotalValue += CalculateValue(metal, variants)
	}
	return t
}

// Share returns the observed fraction of rolls that produced metalID.
func (t Tally) Share(metalID string) float64 {
	if t.Rolls == 0 {
		return 0
	}
	return float64(t.Metals[metalID]) / float64(t.Rolls)
}
