package loot

import (
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
)

const openFieldYAML = `
metals:
  - { id: tin,  name: Tin,  tier: 1,  base_value: 2,   spawn_rate: 0.5, min_detector: 1 }
  - { id: lead, name: Lead, tier: 5,  base_value: 40,  spawn_rate: 0.3, min_detector: 1 }
  - { id: star, name: Star, tier: 10, base_value: 900, spawn_rate: 0.2, min_detector: 1 }
variants:
  - { id: normal, name: Normal, multiplier: 1, chance: 1 }
  - { id: shiny,  name: Shiny,  multiplier: 2, chance: 0.1 }
detectors:
  - { level: 1, id: d1, name: D1, depth: 1 }
bags:
  - { level: 1, id: b1, name: B1, capacity: 10 }
areas:
  - { id: open, name: Open Field, metals: [tin, lead, star] }
`

func openField(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load([]byte(openFieldYAML))
	if err != nil {
		t.Fatalf("Load(openField) failed: %v", err)
	}
	return c
}

// scripted returns the given draws in order, then repeats the last one.
type scripted struct {
	draws []float64
	calls int
}

func (s *scripted) Float64() float64 {
	i := s.calls
	s.calls++
	if i >= len(s.draws) {
		return s.draws[len(s.draws)-1]
	}
	return s.draws[i]
}

func TestGenerateMetalRespectsAreaAndDetector(t *testing.T) {
	cat := catalog.Default()
	gen := NewGenerator(cat, rand.New(rand.NewSource(7)))

	for _, area := range cat.Areas {
		for level := -1; level <= 8; level++ {
			gen.Configure(level, 0.5, area.ID)
			eligible := gen.Eligible()

			for i := 0; i < 300; i++ {
				m := gen.GenerateMetal()
				if len(eligible) == 0 {
					want := cat.AreaMetals(area.ID)[0]
					if m.ID != want.ID {
						t.Fatalf("area %s level %d: got %s, want fallback %s", area.ID, level, m.ID, want.ID)
					}
					continue
				}
				if !area.Permits(m.ID) || m.MinDetector > level {
					t.Fatalf("area %s level %d: rolled ineligible metal %s", area.ID, level, m.ID)
				}
			}
		}
	}
}

func TestGenerateMetalUnknownAreaFallsBackToLowestTier(t *testing.T) {
	cat := catalog.Default()
	gen := NewGenerator(cat, rand.New(rand.NewSource(1)))
	gen.Configure(8, 1, "atlantis")

	if m := gen.GenerateMetal(); m.ID != "aluminum" {
		t.Errorf("GenerateMetal() = %s, want aluminum", m.ID)
	}
	if w := gen.Weights(); w != nil {
		t.Errorf("Weights() = %v, want nil for unknown area", w)
	}
}

func TestGenerateMetalResidueReturnsLast(t *testing.T) {
	gen := NewGenerator(openField(t), &scripted{draws: []float64{math.Nextafter(1, 0)}})
	if m := gen.GenerateMetal(); m.ID != "star" {
		t.Errorf("GenerateMetal() = %s, want star", m.ID)
	}
}

func TestWeightsMatchSpawnRates(t *testing.T) {
	gen := NewGenerator(openField(t), rand.New(rand.NewSource(1)))

	want := map[string]float64{"tin": 0.5, "lead": 0.3, "star": 0.2}
	for _, w := range gen.Weights() {
		if math.Abs(w.P-want[w.Metal.ID]) > 1e-12 {
			t.Errorf("weight %s = %v, want %v", w.Metal.ID, w.P, want[w.Metal.ID])
		}
	}
}

func TestSamplingConvergesToWeights(t *testing.T) {
	gen := NewGenerator(openField(t), rand.New(rand.NewSource(42)))

	const n = 200000
	tally := gen.Sample(n)
	if tally.Rolls != n {
		t.Fatalf("Rolls = %d, want %d", tally.Rolls, n)
	}
	for _, w := range gen.Weights() {
		got := tally.Share(w.Metal.ID)
		if math.Abs(got-w.P) > 0.01 {
			t.Errorf("share of %s = %.4f, want %.4f +/- 0.01", w.Metal.ID, got, w.P)
		}
	}
}

func TestRarityBonusFavorsHighTiers(t *testing.T) {
	gen := NewGenerator(openField(t), rand.New(rand.NewSource(1)))

	ratio := func(bonus float64) float64 {
		gen.SetDetector(1, bonus)
		var low, high float64
		for _, w := range gen.Weights() {
			switch w.Metal.ID {
			case "tin":
				low = w.P
			case "star":
				high = w.P
			}
		}
		return high / low
	}

	prev := ratio(0)
	for _, bonus := range []float64{0.1, 0.5, 1, 2} {
		r := ratio(bonus)
		if r <= prev {
			t.Errorf("bonus %.1f: star/tin ratio %.4f did not increase from %.4f", bonus, r, prev)
		}
		prev = r
	}
}

func TestNegativeRarityBonusClamped(t *testing.T) {
	gen := NewGenerator(openField(t), rand.New(rand.NewSource(1)))
	gen.SetDetector(1, -3)
	if gen.RarityBonus() != 0 {
		t.Errorf("RarityBonus() = %v, want 0", gen.RarityBonus())
	}
}

func TestGenerateItem(t *testing.T) {
	stamp := time.UnixMilli(1_700_000_000_123)
	gen := NewGenerator(catalog.Default(), rand.New(rand.NewSource(3)),
		WithClock(func() time.Time { return stamp }),
	)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		it := gen.GenerateItem()
		if !strings.HasPrefix(it.ID, it.Metal.ID+"_") {
			t.Fatalf("ID %q lacks metal prefix %q", it.ID, it.Metal.ID)
		}
		if seen[it.ID] {
			t.Fatalf("duplicate id %q", it.ID)
		}
		seen[it.ID] = true
		if it.FoundAt != stamp.UnixMilli() {
			t.Fatalf("FoundAt = %d, want %d", it.FoundAt, stamp.UnixMilli())
		}
		if it.Value != CalculateValue(it.Metal, it.Variants) {
			t.Fatalf("Value = %d, inconsistent with metal and variants", it.Value)
		}
		if it.Found {
			t.Fatal("fresh item marked found")
		}
	}
}

func TestGenerateBuriedItem(t *testing.T) {
	gen := NewGenerator(catalog.Default(), rand.New(rand.NewSource(3)),
		WithIDFunc(func(metalID string) string { return metalID + "_fixed" }),
	)

	tests := []struct {
		depth     int
		wantDepth int
	}{
		{depth: 3, wantDepth: 3},
		{depth: 1, wantDepth: 1},
		{depth: 0, wantDepth: 1},
		{depth: -4, wantDepth: 1},
	}
	for _, tc := range tests {
		it := gen.GenerateBuriedItem(12.5, -7, tc.depth)
		if it.Depth != tc.wantDepth {
			t.Errorf("depth %d: Depth = %d, want %d", tc.depth, it.Depth, tc.wantDepth)
		}
		want := Position{X: 12.5, Y: -float64(tc.wantDepth), Z: -7}
		if it.Position != want {
			t.Errorf("depth %d: Position = %+v, want %+v", tc.depth, it.Position, want)
		}
		if it.ID != it.Metal.ID+"_fixed" {
			t.Errorf("ID = %q, want injected id", it.ID)
		}
	}
}

func TestSameSeedSameItems(t *testing.T) {
	ids := func(metalID string) string { return metalID }
	a := NewGenerator(catalog.Default(), rand.New(rand.NewSource(99)), WithIDFunc(ids))
	b := NewGenerator(catalog.Default(), rand.New(rand.NewSource(99)), WithIDFunc(ids))
	a.Configure(8, 1, "park")
	b.Configure(8, 1, "park")

	for i := 0; i < 500; i++ {
		x, y := a.GenerateItem(), b.GenerateItem()
		if x.Metal.ID != y.Metal.ID || x.Value != y.Value || len(x.Variants) != len(y.Variants) {
			t.Fatalf("roll %d diverged: %+v vs %+v", i, x, y)
		}
	}
}
