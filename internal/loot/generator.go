// Package loot implements item generation: weighted metal rolls, independent
// variant rolls, value computation and the skill-based reroll and upgrade
// mechanics applied when an item is dug up.
package loot

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
)

// Source is the randomness a Generator draws from. *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// Generator produces items for the equipped detector and the active area.
// It is not safe for concurrent use; each game owns its own.
type Generator struct {
	cat *catalog.Catalog
	rng Source

	detectorLevel int
	rarityBonus   float64
	areaID        string

	newID func(metalID string) string
	now   func() time.Time
}

// Option customizes a Generator.
type Option func(*Generator)

// WithIDFunc replaces the item id factory.
func WithIDFunc(f func(metalID string) string) Option {
	return func(g *Generator) { g.newID = f }
}

// WithClock replaces the clock used to stamp FoundAt.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator creates a generator configured for the starter detector in the
// catalog's first area.
func NewGenerator(cat *catalog.Catalog, rng Source, opts ...Option) *Generator {
	g := &Generator{
		cat:           cat,
		rng:           rng,
		detectorLevel: 1,
		areaID:        cat.StarterArea().ID,
		newID:         defaultID,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func defaultID(metalID string) string {
	return metalID + "_" + uuid.NewString()
}

// Configure sets detector level, rarity bonus and area in one call.
func (g *Generator) Configure(level int, rarityBonus float64, areaID string) {
	g.SetDetector(level, rarityBonus)
	g.SetArea(areaID)
}

// SetDetector updates the equipped detector. A negative bonus counts as zero.
func (g *Generator) SetDetector(level int, rarityBonus float64) {
	if rarityBonus < 0 {
		rarityBonus = 0
	}
	g.detectorLevel = level
	g.rarityBonus = rarityBonus
}

// SetArea updates the active area. Unknown ids are kept and fall back at roll time.
func (g *Generator) SetArea(areaID string) {
	g.areaID = areaID
}

// DetectorLevel returns the configured detector level.
func (g *Generator) DetectorLevel() int { return g.detectorLevel }

// RarityBonus returns the configured rarity bonus.
func (g *Generator) RarityBonus() float64 { return g.rarityBonus }

// AreaID returns the configured area id.
func (g *Generator) AreaID() string { return g.areaID }

// Weight is a metal's normalized share of the eligible pool.
type Weight struct {
	Metal catalog.Metal
	P     float64
}

// Eligible returns the metals that can currently spawn, in catalog order:
// permitted by the area and within reach of the detector.
func (g *Generator) Eligible() []catalog.Metal {
	area, ok := g.cat.Area(g.areaID)
	if !ok {
		return nil
	}
	var out []catalog.Metal
	for _, m := range g.cat.Metals {
		if area.Permits(m.ID) && m.MinDetector <= g.detectorLevel {
			out = append(out, m)
		}
	}
	return out
}

// Weights returns the normalized spawn distribution over the eligible metals.
// Higher tiers gain more from the rarity bonus: spawnRate * (1 + bonus*tier/5).
func (g *Generator) Weights() []Weight {
	eligible := g.Eligible()
	if len(eligible) == 0 {
		return nil
	}

	weights := make([]Weight, len(eligible))
	total := 0.0
	for i, m := range eligible {
		w := m.SpawnRate * (1 + g.rarityBonus*(float64(m.Tier)/5))
		weights[i] = Weight{Metal: m, P: w}
		total += w
	}
	for i := range weights {
		weights[i].P /= total
	}
	return weights
}

// GenerateMetal rolls one metal by inverting the cumulative distribution with a
// single uniform draw. It always returns a metal.
func (g *Generator) GenerateMetal() catalog.Metal {
	weights := g.Weights()
	if len(weights) == 0 {
		return g.fallbackMetal()
	}

	roll := g.rng.Float64()
	for _, w := range weights {
		roll -= w.P
		if roll <= 0 {
			return w.Metal
		}
	}
	// Rounding left a sliver past the last weight.
	return weights[len(weights)-1].Metal
}

// fallbackMetal is used when nothing is eligible: the area's lowest tier, or
// the lowest tier overall when the area is unknown or permits nothing.
func (g *Generator) fallbackMetal() catalog.Metal {
	if metals := g.cat.AreaMetals(g.areaID); len(metals) > 0 {
		return metals[0]
	}
	return g.cat.LowestMetal()
}

// GenerateItem rolls a metal and a variant set and stamps id and time.
func (g *Generator) GenerateItem() Item {
	metal := g.GenerateMetal()
	variants := g.GenerateVariants(1)

	return Item{
		ID:       g.newID(metal.ID),
		Metal:    metal,
		Variants: variants,
		Value:    CalculateValue(metal, variants),
		FoundAt:  g.now().UnixMilli(),
	}
}

// GenerateBuriedItem generates an item lying at (x, z) at the given depth.
func (g *Generator) GenerateBuriedItem(x, z float64, depth int) Item {
	if depth < 1 {
		depth = 1
	}
	item := g.GenerateItem()
	item.Position = Position{X: x, Y: -float64(depth), Z: z}
	item.Depth = depth
	return item
}
