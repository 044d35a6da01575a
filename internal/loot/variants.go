package loot

import (
	"math"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
)

// Signal strength bands for the dig skill multiplier.
const (
	PerfectSignal = 0.95
	GreatSignal   = 0.85
	GoodSignal    = 0.70

	// PrecisionSignal is the signal above which the precision upgrade may fire.
	PrecisionSignal = 0.90
	// precisionScale turns signal above PrecisionSignal into upgrade odds:
	// 0.5 at a perfect 1.0.
	precisionScale = 5.0
)

// GenerateVariants tests every rollable variant independently with
// probability chance * (1 + rarityBonus) * multiplier. Odds of 1 or more
// always hit. Each variant consumes exactly one draw, hit or miss.
func (g *Generator) GenerateVariants(multiplier float64) []catalog.Variant {
	var out []catalog.Variant
	for _, v := range g.cat.Variants {
		if v.IsNormal() {
			continue
		}
		chance := v.Chance * (1 + g.rarityBonus) * multiplier
		if g.rng.Float64() < chance {
			out = append(out, v)
		}
	}
	return out
}

// CalculateValue returns floor(baseValue * product of variant multipliers).
// Multipliers are integers, so the product is exact; it saturates at MaxInt64.
func CalculateValue(metal catalog.Metal, variants []catalog.Variant) int64 {
	value := metal.BaseValue
	for _, v := range variants {
		if v.Multiplier <= 1 {
			continue
		}
		if value > math.MaxInt64/v.Multiplier {
			return math.MaxInt64
		}
		value *= v.Multiplier
	}
	return value
}

// SkillMultiplier maps a dig's signal strength to a variant odds multiplier.
func SkillMultiplier(signal float64) int {
	switch {
	case signal >= PerfectSignal:
		return 50
	case signal >= GreatSignal:
		return 10
	case signal >= GoodSignal:
		return 2
	default:
		return 1
	}
}

// RerollVariants rewards an accurate dig. With a skill multiplier above 1 the
// variants are rolled again from scratch at boosted odds and the value is
// recomputed; otherwise the item comes back untouched.
func (g *Generator) RerollVariants(item Item, signal float64) (Item, bool) {
	mult := SkillMultiplier(signal)
	if mult <= 1 {
		return item, false
	}

	out := item.Clone()
	out.Variants = g.GenerateVariants(float64(mult))
	out.Reprice()
	return out, true
}

// UpgradeItem is the precision bonus for digs above PrecisionSignal. With
// probability (signal-0.9)*5 the metal is promoted to the next higher tier
// that is currently eligible; variants are kept and the value recomputed.
// Returns the item unchanged and false when no upgrade happens.
func (g *Generator) UpgradeItem(item Item, signal float64) (Item, bool) {
	if signal <= PrecisionSignal {
		return item, false
	}

	next, ok := g.nextTier(item.Metal)
	if !ok {
		return item, false
	}

	chance := math.Min((signal-PrecisionSignal)*precisionScale, 0.5)
	if g.rng.Float64() >= chance {
		return item, false
	}

	out := item.Clone()
	out.Metal = next
	out.Reprice()
	return out, true
}

// nextTier finds the lowest eligible metal with a tier above m's.
func (g *Generator) nextTier(m catalog.Metal) (catalog.Metal, bool) {
	var best catalog.Metal
	found := false
	for _, c := range g.Eligible() {
		if c.Tier <= m.Tier {
			continue
		}
		if !found || c.Tier < best.Tier {
			best = c
			found = true
		}
	}
	return best, found
}
