package loot

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
)

func TestCalculateValue(t *testing.T) {
	cat := catalog.Default()
	gold, _ := cat.Metal("gold")
	shiny, _ := cat.Variant("shiny")
	large, _ := cat.Variant("large")
	mythic, _ := cat.Variant("mythic")
	normal, _ := cat.Variant("normal")

	tests := []struct {
		name     string
		variants []catalog.Variant
		want     int64
	}{
		{name: "no variants", variants: nil, want: 200},
		{name: "shiny", variants: []catalog.Variant{shiny}, want: 400},
		{name: "shiny large", variants: []catalog.Variant{shiny, large}, want: 1200},
		{name: "mythic", variants: []catalog.Variant{mythic}, want: 20000},
		{name: "normal is neutral", variants: []catalog.Variant{normal}, want: 200},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateValue(gold, tc.variants); got != tc.want {
				t.Errorf("CalculateValue() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCalculateValueSaturates(t *testing.T) {
	cat := catalog.Default()
	unob, _ := cat.Metal("unobtainium")
	mythic, _ := cat.Variant("mythic")

	variants := make([]catalog.Variant, 12)
	for i := range variants {
		variants[i] = mythic
	}
	if got := CalculateValue(unob, variants); got != math.MaxInt64 {
		t.Errorf("CalculateValue() = %d, want MaxInt64", got)
	}
}

func TestSkillMultiplier(t *testing.T) {
	tests := []struct {
		signal float64
		want   int
	}{
		{0, 1},
		{0.5, 1},
		{0.69, 1},
		{0.70, 2},
		{0.84, 2},
		{0.85, 10},
		{0.949, 10},
		{0.95, 50},
		{1, 50},
	}
	for _, tc := range tests {
		if got := SkillMultiplier(tc.signal); got != tc.want {
			t.Errorf("SkillMultiplier(%v) = %d, want %d", tc.signal, got, tc.want)
		}
	}
}

func TestRerollLowSignalLeavesItemUntouched(t *testing.T) {
	src := &scripted{draws: []float64{0.5}}
	gen := NewGenerator(catalog.Default(), rand.New(rand.NewSource(5)))
	item := gen.GenerateItem()
	before := item.Clone()

	gen.rng = src
	got, rerolled := gen.RerollVariants(item, 0.5)
	if rerolled {
		t.Error("RerollVariants(0.5) reported a reroll")
	}
	if !reflect.DeepEqual(got, before) {
		t.Errorf("RerollVariants(0.5) changed item: %+v -> %+v", before, got)
	}
	if src.calls != 0 {
		t.Errorf("RerollVariants(0.5) consumed %d draws, want 0", src.calls)
	}
}

func TestRerollPerfectSignalAlmostAlwaysShiny(t *testing.T) {
	gen := NewGenerator(catalog.Default(), rand.New(rand.NewSource(11)))

	for i := 0; i < 1000; i++ {
		item, rerolled := gen.RerollVariants(gen.GenerateItem(), 0.97)
		if !rerolled {
			t.Fatal("RerollVariants(0.97) did not reroll")
		}
		shiny := false
		for _, v := range item.Variants {
			if v.ID == "shiny" {
				shiny = true
			}
		}
		if !shiny {
			t.Fatalf("trial %d: shiny missing at 50x odds: %v", i, item.VariantIDs())
		}
		if item.Value != CalculateValue(item.Metal, item.Variants) {
			t.Fatalf("trial %d: value not recomputed", i)
		}
	}
}

func TestRerollDoesNotAliasInput(t *testing.T) {
	gen := NewGenerator(catalog.Default(), rand.New(rand.NewSource(2)))
	shiny, _ := gen.cat.Variant("shiny")
	item := gen.GenerateItem()
	item.Variants = []catalog.Variant{shiny}
	item.Reprice()

	_, _ = gen.RerollVariants(item, 1)
	if len(item.Variants) != 1 || item.Variants[0].ID != "shiny" {
		t.Errorf("input variants mutated: %v", item.VariantIDs())
	}
}

func TestGenerateVariantsOneDrawPerVariant(t *testing.T) {
	cat := catalog.Default()
	src := &scripted{draws: []float64{0.99}}
	gen := NewGenerator(cat, src)

	if got := gen.GenerateVariants(1); len(got) != 0 {
		t.Errorf("GenerateVariants() = %v, want none at draw 0.99", got)
	}
	if want := len(cat.RollableVariants()); src.calls != want {
		t.Errorf("draws = %d, want %d", src.calls, want)
	}
}

func TestGenerateVariantsKeepsCatalogOrder(t *testing.T) {
	gen := NewGenerator(catalog.Default(), &scripted{draws: []float64{0}})

	got := gen.GenerateVariants(1)
	want := catalog.Default().RollableVariants()
	if len(got) != len(want) {
		t.Fatalf("GenerateVariants() returned %d variants, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Errorf("variant %d = %s, want %s", i, got[i].ID, want[i].ID)
		}
	}
}

func TestUpgradeItem(t *testing.T) {
	cat := catalog.Default()
	aluminum, _ := cat.Metal("aluminum")
	copper, _ := cat.Metal("copper")
	shiny, _ := cat.Variant("shiny")

	base := Item{ID: "x", Metal: aluminum, Variants: []catalog.Variant{shiny}}
	base.Reprice()
	top := Item{ID: "y", Metal: copper}
	top.Reprice()

	tests := []struct {
		name      string
		item      Item
		signal    float64
		draw      float64
		wantMetal string
		wantOK    bool
		wantCalls int
	}{
		{name: "at threshold", item: base, signal: 0.9, draw: 0, wantMetal: "aluminum", wantCalls: 0},
		{name: "perfect lucky", item: base, signal: 1, draw: 0.49, wantMetal: "copper", wantOK: true, wantCalls: 1},
		{name: "perfect unlucky", item: base, signal: 1, draw: 0.5, wantMetal: "aluminum", wantCalls: 1},
		{name: "narrow window", item: base, signal: 0.92, draw: 0.09, wantMetal: "copper", wantOK: true, wantCalls: 1},
		{name: "narrow miss", item: base, signal: 0.92, draw: 0.11, wantMetal: "aluminum", wantCalls: 1},
		{name: "already top tier", item: top, signal: 1, draw: 0, wantMetal: "copper", wantCalls: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := &scripted{draws: []float64{tc.draw}}
			gen := NewGenerator(cat, src)

			got, ok := gen.UpgradeItem(tc.item, tc.signal)
			if ok != tc.wantOK {
				t.Errorf("ok = %v, want %v", ok, tc.wantOK)
			}
			if got.Metal.ID != tc.wantMetal {
				t.Errorf("metal = %s, want %s", got.Metal.ID, tc.wantMetal)
			}
			if got.Value != CalculateValue(got.Metal, got.Variants) {
				t.Errorf("value %d inconsistent", got.Value)
			}
			if len(got.Variants) != len(tc.item.Variants) {
				t.Errorf("variants changed: %v", got.VariantIDs())
			}
			if src.calls != tc.wantCalls {
				t.Errorf("draws = %d, want %d", src.calls, tc.wantCalls)
			}
		})
	}
}

func TestItemLabel(t *testing.T) {
	cat := catalog.Default()
	gold, _ := cat.Metal("gold")
	shiny, _ := cat.Variant("shiny")
	giant, _ := cat.Variant("giant")

	it := Item{Metal: gold, Variants: []catalog.Variant{shiny, giant}}
	if got := it.Label(); got != "Shiny Giant Gold" {
		t.Errorf("Label() = %q", got)
	}
}
