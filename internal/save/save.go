// Package save converts game state to and from its persisted JSON form.
//
// Items are stored by metal and variant id and re-resolved against the
// catalog on load, so values always follow the current catalog.
package save

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
	"github.com/vovakirdan/metal-tycoon/internal/economy"
	"github.com/vovakirdan/metal-tycoon/internal/loot"
)

// Version is the current save format.
const Version = 1

// DefaultSlot is the slot used when none is given.
const DefaultSlot = "metal_detector_save"

var (
	// ErrInvalidSave is returned for imports that cannot be decoded or fail validation.
	ErrInvalidSave = errors.New("save: invalid save")
	// ErrUnsupportedVersion is returned for saves written by a newer format.
	ErrUnsupportedVersion = errors.New("save: unsupported version")
)

// FileV1 is the on-disk document.
type FileV1 struct {
	Version          int          `json:"version"`
	Coins            int64        `json:"coins"`
	TotalCoinsEarned int64        `json:"total_coins_earned"`
	Inventory        []ItemRecord `json:"inventory"`
	DetectorLevel    int          `json:"detector_level"`
	BagLevel         int          `json:"bag_level"`
	CurrentArea      string       `json:"current_area"`
	UnlockedAreas    []string     `json:"unlocked_areas"`
	Stats            StatsRecord  `json:"stats"`
	LastPlayed       *int64       `json:"last_played"`
}

// ItemRecord is an inventory entry. Value is informational only.
type ItemRecord struct {
	ID       string   `json:"id"`
	Metal    string   `json:"metal"`
	Variants []string `json:"variants,omitempty"`
	Value    int64    `json:"value"`
	FoundAt  int64    `json:"found_at"`
	Depth    int      `json:"depth,omitempty"`
	X        float64  `json:"x,omitempty"`
	Y        float64  `json:"y,omitempty"`
	Z        float64  `json:"z,omitempty"`
}

// StatsRecord mirrors economy.Stats.
type StatsRecord struct {
	ItemsFound        int            `json:"items_found"`
	ItemsSold         int            `json:"items_sold"`
	VariantsFound     int            `json:"variants_found"`
	RareFinds         map[string]int `json:"rare_finds"`
	PrecisionUpgrades int            `json:"precision_upgrades"`
}

// Default returns the document of a fresh game.
func Default(cat *catalog.Catalog) FileV1 {
	return toFile(economy.NewState(cat))
}

func toFile(s economy.State) FileV1 {
	f := FileV1{
		Version:          Version,
		Coins:            s.Coins,
		TotalCoinsEarned: s.TotalCoinsEarned,
		Inventory:        make([]ItemRecord, 0, len(s.Inventory)),
		DetectorLevel:    s.DetectorLevel,
		BagLevel:         s.BagLevel,
		CurrentArea:      s.CurrentArea,
		UnlockedAreas:    append([]string{}, s.UnlockedAreas...),
		Stats: StatsRecord{
			ItemsFound:        s.Stats.ItemsFound,
			ItemsSold:         s.Stats.ItemsSold,
			VariantsFound:     s.Stats.VariantsFound,
			RareFinds:         make(map[string]int, len(s.Stats.RareFinds)),
			PrecisionUpgrades: s.Stats.PrecisionUpgrades,
		},
	}
	for k, v := range s.Stats.RareFinds {
		f.Stats.RareFinds[k] = v
	}
	if s.LastPlayed != 0 {
		lp := s.LastPlayed
		f.LastPlayed = &lp
	}
	for _, it := range s.Inventory {
		f.Inventory = append(f.Inventory, ItemRecord{
			ID:       it.ID,
			Metal:    it.Metal.ID,
			Variants: it.VariantIDs(),
			Value:    it.Value,
			FoundAt:  it.FoundAt,
			Depth:    it.Depth,
			X:        it.Position.X,
			Y:        it.Position.Y,
			Z:        it.Position.Z,
		})
	}
	return f
}

// Encode serializes state as JSON.
func Encode(s economy.State) ([]byte, error) {
	data, err := json.Marshal(toFile(s))
	if err != nil {
		return nil, fmt.Errorf("save: encode: %w", err)
	}
	return data, nil
}

// Decode parses a JSON save over the defaults, so fields missing from older
// saves keep their default values.
func Decode(cat *catalog.Catalog, data []byte) (economy.State, error) {
	f := Default(cat)
	if err := json.Unmarshal(data, &f); err != nil {
		return economy.State{}, fmt.Errorf("save: decode: %w", err)
	}
	if f.Version > Version {
		return economy.State{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}
	return fromFile(cat, f), nil
}

func fromFile(cat *catalog.Catalog, f FileV1) economy.State {
	s := economy.State{
		Coins:            f.Coins,
		TotalCoinsEarned: f.TotalCoinsEarned,
		Inventory:        make([]loot.Item, 0, len(f.Inventory)),
		DetectorLevel:    cat.DetectorOrStarter(f.DetectorLevel).Level,
		BagLevel:         cat.BagOrStarter(f.BagLevel).Level,
		CurrentArea:      f.CurrentArea,
		UnlockedAreas:    f.UnlockedAreas,
		Stats: economy.Stats{
			ItemsFound:        f.Stats.ItemsFound,
			ItemsSold:         f.Stats.ItemsSold,
			VariantsFound:     f.Stats.VariantsFound,
			RareFinds:         f.Stats.RareFinds,
			PrecisionUpgrades: f.Stats.PrecisionUpgrades,
		},
	}
	if f.LastPlayed != nil {
		s.LastPlayed = *f.LastPlayed
	}
	if s.Stats.RareFinds == nil {
		s.Stats.RareFinds = map[string]int{}
	}

	start := cat.StarterArea().ID
	if len(s.UnlockedAreas) == 0 {
		s.UnlockedAreas = []string{start}
	}
	if s.CurrentArea == "" || !s.IsUnlocked(s.CurrentArea) {
		s.CurrentArea = s.UnlockedAreas[0]
	}

	for _, r := range f.Inventory {
		s.Inventory = append(s.Inventory, resolveItem(cat, r))
	}
	return s
}

// resolveItem rebuilds an item from ids. Unknown metals become the lowest
// tier, unknown variants are dropped, and the value is recomputed.
func resolveItem(cat *catalog.Catalog, r ItemRecord) loot.Item {
	metal, ok := cat.Metal(r.Metal)
	if !ok {
		metal = cat.LowestMetal()
	}
	var variants []catalog.Variant
	for _, id := range r.Variants {
		v, ok := cat.Variant(id)
		if !ok || v.IsNormal() {
			continue
		}
		variants = append(variants, v)
	}

	it := loot.Item{
		ID:       r.ID,
		Metal:    metal,
		Variants: variants,
		FoundAt:  r.FoundAt,
		Position: loot.Position{X: r.X, Y: r.Y, Z: r.Z},
		Depth:    r.Depth,
		Found:    true,
	}
	it.Reprice()
	return it
}

// Export encodes state as a base64 string for copying between machines.
func Export(s economy.State) (string, error) {
	data, err := Encode(s)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Import reverses Export. Every failure is reported as ErrInvalidSave.
func Import(cat *catalog.Catalog, blob string) (economy.State, error) {
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return economy.State{}, fmt.Errorf("%w: base64: %v", ErrInvalidSave, err)
	}
	if err := Validate(data); err != nil {
		return economy.State{}, fmt.Errorf("%w: %v", ErrInvalidSave, err)
	}
	s, err := Decode(cat, data)
	if err != nil {
		return economy.State{}, fmt.Errorf("%w: %v", ErrInvalidSave, err)
	}
	return s, nil
}
