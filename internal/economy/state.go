// Package economy holds the player's progression state and the rules that
// change it: purchases, travel, collection and bulk selling.
package economy

import (
	"slices"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
	"github.com/vovakirdan/metal-tycoon/internal/loot"
)

// Stats are lifetime counters.
type Stats struct {
	ItemsFound        int
	ItemsSold         int
	VariantsFound     int
	RareFinds         map[string]int // finds per metal id
	PrecisionUpgrades int
}

// State is everything that is persisted between sessions.
type State struct {
	Coins            int64
	TotalCoinsEarned int64
	Inventory        []loot.Item
	DetectorLevel    int
	BagLevel         int
	CurrentArea      string
	UnlockedAreas    []string
	Stats            Stats
	LastPlayed       int64 // unix milliseconds, 0 if never saved
}

// NewState returns a fresh game: no coins, starter gear, the first area.
func NewState(cat *catalog.Catalog) State {
	start := cat.StarterArea().ID
	return State{
		DetectorLevel: 1,
		BagLevel:      1,
		CurrentArea:   start,
		UnlockedAreas: []string{start},
		Stats:         Stats{RareFinds: map[string]int{}},
	}
}

// IsUnlocked reports whether areaID has been bought.
func (s State) IsUnlocked(areaID string) bool {
	return slices.Contains(s.UnlockedAreas, areaID)
}

// Clone returns a deep copy.
func (s State) Clone() State {
	out := s
	out.Inventory = make([]loot.Item, len(s.Inventory))
	for i, it := range s.Inventory {
		out.Inventory[i] = it.Clone()
	}
	out.UnlockedAreas = slices.Clone(s.UnlockedAreas)
	out.Stats.RareFinds = make(map[string]int, len(s.Stats.RareFinds))
	for k, v := range s.Stats.RareFinds {
		out.Stats.RareFinds[k] = v
	}
	return out
}
