package catalog

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/metal-tycoon/internal/core"
)

// Rarity is a display bucket derived from a metal's tier.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

// RarityOf maps a tier to its rarity bucket.
func RarityOf(tier int) Rarity {
	switch {
	case tier <= 2:
		return RarityCommon
	case tier <= 4:
		return RarityUncommon
	case tier <= 6:
		return RarityRare
	case tier <= 8:
		return RarityEpic
	default:
		return RarityLegendary
	}
}

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	default:
		return "Legendary"
	}
}

// Hex returns the rarity's display color as a hex string.
func (r Rarity) Hex() string {
	switch r {
	case RarityCommon:
		return "#9ca3af"
	case RarityUncommon:
		return "#22c55e"
	case RarityRare:
		return "#3b82f6"
	case RarityEpic:
		return "#a855f7"
	default:
		return "#ec4899"
	}
}

// Color returns the closest terminal color for the rarity.
func (r Rarity) Color() core.Color {
	switch r {
	case RarityCommon:
		return core.ColorGray
	case RarityUncommon:
		return core.ColorBrightGreen
	case RarityRare:
		return core.ColorBrightBlue
	case RarityEpic:
		return core.ColorBrightMagenta
	default:
		return core.ColorMagenta
	}
}

// FormatNumber renders large integers in short suffixed form: 1.5K, 2.0M, 3.1B.
// Values below 1000 are printed as-is.
func FormatNumber(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	}
	return strconv.FormatInt(n, 10)
}
