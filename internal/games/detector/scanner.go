package detector

import (
	"fmt"

	"github.com/vovakirdan/metal-tycoon/internal/loot"
)

// Readout is what the scanner display shows for the target in range.
// Better detectors unlock more lines.
type Readout struct {
	Label    string
	Hint     string // metal guess from level 3, confirmed identity from level 6
	Distance string // level 4
	Depth    string // level 5
	Variant  bool   // level 7: the target carries at least one variant
}

// Empty reports whether the scanner has nothing beyond the label.
func (r Readout) Empty() bool {
	return r.Hint == "" && r.Distance == "" && r.Depth == "" && !r.Variant
}

// Scan builds the readout for a detector level. target is nil when nothing
// is in range.
func Scan(level int, signal, distance float64, target *loot.Item) Readout {
	r := Readout{Label: SignalLabel(signal, target != nil)}
	if target == nil {
		return r
	}

	if level >= 3 && signal > 0.4 {
		r.Hint = "Probable: " + target.Metal.Name
	}
	if level >= 4 {
		r.Distance = fmt.Sprintf("%.2fm", distance)
	}
	if level >= 5 && signal > 0.5 {
		r.Depth = fmt.Sprintf("%dm", target.Depth)
	}
	if level >= 6 && signal > 0.6 {
		r.Hint = fmt.Sprintf("ID: %s %s", target.Metal.Symbol, target.Metal.Name)
	}
	if level >= 7 && signal > 0.8 && target.HasVariants() {
		r.Variant = true
	}
	return r
}

// Scanner returns the current readout.
func (g *Game) Scanner() Readout {
	it, ok := g.targetItem()
	if !ok {
		return Scan(g.ledger.CurrentDetector().Level, 0, 0, nil)
	}
	return Scan(g.ledger.CurrentDetector().Level, g.signal, g.distance, &it)
}
