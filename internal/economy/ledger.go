package economy

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
	"github.com/vovakirdan/metal-tycoon/internal/loot"
)

// Rules are the tunable selling rules.
type Rules struct {
	BulkThreshold    int   // items sold at once to earn the bonus
	BulkBonusPercent int64 // bonus on the sale total
}

// DefaultRules: +10% when selling 50 or more items at once.
func DefaultRules() Rules {
	return Rules{BulkThreshold: 50, BulkBonusPercent: 10}
}

// Sale describes a completed SellAll.
type Sale struct {
	Count int
	Raw   int64 // sum of item values
	Total int64 // coins credited
	Bulk  bool
}

// Bonus is the extra credited by the bulk rule.
func (s Sale) Bonus() int64 { return s.Total - s.Raw }

// Ledger applies progression rules to a State and keeps the item generator
// in sync with the equipped detector and the current area.
type Ledger struct {
	cat   *catalog.Catalog
	gen   *loot.Generator
	rules Rules
	now   func() time.Time

	state State
}

// LedgerOption customizes a Ledger.
type LedgerOption func(*Ledger)

// WithRules overrides the selling rules.
func WithRules(r Rules) LedgerOption {
	return func(l *Ledger) { l.rules = r }
}

// WithClock overrides the clock used for LastPlayed.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) { l.now = now }
}

// NewLedger takes ownership of state and reconfigures gen from it.
func NewLedger(cat *catalog.Catalog, state State, gen *loot.Generator, opts ...LedgerOption) *Ledger {
	if state.Stats.RareFinds == nil {
		state.Stats.RareFinds = map[string]int{}
	}
	l := &Ledger{
		cat:   cat,
		gen:   gen,
		rules: DefaultRules(),
		now:   time.Now,
		state: state,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.syncGenerator()
	return l
}

func (l *Ledger) syncGenerator() {
	d := l.CurrentDetector()
	l.gen.Configure(d.Level, d.RarityBonus, l.state.CurrentArea)
}

// State returns a copy of the current state.
func (l *Ledger) State() State { return l.state.Clone() }

// Snapshot returns a copy stamped with the current time, ready to persist.
func (l *Ledger) Snapshot() State {
	l.state.LastPlayed = l.now().UnixMilli()
	return l.state.Clone()
}

// Coins returns the current balance.
func (l *Ledger) Coins() int64 { return l.state.Coins }

// Inventory returns the bag contents. The slice must not be modified.
func (l *Ledger) Inventory() []loot.Item { return l.state.Inventory }

// Generator returns the generator kept in sync with this ledger.
func (l *Ledger) Generator() *loot.Generator { return l.gen }

// Catalog returns the catalog the ledger prices against.
func (l *Ledger) Catalog() *catalog.Catalog { return l.cat }

// CurrentDetector returns the equipped detector, or the starter one if the
// saved level is unknown.
func (l *Ledger) CurrentDetector() catalog.Detector {
	return l.cat.DetectorOrStarter(l.state.DetectorLevel)
}

// CurrentBag returns the equipped bag, or the starter one if unknown.
func (l *Ledger) CurrentBag() catalog.Bag {
	return l.cat.BagOrStarter(l.state.BagLevel)
}

// CurrentArea returns the active area, or the starter area if unknown.
func (l *Ledger) CurrentArea() catalog.Area {
	if a, ok := l.cat.Area(l.state.CurrentArea); ok {
		return a
	}
	return l.cat.StarterArea()
}

// BagFull reports whether Collect would be refused.
func (l *Ledger) BagFull() bool {
	return len(l.state.Inventory) >= l.CurrentBag().Capacity
}

// Owns reports whether the offer is already equipped or unlocked.
// Detectors and bags at or below the current level count as owned.
func (l *Ledger) Owns(o catalog.Offer) bool {
	switch o := o.(type) {
	case catalog.Detector:
		return o.Level <= l.state.DetectorLevel
	case catalog.Bag:
		return o.Level <= l.state.BagLevel
	case catalog.Area:
		return l.state.IsUnlocked(o.ID)
	default:
		return false
	}
}

// CanAfford reports whether the balance covers the offer's price.
func (l *Ledger) CanAfford(o catalog.Offer) bool {
	return l.state.Coins >= o.Price()
}

// Buy purchases an offer. Price and level come from the catalog entry the
// offer names, not from the offer value itself. Buying an unlocked area
// travels there for free.
func (l *Ledger) Buy(o catalog.Offer) error {
	if a, ok := o.(catalog.Area); ok && l.state.IsUnlocked(a.ID) {
		return l.TravelTo(a.ID)
	}
	o, err := l.resolve(o)
	if err != nil {
		return err
	}
	if l.Owns(o) {
		return fmt.Errorf("%w: %s", ErrAlreadyOwned, o.Title())
	}
	if !l.CanAfford(o) {
		return fmt.Errorf("%w: %s costs %d", ErrInsufficientCoins, o.Title(), o.Price())
	}

	l.state.Coins -= o.Price()
	switch o := o.(type) {
	case catalog.Detector:
		l.state.DetectorLevel = o.Level
	case catalog.Bag:
		l.state.BagLevel = o.Level
	case catalog.Area:
		l.state.UnlockedAreas = append(l.state.UnlockedAreas, o.ID)
		l.state.CurrentArea = o.ID
	}

	l.syncGenerator()
	return nil
}

// resolve swaps an offer for the catalog entry with the same key.
func (l *Ledger) resolve(o catalog.Offer) (catalog.Offer, error) {
	switch o := o.(type) {
	case catalog.Detector:
		d, ok := l.cat.Detector(o.Level)
		if !ok {
			return nil, fmt.Errorf("%w: detector level %d", ErrUnknownOffer, o.Level)
		}
		return d, nil
	case catalog.Bag:
		b, ok := l.cat.Bag(o.Level)
		if !ok {
			return nil, fmt.Errorf("%w: bag level %d", ErrUnknownOffer, o.Level)
		}
		return b, nil
	case catalog.Area:
		a, ok := l.cat.Area(o.ID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownArea, o.ID)
		}
		return a, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownOffer, o)
	}
}

// TravelTo switches to an unlocked area.
func (l *Ledger) TravelTo(areaID string) error {
	if _, ok := l.cat.Area(areaID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownArea, areaID)
	}
	if !l.state.IsUnlocked(areaID) {
		return fmt.Errorf("%w: %s", ErrAreaLocked, areaID)
	}
	l.state.CurrentArea = areaID
	l.syncGenerator()
	return nil
}

// Collect puts an item in the bag.
func (l *Ledger) Collect(item loot.Item) error {
	if l.BagFull() {
		return ErrBagFull
	}
	item.Found = true
	l.state.Inventory = append(l.state.Inventory, item)
	return nil
}

// RecordFind updates the find counters for a dug-up item.
func (l *Ledger) RecordFind(item loot.Item) {
	l.state.Stats.ItemsFound++
	if item.HasVariants() {
		l.state.Stats.VariantsFound++
	}
	l.state.Stats.RareFinds[item.Metal.ID]++
}

// RecordUpgrade counts a precision upgrade.
func (l *Ledger) RecordUpgrade() {
	l.state.Stats.PrecisionUpgrades++
}

// InventoryValue is the raw sum of item values in the bag.
func (l *Ledger) InventoryValue() int64 {
	var total int64
	for _, it := range l.state.Inventory {
		total = addSat(total, it.Value)
	}
	return total
}

// SellAll sells the whole bag in one step.
func (l *Ledger) SellAll() (Sale, error) {
	count := len(l.state.Inventory)
	if count == 0 {
		return Sale{}, ErrNothingToSell
	}

	sale := Sale{Count: count, Raw: l.InventoryValue()}
	sale.Total = sale.Raw
	if l.rules.BulkThreshold > 0 && count >= l.rules.BulkThreshold && l.rules.BulkBonusPercent > 0 {
		sale.Bulk = true
		sale.Total = withBonus(sale.Raw, l.rules.BulkBonusPercent)
	}

	l.state.Coins = addSat(l.state.Coins, sale.Total)
	l.state.TotalCoinsEarned = addSat(l.state.TotalCoinsEarned, sale.Total)
	l.state.Stats.ItemsSold += count
	l.state.Inventory = nil
	return sale, nil
}

// withBonus returns floor(v * (100+pct) / 100) without overflowing.
func withBonus(v, pct int64) int64 {
	whole, rest := v/100, v%100
	bonus := whole*pct + rest*pct/100
	return addSat(v, bonus)
}

func addSat(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
