// Package detector implements the metal detector game: sweep the field,
// dig up buried items with a timing mechanic, and spend the proceeds in the
// shop. All economy rules live in the economy and loot packages; this
// package only drives them from input.
package detector

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
	"github.com/vovakirdan/metal-tycoon/internal/config"
	"github.com/vovakirdan/metal-tycoon/internal/core"
	"github.com/vovakirdan/metal-tycoon/internal/economy"
	"github.com/vovakirdan/metal-tycoon/internal/loot"
)

// noticeTicks is how long a notification stays on screen (~3s at 30 fps).
const noticeTicks = 90

// Mode is what the game is currently showing.
type Mode int

const (
	ModeField Mode = iota
	ModeReveal
	ModeShop
	ModeInventory
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeField:
		return "field"
	case ModeReveal:
		return "reveal"
	case ModeShop:
		return "shop"
	case ModeInventory:
		return "inventory"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Find is reported to the find hook for every notable item dug up.
type Find struct {
	Item     loot.Item
	Signal   float64
	Area     string
	Upgraded bool
}

// Notable reports whether an item belongs in the finds ledger:
// tier 5 and up, or any variant.
func Notable(it loot.Item) bool {
	return it.Metal.Tier >= 5 || it.HasVariants()
}

// Game is one play session. It owns the item generator and the ledger.
type Game struct {
	cat     *catalog.Catalog
	cfg     config.GameConfig
	initial economy.State

	findHook func(Find)
	genOpts  []loot.Option
	clock    func() time.Time

	rng    *rand.Rand
	gen    *loot.Generator
	ledger *economy.Ledger
	tick   uint64

	screenW int
	screenH int

	// Field
	det      core.Vec2
	buried   []loot.Item
	target   int // index into buried, -1 when nothing is in range
	signal   float64
	distance float64

	// Digging
	digProgress float64
	pending     *loot.Item
	pendingUp   bool

	// Overlays
	mode      Mode
	shopTab   int
	shopSel   [3]int
	invScroll int
	helpPage  int

	notice      string
	noticeLeft  int
	noticeError bool

	paused bool
	quit   bool
	dirty  bool
}

// Option customizes a Game.
type Option func(*Game)

// WithFindHook registers a callback for notable finds.
func WithFindHook(f func(Find)) Option {
	return func(g *Game) { g.findHook = f }
}

// WithLootOptions passes options to the item generator.
func WithLootOptions(opts ...loot.Option) Option {
	return func(g *Game) { g.genOpts = append(g.genOpts, opts...) }
}

// WithClock sets the clock used for item timestamps and LastPlayed.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.clock = now }
}

// New creates a game that starts from state on Reset.
func New(cat *catalog.Catalog, cfg config.GameConfig, state economy.State, opts ...Option) *Game {
	g := &Game{
		cat:     cat,
		cfg:     cfg,
		initial: state.Clone(),
		clock:   time.Now,
		target:  -1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return "detector" }

// Title returns the display name.
func (g *Game) Title() string { return "Metal Detector Tycoon" }

// Reset starts the session from the initial state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	opts := append([]loot.Option{loot.WithClock(g.clock)}, g.genOpts...)
	g.gen = loot.NewGenerator(g.cat, g.rng, opts...)
	g.ledger = economy.NewLedger(g.cat, g.initial.Clone(), g.gen,
		economy.WithRules(economy.Rules{
			BulkThreshold:    g.cfg.Economy.BulkThreshold,
			BulkBonusPercent: g.cfg.Economy.BulkBonusPercent,
		}),
		economy.WithClock(g.clock),
	)

	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.det = core.Vec2{}
	g.mode = ModeField
	g.shopTab = 0
	g.shopSel = [3]int{}
	g.invScroll = 0
	g.helpPage = 0
	g.pending = nil
	g.pendingUp = false
	g.digProgress = 0
	g.paused = false
	g.quit = false
	g.dirty = false
	g.notice = ""
	g.noticeLeft = 0

	g.spawnField()
	g.detect()
}

// Restore replaces the progression state, e.g. after an import, and
// respawns the field for the restored area.
func (g *Game) Restore(s economy.State) {
	g.initial = s.Clone()
	if g.gen == nil {
		return // not started yet, Reset picks it up
	}
	g.ledger = economy.NewLedger(g.cat, s.Clone(), g.gen,
		economy.WithRules(economy.Rules{
			BulkThreshold:    g.cfg.Economy.BulkThreshold,
			BulkBonusPercent: g.cfg.Economy.BulkBonusPercent,
		}),
		economy.WithClock(g.clock),
	)
	g.mode = ModeField
	g.pending = nil
	g.digProgress = 0
	g.spawnField()
	g.detect()
	g.dirty = true
}

// Resize updates the screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Ledger exposes the session's progression state.
func (g *Game) Ledger() *economy.Ledger { return g.ledger }

// Mode returns the active screen.
func (g *Game) Mode() Mode { return g.mode }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.dirty = false
	var events []core.Event

	if g.noticeLeft > 0 {
		g.noticeLeft--
		if g.noticeLeft == 0 {
			g.notice = ""
		}
	}

	if in.Has(core.ActionQuit) {
		g.quit = true
		g.dirty = true
		return g.result(events)
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			g.digProgress = 0
		}
	}
	if g.paused {
		return g.result(events)
	}

	switch g.mode {
	case ModeReveal:
		events = g.stepReveal(in, events)
	case ModeShop:
		events = g.stepShop(in, events)
	case ModeInventory:
		events = g.stepInventory(in, events)
	case ModeHelp:
		g.stepHelp(in)
	default:
		events = g.stepField(in, events)
	}

	return g.result(events)
}

func (g *Game) result(events []core.Event) core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: events,
	}
}

// State returns the platform-facing state.
func (g *Game) State() core.GameState {
	signal := g.signal
	if g.paused || g.mode != ModeField {
		signal = 0
	}
	return core.GameState{
		Coins:       g.ledger.Coins(),
		Signal:      signal,
		DigProgress: g.digProgress,
		Paused:      g.paused,
		Quit:        g.quit,
		Dirty:       g.dirty,
	}
}

func (g *Game) notify(text string, isError bool) {
	g.notice = text
	g.noticeLeft = noticeTicks
	g.noticeError = isError
}
