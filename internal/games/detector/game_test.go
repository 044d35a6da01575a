package detector

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
	"github.com/vovakirdan/metal-tycoon/internal/config"
	"github.com/vovakirdan/metal-tycoon/internal/core"
	"github.com/vovakirdan/metal-tycoon/internal/economy"
	"github.com/vovakirdan/metal-tycoon/internal/loot"
)

var testClock = func() time.Time { return time.Unix(1_700_000_000, 0) }

func newTestGame(t *testing.T, mutate func(*economy.State), opts ...Option) *Game {
	t.Helper()
	cat := catalog.Default()
	state := economy.NewState(cat)
	if mutate != nil {
		mutate(&state)
	}
	opts = append([]Option{WithClock(testClock)}, opts...)
	g := New(cat, config.DefaultGameConfig(), state, opts...)
	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// digUp parks the detector on the first buried item and holds dig until
// the reveal screen opens.
func digUp(t *testing.T, g *Game) {
	t.Helper()
	it := g.buried[0]
	g.det = core.Vec2{X: it.Position.X, Z: it.Position.Z}
	for i := 0; i < 100 && g.mode != ModeReveal; i++ {
		g.Step(press(core.ActionDig))
	}
	if g.mode != ModeReveal {
		t.Fatalf("dig never completed, progress %.1f", g.digProgress)
	}
}

func metal(t *testing.T, cat *catalog.Catalog, id string) catalog.Metal {
	t.Helper()
	m, ok := cat.Metal(id)
	if !ok {
		t.Fatalf("metal %q missing", id)
	}
	return m
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, nil)
	g2 := newTestGame(t, nil)

	for i := 0; i < 200; i++ {
		var in core.InputFrame
		switch {
		case i < 40:
			in = press(core.ActionRight)
		case i < 80:
			in = press(core.ActionDown, core.ActionDig)
		case i < 120:
			in = press(core.ActionLeft, core.ActionDig)
		default:
			in = press(core.ActionDig)
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	s1.Pending, s2.Pending = "", "" // ids carry a uuid
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestResetSpawnsField(t *testing.T) {
	g := newTestGame(t, nil)
	if got := len(g.buried); got != g.cfg.Field.BuriedCount {
		t.Fatalf("buried = %d, want %d", got, g.cfg.Field.BuriedCount)
	}
	area := g.ledger.CurrentArea()
	for _, it := range g.buried {
		if !area.Permits(it.Metal.ID) {
			t.Errorf("%s is not found at %s", it.Metal.ID, area.ID)
		}
		if it.Depth != 1 {
			t.Errorf("depth = %d, want 1", it.Depth)
		}
		if it.Position.X < -35 || it.Position.X > 35 || it.Position.Z < -27.5 || it.Position.Z > 27.5 {
			t.Errorf("item outside field at %+v", it.Position)
		}
	}
}

func TestMovementStaysInField(t *testing.T) {
	g := newTestGame(t, nil)
	for i := 0; i < 500; i++ {
		g.Step(press(core.ActionLeft, core.ActionUp))
	}
	if g.det.X != -g.cfg.Field.Width/2 || g.det.Z != -g.cfg.Field.Depth/2 {
		t.Errorf("detector at %+v, want corner", g.det)
	}
}

func TestSignalFollowsDistance(t *testing.T) {
	g := newTestGame(t, nil)
	g.buried = g.buried[:1]
	it := g.buried[0]

	g.det = core.Vec2{X: it.Position.X + 2.5, Z: it.Position.Z}
	g.detect()
	if g.target != 0 {
		t.Fatalf("target = %d, want 0", g.target)
	}
	if got := g.signal; got < 0.499 || got > 0.501 {
		t.Errorf("signal = %v, want 0.5", got)
	}

	g.det = core.Vec2{X: it.Position.X + 5, Z: it.Position.Z}
	g.detect()
	if g.target != -1 || g.signal != 0 {
		t.Errorf("radius edge should be out of range, target %d signal %v", g.target, g.signal)
	}
}

func TestDeepItemsNeedBetterDetector(t *testing.T) {
	g := newTestGame(t, nil)
	g.buried = g.buried[:1]
	g.buried[0].Depth = 3
	it := g.buried[0]
	g.det = core.Vec2{X: it.Position.X, Z: it.Position.Z}

	g.detect()
	if g.target != -1 {
		t.Fatal("starter detector should not reach depth 3")
	}
}

func TestDigRequiresStrongSignal(t *testing.T) {
	g := newTestGame(t, nil)
	g.buried = g.buried[:1]
	it := g.buried[0]
	offset := 2.0 // signal 0.6
	if it.Position.X > 0 {
		offset = -offset
	}
	g.det = core.Vec2{X: it.Position.X + offset, Z: it.Position.Z}

	for i := 0; i < 50; i++ {
		g.Step(press(core.ActionDig))
	}
	if g.digProgress != 0 || g.mode != ModeField {
		t.Errorf("dug with a weak signal: progress %v mode %v", g.digProgress, g.mode)
	}
}

func TestReleasingDigResetsProgress(t *testing.T) {
	g := newTestGame(t, nil)
	it := g.buried[0]
	g.det = core.Vec2{X: it.Position.X, Z: it.Position.Z}

	g.Step(press(core.ActionDig))
	if g.digProgress <= 0 {
		t.Fatal("expected dig progress")
	}
	g.Step(press())
	if g.digProgress != 0 {
		t.Errorf("progress = %v after release", g.digProgress)
	}
}

func TestDigFlowCollect(t *testing.T) {
	var finds []Find
	g := newTestGame(t, nil, WithFindHook(func(f Find) { finds = append(finds, f) }))
	before := len(g.buried)

	digUp(t, g)
	if g.pending == nil {
		t.Fatal("no pending item")
	}
	if len(g.buried) != before-1 {
		t.Errorf("buried = %d, want %d", len(g.buried), before-1)
	}
	// A perfect dig rerolls at 50x, which always lands a shiny.
	if !g.pending.HasVariants() {
		t.Error("perfect dig should roll a variant")
	}
	if len(finds) != 1 || finds[0].Signal < 0.95 {
		t.Errorf("find hook = %+v", finds)
	}
	if !g.State().Dirty {
		t.Error("dig completion should mark state dirty")
	}

	res := g.Step(press(core.ActionConfirm))
	if g.mode != ModeField {
		t.Errorf("mode = %v after collect", g.mode)
	}
	if n := len(g.ledger.Inventory()); n != 1 {
		t.Fatalf("inventory = %d, want 1", n)
	}
	if !hasEvent(res.Events, core.EventCoin) {
		t.Error("collect should emit a coin event")
	}
	if got := g.ledger.State().Stats.ItemsFound; got != 1 {
		t.Errorf("ItemsFound = %d", got)
	}
}

func TestDiscardLeavesBagEmpty(t *testing.T) {
	g := newTestGame(t, nil)
	digUp(t, g)
	g.Step(press(core.ActionBack))
	if g.mode != ModeField || g.pending != nil {
		t.Errorf("mode %v pending %v", g.mode, g.pending)
	}
	if n := len(g.ledger.Inventory()); n != 0 {
		t.Errorf("inventory = %d, want 0", n)
	}
}

func TestCollectIntoFullBag(t *testing.T) {
	cat := catalog.Default()
	alu := metal(t, cat, "aluminum")
	g := newTestGame(t, func(s *economy.State) {
		for i := 0; i < 10; i++ {
			s.Inventory = append(s.Inventory, loot.Item{ID: "x", Metal: alu, Value: 1, Found: true})
		}
	})

	digUp(t, g)
	res := g.Step(press(core.ActionConfirm))
	if !hasEvent(res.Events, core.EventError) {
		t.Error("full bag should emit an error event")
	}
	if n := len(g.ledger.Inventory()); n != 10 {
		t.Errorf("inventory = %d, want 10", n)
	}
	if !g.noticeError || g.notice != "Bag is full!" {
		t.Errorf("notice = %q", g.notice)
	}
}

func TestSellAllShortcut(t *testing.T) {
	cat := catalog.Default()
	cu := metal(t, cat, "copper")
	g := newTestGame(t, func(s *economy.State) {
		s.Inventory = []loot.Item{
			{ID: "a", Metal: cu, Value: 5, Found: true},
			{ID: "b", Metal: cu, Value: 5, Found: true},
		}
	})

	res := g.Step(press(core.ActionSell))
	if g.ledger.Coins() != 10 {
		t.Errorf("coins = %d, want 10", g.ledger.Coins())
	}
	if !hasEvent(res.Events, core.EventCoin) {
		t.Error("sale should emit a coin event")
	}

	res = g.Step(press(core.ActionSell))
	if !hasEvent(res.Events, core.EventError) || g.notice != "Nothing to sell" {
		t.Errorf("empty sale notice = %q", g.notice)
	}
}

func TestShopBuyDetector(t *testing.T) {
	g := newTestGame(t, func(s *economy.State) { s.Coins = 60 })

	g.Step(press(core.ActionShop))
	if g.mode != ModeShop {
		t.Fatalf("mode = %v", g.mode)
	}
	g.Step(press(core.ActionDown)) // scout
	g.Step(press(core.ActionConfirm))

	if got := g.ledger.CurrentDetector().ID; got != "scout" {
		t.Errorf("detector = %q, want scout", got)
	}
	if g.ledger.Coins() != 10 {
		t.Errorf("coins = %d, want 10", g.ledger.Coins())
	}

	g.Step(press(core.ActionDown)) // hunter, 200
	res := g.Step(press(core.ActionConfirm))
	if !hasEvent(res.Events, core.EventError) {
		t.Error("unaffordable purchase should fail")
	}

	g.Step(press(core.ActionBack))
	if g.mode != ModeField {
		t.Errorf("mode = %v after closing shop", g.mode)
	}
}

func TestTravelRespawnsField(t *testing.T) {
	g := newTestGame(t, func(s *economy.State) { s.Coins = 1000 })
	g.det = core.Vec2{X: 10, Z: 10}

	g.Step(press(core.ActionTravel))
	if g.mode != ModeShop || g.shopTab != shopTabAreas {
		t.Fatalf("travel should open the areas tab, mode %v tab %d", g.mode, g.shopTab)
	}
	g.Step(press(core.ActionDown)) // park
	g.Step(press(core.ActionConfirm))

	if got := g.ledger.CurrentArea().ID; got != "park" {
		t.Fatalf("area = %q, want park", got)
	}
	if g.mode != ModeField || g.det != (core.Vec2{}) {
		t.Errorf("mode %v det %+v after travel", g.mode, g.det)
	}
	park := g.ledger.CurrentArea()
	for _, it := range g.buried {
		if !park.Permits(it.Metal.ID) {
			t.Errorf("%s buried in the park", it.Metal.ID)
		}
	}

	// Going back to an owned area is free.
	g.Step(press(core.ActionTravel))
	g.Step(press(core.ActionUp))
	g.Step(press(core.ActionConfirm))
	if g.ledger.CurrentArea().ID != "beach" || g.ledger.Coins() != 500 {
		t.Errorf("area %s coins %d", g.ledger.CurrentArea().ID, g.ledger.Coins())
	}
}

func TestPauseFreezesField(t *testing.T) {
	g := newTestGame(t, nil)
	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("not paused")
	}
	g.Step(press(core.ActionRight))
	if g.det.X != 0 {
		t.Errorf("moved while paused: %+v", g.det)
	}
	if g.State().Signal != 0 {
		t.Error("paused state should report no signal")
	}
	g.Step(press(core.ActionPause))
	g.Step(press(core.ActionRight))
	if g.det.X == 0 {
		t.Error("did not move after unpausing")
	}
}

func TestQuit(t *testing.T) {
	g := newTestGame(t, nil)
	res := g.Step(press(core.ActionQuit))
	if !res.State.Quit || !res.State.Dirty {
		t.Errorf("state = %+v", res.State)
	}
}

func TestOverlayToggles(t *testing.T) {
	g := newTestGame(t, nil)
	tests := []struct {
		open core.Action
		want Mode
	}{
		{core.ActionInventory, ModeInventory},
		{core.ActionHelp, ModeHelp},
		{core.ActionShop, ModeShop},
	}
	for _, tt := range tests {
		g.Step(press(tt.open))
		if g.mode != tt.want {
			t.Errorf("%v opened %v, want %v", tt.open, g.mode, tt.want)
		}
		g.Step(press(tt.open))
		if g.mode != ModeField {
			t.Errorf("%v did not close, mode %v", tt.open, g.mode)
		}
	}
}

func TestRestoreReplacesState(t *testing.T) {
	g := newTestGame(t, nil)
	cat := catalog.Default()
	s := economy.NewState(cat)
	s.Coins = 12345
	s.UnlockedAreas = append(s.UnlockedAreas, "park")
	s.CurrentArea = "park"

	g.Restore(s)
	if g.ledger.Coins() != 12345 || g.ledger.CurrentArea().ID != "park" {
		t.Errorf("coins %d area %s", g.ledger.Coins(), g.ledger.CurrentArea().ID)
	}
	if !g.State().Dirty {
		t.Error("restore should mark state dirty")
	}
}

func TestScanGating(t *testing.T) {
	cat := catalog.Default()
	shiny, _ := cat.Variant("shiny")
	it := &loot.Item{Metal: metal(t, cat, "silver"), Variants: []catalog.Variant{shiny}, Depth: 2}

	tests := []struct {
		name   string
		level  int
		signal float64
		want   Readout
	}{
		{"starter", 1, 0.9, Readout{Label: "STRONG SIGNAL!"}},
		{"hint", 3, 0.5, Readout{Label: "Medium Signal", Hint: "Probable: Silver"}},
		{"hint weak", 3, 0.3, Readout{Label: "Weak Signal"}},
		{"distance", 4, 0.3, Readout{Label: "Weak Signal", Distance: "1.50m"}},
		{"depth", 5, 0.55, Readout{Label: "Medium Signal", Hint: "Probable: Silver", Distance: "1.50m", Depth: "2m"}},
		{"identify", 6, 0.65, Readout{Label: "Medium Signal", Hint: "ID: s Silver", Distance: "1.50m", Depth: "2m"}},
		{"variant", 7, 0.96, Readout{Label: "PERFECT!", Hint: "ID: s Silver", Distance: "1.50m", Depth: "2m", Variant: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.level, tt.signal, 1.5, it)
			if got != tt.want {
				t.Errorf("Scan = %+v, want %+v", got, tt.want)
			}
		})
	}

	if r := Scan(8, 0, 0, nil); r.Label != "Scanning..." || !r.Empty() {
		t.Errorf("empty scan = %+v", r)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, func(s *economy.State) { s.Coins = 1500 })
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if row := screen.Row(0); !strings.Contains(row, "$1.5K") || !strings.Contains(row, "Starter Beach") {
		t.Errorf("hud row = %q", row)
	}
	if !strings.Contains(screen.String(), "@") {
		t.Error("detector not drawn")
	}

	g.Step(press(core.ActionShop))
	g.Render(screen)
	if !strings.Contains(screen.String(), "EQUIPPED") {
		t.Error("shop should mark the equipped detector")
	}

	small := core.NewScreen(20, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("small screen should show a warning")
	}
}

func TestNotable(t *testing.T) {
	cat := catalog.Default()
	shiny, _ := cat.Variant("shiny")
	tests := []struct {
		name string
		item loot.Item
		want bool
	}{
		{"plain copper", loot.Item{Metal: metal(t, cat, "copper")}, false},
		{"shiny copper", loot.Item{Metal: metal(t, cat, "copper"), Variants: []catalog.Variant{shiny}}, true},
		{"gold", loot.Item{Metal: metal(t, cat, "gold")}, true},
	}
	for _, tt := range tests {
		if got := Notable(tt.item); got != tt.want {
			t.Errorf("%s: Notable = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSignalLabel(t *testing.T) {
	tests := []struct {
		signal  float64
		inRange bool
		want    string
	}{
		{0, false, "Scanning..."},
		{0.2, true, "Weak Signal"},
		{0.4, true, "Weak Signal"},
		{0.41, true, "Medium Signal"},
		{0.71, true, "STRONG SIGNAL!"},
		{0.96, true, "PERFECT!"},
	}
	for _, tt := range tests {
		if got := SignalLabel(tt.signal, tt.inRange); got != tt.want {
			t.Errorf("SignalLabel(%v) = %q, want %q", tt.signal, got, tt.want)
		}
	}
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
