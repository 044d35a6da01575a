package detector

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
	"github.com/vovakirdan/metal-tycoon/internal/core"
	"github.com/vovakirdan/metal-tycoon/internal/economy"
)

// stepField handles sweeping, digging and opening overlays.
func (g *Game) stepField(in core.InputFrame, events []core.Event) []core.Event {
	switch {
	case in.Has(core.ActionShop):
		g.openShop(0)
		return events
	case in.Has(core.ActionTravel):
		g.openShop(shopTabAreas)
		return events
	case in.Has(core.ActionInventory):
		g.mode = ModeInventory
		g.invScroll = 0
		return events
	case in.Has(core.ActionHelp):
		g.mode = ModeHelp
		return events
	case in.Has(core.ActionSell):
		return g.sellAll(events)
	}

	g.move(in)
	g.detect()

	if g.target < 0 || g.signal <= g.cfg.Dig.MinSignal || !in.Has(core.ActionDig) {
		// Letting go or drifting off the target loses the progress.
		g.digProgress = 0
		return events
	}

	g.digProgress += g.cfg.Dig.Speed * (0.5 + g.signal*2.5)
	if g.rng.Float64() < g.cfg.Dig.SoundChance {
		events = append(events, core.Event{Kind: core.EventDigTick})
	}
	if g.digProgress >= g.cfg.Dig.Complete {
		events = g.completeDig(events)
	}
	return events
}

// completeDig pulls the target out of the ground and shows the reveal.
// A good dig rerolls variants at boosted odds; a near perfect one may
// also upgrade the metal.
func (g *Game) completeDig(events []core.Event) []core.Event {
	signal := g.signal
	item := g.takeTarget()
	pos := core.Vec2{X: item.Position.X, Z: item.Position.Z}

	item, _ = g.gen.RerollVariants(item, signal)
	upgraded := false
	if g.cfg.Dig.PrecisionBonus {
		item, upgraded = g.gen.UpgradeItem(item, signal)
		if upgraded {
			g.ledger.RecordUpgrade()
		}
	}
	item.Found = true
	g.ledger.RecordFind(item)

	g.pending = &item
	g.pendingUp = upgraded
	g.digProgress = 0
	g.signal = 0
	g.mode = ModeReveal
	g.dirty = true

	if g.findHook != nil && Notable(item) {
		g.findHook(Find{
			Item:     item.Clone(),
			Signal:   signal,
			Area:     g.ledger.CurrentArea().ID,
			Upgraded: upgraded,
		})
	}

	text := fmt.Sprintf("Found %s!", item.Label())
	if upgraded {
		text = fmt.Sprintf("Precision bonus! Found %s!", item.Label())
	}
	return append(events,
		core.Event{Kind: core.EventDigComplete, Pos: pos, Color: item.Metal.Color},
		core.Event{Kind: core.EventReveal, Tier: item.Metal.Tier, Text: text},
	)
}

// stepReveal waits for the player to keep or drop the dug-up item.
func (g *Game) stepReveal(in core.InputFrame, events []core.Event) []core.Event {
	switch {
	case in.Has(core.ActionConfirm):
		return g.collect(events)
	case in.Has(core.ActionBack):
		g.discard()
	}
	return events
}

// collect bags the pending item. A full bag loses it.
func (g *Game) collect(events []core.Event) []core.Event {
	if g.pending == nil {
		g.mode = ModeField
		return events
	}
	item := *g.pending
	g.pending = nil
	g.pendingUp = false
	g.mode = ModeField

	if err := g.ledger.Collect(item); err != nil {
		g.notify(describe(err), true)
		return append(events, core.Event{Kind: core.EventError, Text: describe(err)})
	}

	g.dirty = true
	text := fmt.Sprintf("%s collected!", item.Label())
	g.notify(text, false)
	events = append(events, core.Event{Kind: core.EventCoin, Text: text})

	if g.rng.Float64() < g.cfg.Economy.RespawnChance {
		g.spawnOne()
	}
	return events
}

// discard drops the pending item back into the dirt.
func (g *Game) discard() {
	if g.pending != nil {
		g.notify(fmt.Sprintf("Left %s behind", g.pending.Label()), false)
	}
	g.pending = nil
	g.pendingUp = false
	g.mode = ModeField
}

// sellAll sells the whole bag.
func (g *Game) sellAll(events []core.Event) []core.Event {
	sale, err := g.ledger.SellAll()
	if err != nil {
		g.notify(describe(err), true)
		return append(events, core.Event{Kind: core.EventError, Text: describe(err)})
	}

	g.dirty = true
	text := fmt.Sprintf("Sold %d items for %s coins!", sale.Count, catalog.FormatNumber(sale.Total))
	if sale.Bulk {
		text += fmt.Sprintf(" (+%d%% bulk bonus!)", g.cfg.Economy.BulkBonusPercent)
	}
	g.notify(text, false)
	return append(events, core.Event{Kind: core.EventCoin, Text: text})
}

// describe turns an economy outcome into a short player-facing message.
func describe(err error) string {
	switch {
	case errors.Is(err, economy.ErrBagFull):
		return "Bag is full!"
	case errors.Is(err, economy.ErrInsufficientCoins):
		return "Not enough coins!"
	case errors.Is(err, economy.ErrAlreadyOwned):
		return "Already owned"
	case errors.Is(err, economy.ErrAreaLocked):
		return "Area is locked"
	case errors.Is(err, economy.ErrNothingToSell):
		return "Nothing to sell"
	case errors.Is(err, economy.ErrUnknownArea), errors.Is(err, economy.ErrUnknownOffer):
		return "Not available"
	default:
		return err.Error()
	}
}
