package detector

import (
	"fmt"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
	"github.com/vovakirdan/metal-tycoon/internal/core"
)

// Shop tabs, in catalog.OfferKinds order.
const (
	shopTabDetectors = iota
	shopTabBags
	shopTabAreas
)

// helpPages is the number of encyclopedia pages: metals, variants.
const helpPages = 2

func (g *Game) openShop(tab int) {
	g.mode = ModeShop
	g.shopTab = tab
}

// ShopOffers returns the listing of the active shop tab.
func (g *Game) ShopOffers() []catalog.Offer {
	return g.cat.Offers(catalog.OfferKinds()[g.shopTab])
}

func (g *Game) stepShop(in core.InputFrame, events []core.Event) []core.Event {
	tabs := len(catalog.OfferKinds())
	offers := g.ShopOffers()
	sel := &g.shopSel[g.shopTab]

	switch {
	case in.Has(core.ActionBack), in.Has(core.ActionShop):
		g.mode = ModeField
	case in.Has(core.ActionLeft):
		g.shopTab = (g.shopTab + tabs - 1) % tabs
	case in.Has(core.ActionRight):
		g.shopTab = (g.shopTab + 1) % tabs
	case in.Has(core.ActionUp):
		*sel = core.Clamp(*sel-1, 0, len(offers)-1)
	case in.Has(core.ActionDown):
		*sel = core.Clamp(*sel+1, 0, len(offers)-1)
	case in.Has(core.ActionSell):
		events = g.sellAll(events)
	case in.Has(core.ActionConfirm):
		if *sel < len(offers) {
			events = g.buy(offers[*sel], events)
		}
	}
	return events
}

// buy purchases an offer. Areas already unlocked are traveled to instead.
func (g *Game) buy(o catalog.Offer, events []core.Event) []core.Event {
	prevArea := g.ledger.State().CurrentArea
	owned := g.ledger.Owns(o)

	if err := g.ledger.Buy(o); err != nil {
		g.notify(describe(err), true)
		return append(events, core.Event{Kind: core.EventError, Text: describe(err)})
	}
	g.dirty = true

	if g.ledger.State().CurrentArea != prevArea {
		g.spawnField()
		g.det = core.Vec2{}
		g.mode = ModeField
	}

	if owned {
		text := fmt.Sprintf("Traveled to %s", o.Title())
		g.notify(text, false)
		return append(events, core.Event{Kind: core.EventNotice, Text: text})
	}

	text := fmt.Sprintf("Purchased %s!", o.Title())
	g.notify(text, false)
	return append(events, core.Event{Kind: core.EventCoin, Text: text})
}

func (g *Game) stepInventory(in core.InputFrame, events []core.Event) []core.Event {
	n := len(g.ledger.Inventory())
	switch {
	case in.Has(core.ActionBack), in.Has(core.ActionInventory):
		g.mode = ModeField
	case in.Has(core.ActionUp):
		g.invScroll = core.Clamp(g.invScroll-1, 0, core.Max(n-1, 0))
	case in.Has(core.ActionDown):
		g.invScroll = core.Clamp(g.invScroll+1, 0, core.Max(n-1, 0))
	case in.Has(core.ActionSell):
		events = g.sellAll(events)
		g.invScroll = 0
	}
	return events
}

func (g *Game) stepHelp(in core.InputFrame) {
	switch {
	case in.Has(core.ActionBack), in.Has(core.ActionHelp):
		g.mode = ModeField
	case in.Has(core.ActionLeft), in.Has(core.ActionUp):
		g.helpPage = (g.helpPage + helpPages - 1) % helpPages
	case in.Has(core.ActionRight), in.Has(core.ActionDown):
		g.helpPage = (g.helpPage + 1) % helpPages
	}
}
