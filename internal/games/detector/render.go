package detector

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
	"github.com/vovakirdan/metal-tycoon/internal/core"
)

// Minimum playable screen.
const (
	minScreenW = 44
	minScreenH = 16
)

// hudRows above and below the field.
const (
	hudTop    = 2
	hudBottom = 2
)

type groundStyle struct {
	texture rune
	color   core.Color
}

var groundStyles = map[string]groundStyle{
	"beach":    {'.', core.ColorSand},
	"park":     {'"', core.ColorGrass},
	"farm":     {'~', core.ColorSoil},
	"ruins":    {'#', core.ColorGray},
	"cemetery": {'+', core.ColorBlue},
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	g.renderHUD(dst)
	g.renderField(dst)
	g.renderFooter(dst)

	switch g.mode {
	case ModeReveal:
		g.renderReveal(dst)
	case ModeShop:
		g.renderShop(dst)
	case ModeInventory:
		g.renderInventory(dst)
	case ModeHelp:
		g.renderHelp(dst)
	}

	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	l := g.ledger
	bag := l.CurrentBag()
	line := fmt.Sprintf(" $%s  Bag %d/%s  %s  @ %s",
		catalog.FormatNumber(l.Coins()),
		len(l.Inventory()), catalog.FormatNumber(int64(bag.Capacity)),
		l.CurrentDetector().Name,
		l.CurrentArea().Name,
	)
	dst.DrawTextColor(0, 0, line, core.ColorBrightYellow)

	r := g.Scanner()
	barW := 16
	filled := int(math.Round(g.signal * float64(barW)))
	bar := "[" + strings.Repeat("|", filled) + strings.Repeat(" ", barW-filled) + "]"
	dst.DrawTextColor(1, 1, bar, signalColor(g.signal))
	x := 2 + len(bar)
	text := fmt.Sprintf("%3d%% %s", int(g.signal*100), r.Label)
	dst.DrawTextColor(x, 1, text, signalColor(g.signal))
	x += len(text) + 2

	var extra []string
	if r.Hint != "" {
		extra = append(extra, r.Hint)
	}
	if r.Distance != "" {
		extra = append(extra, r.Distance)
	}
	if r.Depth != "" {
		extra = append(extra, "depth "+r.Depth)
	}
	if r.Variant {
		extra = append(extra, "VARIANT!")
	}
	if len(extra) > 0 {
		dst.DrawTextColor(x, 1, strings.Join(extra, " | "), core.ColorCyan)
	}
}

// fieldRect is the screen area showing the dig site.
func (g *Game) fieldRect(dst *core.Screen) core.Rect {
	return core.NewRect(0, hudTop, dst.Width(), dst.Height()-hudTop-hudBottom)
}

// toScreen maps world coordinates into the field rectangle.
func (g *Game) toScreen(r core.Rect, p core.Vec2) (int, int) {
	fx := (p.X/g.cfg.Field.Width + 0.5) * float64(r.W-1)
	fz := (p.Z/g.cfg.Field.Depth + 0.5) * float64(r.H-1)
	return r.X + int(math.Round(fx)), r.Y + int(math.Round(fz))
}

func (g *Game) renderField(dst *core.Screen) {
	r := g.fieldRect(dst)
	style, ok := groundStyles[g.ledger.CurrentArea().Theme]
	if !ok {
		style = groundStyles["beach"]
	}

	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if (x*7+y*13)%5 == 0 {
				dst.SetColor(x, y, style.texture, style.color)
			}
		}
	}

	// Detection ring
	const steps = 48
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		p := core.Vec2{
			X: g.det.X + g.cfg.Detection.Radius*math.Cos(a),
			Z: g.det.Z + g.cfg.Detection.Radius*math.Sin(a),
		}
		x, y := g.toScreen(r, p)
		if r.Contains(x, y) {
			dst.SetColor(x, y, '·', core.ColorGray)
		}
	}

	x, y := g.toScreen(r, g.det)
	dst.SetColor(x, y, '@', signalColor(g.signal))
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - hudBottom
	switch {
	case g.digProgress > 0:
		w := 30
		filled := core.Clamp(int(g.digProgress/g.cfg.Dig.Complete*float64(w)), 0, w)
		bar := "DIG [" + strings.Repeat("=", filled) + strings.Repeat(" ", w-filled) + "]"
		dst.DrawTextColor(1, y, fmt.Sprintf("%s %3d%%", bar, int(g.digProgress)), core.ColorOrange)
	case g.mode == ModeField && g.target >= 0 && g.signal > g.cfg.Dig.MinSignal:
		dst.DrawTextColor(1, y, "Hold SPACE to dig!", core.ColorBrightGreen)
	}

	if g.notice != "" {
		c := core.ColorBrightGreen
		if g.noticeError {
			c = core.ColorBrightRed
		}
		dst.DrawTextColor(1, y+1, g.notice, c)
		return
	}
	dst.DrawTextColor(1, y+1, "arrows move  space dig  tab shop  i bag  t travel  h help  m mute  q quit", core.ColorGray)
}

// overlayRect returns a centered box inside the field.
func (g *Game) overlayRect(dst *core.Screen, w, h int) core.Rect {
	field := g.fieldRect(dst)
	w = core.Min(w, dst.Width()-2)
	h = core.Min(h, field.H)
	return core.NewRect((dst.Width()-w)/2, field.Y+(field.H-h)/2, w, h)
}

func (g *Game) drawPanel(dst *core.Screen, r core.Rect, title string) {
	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorBrightWhite)
	if title != "" {
		t := " " + title + " "
		dst.DrawTextColor(r.X+(r.W-len(t))/2, r.Y, t, core.ColorBrightYellow)
	}
}

func (g *Game) renderReveal(dst *core.Screen) {
	if g.pending == nil {
		return
	}
	it := g.pending
	rarity := catalog.RarityOf(it.Metal.Tier)
	r := g.overlayRect(dst, 44, 10)
	g.drawPanel(dst, r, "YOU FOUND")

	y := r.Y + 2
	dst.DrawTextColor(r.X+2, y, it.Label(), rarity.Color())
	y++
	dst.DrawTextColor(r.X+2, y, fmt.Sprintf("%s  tier %d  worth %s", rarity, it.Metal.Tier, catalog.FormatNumber(it.Value)), core.ColorWhite)
	y++
	if it.HasVariants() {
		parts := make([]string, len(it.Variants))
		for i, v := range it.Variants {
			parts[i] = fmt.Sprintf("%s x%d", v.Name, v.Multiplier)
		}
		dst.DrawTextColor(r.X+2, y, strings.Join(parts, ", "), core.ColorBrightMagenta)
		y++
	}
	if g.pendingUp {
		dst.DrawTextColor(r.X+2, y, "Precision bonus: metal upgraded!", core.ColorBrightCyan)
	}
	dst.DrawTextColor(r.X+2, r.Bottom()-2, "[Enter] collect   [Esc] leave it", core.ColorGray)
}

func (g *Game) renderShop(dst *core.Screen) {
	offers := g.ShopOffers()
	r := g.overlayRect(dst, 64, len(offers)+8)
	g.drawPanel(dst, r, "SHOP")

	x := r.X + 2
	for i, kind := range catalog.OfferKinds() {
		label := " " + strings.ToUpper(string(kind)) + " "
		c := core.ColorGray
		if i == g.shopTab {
			label = "[" + strings.ToUpper(string(kind)) + "]"
			c = core.ColorBrightWhite
		}
		dst.DrawTextColor(x, r.Y+1, label, c)
		x += len(label) + 2
	}

	sel := g.shopSel[g.shopTab]
	y := r.Y + 3
	for i, o := range offers {
		if y >= r.Bottom()-3 {
			break
		}
		cursor := "  "
		if i == sel {
			cursor = "> "
		}
		status, c := g.offerStatus(o)
		line := fmt.Sprintf("%s%-18s %10s  %s", cursor, o.Title(), status, offerDetail(o))
		dst.DrawTextColor(r.X+2, y, truncate(line, r.W-4), c)
		y++
	}

	l := g.ledger
	dst.DrawTextColor(r.X+2, r.Bottom()-3,
		fmt.Sprintf("Bag: %d items worth %s", len(l.Inventory()), catalog.FormatNumber(l.InventoryValue())),
		core.ColorYellow)
	dst.DrawTextColor(r.X+2, r.Bottom()-2, "[Enter] buy  [X] sell all  [<>] tab  [Esc] close", core.ColorGray)
}

func (g *Game) offerStatus(o catalog.Offer) (string, core.Color) {
	l := g.ledger
	switch o := o.(type) {
	case catalog.Detector:
		if o.Level == l.CurrentDetector().Level {
			return "EQUIPPED", core.ColorBrightGreen
		}
	case catalog.Bag:
		if o.Level == l.CurrentBag().Level {
			return "EQUIPPED", core.ColorBrightGreen
		}
	case catalog.Area:
		if o.ID == l.CurrentArea().ID {
			return "HERE", core.ColorBrightGreen
		}
		if l.Owns(o) {
			return "TRAVEL", core.ColorCyan
		}
	}
	if l.Owns(o) {
		return "OWNED", core.ColorGray
	}
	if !l.CanAfford(o) {
		return catalog.FormatNumber(o.Price()), core.ColorRed
	}
	return catalog.FormatNumber(o.Price()), core.ColorWhite
}

func offerDetail(o catalog.Offer) string {
	switch o := o.(type) {
	case catalog.Detector:
		return o.Description
	case catalog.Bag:
		return fmt.Sprintf("holds %s", catalog.FormatNumber(int64(o.Capacity)))
	case catalog.Area:
		return strings.Join(o.Metals, ", ")
	default:
		return ""
	}
}

func (g *Game) renderInventory(dst *core.Screen) {
	inv := g.ledger.Inventory()
	r := g.overlayRect(dst, 50, 20)
	g.drawPanel(dst, r, fmt.Sprintf("BAG %d/%d", len(inv), g.ledger.CurrentBag().Capacity))

	rows := r.H - 5
	if len(inv) == 0 {
		dst.DrawTextColor(r.X+2, r.Y+2, "Empty. Go dig something up!", core.ColorGray)
	}
	for i := 0; i < rows && g.invScroll+i < len(inv); i++ {
		it := inv[g.invScroll+i]
		line := fmt.Sprintf("%-32s %10s", truncate(it.Label(), 32), catalog.FormatNumber(it.Value))
		dst.DrawTextColor(r.X+2, r.Y+2+i, line, catalog.RarityOf(it.Metal.Tier).Color())
	}

	dst.DrawTextColor(r.X+2, r.Bottom()-3, "Total: "+catalog.FormatNumber(g.ledger.InventoryValue()), core.ColorYellow)
	dst.DrawTextColor(r.X+2, r.Bottom()-2, "[X] sell all  [Esc] close", core.ColorGray)
}

func (g *Game) renderHelp(dst *core.Screen) {
	r := g.overlayRect(dst, 60, 16)
	g.drawPanel(dst, r, "ENCYCLOPEDIA")
	found := g.ledger.State().Stats.RareFinds

	y := r.Y + 2
	if g.helpPage == 0 {
		for _, m := range g.cat.Metals {
			if y >= r.Bottom()-2 {
				break
			}
			name := "???"
			if found[m.ID] > 0 {
				name = m.Name
			}
			rarity := catalog.RarityOf(m.Tier)
			line := fmt.Sprintf("T%-2d %-12s %-10s %8s  found %d", m.Tier, name, rarity, catalog.FormatNumber(m.BaseValue), found[m.ID])
			dst.DrawTextColor(r.X+2, y, line, rarity.Color())
			y++
		}
	} else {
		for _, v := range g.cat.RollableVariants() {
			if y >= r.Bottom()-2 {
				break
			}
			line := fmt.Sprintf("%-10s x%-4d %8.3f%%", v.Name, v.Multiplier, v.Chance*100)
			dst.DrawTextColor(r.X+2, y, line, core.ColorBrightMagenta)
			y++
		}
	}
	dst.DrawTextColor(r.X+2, r.Bottom()-2, fmt.Sprintf("page %d/%d  [<>] page  [Esc] close", g.helpPage+1, helpPages), core.ColorGray)
}

func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := core.Max(len(title), len(subtitle)) + 6
	r := g.overlayRect(dst, w, 5)
	g.drawPanel(dst, r, "")
	dst.DrawTextCentered(r.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(r.Y+3, subtitle, core.ColorGray)
}

// signalColor goes green, yellow, red as the detector closes in.
func signalColor(signal float64) core.Color {
	switch {
	case signal > 0.7:
		return core.ColorBrightRed
	case signal > 0.4:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightGreen
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
