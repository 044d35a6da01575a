package detector

import (
	"github.com/vovakirdan/metal-tycoon/internal/core"
	"github.com/vovakirdan/metal-tycoon/internal/loot"
)

// spawnField replaces the buried items with a fresh set for the current area.
func (g *Game) spawnField() {
	g.buried = g.buried[:0]
	for i := 0; i < g.cfg.Field.BuriedCount; i++ {
		g.spawnOne()
	}
	g.target = -1
	g.digProgress = 0
}

// spawnOne buries one item at a uniform position in the field.
func (g *Game) spawnOne() {
	x := (g.rng.Float64() - 0.5) * g.cfg.Field.Width
	z := (g.rng.Float64() - 0.5) * g.cfg.Field.Depth
	depth := 1
	if g.cfg.Field.MaxDepth > 1 {
		depth += g.rng.Intn(g.cfg.Field.MaxDepth)
	}
	g.buried = append(g.buried, g.gen.GenerateBuriedItem(x, z, depth))
}

// move sweeps the detector and keeps it inside the field.
func (g *Game) move(in core.InputFrame) {
	speed := g.cfg.Detection.MoveSpeed
	if in.Has(core.ActionLeft) {
		g.det.X -= speed
	}
	if in.Has(core.ActionRight) {
		g.det.X += speed
	}
	if in.Has(core.ActionUp) {
		g.det.Z -= speed
	}
	if in.Has(core.ActionDown) {
		g.det.Z += speed
	}

	halfW, halfD := g.cfg.Field.Width/2, g.cfg.Field.Depth/2
	g.det.X = core.ClampF(g.det.X, -halfW, halfW)
	g.det.Z = core.ClampF(g.det.Z, -halfD, halfD)
}

// detect finds the closest item the detector can reach and sets the signal.
// Items buried deeper than the detector's depth are invisible to it.
func (g *Game) detect() {
	reach := g.ledger.CurrentDetector().Depth
	radius := g.cfg.Detection.Radius

	prev := g.target
	g.target = -1
	g.signal = 0
	g.distance = 0

	best := radius
	for i, it := range g.buried {
		if it.Found || it.Depth > reach {
			continue
		}
		d := g.det.Dist(core.Vec2{X: it.Position.X, Z: it.Position.Z})
		if d < best {
			best = d
			g.target = i
		}
	}

	if g.target < 0 {
		g.digProgress = 0
		return
	}
	g.distance = best
	g.signal = 1 - best/radius

	// Switching targets restarts the dig.
	if prev >= 0 && prev != g.target {
		g.digProgress = 0
	}
}

// targetItem returns the item in range, if any.
func (g *Game) targetItem() (loot.Item, bool) {
	if g.target < 0 || g.target >= len(g.buried) {
		return loot.Item{}, false
	}
	return g.buried[g.target], true
}

// takeTarget removes the targeted item from the field and returns it.
func (g *Game) takeTarget() loot.Item {
	it := g.buried[g.target]
	g.buried = append(g.buried[:g.target], g.buried[g.target+1:]...)
	g.target = -1
	return it
}

// SignalLabel describes a signal strength the way the HUD shows it.
func SignalLabel(signal float64, inRange bool) string {
	switch {
	case !inRange:
		return "Scanning..."
	case signal > 0.95:
		return "PERFECT!"
	case signal > 0.7:
		return "STRONG SIGNAL!"
	case signal > 0.4:
		return "Medium Signal"
	default:
		return "Weak Signal"
	}
}
