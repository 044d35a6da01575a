package detector

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Mode           string
	Coins          int64
	DetX           float64
	DetZ           float64
	Signal         float64
	DigProgress    float64
	Buried         int
	BuriedIDs      []string
	Pending        string // id of the item waiting on the reveal screen
	InventoryCount int
	Area           string
	Paused         bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	ids := make([]string, len(g.buried))
	for i, it := range g.buried {
		ids[i] = it.Metal.ID
	}
	pending := ""
	if g.pending != nil {
		pending = g.pending.ID
	}
	return Snapshot{
		Tick:           g.tick,
		Mode:           g.mode.String(),
		Coins:          g.ledger.Coins(),
		DetX:           g.det.X,
		DetZ:           g.det.Z,
		Signal:         g.signal,
		DigProgress:    g.digProgress,
		Buried:         len(g.buried),
		BuriedIDs:      ids,
		Pending:        pending,
		InventoryCount: len(g.ledger.Inventory()),
		Area:           g.ledger.CurrentArea().ID,
		Paused:         g.paused,
	}
}
