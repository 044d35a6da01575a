package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is what the platform needs to know about the game after a tick.
type GameState struct {
	Coins       int64   // Current coin balance
	Signal      float64 // Detector signal strength, 0..1
	DigProgress float64 // Dig progress, 0..100
	Paused      bool
	Quit        bool // Player asked to leave
	Dirty       bool // State changed in a way worth persisting right away
}

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventNotice      EventKind = iota // Plain notification text
	EventDigTick                      // A shovel stroke
	EventDigComplete                  // Item dug up at Pos; Color is the metal color
	EventReveal                       // Item revealed; Tier drives the fanfare
	EventCoin                         // Coins moved (collect, sale, purchase)
	EventError                        // Rejected action (bag full, too poor)
)

// Event is emitted by the game for audio, effects and notifications.
type Event struct {
	Kind  EventKind
	Text  string
	Tier  int
	Pos   Vec2
	Color string
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
