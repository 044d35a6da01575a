package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/metal-tycoon/internal/audio"
	"github.com/vovakirdan/metal-tycoon/internal/core"
	"github.com/vovakirdan/metal-tycoon/internal/games/detector"
)

// maxFrameGap caps the audio clock after a stall so beeps don't pile up.
const maxFrameGap = 250 * time.Millisecond

// Model is the Bubble Tea model for one play session.
type Model struct {
	game    *detector.Game
	session Session
	log     *log.Logger

	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	limiter    *core.FrameLimiter
	audio      *audio.Engine
	gameState  core.GameState

	autosave time.Duration
	lastTick time.Time
	lastSave time.Time
	saveErr  error

	quitting bool
}

// NewModel creates a model for the session's game.
func NewModel(game *detector.Game, s Session) Model {
	cfg := s.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 30
	}

	var sink audio.Sink = audio.Discard{}
	if s.Bell != nil {
		sink = audio.NewBellSink(s.Bell)
	}

	return Model{
		game:       game,
		session:    s,
		log:        s.logger(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       NewKeyMapper(s.Game.Dig.HoldWindow()),
		inputFrame: core.NewInputFrame(),
		limiter:    core.NewFrameLimiter(cfg.TickRate),
		audio:      audio.NewEngine(sink),
		autosave:   s.Game.Session.AutosaveInterval(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.log.Info("session started", "slot", m.session.slot(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "m":
		muted := m.audio.ToggleMute()
		m.log.Debug("audio toggled", "muted", muted)
		return m, nil
	}

	// Quit goes through the game so the final state is saved on the next tick.
	m.keys.Press(msg, time.Now(), &m.inputFrame)
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	// Stray ticks from a second chain are dropped and the chain ends here.
	if !m.limiter.Ready(now) {
		return m, nil
	}

	if m.game.Mode() == detector.ModeField && !m.gameState.Paused {
		m.keys.Held(now, &m.inputFrame)
	} else {
		m.keys.ReleaseAll()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.playEvents(result.Events)
	dt := m.limiter.Interval()
	if !m.lastTick.IsZero() {
		dt = min(now.Sub(m.lastTick), maxFrameGap)
	}
	m.lastTick = now
	m.audio.SetIntensity(m.gameState.Signal)
	m.audio.Update(dt)

	switch {
	case m.gameState.Quit:
		m.save(now)
		m.audio.Stop()
		m.quitting = true
		m.log.Info("session ended", "slot", m.session.slot(), "coins", m.gameState.Coins)
		return m, tea.Quit
	case m.gameState.Dirty:
		m.save(now)
	case m.autosave > 0 && now.Sub(m.lastSave) >= m.autosave:
		m.save(now)
	}

	return m, tickCmd(m.config.TickRate)
}

// playEvents turns game events into audio cues.
func (m *Model) playEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventDigTick:
			m.audio.Trigger(audio.CueDig)
		case core.EventReveal:
			m.audio.Trigger(audio.CueReveal(e.Tier))
			m.log.Debug("reveal", "text", e.Text, "tier", e.Tier)
		case core.EventCoin:
			m.audio.Trigger(audio.CueCoin)
		case core.EventError:
			m.audio.Trigger(audio.CueError)
			m.log.Debug("rejected", "reason", e.Text)
		}
	}
}

// save persists the ledger. Failures are logged and retried on the next
// autosave.
func (m *Model) save(now time.Time) {
	m.lastSave = now
	if m.session.Store == nil {
		return
	}
	err := SaveState(m.session.Store, m.session.slot(), m.game.Ledger().Snapshot())
	if err != nil && m.saveErr == nil {
		m.log.Error("save failed", "slot", m.session.slot(), "error", err)
	}
	m.saveErr = err
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tycoon", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Done reports whether the game has ended and its state was saved.
func (m Model) Done() bool {
	return m.quitting
}

// SaveErr returns the last save failure, if any.
func (m Model) SaveErr() error {
	return m.saveErr
}

// Run plays the session in the local terminal until the player quits.
func Run(s Session) error {
	game, err := s.NewGame()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(game, s),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.SaveErr() != nil {
		return fmt.Errorf("last save failed: %w", m.SaveErr())
	}
	return nil
}
