package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
	"github.com/vovakirdan/metal-tycoon/internal/economy"
)

// MenuChoice is what the player picked on the title screen.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceFinds
	ChoiceQuit
)

// MenuItem is one selectable line of the title menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

// MenuModel is the title screen: a summary of the save slot and a short
// list of actions.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	slot      string
	summary   []string
	keyMapper *KeyMapper
	chosen    MenuChoice
}

// NewMenuModel creates the title menu for a session.
func NewMenuModel(s Session) MenuModel {
	state, found, err := LoadState(s.Store, s.Catalog, s.slot())

	play := "New game"
	var summary []string
	switch {
	case err != nil:
		summary = []string{"Save could not be read: " + err.Error()}
	case found:
		play = "Continue"
		summary = slotSummary(s.Catalog, state)
	default:
		summary = []string{"No save yet. The beach is waiting."}
	}

	return MenuModel{
		items: []MenuItem{
			{ChoicePlay, play},
			{ChoiceFinds, "Finds ledger"},
			{ChoiceQuit, "Quit"},
		},
		width:     s.Runtime.ScreenW,
		height:    s.Runtime.ScreenH,
		slot:      s.slot(),
		summary:   summary,
		keyMapper: NewKeyMapper(0),
	}
}

func slotSummary(cat *catalog.Catalog, s economy.State) []string {
	lines := []string{
		fmt.Sprintf("%s coins  |  %s items in the bag", humanize.Comma(s.Coins), humanize.Comma(int64(len(s.Inventory)))),
		fmt.Sprintf("%s detector  |  %s", cat.DetectorOrStarter(s.DetectorLevel).Name, areaName(cat, s.CurrentArea)),
	}
	if s.LastPlayed > 0 {
		lines = append(lines, "Last played "+humanize.Time(time.UnixMilli(s.LastPlayed)))
	}
	return lines
}

func areaName(cat *catalog.Catalog, id string) string {
	if a, ok := cat.Area(id); ok {
		return a.Name
	}
	return cat.StarterArea().Name
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.chosen = ChoiceQuit
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionFinds:
		m.chosen = ChoiceFinds
		return m, tea.Quit
	case MenuActionSelect:
		m.chosen = m.items[m.cursor].Choice
		return m, tea.Quit
	}
	return m, nil
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.chosen != ChoiceNone {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("M E T A L   D E T E C T O R   T Y C O O N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("slot "+m.slot), m.width))
	b.WriteString("\n")
	for _, line := range m.summary {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCurStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Finds  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Chosen returns the selection, or ChoiceNone while the menu is open.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu shows the title menu and returns the choice.
func RunMenu(s Session) (MenuChoice, error) {
	p := tea.NewProgram(NewMenuModel(s), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return ChoiceQuit, err
	}
	m, ok := final.(MenuModel)
	if !ok || m.Chosen() == ChoiceNone {
		return ChoiceQuit, nil
	}
	return m.Chosen(), nil
}
