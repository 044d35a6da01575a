package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
	"github.com/vovakirdan/metal-tycoon/internal/storage"
)

// Finds board layout constants
const (
	minWidthForSidebar = 90 // Minimum width to show the stats sidebar
	sidebarWidth       = 24
	maxFinds           = 100
)

// FindsView selects the ledger ordering.
type FindsView int

const (
	FindsTop    FindsView = iota // most valuable first
	FindsRecent                  // newest first
)

func (v FindsView) String() string {
	if v == FindsRecent {
		return "Recent"
	}
	return "Most valuable"
}

// FindsKeyMap defines the key bindings for the finds board.
type FindsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k FindsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k FindsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Back, k.Quit},
	}
}

// DefaultFindsKeyMap returns default key bindings.
func DefaultFindsKeyMap() FindsKeyMap {
	return FindsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "top/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FindsModel shows a slot's ledger of notable finds.
type FindsModel struct {
	store       *storage.Store
	cat         *catalog.Catalog
	slot        string
	view        FindsView
	finds       []storage.FindEntry
	stats       *storage.FindStats
	err         error
	table       table.Model
	help        help.Model
	keys        FindsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewFindsModel creates the finds board for a session's slot.
func NewFindsModel(s Session) FindsModel {
	h := help.New()
	h.ShowAll = false

	m := FindsModel{
		store:       s.Store,
		cat:         s.Catalog,
		slot:        s.slot(),
		keys:        DefaultFindsKeyMap(),
		help:        h,
		width:       s.Runtime.ScreenW,
		height:      s.Runtime.ScreenH,
		showSidebar: s.Runtime.ScreenW >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *FindsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Find", Width: 26},
		{Title: "Value", Width: 12},
		{Title: "Area", Width: 14},
		{Title: "When", Width: 14},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if tableWidth < 76 {
		columns[3].Width = 0
		columns[1].Width = max(tableWidth-4-12-14-8, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load fetches the ledger for the active view.
func (m *FindsModel) load() {
	m.finds, m.stats, m.err = nil, nil, nil
	if m.store != nil {
		if m.view == FindsRecent {
			m.finds, m.err = m.store.AllFinds(m.slot)
			if len(m.finds) > maxFinds {
				m.finds = m.finds[:maxFinds]
			}
		} else {
			m.finds, m.err = m.store.TopFinds(m.slot, maxFinds)
		}
		if m.err == nil {
			m.stats, m.err = m.store.FindStats(m.slot)
		}
	}
	m.updateTableRows()
}

func (m *FindsModel) updateTableRows() {
	rows := make([]table.Row, len(m.finds))
	for i, f := range m.finds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			m.findName(f),
			humanize.Comma(f.Value),
			areaName(m.cat, f.Area),
			humanize.Time(f.FoundAt),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// findName renders "Shiny Giant Gold" from stored ids.
func (m *FindsModel) findName(f storage.FindEntry) string {
	parts := make([]string, 0, len(f.Variants)+1)
	for _, id := range f.Variants {
		if v, ok := m.cat.Variant(id); ok {
			parts = append(parts, v.Name)
		}
	}
	name := f.Metal
	if metal, ok := m.cat.Metal(f.Metal); ok {
		name = metal.Name
	}
	return strings.Join(append(parts, name), " ")
}

// Init initializes the finds board.
func (m FindsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the finds board.
func (m FindsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Switch):
			m.view = 1 - m.view
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	findsBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	findsTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	findsDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the finds board.
func (m FindsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := fmt.Sprintf("FINDS LEDGER - %s - %s", m.slot, m.view)
	b.WriteString(centerText(findsTitle.Render(title), m.width))
	b.WriteString("\n\n")

	content := findsBorder.Render(m.renderTableContent())
	if m.showSidebar {
		sidebar := findsBorder.Width(sidebarWidth).Render(m.renderStats())
		content = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", content)
	}
	b.WriteString(content)

	b.WriteString("\n")
	b.WriteString(findsDim.Render(m.help.View(m.keys)))
	return b.String()
}

func (m FindsModel) renderStats() string {
	if m.stats == nil || m.stats.Count == 0 {
		return "No finds yet"
	}
	lines := []string{
		"Finds: " + humanize.Comma(int64(m.stats.Count)),
		"Total: " + humanize.Comma(m.stats.TotalValue),
		"Best:  " + humanize.Comma(m.stats.BestValue),
		fmt.Sprintf("Top:   %s", catalog.RarityOf(m.stats.BestTier)),
		"Last:  " + humanize.Time(m.stats.LastFound),
	}
	return strings.Join(lines, "\n")
}

func (m FindsModel) renderTableContent() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	switch {
	case m.err != nil:
		return empty.Render("Could not read the ledger:\n" + m.err.Error())
	case len(m.finds) == 0:
		return empty.Render("No notable finds yet.\nGold, rarer metals and variants show up here.")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m FindsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m FindsModel) IsQuitting() bool {
	return m.quitting
}

// RunFinds shows the finds board. Returns true if the player wants the menu
// back, false if quitting.
func RunFinds(s Session) (goBack bool, err error) {
	p := tea.NewProgram(NewFindsModel(s), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(FindsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
