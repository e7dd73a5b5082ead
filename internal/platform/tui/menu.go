package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/patterns"
)

// MenuItemKind says what a menu entry starts.
type MenuItemKind int

const (
	MenuEmptyBoard MenuItemKind = iota
	MenuRandomBoard
	MenuPattern
	MenuRuns
)

// MenuItem represents a selectable entry in the start menu.
type MenuItem struct {
	Kind    MenuItemKind
	Title   string
	Pattern string // Pattern ID for MenuPattern
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	offset   int // First visible item when the list is taller than the screen
	width    int
	height   int
	config   core.RuntimeConfig
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a start menu listing the patterns in lib.
// lib may be nil.
func NewMenuModel(lib *patterns.Library, withRuns bool, cfg core.RuntimeConfig) MenuModel {
	items := []MenuItem{
		{Kind: MenuEmptyBoard, Title: "Empty board"},
		{Kind: MenuRandomBoard, Title: "Random soup"},
	}
	if lib != nil {
		for _, p := range lib.All() {
			title := p.Name
			if p.Kind != "" {
				title = fmt.Sprintf("%s (%s)", p.Name, p.Kind)
			}
			items = append(items, MenuItem{Kind: MenuPattern, Title: title, Pattern: p.ID})
		}
	}
	if withRuns {
		items = append(items, MenuItem{Kind: MenuRuns, Title: "Run history"})
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.scrollToCursor()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}
	}

	m.scrollToCursor()
	return m, nil
}

// visibleRows is the number of list rows that fit under the title and
// above the footer.
func (m MenuModel) visibleRows() int {
	return max(m.height-7, 1)
}

func (m *MenuModel) scrollToCursor() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  G A M E   O F   L I F E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a starting board", m.width))
	b.WriteString("\n\n")

	end := min(m.offset+m.visibleRows(), len(m.items))
	for i := m.offset; i < end; i++ {
		line := "  " + m.items[i].Title
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + m.items[i].Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("↑/↓: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
