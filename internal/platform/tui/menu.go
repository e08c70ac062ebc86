package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sandbox/internal/game"
	"github.com/vovakirdan/tui-sandbox/internal/registry"
)

// MenuItem represents a selectable world preset in the menu.
type MenuItem struct {
	PresetID    string // empty selects the configured layers
	Title       string
	Description string
}

// MenuModel is the Bubble Tea model for the world preset picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	keys        KeyMap
	quitting    bool
	selected    *MenuItem // Set when user selects a preset
	openHistory bool      // True if user pressed Tab for history
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int) MenuModel {
	presets := registry.List()
	items := make([]MenuItem, 0, len(presets)+1)
	for _, p := range presets {
		items = append(items, MenuItem{
			PresetID:    p.ID,
			Title:       p.Title,
			Description: p.Description,
		})
	}
	items = append(items, MenuItem{
		Title:       "Custom",
		Description: "Layers from the configuration file",
	})

	return MenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultKeyMap(),
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
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

	case MenuActionHistory:
		m.openHistory = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  S A N D B O X  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a world", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-8s %s", cursor, item.Title, item.Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: History  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
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

// WantsHistory returns true if user requested the session history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// presetName returns the history name of an item.
func (i MenuItem) presetName() string {
	if i.PresetID == "" {
		return game.CustomPreset
	}
	return i.PresetID
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
