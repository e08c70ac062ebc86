package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sandbox/internal/game"
	"github.com/vovakirdan/tui-sandbox/internal/storage"
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Builder       game.Builder
	Store         *storage.Store
	Logger        *log.Logger
	Origin        string
	Seed          int64 // 0 = a fresh time-based seed per world
	Width         int
	Height        int
	ScreenshotDir string
	NoScreenshots bool
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewHistory
)

// SessionModel manages the full sandbox flow: menu -> world -> menu, with
// the session history one key away from the menu. It is the top-level
// model of the menu command and of SSH sessions.
type SessionModel struct {
	opts     SessionOptions
	logger   *log.Logger
	view     sessionView
	menu     MenuModel
	history  HistoryModel
	game     Model
	lastErr  string
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		opts:   opts,
		logger: logger,
		menu:   NewMenuModel(opts.Width, opts.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsHistory():
		m.history = NewHistoryModel(m.opts.Store, m.opts.Width, m.opts.Height)
		m.menu = NewMenuModel(m.opts.Width, m.opts.Height)
		m.view = viewHistory
		return m, m.history.Init()

	case m.menu.Selected() != nil:
		return m.startGame(*m.menu.Selected())
	}

	return m, cmd
}

// startGame builds the selected world and switches to it.
func (m SessionModel) startGame(item MenuItem) (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.opts.Width, m.opts.Height)

	seed := m.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := m.opts.Builder.Build(item.PresetID, seed)
	if err != nil {
		m.logger.Error("could not start world", "preset", item.presetName(), "error", err)
		m.lastErr = err.Error()
		return m, nil
	}
	m.logger.Info("world started", "preset", item.presetName(), "seed", seed)

	m.lastErr = ""
	m.game = NewModel(g, ModelOptions{
		Store:         m.opts.Store,
		Logger:        m.logger,
		Origin:        m.opts.Origin,
		Width:         m.opts.Width,
		Height:        m.opts.Height,
		AllowBack:     true,
		ScreenshotDir: m.opts.ScreenshotDir,
		NoScreenshots: m.opts.NoScreenshots,
	})
	m.view = viewGame
	return m, m.game.Init()
}

// updateGame handles updates when a world is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		s := m.game.Game().State()
		m.logger.Info("world ended", "preset", m.game.Game().Preset(), "ticks", s.Tick, "deaths", s.Deaths)
		m.view = viewMenu
		return m, nil
	}

	return m, cmd
}

// updateHistory handles updates when the history is shown.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = historyModel
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.IsGoingBack() {
		m.view = viewMenu
		return m, nil
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewHistory:
		return m.history.View()
	}

	v := m.menu.View()
	if m.lastErr != "" {
		v += "\n" + centerText("Error: "+m.lastErr, m.opts.Width) + "\n"
	}
	return v
}

// RunSession starts the Bubble Tea program for the interactive menu.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
