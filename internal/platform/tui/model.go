package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/game"
	"github.com/vovakirdan/tui-sandbox/internal/storage"
)

// ModelOptions configures a game Model.
type ModelOptions struct {
	Store  *storage.Store // nil disables session history
	Logger *log.Logger    // nil discards output
	Origin string         // recorded with the session, "local" or "ssh"
	Width  int
	Height int

	// AllowBack lets esc/b end the session without quitting the program.
	// Used when the model is hosted by a SessionModel.
	AllowBack bool

	// ScreenshotDir defaults to ~/.sandbox/screenshots.
	ScreenshotDir string
	NoScreenshots bool
}

// Model is the Bubble Tea model for a running sandbox session.
//
// Every TickMsg is one loop iteration: the game decides through its own
// limiters whether to tick and whether to redraw. View returns the last
// drawn frame, so rendering between frames is free.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	loop     int64
	interval time.Duration
	frame    string
	opts     ModelOptions
	started  time.Time

	quitting   bool
	backToMenu bool
	saved      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, opts ModelOptions) Model {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := core.DefaultConfig()
		opts.Width, opts.Height = def.ScreenW, def.ScreenH
	}
	if opts.Origin == "" {
		opts.Origin = "local"
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	loop := g.Config().Loop
	m := Model{
		game:     g,
		store:    opts.Store,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    core.NewInputFrame(),
		loop:     loopIDs.Add(1),
		interval: loopInterval(game.TickInterval(loop.TickRate), game.FrameInterval(loop.MaxFPS)),
		opts:     opts,
		started:  time.Now(),
	}
	m.help.Width = opts.Width
	m.screen = core.NewScreen(opts.Width, m.screenHeight())
	m.redraw()
	return m
}

// Init starts the loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.loop, m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.opts.Width, m.screenHeight())
		m.redraw()
		return m, nil

	case m.opts.AllowBack && key.Matches(msg, m.keys.Back):
		m.saveSession()
		m.backToMenu = true
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps its size;
// only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Width = msg.Width
	m.opts.Height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.screenHeight())
	m.redraw()
	return m, nil
}

// handleTick runs one loop iteration at now.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	// Keys pressed since the last tick stay in the frame until a tick
	// consumes them.
	if res := m.game.Step(m.input, now); res.Ticked {
		m.input.Clear()
	}
	if m.game.ShouldRender(now) {
		m.redraw()
	}

	return m, tickCmd(m.loop, m.interval)
}

// screenHeight is the number of rows left for the game below the help bar.
func (m Model) screenHeight() int {
	return max(m.opts.Height-lipgloss.Height(m.help.View(m.keys)), 1)
}

func (m *Model) redraw() {
	m.game.Render(m.screen)
	m.frame = RenderScreen(m.screen)
}

// saveSession records the session in the history store once.
func (m *Model) saveSession() {
	if m.saved {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}

	s := m.game.State()
	w := m.game.World()
	_, err := m.store.SaveSession(storage.Session{
		Preset:   m.game.Preset(),
		Seed:     m.game.Seed(),
		Width:    w.Width(),
		Height:   w.Height(),
		Ticks:    s.Tick,
		Deaths:   s.Deaths,
		Duration: int(time.Since(m.started).Seconds()),
		Origin:   m.opts.Origin,
	})
	if err != nil {
		m.logger.Warn("could not save session", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() error {
	if m.opts.NoScreenshots {
		return nil
	}
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(home, ".sandbox", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	m.game.Render(m.screen)
	timestamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("%s_%d_%s.txt", m.game.Preset(), m.game.Seed(), timestamp)
	return os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the last drawn frame and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return m.frame + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the running game.
func (m Model) Game() *game.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single session.
func Run(g *game.Game, opts ModelOptions) error {
	p := tea.NewProgram(
		NewModel(g, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
