package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// ErrNoTerminal is returned when the terminal reports an unusable size.
var ErrNoTerminal = errors.New("terminal size unavailable")

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures the game host.
type Options struct {
	Logger        *log.Logger   // nil discards logs
	HoldWindow    time.Duration // key hold window, 0 for DefaultHoldWindow
	ScreenshotDir string        // empty for ~/.platformer/screenshots
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	input     *InputTracker
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	shotDir   string
	termH     int // terminal rows, game plus footer
	lastTick  time.Time
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg holds the full terminal size; the help footer takes rows from the
// bottom of it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(nil)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:    game,
		config:  cfg,
		input:   NewInputTracker(opts.HoldWindow),
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
		shotDir: opts.ScreenshotDir,
		termH:   cfg.ScreenH,
	}
	m.config.ScreenH = m.gameRows()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	m.input.SetSize(m.config.ScreenW, m.config.ScreenH)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.resetGame()
	m.logger.Info("game started",
		"game", m.game.ID(),
		"cols", m.config.ScreenW,
		"rows", m.config.ScreenH,
		"tick_rate", m.config.TickRate,
	)

	// Start the tick loop
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.input.HandleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.Action(msg) == core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.refit()
		return m, nil
	}

	m.input.Press(m.keys.Action(msg), time.Now())
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.termH = msg.Height
	m.help.Width = msg.Width
	m.refit()
	return m, nil
}

// refit sizes the game screen to the terminal minus the footer. Games that
// cannot resize in place are reset.
func (m *Model) refit() {
	m.config.ScreenH = m.gameRows()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.input.SetSize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else {
		m.resetGame()
	}

	m.logger.Debug("resized", "cols", m.config.ScreenW, "rows", m.config.ScreenH)
}

// resetGame resets the game and warns when it fell back to a built-in config.
func (m *Model) resetGame() {
	m.game.Reset(m.config)
	if r, ok := m.game.(registry.ConfigReporter); ok {
		if err := r.ConfigError(); err != nil {
			m.logger.Warn("config not loaded, using defaults", "game", m.game.ID(), "error", err)
		}
	}
}

// handleTick runs one simulation step. The first tick has zero elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	in := m.input.Snapshot(now)
	result := m.game.Step(dt, in)

	if result.State.Paused != m.gameState.Paused {
		m.logger.Debug("pause toggled", "paused", result.State.Paused)
	}
	m.gameState = result.State

	// Continue ticking
	return m, tickCmd(m.config)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".platformer", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// gameRows is the number of terminal rows left for the game above the footer.
func (m Model) gameRows() int {
	footer := lipgloss.Height(m.help.View(m.keys))
	return core.Max(m.termH-footer, 1)
}

// Run starts the Bubble Tea program for the game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 1 {
		return fmt.Errorf("%w: %dx%d", ErrNoTerminal, cfg.ScreenW, cfg.ScreenH)
	}
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses and drags act as touch controls
	)

	_, err := p.Run()
	return err
}
