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
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	shotDir    string
	quitting   bool
}

// NewModel creates a model and starts a fresh game.
// A zero seed is replaced with a time-based one.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		shotDir:    screenshotDir(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.screenHeight())

	game.Reset(cfg)
	m.gameState = game.State()
	return m
}

func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".blocks", "screenshots")
}

// footerHeight is the number of lines the help view takes.
func (m Model) footerHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

func (m Model) screenHeight() int {
	return max(m.config.ScreenH-m.footerHeight(), 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.screenHeight())
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit",
			"score", m.gameState.Score,
			"level", m.gameState.Level+1,
			"lines", m.gameState.Lines)
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize only resizes the screen buffer; the board has a fixed size
// so the game in progress is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.screenHeight())
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logStep(prev, result)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// logStep records state transitions between two ticks.
func (m Model) logStep(prev core.GameState, res core.StepResult) {
	cur := res.State

	if prev.GameOver && !cur.GameOver {
		m.logger.Info("restart")
		return
	}
	if res.Cleared > 0 {
		m.logger.Debug("rows cleared", "rows", res.Cleared, "score", cur.Score)
	}
	if cur.Level != prev.Level {
		m.logger.Info("level up", "level", cur.Level+1)
	}
	switch {
	case cur.Paused && !prev.Paused:
		m.logger.Info("paused")
	case !cur.Paused && prev.Paused:
		m.logger.Info("resumed")
	}
	if cur.GameOver && !prev.GameOver {
		m.logger.Info("game over",
			"score", cur.Score,
			"level", cur.Level+1,
			"lines", cur.Lines)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run plays game in the alternate screen until the player quits.
// Every log line of the session carries a fresh session id.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("session", uuid.NewString(), "game", game.ID())

	model := NewModel(game, cfg, logger)
	logger.Info("session started",
		"seed", model.config.Seed,
		"tick_rate", model.config.TickRate,
		"screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run %s: %w", game.ID(), err)
	}
	return nil
}
