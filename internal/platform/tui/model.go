package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jayantbh/crash-course/internal/core"
	"github.com/jayantbh/crash-course/internal/games/crash"
	"github.com/jayantbh/crash-course/internal/storage"
)

// Game is what the model drives: one game instance per model.
type Game interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Resize(width, height int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Summary() crash.Summary
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	board      *ScoreboardModel // Shown over a finished game on request
	runSaved   bool             // Whether the run has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		player:     player,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Scores) && m.gameState.GameOver:
		if m.board != nil {
			m.board = nil
		} else {
			board := NewScoreboardModel(m.store, m.player, m.config.ScreenW, m.config.ScreenH)
			m.board = &board
		}
		return m, nil
	case m.board != nil && !key.Matches(msg, keys.Quit) && !key.Matches(msg, keys.Restart):
		board, cmd := m.board.Update(msg)
		b, ok := board.(ScoreboardModel)
		if !ok || b.IsGoingBack() {
			m.board = nil
			return m, nil
		}
		m.board = &b
		return m, cmd
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if m.board != nil {
		board, _ := m.board.Update(msg)
		if b, ok := board.(ScoreboardModel); ok {
			m.board = &b
		}
	}

	// Starts a new run if the field no longer fits
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.GameOverNow && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}
	if !m.gameState.GameOver {
		m.runSaved = false
		m.board = nil
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run on the scoreboard.
func (m *Model) saveRun() {
	summary := m.game.Summary()
	m.logger.Info("game over",
		"player", m.player,
		"score", summary.Score,
		"peak", summary.PeakScore,
		"bricks", summary.Bricks,
		"duration", summary.Duration,
	)
	if m.store == nil {
		return
	}

	id, err := m.store.SaveRun(summary.Run(m.player))
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "id", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".crashcourse", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Quitting reports whether the player asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewModel(game, store, cfg, player, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses steer like touches
	)

	_, err := p.Run()
	return err
}
