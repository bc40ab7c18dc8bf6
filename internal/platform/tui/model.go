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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/registry"
	"github.com/vovakirdan/tui-doodle/internal/storage"
)

// holdTicks is how long a movement key press stays held. Terminal key
// repeat refreshes it while the key is down.
const holdTicks = 10

// runTicker is implemented by games that report the length of the current run.
type runTicker interface {
	RunTicks() uint64
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	held       *core.HeldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	wantsBack  bool // Back pressed while paused or game over
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// One terminal row is kept for the key help footer.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	cfg = cfg.WithDefaults()
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       h,
		held:       core.NewHeldKeys(holdTicks),
		inputFrame: core.NewInputFrame(),
	}
}

// playRows returns the screen rows left for the game above the footer.
func playRows(height int) int {
	if height > 1 {
		return height - 1
	}
	return height
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game reset", "game", m.game.ID(), "seed", m.config.Seed)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keyMapper.Apply(msg, m.held, &m.inputFrame) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.wantsBack = true
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The game scales its world to the screen, so no reset is needed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.Frame(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run in the history database.
func (m *Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	run := storage.Run{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Seed:   m.config.Seed,
	}
	if rt, ok := m.game.(runTicker); ok {
		run.Ticks = rt.RunTicks()
	}

	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "score", run.Score, "error", err)
		return
	}
	m.logger.Debug("run saved", "score", run.Score, "ticks", run.Ticks)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".doodle", "screenshots")
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

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last game state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// WantsBack reports that the player asked for the scoreboard.
func (m Model) WantsBack() bool {
	return m.wantsBack
}

// clearBack acknowledges a back request.
func (m *Model) clearBack() {
	m.wantsBack = false
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewSessionModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
