package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/registry"
	"github.com/vovakirdan/tui-doodle/internal/storage"
)

// SessionModel is the top-level model for one player: game -> scoreboard -> game.
// Ticks keep reaching the game while the scoreboard is shown so the tick
// chain never breaks; a paused or finished game ignores them.
type SessionModel struct {
	game       Model
	scoreboard ScoreboardModel
	showBoard  bool
	quitting   bool
}

// NewSessionModel creates a session around a game.
func NewSessionModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) SessionModel {
	board := NewScoreboardModel(store, game.ID(), game.Title(), cfg.ScreenW, cfg.ScreenH)
	board.embedded = true

	return SessionModel{
		game:       NewModel(game, store, logger, cfg),
		scoreboard: board,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m.updateGame(msg)

	case tea.WindowSizeMsg:
		var gameCmd, boardCmd tea.Cmd
		m.game, gameCmd = updateAs[Model](m.game, msg)
		m.scoreboard, boardCmd = updateAs[ScoreboardModel](m.scoreboard, msg)
		return m, tea.Batch(gameCmd, boardCmd)
	}

	if m.showBoard {
		return m.updateBoard(msg)
	}
	return m.updateGame(msg)
}

// updateGame forwards a message to the game.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.game, cmd = updateAs[Model](m.game, msg)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.WantsBack() {
		m.game.clearBack()
		m.showBoard = true
		m.scoreboard.goingBack = false
		m.scoreboard.loadRuns()
	}

	return m, cmd
}

// updateBoard forwards a message to the scoreboard.
func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scoreboard, cmd = updateAs[ScoreboardModel](m.scoreboard, msg)

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.scoreboard.goingBack = false
		m.showBoard = false
	}

	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showBoard {
		return m.scoreboard.View()
	}
	return m.game.View()
}

// ShowingScoreboard reports whether the scoreboard is on screen.
func (m SessionModel) ShowingScoreboard() bool {
	return m.showBoard
}

// updateAs runs a child model update and keeps its concrete type.
func updateAs[M tea.Model](child M, msg tea.Msg) (M, tea.Cmd) {
	next, cmd := child.Update(msg)
	if typed, ok := next.(M); ok {
		return typed, cmd
	}
	return child, cmd
}
