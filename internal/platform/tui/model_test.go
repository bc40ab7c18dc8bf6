package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

func TestModelInitResetsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, nil, testConfig())

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestModelReservesHelpRow(t *testing.T) {
	m := NewModel(&stubGame{}, nil, nil, testConfig())
	if m.screen.Height() != 23 {
		t.Errorf("screen height = %d, expected 23", m.screen.Height())
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelHeldMovementReachesGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, nil, testConfig())

	m = send(t, m, runeKey('a'))
	for range holdTicks {
		m = tick(t, m)
		if !g.lastInput().Has(core.ActionLeft) {
			t.Fatalf("tick %d: left not held", g.steps)
		}
	}
	m = tick(t, m)
	if g.lastInput().Has(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestModelOneShotLastsOneTick(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, nil, testConfig())

	m = send(t, m, runeKey('p'))
	m = tick(t, m)
	if !g.lastInput().Has(core.ActionPause) {
		t.Error("pause should reach the game")
	}
	m = tick(t, m)
	if g.lastInput().Has(core.ActionPause) {
		t.Error("pause must only last one tick")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store := openTestStore(t)
	g := &stubGame{}
	m := NewModel(g, store, nil, testConfig())

	g.state = core.GameState{Score: 42, GameOver: true}
	g.runTicks = 600
	m = tick(t, m)
	m = tick(t, m)

	runs, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Score != 42 || runs[0].Ticks != 600 || runs[0].Seed != 7 {
		t.Errorf("saved run = %+v", runs[0])
	}

	// A new run that ends again is saved again
	g.state = core.GameState{Score: 10}
	m = tick(t, m)
	g.state = core.GameState{Score: 10, GameOver: true}
	tick(t, m)

	count, err := store.CountRuns("stub")
	if err != nil {
		t.Fatalf("CountRuns failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 runs, got %d", count)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openTestStore(t)
	g := &stubGame{state: core.GameState{GameOver: true}}
	m := NewModel(g, store, nil, testConfig())
	tick(t, m)

	count, err := store.CountRuns("stub")
	if err != nil {
		t.Fatalf("CountRuns failed: %v", err)
	}
	if count != 0 {
		t.Errorf("zero score runs should not be saved, got %d", count)
	}
}

func TestModelSaveFailureLogged(t *testing.T) {
	store := openTestStore(t)
	store.Close()

	var buf bytes.Buffer
	logger := log.New(&buf)
	g := &stubGame{state: core.GameState{Score: 5, GameOver: true}}
	m := NewModel(g, store, logger, testConfig())
	tick(t, m)

	if !strings.Contains(buf.String(), "could not save run") {
		t.Errorf("expected save failure in log, got %q", buf.String())
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, nil, testConfig())
	m = tick(t, m)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.WantsBack() {
		t.Error("back should be ignored while playing")
	}

	g.state.Paused = true
	m = tick(t, m)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.WantsBack() {
		t.Error("back should be accepted while paused")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, nil, testConfig())
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model should be quitting")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelViewHasFooter(t *testing.T) {
	m := NewModel(&stubGame{}, nil, nil, testConfig())
	view := m.View()
	if !strings.HasPrefix(view, "stub") {
		t.Errorf("view should start with game output, got %q", view[:min(len(view), 20)])
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should include the key help footer")
	}
}
