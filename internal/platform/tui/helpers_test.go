package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/storage"
)

// stubGame records its inputs and ends the run on demand.
type stubGame struct {
	resets   int
	steps    int
	inputs   []core.InputFrame
	state    core.GameState
	runTicks uint64
}

func (g *stubGame) ID() string { return "stub" }

func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	frame := core.NewInputFrame()
	for a, ok := range in.Actions {
		if ok {
			frame.Set(a)
		}
	}
	g.inputs = append(g.inputs, frame)
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) RunTicks() uint64 { return g.runTicks }

func (g *stubGame) lastInput() core.InputFrame {
	return g.inputs[len(g.inputs)-1]
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// tick delivers one tick to a model and returns the typed result.
func tick[M tea.Model](t *testing.T, m M) M {
	t.Helper()
	return send(t, m, TickMsg{})
}

func send[M tea.Model](t *testing.T, m M, msg tea.Msg) M {
	t.Helper()
	next, _ := m.Update(msg)
	typed, ok := next.(M)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return typed
}
