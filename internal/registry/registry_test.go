package registry

import (
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	info, ok := Get("stub-a")
	if !ok {
		t.Fatal("stub-a should be registered")
	}
	if info.Title != "Stub stub-a" {
		t.Errorf("Title = %q, expected %q", info.Title, "Stub stub-a")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID = %q, expected stub-a", g.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("no-such-game") {
		t.Error("Exists should be false for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
}

func TestListSorted(t *testing.T) {
	Register("stub-z", func() Game { return &stubGame{id: "stub-z"} })
	Register("stub-m", func() Game { return &stubGame{id: "stub-m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
