package registry

import (
	"testing"

	"github.com/vovakirdan/skyfall/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                                    { return g.id }
func (g *stubGame) Title() string                                 { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)                      {}
func (g *stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                           {}
func (g *stubGame) State() core.GameState                         { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = info.Title == "Stub zz-stub"
		}
	}
	if !found {
		t.Error("List() should include the game with its title")
	}
}

func TestListIsSorted(t *testing.T) {
	Register("aa-stub", func() Game { return &stubGame{id: "aa-stub"} })
	Register("mm-stub", func() Game { return &stubGame{id: "mm-stub"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("no-such-game") {
		t.Error("unknown game should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })
}
