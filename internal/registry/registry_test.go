package registry

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                           { return s.id }
func (s stubGame) Title() string                        { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig)             {}
func (s stubGame) Resize(int, int)                      {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen)                  {}
func (s stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func(Options) Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should exist")
	}
	g, err := Create("stub_a", Options{})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" && info.Title == "Stub stub_a" {
			found = true
		}
	}
	if !found {
		t.Error("List() missing stub_a")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist", Options{}); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func(Options) Game { return stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub_dup", func(Options) Game { return stubGame{id: "stub_dup"} })
}
