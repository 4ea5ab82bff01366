package registry

import (
	"testing"

	"github.com/vovakirdan/tui-maze/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateUnregister(t *testing.T) {
	Register("zz-stub", func() Game { return stubGame{id: "zz-stub"} })
	defer Unregister("zz-stub")

	if !Exists("zz-stub") {
		t.Fatal("Exists() = false after Register")
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "zz-stub")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = true
			if info.Title != "Stub zz-stub" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub zz-stub")
			}
		}
	}
	if !found {
		t.Error("List() does not include registered mode")
	}

	if !Unregister("zz-stub") {
		t.Error("Unregister() = false for registered mode")
	}
	if Unregister("zz-stub") {
		t.Error("Unregister() = true for unknown mode")
	}
	if _, err := Create("zz-stub"); err == nil {
		t.Error("Create() should fail after Unregister")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return stubGame{id: "zz-dup"} })
	defer Unregister("zz-dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func() Game { return stubGame{id: "zz-dup"} })
}
