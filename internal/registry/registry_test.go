package registry

import (
	"testing"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

type fakeGame struct{ id string }

func (f *fakeGame) ID() string { return f.id }
func (f *fakeGame) Title() string { return "Fake " + f.id }
func (f *fakeGame) Reset(core.RuntimeConfig) {}
func (f *fakeGame) Resize(int, int) {}
func (f *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (f *fakeGame) Render(*core.Screen) {}
func (f *fakeGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-fake", func() Game { return &fakeGame{id: "zz-fake"} })

	if !Exists("zz-fake") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz-fake")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "zz-fake" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-fake" {
			found = info.Title == "Fake zz-fake"
		}
	}
	if !found {
		t.Error("List() should include the registered game with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}
	if Exists("does-not-exist") {
		t.Error("Exists() should be false for unknown IDs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &fakeGame{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func() Game { return &fakeGame{id: "zz-dup"} })
}
