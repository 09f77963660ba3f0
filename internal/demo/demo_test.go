package demo

import (
	"errors"
	"strings"
	"testing"

	"github.com/Faultbox/radialbar/internal/assets"
	"github.com/Faultbox/radialbar/internal/config"
	"github.com/Faultbox/radialbar/pkg/radialbar"
)

func newController(t *testing.T, cfg *config.Config) (*Controller, *assets.Store) {
	t.Helper()
	store := assets.NewStore()
	c, err := New(cfg, store, store, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, store
}

func TestNewBuildsConfiguredBars(t *testing.T) {
	cfg := config.Default()
	mana := config.DefaultBar()
	mana.Name = "mana"
	mana.Color = "royalblue"
	mana.Position = [2]float32{0.5, 0}
	cfg.Bars = append(cfg.Bars, mana)

	c, store := newController(t, cfg)

	items := c.Scene().Renderables()
	if len(items) != 2 {
		t.Fatalf("renderables = %d, want 2", len(items))
	}
	if items[1].Position.X != 0.5 {
		t.Errorf("mana x = %v, want 0.5", items[1].Position.X)
	}
	if meshes, _ := store.Stats(); meshes != 2 {
		t.Errorf("store meshes = %d, want 2", meshes)
	}
}

func TestNewUnnamedBar(t *testing.T) {
	cfg := config.Default()
	cfg.Bars[0].Name = ""

	c, _ := newController(t, cfg)
	if c.Scene().Find("bar0") == nil {
		t.Error("unnamed bar should be called bar0")
	}
}

func TestNewErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Bars = nil
	if _, err := New(cfg, assets.NewStore(), assets.NewStore(), nil); err == nil {
		t.Error("expected error with no bars")
	}

	cfg = config.Default()
	cfg.Bars[0].Segments = 0
	_, err := New(cfg, assets.NewStore(), assets.NewStore(), nil)
	if !errors.Is(err, radialbar.ErrInvalidConfiguration) {
		t.Errorf("err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestHandleActions(t *testing.T) {
	c, _ := newController(t, config.Default())
	bar := c.Scene().Find("health").Bar

	if _, err := c.Handle(ActionDecrease); err != nil {
		t.Fatalf("decrease: %v", err)
	}
	if bar.Value() != 340 {
		t.Errorf("after decrease = %v, want 340", bar.Value())
	}

	// Increase clamps at max
	c.Handle(ActionIncrease)
	c.Handle(ActionIncrease)
	if bar.Value() != 360 {
		t.Errorf("after increase = %v, want 360", bar.Value())
	}

	for i := 0; i < 5; i++ {
		c.Handle(ActionDecrease)
	}
	c.Handle(ActionReset)
	if bar.Value() != 360 {
		t.Errorf("after reset = %v, want 360", bar.Value())
	}

	c.Handle(ActionToggleOverlay)
	if !c.Overlay() {
		t.Error("overlay should be on")
	}

	quit, err := c.Handle(ActionQuit)
	if !quit || err != nil {
		t.Errorf("quit = %v, %v; want true, nil", quit, err)
	}
	if quit, _ := c.Handle(ActionNone); quit {
		t.Error("ActionNone should not quit")
	}
}

func TestFrameDrains(t *testing.T) {
	cfg := config.Default()
	cfg.Demo.DrainPerFrame = 10
	c, _ := newController(t, cfg)
	bar := c.Scene().Find("health").Bar

	if err := c.Frame(1.0 / 60); err != nil {
		t.Fatal(err)
	}
	if bar.Value() != 360 {
		t.Errorf("drained while disabled: %v", bar.Value())
	}

	c.Handle(ActionToggleDrain)
	if !c.Draining() {
		t.Fatal("drain should be on")
	}
	for i := 0; i < 40; i++ {
		if err := c.Frame(1.0 / 60); err != nil {
			t.Fatal(err)
		}
	}
	if bar.Value() != 0 {
		t.Errorf("value after draining = %v, want 0", bar.Value())
	}
	if n := len(bar.Indices()); n != 0 {
		t.Errorf("triangles after draining = %d, want 0", n)
	}
}

func TestFrameSpins(t *testing.T) {
	cfg := config.Default()
	cfg.Demo.SpinSpeed = 2
	c, _ := newController(t, cfg)

	c.Frame(0.5)
	if got := c.Scene().Find("health").Rotation; got != 1 {
		t.Errorf("rotation = %v, want 1", got)
	}
}

func TestStatus(t *testing.T) {
	c, _ := newController(t, config.Default())

	if got, want := c.Status(), "health 360/360 (36 tris)"; got != want {
		t.Errorf("Status() = %q, want %q", got, want)
	}

	c.Handle(ActionToggleDrain)
	if !strings.HasSuffix(c.Status(), "| draining") {
		t.Errorf("Status() = %q, want draining suffix", c.Status())
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleDrain.String() != "toggle-drain" {
		t.Errorf("String() = %q", ActionToggleDrain.String())
	}
	if Action(99).String() != "none" {
		t.Errorf("unknown action String() = %q", Action(99).String())
	}
}
