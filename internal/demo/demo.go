// Package demo drives the interactive radial bar demo: it builds bars from
// config, maps actions onto them, and drains them over time.
package demo

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/radialbar/internal/config"
	"github.com/Faultbox/radialbar/internal/scene"
	"github.com/Faultbox/radialbar/pkg/math"
	"github.com/Faultbox/radialbar/pkg/radialbar"
)

// Action is a user intent decoupled from the input device.
type Action int

const (
	ActionNone Action = iota
	ActionIncrease
	ActionDecrease
	ActionToggleDrain
	ActionReset
	ActionToggleOverlay
	ActionScreenshot // Handled by the host, which owns the framebuffer
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionIncrease:
		return "increase"
	case ActionDecrease:
		return "decrease"
	case ActionToggleDrain:
		return "toggle-drain"
	case ActionReset:
		return "reset"
	case ActionToggleOverlay:
		return "toggle-overlay"
	case ActionScreenshot:
		return "screenshot"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Controller owns the demo scene and its state.
type Controller struct {
	scene   *scene.Scene
	cfg     config.DemoConfig
	drain   bool
	overlay bool
	log     *zap.Logger
}

// New creates every bar in cfg.Bars against the given stores.
func New(cfg *config.Config, meshes radialbar.MeshStore, materials radialbar.MaterialStore, log *zap.Logger) (*Controller, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(cfg.Bars) == 0 {
		return nil, fmt.Errorf("no bars configured")
	}

	sc := scene.New(cfg.Demo.SpinSpeed, log.Named("scene"))
	for i, bc := range cfg.Bars {
		rc, err := bc.Radial()
		if err != nil {
			return nil, fmt.Errorf("bars[%d]: %w", i, err)
		}
		bar, err := radialbar.New(rc, meshes, materials, radialbar.WithLogger(log.Named("bar")))
		if err != nil {
			return nil, fmt.Errorf("bars[%d]: %w", i, err)
		}
		name := bc.Name
		if name == "" {
			name = fmt.Sprintf("bar%d", i)
		}
		sc.Add(name, bar, math.Vec2{X: bc.Position[0], Y: bc.Position[1]})
	}

	return &Controller{
		scene: sc,
		cfg:   cfg.Demo,
		drain: cfg.Demo.AutoDrain,
		log:   log,
	}, nil
}

// Handle applies one action. quit reports whether the demo should exit.
func (c *Controller) Handle(a Action) (quit bool, err error) {
	switch a {
	case ActionIncrease:
		err = c.scene.AddValue(c.cfg.Step)
	case ActionDecrease:
		err = c.scene.AddValue(-c.cfg.Step)
	case ActionToggleDrain:
		c.drain = !c.drain
		c.log.Info("auto drain toggled", zap.Bool("enabled", c.drain))
	case ActionReset:
		err = c.scene.Reset()
	case ActionToggleOverlay:
		c.overlay = !c.overlay
	case ActionQuit:
		return true, nil
	}
	if err != nil {
		c.log.Warn("action failed", zap.Stringer("action", a), zap.Error(err))
	}
	return false, err
}

// Frame advances the demo by dt seconds: drains bars while enabled and spins them.
func (c *Controller) Frame(dt float32) error {
	c.scene.Update(dt)
	if !c.drain || c.cfg.DrainPerFrame == 0 {
		return nil
	}
	return c.scene.AddValue(-c.cfg.DrainPerFrame)
}

// Draining reports whether auto drain is on.
func (c *Controller) Draining() bool {
	return c.drain
}

// Overlay reports whether the status overlay is shown.
func (c *Controller) Overlay() bool {
	return c.overlay
}

// Scene returns the demo scene.
func (c *Controller) Scene() *scene.Scene {
	return c.scene
}

// Status summarizes every bar, e.g. "health 250/360 (12 tris)".
func (c *Controller) Status() string {
	var sb strings.Builder
	for i, r := range c.scene.Renderables() {
		if i > 0 {
			sb.WriteString(" | ")
		}
		fmt.Fprintf(&sb, "%s %.0f/%.0f (%d tris)",
			r.Name, r.Bar.Value(), r.Bar.MaxValue(), len(r.Bar.Indices()))
	}
	if c.drain {
		sb.WriteString(" | draining")
	}
	return sb.String()
}
