// Package scene pairs radial bars with transforms and hands them to a renderer.
package scene

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/radialbar/pkg/math"
	"github.com/Faultbox/radialbar/pkg/radialbar"
)

// Drawer renders one mesh with one material under a model-view-projection matrix.
type Drawer interface {
	Draw(mesh radialbar.MeshHandle, material radialbar.MaterialHandle, mvp math.Mat4)
}

// Renderable is a bar placed in the world.
type Renderable struct {
	Name     string
	Bar      *radialbar.Bar
	Position math.Vec2
	Rotation float32 // Radians around Z
	Scale    float32
}

// Transform returns the model matrix: scale, then rotate, then translate.
func (r *Renderable) Transform() math.Mat4 {
	scale := r.Scale
	if scale == 0 {
		scale = 1
	}
	return math.Translate(r.Position.X, r.Position.Y, 0).
		Mul(math.RotateZ(r.Rotation)).
		Mul(math.Scale(scale, scale, 1))
}

// Scene holds the renderables in draw order.
type Scene struct {
	items     []*Renderable
	spinSpeed float32
	log       *zap.Logger
}

// New creates an empty scene. spinSpeed rotates every bar, in radians per second.
func New(spinSpeed float32, log *zap.Logger) *Scene {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scene{spinSpeed: spinSpeed, log: log}
}

// Add appends a renderable and returns it.
func (s *Scene) Add(name string, bar *radialbar.Bar, pos math.Vec2) *Renderable {
	r := &Renderable{Name: name, Bar: bar, Position: pos, Scale: 1}
	s.items = append(s.items, r)
	s.log.Debug("bar added to scene",
		zap.String("name", name),
		zap.Uint32("mesh", uint32(bar.MeshHandle())),
		zap.Float32("x", pos.X),
		zap.Float32("y", pos.Y),
	)
	return r
}

// Find returns the renderable with the given name, or nil.
func (s *Scene) Find(name string) *Renderable {
	for _, r := range s.items {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Renderables returns the renderables in draw order.
func (s *Scene) Renderables() []*Renderable {
	return s.items
}

// Update advances the spin animation by dt seconds.
func (s *Scene) Update(dt float32) {
	if s.spinSpeed == 0 {
		return
	}
	for _, r := range s.items {
		r.Rotation += s.spinSpeed * dt
		if r.Rotation > radialbar.FullRotation {
			r.Rotation -= radialbar.FullRotation
		}
	}
}

// AddValue adds delta to every bar. Bars that fail keep their previous value;
// the failures are joined into the returned error.
func (s *Scene) AddValue(delta float32) error {
	var errs []error
	for _, r := range s.items {
		if _, err := r.Bar.AddValue(delta); err != nil {
			errs = append(errs, fmt.Errorf("bar %q: %w", r.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Reset fills every bar to its maximum.
func (s *Scene) Reset() error {
	var errs []error
	for _, r := range s.items {
		if _, err := r.Bar.SetValue(r.Bar.MaxValue()); err != nil {
			errs = append(errs, fmt.Errorf("bar %q: %w", r.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Draw submits every renderable to d under the given view-projection matrix.
func (s *Scene) Draw(d Drawer, viewProj math.Mat4) {
	for _, r := range s.items {
		d.Draw(r.Bar.MeshHandle(), r.Bar.MaterialHandle(), viewProj.Mul(r.Transform()))
	}
}
