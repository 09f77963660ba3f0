// Package radialbar generates ring-shaped meshes whose filled arc reflects a
// bounded value such as health or progress.
//
// A Bar owns the geometry of one ring. The vertex ring is built once; the
// index buffer is re-triangulated and pushed to the MeshStore every time the
// value changes. Bars are not safe for concurrent use; each one is driven by
// a single owner, usually one step of a host update loop.
package radialbar

import (
	"errors"
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/radialbar/pkg/math"
)

// ErrInvalidConfiguration is returned by New when a Config cannot describe a ring.
var ErrInvalidConfiguration = errors.New("invalid radial bar configuration")

// ErrInvalidValue is returned by SetValue and AddValue for NaN input.
var ErrInvalidValue = errors.New("invalid radial bar value")

// Config describes a radial bar. It is fixed once the bar is created.
type Config struct {
	HoleRadius   float32 // Inner radius, 0 <= HoleRadius < CircleRadius
	CircleRadius float32 // Outer radius
	SegmentCount int     // Angular subdivisions, at least 1
	MaxValue     float32 // Value of a full ring, must be positive
	Value        float32 // Initial value, clamped to [0, MaxValue]
	Color        Color   // Solid fill color

	// ClampOnSet makes SetValue clamp like AddValue does. SetValue stores the
	// value verbatim by default.
	ClampOnSet bool
}

// Validate reports whether the config describes a drawable ring.
func (c Config) Validate() error {
	switch {
	case c.SegmentCount < 1:
		return fmt.Errorf("%w: segment count %d must be at least 1", ErrInvalidConfiguration, c.SegmentCount)
	case !(c.MaxValue > 0) || gomath.IsInf(float64(c.MaxValue), 1):
		return fmt.Errorf("%w: max value %v must be positive and finite", ErrInvalidConfiguration, c.MaxValue)
	case gomath.IsInf(float64(c.CircleRadius), 0) || gomath.IsInf(float64(c.HoleRadius), 0):
		return fmt.Errorf("%w: radii %v/%v must be finite", ErrInvalidConfiguration, c.HoleRadius, c.CircleRadius)
	case !(c.HoleRadius >= 0):
		return fmt.Errorf("%w: hole radius %v must not be negative", ErrInvalidConfiguration, c.HoleRadius)
	case !(c.CircleRadius > c.HoleRadius):
		return fmt.Errorf("%w: circle radius %v must exceed hole radius %v",
			ErrInvalidConfiguration, c.CircleRadius, c.HoleRadius)
	case gomath.IsNaN(float64(c.Value)):
		return fmt.Errorf("%w: initial value is NaN", ErrInvalidConfiguration)
	}
	return nil
}

// Option configures a Bar.
type Option func(*Bar)

// WithLogger sets the logger used for re-triangulation diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(b *Bar) {
		if log != nil {
			b.log = log
		}
	}
}

// Bar is a radial bar: a ring mesh whose filled arc tracks a value.
type Bar struct {
	cfg   Config
	value float32

	vertices []math.Vec3
	indices  []Triangle

	meshes   MeshStore
	mesh     MeshHandle
	material MaterialHandle

	log *zap.Logger
}

// New validates cfg, builds the ring geometry, and registers the mesh and a
// solid color material with the given stores.
func New(cfg Config, meshes MeshStore, materials MaterialStore, opts ...Option) (*Bar, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if meshes == nil || materials == nil {
		return nil, fmt.Errorf("%w: mesh and material stores are required", ErrInvalidConfiguration)
	}

	b := &Bar{
		cfg:    cfg,
		value:  clamp(cfg.Value, 0, cfg.MaxValue),
		meshes: meshes,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.vertices = GenerateVertices(cfg.CircleRadius, cfg.HoleRadius, cfg.SegmentCount)
	b.indices = FormValueBarTriangles(cfg.SegmentCount, cfg.MaxValue, b.value)

	// Material before mesh: MeshStore cannot release a mesh once created.
	var err error
	b.material, err = materials.CreateSolidColorMaterial(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("creating bar material: %w", err)
	}

	b.mesh, err = meshes.CreateMesh(BuildMeshData(b.vertices, b.indices))
	if err != nil {
		return nil, fmt.Errorf("creating bar mesh: %w", err)
	}

	b.log.Debug("radial bar created",
		zap.Uint32("mesh", uint32(b.mesh)),
		zap.Uint32("material", uint32(b.material)),
		zap.Int("segments", cfg.SegmentCount),
		zap.Int("vertices", len(b.vertices)),
		zap.Int("triangles", len(b.indices)),
	)

	return b, nil
}

// SetValue replaces the value and republishes the index buffer.
// The value is not clamped unless Config.ClampOnSet is set.
func (b *Bar) SetValue(value float32) ([]Triangle, error) {
	if gomath.IsNaN(float64(value)) {
		return nil, fmt.Errorf("%w: NaN", ErrInvalidValue)
	}
	if b.cfg.ClampOnSet {
		value = clamp(value, 0, b.cfg.MaxValue)
	}
	return b.publish(value)
}

// AddValue adds delta to the value, clamps it to [0, MaxValue], and
// republishes the index buffer.
func (b *Bar) AddValue(delta float32) ([]Triangle, error) {
	if gomath.IsNaN(float64(delta)) {
		return nil, fmt.Errorf("%w: NaN delta", ErrInvalidValue)
	}
	return b.publish(clamp(b.value+delta, 0, b.cfg.MaxValue))
}

// Regenerate republishes the index buffer for the current value.
func (b *Bar) Regenerate() ([]Triangle, error) {
	return b.publish(b.value)
}

// publish triangulates for value and pushes the result to the mesh store.
// State is committed only once the store accepts the buffer.
func (b *Bar) publish(value float32) ([]Triangle, error) {
	triangles := FormValueBarTriangles(b.cfg.SegmentCount, b.cfg.MaxValue, value)

	if err := b.meshes.ReplaceIndices(b.mesh, FlattenIndices(triangles)); err != nil {
		b.log.Warn("radial bar index update rejected",
			zap.Uint32("mesh", uint32(b.mesh)),
			zap.Float32("value", value),
			zap.Error(err),
		)
		return nil, fmt.Errorf("replacing indices of mesh %d: %w", b.mesh, err)
	}

	b.value = value
	b.indices = triangles

	b.log.Debug("radial bar retriangulated",
		zap.Uint32("mesh", uint32(b.mesh)),
		zap.Float32("value", value),
		zap.Int("triangles", len(triangles)),
	)

	return b.Indices(), nil
}

// Value returns the current value.
func (b *Bar) Value() float32 {
	return b.value
}

// MaxValue returns the value of a full ring.
func (b *Bar) MaxValue() float32 {
	return b.cfg.MaxValue
}

// SegmentCount returns the number of ring segments.
func (b *Bar) SegmentCount() int {
	return b.cfg.SegmentCount
}

// Fraction returns value/MaxValue clamped to [0, 1].
func (b *Bar) Fraction() float32 {
	return clamp(b.value/b.cfg.MaxValue, 0, 1)
}

// Config returns the configuration the bar was created with.
func (b *Bar) Config() Config {
	return b.cfg
}

// Vertices returns a copy of the vertex ring.
func (b *Bar) Vertices() []math.Vec3 {
	out := make([]math.Vec3, len(b.vertices))
	copy(out, b.vertices)
	return out
}

// Indices returns a copy of the currently published triangles.
func (b *Bar) Indices() []Triangle {
	out := make([]Triangle, len(b.indices))
	copy(out, b.indices)
	return out
}

// MeshHandle returns the handle of the bar's mesh.
func (b *Bar) MeshHandle() MeshHandle {
	return b.mesh
}

// MaterialHandle returns the handle of the bar's material.
func (b *Bar) MaterialHandle() MaterialHandle {
	return b.material
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
