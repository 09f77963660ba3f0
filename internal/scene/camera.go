package scene

import "github.com/Faultbox/radialbar/pkg/math"

// OrthoCamera is a 2D camera whose vertical extent is fixed at [-1, 1] and
// whose horizontal extent follows the window aspect ratio.
type OrthoCamera struct {
	Aspect float32
}

// NewOrthoCamera creates a camera for a width x height viewport.
func NewOrthoCamera(width, height int) *OrthoCamera {
	c := &OrthoCamera{}
	c.Resize(width, height)
	return c
}

// Resize updates the aspect ratio. Zero heights are ignored.
func (c *OrthoCamera) Resize(width, height int) {
	if height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// ViewProjection returns the projection matrix.
func (c *OrthoCamera) ViewProjection() math.Mat4 {
	return math.Ortho(-c.Aspect, c.Aspect, -1, 1, -1, 1)
}
