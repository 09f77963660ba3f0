package radialbar

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Colors used by the bundled bar presets.
var (
	ColorWhite        = Color{1, 1, 1, 1}
	ColorMidnightBlue = Color{0.1, 0.1, 0.44, 1}
	ColorHealth       = Color{0.8, 0.15, 0.15, 1}
	ColorProgress     = Color{0.2, 0.6, 0.9, 1}
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// Array returns the color as a GPU-friendly array.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
