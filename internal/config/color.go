package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/Faultbox/radialbar/pkg/radialbar"
)

// ErrInvalidColor is returned for colors that are neither hex nor a known name.
var ErrInvalidColor = errors.New("invalid color")

// palette holds the bar preset colors. They take precedence over SVG names.
var palette = map[string]radialbar.Color{
	"health":   radialbar.ColorHealth,
	"progress": radialbar.ColorProgress,
}

// ParseColor accepts "#rrggbb", "#rrggbbaa", a palette name ("health",
// "progress") or an SVG 1.1 color name such as "midnightblue". An empty
// string is white.
func ParseColor(s string) (radialbar.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return radialbar.ColorWhite, nil
	}

	if strings.HasPrefix(s, "#") {
		raw, err := hex.DecodeString(s[1:])
		if err != nil || (len(raw) != 3 && len(raw) != 4) {
			return radialbar.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha := uint8(255)
		if len(raw) == 4 {
			alpha = raw[3]
		}
		return radialbar.RGBA(raw[0], raw[1], raw[2], alpha), nil
	}

	name := strings.ToLower(strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s))
	if c, ok := palette[name]; ok {
		return c, nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return radialbar.Color{}, fmt.Errorf("%w: unknown name %q", ErrInvalidColor, s)
	}
	return radialbar.RGBA(c.R, c.G, c.B, c.A), nil
}
