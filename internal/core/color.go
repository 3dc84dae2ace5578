package core

import "fmt"

// Color is an RGBA color with components in [0, 1].
// The zero value is fully transparent and renders as the terminal default.
type Color struct {
	R, G, B, A float64
}

// RGBA builds a color from float components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Predefined colors for game elements.
var (
	ColorDefault = Color{}
	ColorBlack   = RGBA(0, 0, 0, 1)
	ColorWhite   = RGBA(1, 1, 1, 1)
	ColorYellow  = RGBA(1, 0.85, 0.1, 1)
)

// IsTransparent reports whether the color has no coverage.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// Over composites c on top of dst using straight alpha.
func (c Color) Over(dst Color) Color {
	if c.A >= 1 || dst.IsTransparent() {
		return c
	}
	if c.IsTransparent() {
		return dst
	}
	a := ClampF(c.A, 0, 1)
	return Color{
		R: c.R*a + dst.R*(1-a),
		G: c.G*a + dst.G*(1-a),
		B: c.B*a + dst.B*(1-a),
		A: a + dst.A*(1-a),
	}
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	return uint8(ClampF(v, 0, 1)*255 + 0.5)
}
