package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// DefaultSmoothing is the fraction of the remaining distance the camera
// covers per tick. It is applied per tick, so follow speed depends on the
// tick rate.
const DefaultSmoothing = 0.1

// Camera maps world coordinates to screen pixels.
// X and Y are the top-left of the visible viewport in world units.
// WorldWidth and WorldHeight bound where the viewport may go.
type Camera struct {
	X, Y         float64
	ViewWidth    float64
	ViewHeight   float64
	ScreenWidth  float64
	ScreenHeight float64
	WorldWidth   float64
	WorldHeight  float64
	Smoothing    float64
}

// NewCamera creates a camera confined to a world of the given size.
// Call UpdateViewport before use.
func NewCamera(worldW, worldH, smoothing float64) *Camera {
	return &Camera{
		WorldWidth:  worldW,
		WorldHeight: worldH,
		Smoothing:   smoothing,
	}
}

// UpdateViewport fits a fitW x fitH area into the screen without
// distortion. A relatively wider screen keeps the full fit height and shows
// a wider slice; otherwise the fit width is kept and the slice grows taller.
// Passing the world size as the fit area shows the whole world.
func (c *Camera) UpdateViewport(screenW, screenH, fitW, fitH float64) {
	c.ScreenWidth = screenW
	c.ScreenHeight = screenH

	screenAspect := screenW / screenH
	fitAspect := fitW / fitH

	if screenAspect > fitAspect {
		c.ViewWidth = fitH * screenAspect
		c.ViewHeight = fitH
	} else {
		c.ViewWidth = fitW
		c.ViewHeight = fitW / screenAspect
	}

	c.clamp()
}

// Follow eases the viewport toward centering the target, then clamps it
// to the world.
func (c *Camera) Follow(targetX, targetY float64) {
	desiredX := targetX - c.ViewWidth/2
	desiredY := targetY - c.ViewHeight/2

	c.X += (desiredX - c.X) * c.Smoothing
	c.Y += (desiredY - c.Y) * c.Smoothing

	c.clamp()
}

// Snap centers the viewport on the target immediately.
func (c *Camera) Snap(targetX, targetY float64) {
	c.X = targetX - c.ViewWidth/2
	c.Y = targetY - c.ViewHeight/2
	c.clamp()
}

// clamp keeps the viewport inside the world. When the viewport is larger
// than the world on an axis, that axis is pinned to 0.
func (c *Camera) clamp() {
	c.X = core.ClampF(c.X, 0, max(0, c.WorldWidth-c.ViewWidth))
	c.Y = core.ClampF(c.Y, 0, max(0, c.WorldHeight-c.ViewHeight))
}

// Scale returns the world-to-screen scale factor per axis.
func (c *Camera) Scale() (float64, float64) {
	return c.ScreenWidth / c.ViewWidth, c.ScreenHeight / c.ViewHeight
}

// WorldToScreen converts a world position to screen pixels.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	sx, sy := c.Scale()
	return (x - c.X) * sx, (y - c.Y) * sy
}

// ScaleToScreen converts a world-space size to screen pixels, without offset.
func (c *Camera) ScaleToScreen(w, h float64) (float64, float64) {
	sx, sy := c.Scale()
	return w * sx, h * sy
}
