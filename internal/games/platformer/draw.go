package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/render"
)

// Palette used by the draw pass.
var (
	SkyColor      = core.RGBA(0.53, 0.81, 0.92, 1)
	GroundColor   = core.RGBA(0.4, 0.8, 0.2, 1)
	PlatformColor = core.RGBA(0.55, 0.35, 0.17, 1)
	GoalColor     = core.RGBA(1, 0.84, 0, 1)
	PlayerColor   = core.RGBA(1, 0.41, 0.71, 1)
	FaceColor     = core.ColorBlack
)

// Draw renders the world through the surface using the camera transform.
// The surface is cleared first.
func (w *World) Draw(dst render.Surface) {
	dst.Clear()

	for i, plat := range w.Platforms {
		color := PlatformColor
		if i == 0 {
			color = GroundColor
		}
		w.drawRect(dst, plat, color)
	}

	w.drawRect(dst, w.Goal, GoalColor)
	w.drawPlayer(dst)
}

func (w *World) drawRect(dst render.Surface, r core.RectF, c core.Color) {
	x, y := w.Camera.WorldToScreen(r.X, r.Y)
	width, height := w.Camera.ScaleToScreen(r.Width, r.Height)
	dst.DrawRect(x, y, width, height, c)
}

// drawCircle transforms a world-space circle. The radius uses the
// horizontal scale; the fitted viewport keeps both scales equal up to the
// screen's pixel aspect.
func (w *World) drawCircle(dst render.Surface, x, y, r float64, c core.Color, flattened bool) {
	sx, sy := w.Camera.WorldToScreen(x, y)
	sr, _ := w.Camera.ScaleToScreen(r, r)
	dst.DrawCircle(sx, sy, sr, c, flattened)
}

// drawPlayer draws the body, eyes and mouth. The body pulses while
// celebrating and flattens while ducking; the collision radius never changes.
func (w *World) drawPlayer(dst render.Surface) {
	p := w.Player

	bodyRadius := p.Radius
	if p.IsCelebrating {
		bodyRadius *= 1 + 0.1*math.Sin(w.CelebrationTimer/100)
	}
	w.drawCircle(dst, p.X, p.Y, bodyRadius, PlayerColor, p.IsDucking)

	eyeRadius := p.Radius * 0.2
	eyeOffset := p.Radius * 0.4
	eyeY := p.Y - p.Radius*0.1
	w.drawCircle(dst, p.X-eyeOffset, eyeY, eyeRadius, FaceColor, false)
	w.drawCircle(dst, p.X+eyeOffset, eyeY, eyeRadius, FaceColor, false)

	mouthX, mouthY, mouthRadius := w.mouth()
	w.drawCircle(dst, mouthX, mouthY, mouthRadius, FaceColor, false)
}

// mouth returns the mouth circle in world space.
func (w *World) mouth() (x, y, r float64) {
	p := w.Player
	switch {
	case p.IsCelebrating:
		return p.X, p.Y + p.Radius*0.3, p.Radius * 0.25
	case p.IsDucking:
		return p.X, p.Y + p.Radius*0.4, p.Radius * 0.1
	default:
		return p.X, p.Y + p.Radius*0.3, p.Radius * 0.15
	}
}
