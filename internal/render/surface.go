// Package render provides the drawing surface the games paint through.
// A Surface accepts primitive shapes in screen pixels; the half-block
// implementation rasterizes them into a core.Screen with two pixels per cell.
package render

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// FlattenFactor is the vertical scale applied to flattened circles.
const FlattenFactor = 0.5

// Surface is the set of drawing primitives a game uses.
// All coordinates are screen pixels.
type Surface interface {
	Clear()
	DrawRect(x, y, w, h float64, c core.Color)
	DrawCircle(x, y, r float64, c core.Color, flattened bool)
}

// HalfBlockSurface is a pixel buffer where each terminal cell holds two
// vertically stacked pixels, drawn with the upper half block glyph.
type HalfBlockSurface struct {
	width      int
	height     int
	pixels     []core.Color
	clearColor core.Color
}

// NewHalfBlockSurface creates a surface for a terminal of cols x rows cells.
func NewHalfBlockSurface(cols, rows int, clearColor core.Color) *HalfBlockSurface {
	s := &HalfBlockSurface{clearColor: clearColor}
	s.Resize(cols, rows)
	return s
}

// Resize reallocates the pixel buffer for a new terminal size.
func (s *HalfBlockSurface) Resize(cols, rows int) {
	s.width = core.Max(cols, 0)
	s.height = core.Max(rows, 0) * 2
	s.pixels = make([]core.Color, s.width*s.height)
	s.Clear()
}

// Width returns the surface width in pixels.
func (s *HalfBlockSurface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *HalfBlockSurface) Height() int {
	return s.height
}

// Pixel returns the color at pixel (x, y), or the zero color out of bounds.
func (s *HalfBlockSurface) Pixel(x, y int) core.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return core.ColorDefault
	}
	return s.pixels[y*s.width+x]
}

// Clear fills every pixel with the clear color.
func (s *HalfBlockSurface) Clear() {
	for i := range s.pixels {
		s.pixels[i] = s.clearColor
	}
}

func (s *HalfBlockSurface) plot(x, y int, c core.Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.width + x
	s.pixels[i] = c.Over(s.pixels[i])
}

// DrawRect fills every pixel whose center lies inside the rectangle.
func (s *HalfBlockSurface) DrawRect(x, y, w, h float64, c core.Color) {
	if w <= 0 || h <= 0 || c.IsTransparent() {
		return
	}
	x0, x1 := pixelSpan(x, x+w, s.width)
	y0, y1 := pixelSpan(y, y+h, s.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.plot(px, py, c)
		}
	}
}

// DrawCircle fills an ellipse centered at (x, y). A flattened circle keeps
// its horizontal radius and squashes the vertical one by FlattenFactor.
// Circles smaller than a pixel still cover the pixel under their center.
func (s *HalfBlockSurface) DrawCircle(x, y, r float64, c core.Color, flattened bool) {
	if r <= 0 || c.IsTransparent() {
		return
	}
	ry := r
	if flattened {
		ry = r * FlattenFactor
	}

	x0, x1 := pixelSpan(x-r, x+r, s.width)
	y0, y1 := pixelSpan(y-ry, y+ry, s.height)
	covered := false
	for py := y0; py < y1; py++ {
		dy := (float64(py) + 0.5 - y) / ry
		for px := x0; px < x1; px++ {
			dx := (float64(px) + 0.5 - x) / r
			if dx*dx+dy*dy <= 1 {
				s.plot(px, py, c)
				covered = true
			}
		}
	}
	if !covered {
		s.plot(int(math.Floor(x)), int(math.Floor(y)), c)
	}
}

// Flush writes the pixel buffer into dst, one cell per pixel pair.
// Cells where both pixels are transparent become blank.
func (s *HalfBlockSurface) Flush(dst *core.Screen) {
	rows := core.Min(dst.Height(), s.height/2)
	cols := core.Min(dst.Width(), s.width)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := s.Pixel(cx, cy*2)
			bottom := s.Pixel(cx, cy*2+1)
			if top.IsTransparent() && bottom.IsTransparent() {
				dst.SetCell(cx, cy, core.Cell{Rune: ' '})
				continue
			}
			dst.SetCell(cx, cy, core.Cell{Rune: '▀', Fg: top, Bg: bottom})
		}
	}
}

// pixelSpan converts [lo, hi) in continuous coordinates to the range of
// pixel indices whose centers fall inside it, clipped to [0, limit).
func pixelSpan(lo, hi float64, limit int) (int, int) {
	start := int(math.Ceil(lo - 0.5))
	end := int(math.Ceil(hi - 0.5))
	return core.Clamp(start, 0, limit), core.Clamp(end, 0, limit)
}
