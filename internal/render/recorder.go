package render

import "github.com/vovakirdan/tui-platformer/internal/core"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpCircle
)

// Op is one drawing call captured by a Recorder.
type Op struct {
	Kind      OpKind
	X, Y      float64
	W, H      float64 // Rect size
	R         float64 // Circle radius
	Color     core.Color
	Flattened bool
}

// Recorder is a Surface that records calls instead of drawing.
type Recorder struct {
	Ops []Op
}

// Clear drops previously recorded calls and records the clear.
func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) DrawRect(x, y, w, h float64, c core.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) DrawCircle(x, y, radius float64, c core.Color, flattened bool) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: x, Y: y, R: radius, Color: c, Flattened: flattened})
}

// Circles returns the recorded circle calls in order.
func (r *Recorder) Circles() []Op {
	return r.filter(OpCircle)
}

// Rects returns the recorded rectangle calls in order.
func (r *Recorder) Rects() []Op {
	return r.filter(OpRect)
}

func (r *Recorder) filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
