package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DefaultHoldWindow is how long a key press counts as held.
// It has to bridge the terminal's initial auto-repeat delay.
const DefaultHoldWindow = 300 * time.Millisecond

// InputTracker turns terminal key and mouse events into level-sensitive
// input snapshots.
//
// Terminals report key presses (and auto-repeats) but never key releases,
// so a movement key is treated as held until the hold window passes
// without another press. Pause and restart are edge events and appear in
// exactly one snapshot. A held mouse button acts as a touch control:
// the left and right thirds of the screen move, the middle jumps and the
// bottom band ducks.
type InputTracker struct {
	hold    time.Duration
	held    map[core.Action]time.Time // expiry per held action
	pending core.InputFrame

	touching bool
	touch    core.Action
	width    int
	height   int
}

// NewInputTracker creates a tracker with the given hold window.
// A non-positive window uses DefaultHoldWindow.
func NewInputTracker(hold time.Duration) *InputTracker {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &InputTracker{
		hold:    hold,
		held:    make(map[core.Action]time.Time),
		pending: core.NewInputFrame(),
	}
}

// SetSize sets the screen size used for touch zones.
func (t *InputTracker) SetSize(width, height int) {
	t.width = width
	t.height = height
}

// Press records a key press at time now.
func (t *InputTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone, core.ActionQuit:
		return
	case core.ActionPause, core.ActionRestart:
		t.pending.Set(a)
		return
	case core.ActionLeft:
		delete(t.held, core.ActionRight)
	case core.ActionRight:
		delete(t.held, core.ActionLeft)
	}
	t.held[a] = now.Add(t.hold)
}

// HandleMouse updates the touch state from a mouse event.
func (t *InputTracker) HandleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		t.touching = true
		t.touch = t.TouchAction(msg.X, msg.Y)
	case tea.MouseActionRelease:
		t.touching = false
		t.touch = core.ActionNone
	}
}

// TouchAction returns the action for a touch at cell (x, y).
// Touches outside the screen map to ActionNone.
func (t *InputTracker) TouchAction(x, y int) core.Action {
	screen := core.NewRect(0, 0, t.width, t.height)
	if !screen.Contains(x, y) {
		return core.ActionNone
	}

	band := core.Max(t.height/4, 1)
	third := t.width / 3
	duck := core.NewRect(0, t.height-band, t.width, band)
	left := core.NewRect(0, 0, third, t.height)
	right := core.NewRect(t.width-third, 0, third, t.height)

	switch {
	case duck.Contains(x, y):
		return core.ActionDuck
	case left.Contains(x, y):
		return core.ActionLeft
	case right.Contains(x, y):
		return core.ActionRight
	default:
		return core.ActionJump
	}
}

// Snapshot returns the input for a tick starting at now and consumes
// pending edge events.
func (t *InputTracker) Snapshot(now time.Time) core.InputFrame {
	keys := t.pending.Clone()
	t.pending.Clear()

	for a, expiry := range t.held {
		if now.Before(expiry) {
			keys.Set(a)
		} else {
			delete(t.held, a)
		}
	}

	touch := core.NewInputFrame()
	if t.touching && t.touch != core.ActionNone {
		touch.Set(t.touch)
	}

	return core.Merge(keys, touch)
}

// Reset drops all held keys, pending events and touches.
func (t *InputTracker) Reset() {
	clear(t.held)
	t.pending.Clear()
	t.touching = false
	t.touch = core.ActionNone
}
