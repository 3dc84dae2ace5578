// Package tui provides the Bubble Tea host for the platformer.
// It runs the tick loop, tracks key and mouse input, and renders frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick message
// after one frame interval.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.FrameInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
