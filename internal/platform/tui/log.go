package tui

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates the host logger. A nil writer discards output, which
// keeps log lines from tearing the alt-screen.
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
}
