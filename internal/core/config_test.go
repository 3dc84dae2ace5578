package core

import (
	"testing"
	"time"
)

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		expected time.Duration
	}{
		{"60 fps", 60, time.Second / 60},
		{"30 fps", 30, time.Second / 30},
		{"zero falls back to 60", 0, time.Second / 60},
		{"negative falls back to 60", -5, time.Second / 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := RuntimeConfig{TickRate: tc.rate}
			if got := cfg.FrameInterval(); got != tc.expected {
				t.Errorf("FrameInterval() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
