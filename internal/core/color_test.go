package core

import "testing"

func TestColorHex(t *testing.T) {
	tests := []struct {
		name     string
		c        Color
		expected string
	}{
		{"black", ColorBlack, "#000000"},
		{"white", ColorWhite, "#ffffff"},
		{"sky", RGBA(0.53, 0.81, 0.92, 1), "#87cfeb"},
		{"out of range", RGBA(2, -1, 0.5, 1), "#ff0080"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Hex(); got != tc.expected {
				t.Errorf("Hex() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestColorOver(t *testing.T) {
	// Opaque source replaces destination
	if got := ColorYellow.Over(ColorWhite); got != ColorYellow {
		t.Errorf("Opaque Over() = %+v, expected %+v", got, ColorYellow)
	}

	// Transparent source keeps destination
	if got := ColorDefault.Over(ColorWhite); got != ColorWhite {
		t.Errorf("Transparent Over() = %+v, expected %+v", got, ColorWhite)
	}

	half := RGBA(0, 0, 0, 0.5).Over(ColorWhite)
	if half.R != 0.5 || half.G != 0.5 || half.B != 0.5 || half.A != 1 {
		t.Errorf("Half black over white = %+v, expected mid gray", half)
	}
}
