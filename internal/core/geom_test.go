package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestRectFEdges(t *testing.T) {
	r := NewRectF(700, 200, 50, 50)
	if r.Right() != 750 {
		t.Errorf("Right() = %f, expected 750", r.Right())
	}
	if r.Bottom() != 250 {
		t.Errorf("Bottom() = %f, expected 250", r.Bottom())
	}
}

func TestRectFReaches(t *testing.T) {
	goal := NewRectF(100, 100, 50, 50)

	tests := []struct {
		name     string
		r        RectF
		expected bool
	}{
		{"overlapping", NewRectF(90, 90, 20, 20), true},
		{"inside", NewRectF(110, 110, 10, 10), true},
		{"touching left edge", NewRectF(80, 110, 20, 20), false},
		{"touching top edge", NewRectF(110, 80, 20, 20), false},
		{"touching right edge", NewRectF(150, 110, 20, 20), true},
		{"touching bottom edge", NewRectF(110, 150, 20, 20), true},
		{"touching bottom-right corner", NewRectF(150, 150, 20, 20), true},
		{"past right edge", NewRectF(150.5, 110, 20, 20), false},
		{"past bottom edge", NewRectF(110, 150.5, 20, 20), false},
		{"far away", NewRectF(0, 0, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Reaches(goal); got != tc.expected {
				t.Errorf("Reaches() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
