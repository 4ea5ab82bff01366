package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},
		{10, 10, true},
		{29, 29, true},
		{30, 15, false},
		{9, 15, false},
		{15, 30, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
	if r.Right() != 30 || r.Bottom() != 30 {
		t.Errorf("Right/Bottom = %d/%d, expected 30/30", r.Right(), r.Bottom())
	}
}

func TestViewport(t *testing.T) {
	tests := []struct {
		name                       string
		cx, cy, mapW, mapH         int
		viewW, viewH, wantX, wantY int
	}{
		{"centered", 50, 50, 100, 100, 20, 10, 40, 45},
		{"clamped to origin", 2, 1, 100, 100, 20, 10, 0, 0},
		{"clamped to far edge", 99, 99, 100, 100, 20, 10, 80, 90},
		{"map smaller than view", 5, 5, 10, 8, 40, 20, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := Viewport(tc.cx, tc.cy, tc.mapW, tc.mapH, tc.viewW, tc.viewH)
			if v.X != tc.wantX || v.Y != tc.wantY {
				t.Errorf("Viewport origin = (%d, %d), expected (%d, %d)", v.X, v.Y, tc.wantX, tc.wantY)
			}
			if !v.Contains(tc.cx, tc.cy) {
				t.Errorf("viewport %+v does not contain focus (%d, %d)", v, tc.cx, tc.cy)
			}
		})
	}
}

func TestRotateQuarter(t *testing.T) {
	// 3x2 box, point at top-right corner (2, 0).
	tests := []struct {
		turns                      int
		wantX, wantY, wantW, wantH int
	}{
		{0, 2, 0, 3, 2},
		{1, 1, 2, 2, 3},
		{2, 0, 1, 3, 2},
		{3, 0, 0, 2, 3},
		{-1, 0, 0, 2, 3},
		{4, 2, 0, 3, 2},
	}

	for _, tc := range tests {
		x, y, w, h := RotateQuarter(2, 0, 3, 2, tc.turns)
		if x != tc.wantX || y != tc.wantY || w != tc.wantW || h != tc.wantH {
			t.Errorf("RotateQuarter(turns=%d) = (%d,%d,%d,%d), expected (%d,%d,%d,%d)",
				tc.turns, x, y, w, h, tc.wantX, tc.wantY, tc.wantW, tc.wantH)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
}
