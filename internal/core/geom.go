// Package core provides fundamental types and utilities for the maze game
// host. It contains no external dependencies (especially no Bubble Tea) to
// keep game logic pure and testable.
package core

// Rect is an axis-aligned rectangle in screen or map cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport returns the viewW x viewH window over a mapW x mapH map that
// keeps (cx, cy) as central as possible without scrolling past the map
// edges. A map smaller than the view is anchored at 0.
func Viewport(cx, cy, mapW, mapH, viewW, viewH int) Rect {
	return Rect{
		X: follow(cx, mapW, viewW),
		Y: follow(cy, mapH, viewH),
		W: viewW,
		H: viewH,
	}
}

func follow(c, mapLen, viewLen int) int {
	if mapLen <= viewLen {
		return 0
	}
	return Clamp(c-viewLen/2, 0, mapLen-viewLen)
}

// RotateQuarter rotates (x, y) inside a w x h box by turns clockwise quarter
// turns and returns the new coordinates and the rotated box size.
func RotateQuarter(x, y, w, h, turns int) (rx, ry, rw, rh int) {
	switch ((turns % 4) + 4) % 4 {
	case 1:
		return h - 1 - y, x, h, w
	case 2:
		return w - 1 - x, h - 1 - y, w, h
	case 3:
		return y, w - 1 - x, h, w
	default:
		return x, y, w, h
	}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
