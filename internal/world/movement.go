package world

import "github.com/vovakirdan/tui-maze/internal/maze"

// Mover interpolates an actor between two adjacent cells.
type Mover struct {
	Speed float64 // cells per second

	moving   bool
	from     *maze.Cell
	to       *maze.Cell
	progress float64
	// carry is the overshoot from the last settle. It is applied to the next
	// move only if that move starts before the following advance.
	carry float64
}

// NewMover returns an idle mover.
func NewMover(speed float64) *Mover {
	return &Mover{Speed: speed}
}

// Progress returns the fraction of the current move completed.
func (m *Mover) Progress() float64 {
	return m.progress
}

// Destination returns the in-flight destination, or nil when idle.
func (m *Mover) Destination() *maze.Cell {
	if !m.moving {
		return nil
	}
	return m.to
}

func (m *Mover) position() Vec2 {
	fx, fy := float64(m.from.X), float64(m.from.Y)
	tx, ty := float64(m.to.X), float64(m.to.Y)
	return Vec2{
		X: fx*(1-m.progress) + tx*m.progress,
		Y: fy*(1-m.progress) + ty*m.progress,
	}
}

// start begins a move; the caller has already registered the actor in to.
func (m *Mover) start(from, to *maze.Cell) {
	m.moving = true
	m.from = from
	m.to = to
	m.progress = 0
}

// advance steps the interpolation and reports whether the move settled.
func (m *Mover) advance(dt float64) bool {
	if !m.moving {
		m.carry = 0
		return false
	}
	m.progress += dt*m.Speed + m.carry
	m.carry = 0
	if m.progress < 1 {
		return false
	}
	m.carry = m.progress - 1
	m.progress = 0
	m.moving = false
	return true
}

// RequestMove starts moving a in direction d. It is a no-op returning false
// when a is already moving or rotating, the neighbour does not exist, or the
// actor's move predicate rejects it.
func (w *World) RequestMove(a *Actor, d maze.Dir) bool {
	if a.Mover == nil || a.Mover.moving || a.Rotating() {
		return false
	}
	dest := w.grid.Neighbor(a.cell, d)
	return w.beginMove(a, dest)
}

// RequestMoveTo starts moving a into the adjacent cell (x, y).
func (w *World) RequestMoveTo(a *Actor, x, y int) bool {
	if a.Mover == nil || a.Mover.moving || a.Rotating() {
		return false
	}
	dx, dy := x-a.cell.X, y-a.cell.Y
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		return false
	}
	return w.beginMove(a, w.grid.CellAt(x, y))
}

func (w *World) beginMove(a *Actor, dest *maze.Cell) bool {
	if dest == nil || !w.canMove(a, a.cell, dest) {
		return false
	}
	w.grid.AddResident(dest, a.ID)
	a.Mover.start(a.cell, dest)
	return true
}

// advanceMotion ticks both state machines of a and moves its residency when
// a move settles.
func (w *World) advanceMotion(a *Actor, dt float64) {
	if a.Facing != nil {
		a.Facing.advance(dt)
	}
	if a.Mover == nil {
		return
	}
	from := a.Mover.from
	if a.Mover.advance(dt) {
		w.grid.RemoveResident(from, a.ID)
		a.cell = a.Mover.to
	}
}
