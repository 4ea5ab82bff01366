package world

import "github.com/vovakirdan/tui-maze/internal/maze"

// ActorView is a read-only copy of an actor for renderers.
type ActorView struct {
	ID       ActorID
	Kind     Kind
	Pos      Vec2
	Cell     maze.Point
	Facing   int
	Angle    float64
	Moving   bool
	Rotating bool
	HP       int
	Owner    ActorID
}

// Snapshot is a self-contained copy of the world state between ticks.
type Snapshot struct {
	Tick        uint64
	Elapsed     float64
	Score       int
	Camera      int
	PlayerID    ActorID
	PlayerAlive bool
	PlayerHP    int
	Width       int
	Height      int
	Cells       []maze.CellType
	Actors      []ActorView
}

// CellType returns the snapshot cell type at (x, y).
func (s Snapshot) CellType(x, y int) maze.CellType {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return maze.Invalid
	}
	return s.Cells[y*s.Width+x]
}

// CountKind returns the number of actors of kind k in the snapshot.
func (s Snapshot) CountKind(k Kind) int {
	n := 0
	for _, a := range s.Actors {
		if a.Kind == k {
			n++
		}
	}
	return n
}

// Snapshot copies the current state. Call it between ticks.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     w.tick,
		Elapsed:  w.elapsed,
		Score:    w.score,
		Camera:   w.camera,
		PlayerID: w.player,
		Width:    w.grid.Width(),
		Height:   w.grid.Height(),
		Cells:    w.grid.Types(),
		Actors:   make([]ActorView, 0, len(w.order)),
	}
	for _, a := range w.order {
		v := ActorView{
			ID:       a.ID,
			Kind:     a.Kind,
			Pos:      a.Position(),
			Cell:     a.cell.Point(),
			Facing:   a.Direction(),
			Moving:   a.Moving(),
			Rotating: a.Rotating(),
			Owner:    a.Owner,
		}
		if a.Facing != nil {
			v.Angle = a.Facing.Angle()
		}
		if a.Health != nil {
			v.HP = a.Health.HP
		}
		s.Actors = append(s.Actors, v)
	}
	p := w.Player()
	s.PlayerAlive = p.Alive()
	s.PlayerHP = p.HP()
	return s
}
