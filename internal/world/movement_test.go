package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// openGrid returns a w x h grid with wall borders and an open interior.
func openGrid(w, h int) *maze.Grid {
	g := maze.NewGrid(w, h)
	g.Clear(maze.Wall)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			g.SetType(x, y, maze.Path)
		}
	}
	return g
}

func newTestWorld(w, h int) *World {
	return New(openGrid(w, h), rand.New(rand.NewSource(1)), DefaultTuning(), nil)
}

func residentsAt(w *World, x, y int) []ActorID {
	return w.Grid().Residents(w.Grid().CellAt(x, y))
}

func TestMoveSettlesExactlyOnce(t *testing.T) {
	w := newTestWorld(7, 7)
	p := w.SpawnPlayer(w.Grid().CellAt(2, 2))
	a, ok := p.Actor()
	require.True(t, ok)
	require.Equal(t, 4.0, a.Mover.Speed)

	require.True(t, w.RequestMove(a, maze.S))
	require.True(t, a.Moving())
	require.Contains(t, residentsAt(w, 2, 2), p.ID())
	require.Contains(t, residentsAt(w, 2, 3), p.ID())

	w.Tick(0.125)
	require.True(t, a.Moving())
	require.InDelta(t, 2.5, a.Position().Y, 1e-9)
	require.Equal(t, 2, a.Cell().Y, "cell changes only on settle")

	w.Tick(0.125)
	require.False(t, a.Moving())
	require.Equal(t, Vec2{X: 2, Y: 3}, a.Position())
	require.Equal(t, maze.Point{X: 2, Y: 3}, a.Cell().Point())
	require.Empty(t, residentsAt(w, 2, 2))
	require.Equal(t, []ActorID{p.ID()}, residentsAt(w, 2, 3))

	w.Tick(0.125)
	require.False(t, a.Moving())
	require.Equal(t, []ActorID{p.ID()}, residentsAt(w, 2, 3))
}

func TestBlockedMove(t *testing.T) {
	w := newTestWorld(7, 7)
	p := w.SpawnPlayer(w.Grid().CellAt(2, 2))
	w.SpawnObstacle(w.Grid().CellAt(2, 3))
	a, _ := p.Actor()

	require.False(t, w.RequestMove(a, maze.S))
	require.False(t, a.Moving())
	require.Equal(t, maze.Point{X: 2, Y: 2}, a.Cell().Point())
	require.Len(t, residentsAt(w, 2, 3), 1)
}

func TestTransparentResidentDoesNotBlock(t *testing.T) {
	w := newTestWorld(7, 7)
	p := w.SpawnPlayer(w.Grid().CellAt(2, 2))
	w.SpawnPickup(w.Grid().CellAt(2, 3), 10)
	a, _ := p.Actor()

	require.True(t, w.RequestMove(a, maze.S))
}

func TestMoveIntoWallOrOffGrid(t *testing.T) {
	w := newTestWorld(5, 5)
	p := w.SpawnPlayer(w.Grid().CellAt(1, 1))
	a, _ := p.Actor()

	require.False(t, w.RequestMove(a, maze.N), "border wall")
	require.False(t, w.RequestMove(a, maze.W), "border wall")
	require.False(t, a.Moving())
}

func TestMoveIgnoredWhileMoving(t *testing.T) {
	w := newTestWorld(7, 7)
	p := w.SpawnPlayer(w.Grid().CellAt(2, 2))
	a, _ := p.Actor()

	require.True(t, w.RequestMove(a, maze.S))
	require.False(t, w.RequestMove(a, maze.E))
	require.Empty(t, residentsAt(w, 3, 2))
	require.Equal(t, 0.0, a.Mover.Progress())
}

func TestCarryAppliesOnlyToImmediateNextMove(t *testing.T) {
	m := NewMover(3)
	g := openGrid(5, 5)
	m.start(g.CellAt(1, 1), g.CellAt(2, 1))

	require.False(t, m.advance(0.25))
	require.True(t, m.advance(0.25)) // progress 1.5
	require.InDelta(t, 0.5, m.carry, 1e-9)

	m.start(g.CellAt(2, 1), g.CellAt(3, 1))
	require.False(t, m.advance(0.1))
	require.InDelta(t, 0.8, m.Progress(), 1e-9)

	m.moving = false
	m.carry = 0.4
	m.advance(0.1)
	require.Zero(t, m.carry, "idle advance drops the carry")
}

func TestTurnDelta(t *testing.T) {
	tests := []struct {
		from, to, expected int
	}{
		{0, 1, 1},
		{0, 3, -1},
		{0, 2, 2},
		{1, 3, 2},
		{3, 1, 2},
		{3, 0, 1},
		{2, 1, -1},
		{2, 2, 0},
	}
	for _, tc := range tests {
		if got := turnDelta(tc.from, tc.to); got != tc.expected {
			t.Errorf("turnDelta(%d, %d) = %d, expected %d", tc.from, tc.to, got, tc.expected)
		}
	}
}

func TestRotationBlocksMovement(t *testing.T) {
	w := newTestWorld(7, 7)
	p := w.SpawnPlayer(w.Grid().CellAt(3, 3))
	a, _ := p.Actor()
	require.Equal(t, maze.S.Facing(), a.Direction())

	p.MoveRequest(maze.N)

	w.Tick(0.1)
	require.True(t, a.Rotating())
	require.False(t, a.Moving())
	require.False(t, w.RequestMove(a, maze.E), "moves are refused mid-rotation")

	w.Tick(0.1)
	require.True(t, a.Rotating())
	require.InDelta(t, 2.8, a.Facing.Angle(), 1e-9)

	w.Tick(0.1)
	require.True(t, a.Rotating())
	require.False(t, a.Moving())

	w.Tick(0.1)
	require.False(t, a.Rotating())
	require.Equal(t, maze.N.Facing(), a.Direction())
	require.True(t, a.Moving())
	require.Equal(t, maze.Point{X: 3, Y: 2}, a.Mover.Destination().Point())
}

func TestFacingRejectsTurnWhileRotating(t *testing.T) {
	f := NewFacing(0, 1)
	require.True(t, f.RequestTurn(1))
	require.False(t, f.RequestTurn(3))
	require.False(t, NewFacing(2, 1).RequestTurn(6), "6 wraps to the current facing")

	instant := NewFacing(0, 0)
	require.True(t, instant.RequestTurn(2))
	require.False(t, instant.Rotating())
	require.Equal(t, 2, instant.Dir)
}

func TestRequestMoveToRequiresAdjacency(t *testing.T) {
	w := newTestWorld(7, 7)
	p := w.SpawnPlayer(w.Grid().CellAt(2, 2))
	a, _ := p.Actor()

	require.False(t, w.RequestMoveTo(a, 4, 2))
	require.False(t, w.RequestMoveTo(a, 2, 2))
	require.True(t, w.RequestMoveTo(a, 3, 2))
}
