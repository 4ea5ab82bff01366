package maze

import (
	"math/rand"
	"testing"
)

func TestNewGridDefaults(t *testing.T) {
	g := NewGrid(4, 3)

	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("expected 4x3 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.Len() != 12 {
		t.Errorf("expected 12 cells, got %d", g.Len())
	}
	for y := range 3 {
		for x := range 4 {
			c := g.CellAt(x, y)
			if c == nil {
				t.Fatalf("CellAt(%d,%d) returned nil", x, y)
			}
			if c.X != x || c.Y != y {
				t.Errorf("cell at (%d,%d) reports (%d,%d)", x, y, c.X, c.Y)
			}
			if c.Type != Path {
				t.Errorf("cell at (%d,%d) should default to path, got %v", x, y, c.Type)
			}
		}
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	g := NewGrid(5, 5)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 2},
		{"negative y", 2, -1},
		{"x past edge", 5, 0},
		{"y past edge", 0, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if c := g.CellAt(tc.x, tc.y); c != nil {
				t.Errorf("CellAt(%d,%d) = %v, expected nil", tc.x, tc.y, c)
			}
			if ct := g.CellType(tc.x, tc.y); ct != Invalid {
				t.Errorf("CellType(%d,%d) = %v, expected invalid", tc.x, tc.y, ct)
			}
		})
	}
}

func TestNeighborOffsets(t *testing.T) {
	g := NewGrid(3, 3)
	center := g.CellAt(1, 1)

	tests := []struct {
		dir  Dir
		x, y int
	}{
		{N, 1, 0},
		{NE, 2, 0},
		{E, 2, 1},
		{SE, 2, 2},
		{S, 1, 2},
		{SW, 0, 2},
		{W, 0, 1},
		{NW, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			nei := g.Neighbor(center, tc.dir)
			if nei == nil {
				t.Fatalf("Neighbor(center, %v) = nil", tc.dir)
			}
			if nei.X != tc.x || nei.Y != tc.y {
				t.Errorf("Neighbor(center, %v) = (%d,%d), expected (%d,%d)", tc.dir, nei.X, nei.Y, tc.x, tc.y)
			}
		})
	}

	corner := g.CellAt(0, 0)
	if g.Neighbor(corner, NW) != nil {
		t.Error("Neighbor off the grid should be nil")
	}
	if g.Neighbor(nil, N) != nil {
		t.Error("Neighbor of nil cell should be nil")
	}
}

func TestDirHelpers(t *testing.T) {
	if N.Opposite() != S || E.Opposite() != W || NE.Opposite() != SW {
		t.Error("Opposite() mismatch")
	}
	for f := range 4 {
		if FromFacing(f).Facing() != f {
			t.Errorf("facing %d did not round-trip", f)
		}
	}
	if FromFacing(5) != E || FromFacing(-1) != W {
		t.Error("FromFacing should wrap modulo 4")
	}
	if NoDir.Facing() != -1 || NE.Facing() != -1 {
		t.Errorf("Facing() of non-axis directions = %d, %d, expected -1", NoDir.Facing(), NE.Facing())
	}
	if !S.IsOrthogonal() || SE.IsOrthogonal() || NoDir.IsOrthogonal() {
		t.Error("IsOrthogonal() mismatch")
	}
}

func TestSetTypeInteriorOnly(t *testing.T) {
	g := NewGrid(5, 5)
	g.Clear(Wall)
	g.TakeGeometryDirty()

	if !g.SetType(2, 2, Path) {
		t.Error("SetType on interior cell should apply")
	}
	if g.CellType(2, 2) != Path {
		t.Error("interior cell was not changed")
	}
	if !g.TakeGeometryDirty() {
		t.Error("SetType should mark geometry dirty")
	}

	tests := []struct {
		name string
		x, y int
	}{
		{"top border", 2, 0},
		{"left border", 0, 2},
		{"corner", 4, 4},
		{"out of bounds", 7, 7},
	}
	for _, tc := range tests {
		if g.SetType(tc.x, tc.y, Path) {
			t.Errorf("%s: SetType(%d,%d) should be a no-op", tc.name, tc.x, tc.y)
		}
	}
	if g.CellType(2, 0) != Wall {
		t.Error("border cell must stay wall")
	}
	if g.GeometryDirty() {
		t.Error("rejected writes must not mark geometry dirty")
	}
}

func TestClear(t *testing.T) {
	g := NewGrid(4, 4)
	g.Clear(Wall)
	if n := g.CountType(Wall); n != 16 {
		t.Errorf("expected 16 walls after Clear, got %d", n)
	}
	g.Clear(Path)
	if n := g.CountType(Path); n != 16 {
		t.Errorf("expected 16 paths after Clear, got %d", n)
	}
}

func TestOpenSideFaces(t *testing.T) {
	g := NewGrid(5, 5)
	g.Clear(Wall)
	g.SetType(2, 1, Path) // above (2,2)
	g.SetType(3, 2, Path) // right of (2,2)

	faces, ok := g.OpenSideFaces(2, 2)
	if !ok {
		t.Fatal("OpenSideFaces(2,2) reported out of bounds")
	}
	expected := [4]bool{true, true, false, false}
	if faces != expected {
		t.Errorf("OpenSideFaces(2,2) = %v, expected %v", faces, expected)
	}

	faces, ok = g.OpenSideFaces(2, 1)
	if !ok || faces != ([4]bool{}) {
		t.Errorf("path cell should report no faces, got %v", faces)
	}

	if _, ok := g.OpenSideFaces(-1, 0); ok {
		t.Error("OpenSideFaces out of bounds should report ok=false")
	}
}

func TestIsStraightWall(t *testing.T) {
	g := NewGrid(5, 5)
	g.Clear(Wall)
	g.SetType(1, 2, Path)
	g.SetType(3, 2, Path)

	if !g.IsStraightWall(g.CellAt(2, 2)) {
		t.Error("wall between two horizontal corridors should be straight")
	}

	g.SetType(2, 1, Path)
	if g.IsStraightWall(g.CellAt(2, 2)) {
		t.Error("wall with three open sides is not straight")
	}

	g.Clear(Wall)
	g.SetType(1, 2, Path)
	g.SetType(2, 1, Path)
	if g.IsStraightWall(g.CellAt(2, 2)) {
		t.Error("wall with perpendicular open sides is not straight")
	}

	if g.IsStraightWall(g.CellAt(0, 2)) {
		t.Error("border wall is never straight")
	}
	if g.IsStraightWall(g.CellAt(1, 2)) {
		t.Error("path cell is never a straight wall")
	}
}

func TestOccupancy(t *testing.T) {
	g := NewGrid(3, 3)
	c := g.CellAt(1, 1)

	g.AddResident(c, 7)
	g.AddResident(c, 9)
	g.AddResident(c, 11)

	if got := g.Residents(c); len(got) != 3 {
		t.Fatalf("expected 3 residents, got %v", got)
	}
	if !g.AnyResident(c, func(id OccupantID) bool { return id == 9 }) {
		t.Error("AnyResident should find 9")
	}
	if g.AnyResident(c, func(id OccupantID) bool { return id == 42 }) {
		t.Error("AnyResident should not find 42")
	}

	if !g.RemoveResident(c, 9) {
		t.Error("RemoveResident(9) should succeed")
	}
	if g.RemoveResident(c, 9) {
		t.Error("second RemoveResident(9) should report false")
	}
	got := g.Residents(c)
	if len(got) != 2 || got[0] != 7 || got[1] != 11 {
		t.Errorf("residents after removal = %v, expected [7 11]", got)
	}

	if g.AnyResident(g.CellAt(0, 0), nil) {
		t.Error("empty cell should have no residents")
	}
}

func TestOccupancyDoubleRegistrationPanics(t *testing.T) {
	g := NewGrid(3, 3)
	c := g.CellAt(1, 1)
	g.AddResident(c, 1)

	defer func() {
		if recover() == nil {
			t.Error("double registration should panic")
		}
	}()
	g.AddResident(c, 1)
}

func TestRandomCell(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := NewGrid(6, 6)
	g.Clear(Wall)

	if c := g.RandomCell(rng, Path); c != nil {
		t.Errorf("RandomCell(Path) on all-wall grid = %v, expected nil", c)
	}

	g.SetType(3, 3, Path)
	for range 20 {
		c := g.RandomCell(rng, Path)
		if c == nil || c.X != 3 || c.Y != 3 {
			t.Fatalf("RandomCell(Path) = %v, expected (3,3)", c)
		}
	}
	if g.RandomCell(rng, Any) == nil {
		t.Error("RandomCell(Any) should always find a cell")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(5, 5)
	g.Clear(Wall)
	g.SetType(2, 2, Path)

	c := g.Clone()
	c.SetType(2, 2, Wall)

	if g.CellType(2, 2) != Path {
		t.Error("mutating a clone changed the original")
	}
	if c.String() == g.String() {
		t.Error("clone should diverge after mutation")
	}
}
