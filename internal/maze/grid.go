// Package maze holds the tile grid the simulation runs on: cell types,
// the 8-way neighbour table, per-cell occupancy, the maze generators and
// the BFS pathfinder. It has no knowledge of actors beyond opaque IDs.
package maze

import (
	"math/rand"
	"sync/atomic"
)

// CellType is the terrain of a single cell.
type CellType uint8

const (
	Path CellType = iota // traversable floor
	Wall                 // impassable
	Any                  // matches either type in queries
	Invalid              // returned for out-of-bounds lookups
)

// String returns a human-readable name for the cell type.
func (t CellType) String() string {
	switch t {
	case Path:
		return "path"
	case Wall:
		return "wall"
	case Any:
		return "any"
	default:
		return "invalid"
	}
}

// Dir is one of the eight neighbour directions, clockwise from north.
type Dir int

const (
	N Dir = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// NoDir marks the absence of a previous direction in the generator walk.
const NoDir Dir = -1

// offsets is indexed by Dir.
var offsets = [8]Point{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Orthogonal lists the four axis directions in expansion order.
var Orthogonal = [4]Dir{N, E, S, W}

// Offset returns the coordinate delta for d.
func (d Dir) Offset() Point {
	return offsets[((int(d)%8)+8)%8]
}

// IsOrthogonal reports whether d is N, E, S or W.
func (d Dir) IsOrthogonal() bool {
	return d >= 0 && d%2 == 0
}

// Opposite returns the direction pointing the other way.
func (d Dir) Opposite() Dir {
	return (d + 4) % 8
}

// Facing converts an orthogonal direction to a quarter-turn index 0..3
// (up, right, down, left). Diagonals and NoDir return -1.
func (d Dir) Facing() int {
	if !d.IsOrthogonal() {
		return -1
	}
	return int(d) / 2
}

// FromFacing converts a quarter-turn index back to an orthogonal Dir.
func FromFacing(f int) Dir {
	return Dir((((f % 4) + 4) % 4) * 2)
}

func (d Dir) String() string {
	switch d {
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case NW:
		return "NW"
	default:
		return "none"
	}
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns p shifted by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Cell is a single grid tile. Cells never move once the grid is built, so a
// *Cell stays valid for the grid's lifetime and doubles as its identity.
type Cell struct {
	X, Y int
	Type CellType
}

// Point returns the cell coordinate.
func (c *Cell) Point() Point {
	return Point{X: c.X, Y: c.Y}
}

// Grid is a dense width*height array of cells in row-major order.
type Grid struct {
	width  int
	height int
	cells  []Cell
	occ    [][]OccupantID // residents, indexed like cells

	dirty atomic.Bool
}

// NewGrid creates a grid with every cell set to Path.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		occ:    make([][]OccupantID, width*height),
	}
	for y := range height {
		for x := range width {
			c := &g.cells[y*width+x]
			c.X = x
			c.Y = y
			c.Type = Path
		}
	}
	g.dirty.Store(true)
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsInterior reports whether (x, y) is inside the grid and not on its border.
func (g *Grid) IsInterior(x, y int) bool {
	return x > 0 && x < g.width-1 && y > 0 && y < g.height-1
}

func (g *Grid) index(c *Cell) int {
	return c.Y*g.width + c.X
}

// CellAt returns the cell at (x, y), or nil when out of bounds.
func (g *Grid) CellAt(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[y*g.width+x]
}

// CellByIndex returns the cell at row-major index i, or nil.
func (g *Grid) CellByIndex(i int) *Cell {
	if i < 0 || i >= len(g.cells) {
		return nil
	}
	return &g.cells[i]
}

// Neighbor returns the cell one step from c in direction d, or nil.
func (g *Grid) Neighbor(c *Cell, d Dir) *Cell {
	if c == nil {
		return nil
	}
	off := d.Offset()
	return g.CellAt(c.X+off.X, c.Y+off.Y)
}

// CellType returns the type at (x, y), or Invalid when out of bounds.
func (g *Grid) CellType(x, y int) CellType {
	c := g.CellAt(x, y)
	if c == nil {
		return Invalid
	}
	return c.Type
}

// SetType changes the type of an interior cell. Border cells and
// out-of-bounds coordinates are left untouched; the return value reports
// whether anything was written.
func (g *Grid) SetType(x, y int, t CellType) bool {
	if !g.IsInterior(x, y) || t > Wall {
		return false
	}
	c := &g.cells[y*g.width+x]
	if c.Type != t {
		c.Type = t
		g.dirty.Store(true)
	}
	return true
}

// Clear resets every cell, border included, to t.
func (g *Grid) Clear(t CellType) {
	for i := range g.cells {
		g.cells[i].Type = t
	}
	g.dirty.Store(true)
}

// GeometryDirty reports whether cell types changed since the flag was last
// taken.
func (g *Grid) GeometryDirty() bool {
	return g.dirty.Load()
}

// TakeGeometryDirty returns the dirty flag and clears it.
func (g *Grid) TakeGeometryDirty() bool {
	return g.dirty.Swap(false)
}

// OpenSideFaces reports, for a wall cell, which orthogonal neighbours are
// Path (up, right, down, left). Path cells report no open faces. ok is false
// out of bounds.
func (g *Grid) OpenSideFaces(x, y int) (faces [4]bool, ok bool) {
	c := g.CellAt(x, y)
	if c == nil {
		return faces, false
	}
	if c.Type == Path {
		return faces, true
	}
	for i, d := range Orthogonal {
		if nei := g.Neighbor(c, d); nei != nil && nei.Type == Path {
			faces[i] = true
		}
	}
	return faces, true
}

// CountOrthogonal counts the axis neighbours of c with type t.
func (g *Grid) CountOrthogonal(c *Cell, t CellType) int {
	n := 0
	for _, d := range Orthogonal {
		if nei := g.Neighbor(c, d); nei != nil && (t == Any || nei.Type == t) {
			n++
		}
	}
	return n
}

// IsStraightWall reports whether c is a wall with exactly two Path axis
// neighbours on opposite sides. Cells touching the border never qualify.
func (g *Grid) IsStraightWall(c *Cell) bool {
	if c == nil || c.Type != Wall {
		return false
	}
	var open []Dir
	for _, d := range Orthogonal {
		nei := g.Neighbor(c, d)
		if nei == nil {
			return false
		}
		if nei.Type == Path {
			open = append(open, d)
		}
	}
	return len(open) == 2 && open[1] == open[0].Opposite()
}

// CountType counts cells of type t.
func (g *Grid) CountType(t CellType) int {
	n := 0
	for i := range g.cells {
		if t == Any || g.cells[i].Type == t {
			n++
		}
	}
	return n
}

// RandomCell picks a uniformly random cell of type t (or any type for Any).
// Returns nil if no cell matches.
func (g *Grid) RandomCell(rng *rand.Rand, t CellType) *Cell {
	return g.RandomCellWhere(rng, func(c *Cell) bool {
		return t == Any || c.Type == t
	})
}

// RandomCellWhere picks a uniformly random cell satisfying keep, or nil.
func (g *Grid) RandomCellWhere(rng *rand.Rand, keep func(*Cell) bool) *Cell {
	var candidates []int
	for i := range g.cells {
		if keep(&g.cells[i]) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return &g.cells[candidates[rng.Intn(len(candidates))]]
}

// Clone copies cell types into a new grid. Occupancy is not copied.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]Cell, len(g.cells)),
		occ:    make([][]OccupantID, len(g.cells)),
	}
	copy(c.cells, g.cells)
	c.dirty.Store(true)
	return c
}

// Types returns a row-major copy of all cell types.
func (g *Grid) Types() []CellType {
	out := make([]CellType, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].Type
	}
	return out
}

// String renders the grid with '#' for walls and '.' for paths.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := range g.height {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := range g.width {
			if g.cells[y*g.width+x].Type == Wall {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
