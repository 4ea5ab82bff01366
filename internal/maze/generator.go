package maze

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

const (
	// DefaultStraightness is the extra weight given to continuing straight.
	DefaultStraightness = 5
	// DefaultCycleness scales the number of loop-injection attempts.
	DefaultCycleness = 1.0
	// cycleDensity is the number of cells per cycle attempt at cycleness 1.
	cycleDensity = 50
	// maxWallTries bounds the random wall draws made by one cycle attempt.
	maxWallTries = 1000
)

// Generator grows a connected maze of mostly 1-wide corridors with a
// tunable straightness bias, then knocks out straight walls to add loops.
type Generator struct {
	Straightness int
	Cycleness    float64

	rng    *rand.Rand
	logger *log.Logger
}

// GenStats summarises one generation run.
type GenStats struct {
	GrowthSteps   int
	Restarts      int
	CycleAttempts int
	CyclesAdded   int
	PathCells     int
}

// NewGenerator creates a generator drawing from rng. A nil logger discards
// output.
func NewGenerator(rng *rand.Rand, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{
		Straightness: DefaultStraightness,
		Cycleness:    DefaultCycleness,
		rng:          rng,
		logger:       logger,
	}
}

// Generate rebuilds grid as a maze: clear to Wall, grow the corridor tree,
// inject cycles.
func (gen *Generator) Generate(grid *Grid) GenStats {
	grid.Clear(Wall)
	stats := gen.Grow(grid)
	added := gen.InjectCycles(grid)
	stats.CycleAttempts = gen.cycleAttempts(grid)
	stats.CyclesAdded = len(added)
	stats.PathCells = grid.CountType(Path)

	gen.logger.Debug("maze generated",
		"width", grid.Width(),
		"height", grid.Height(),
		"straightness", gen.Straightness,
		"cycleness", gen.Cycleness,
		"steps", stats.GrowthSteps,
		"restarts", stats.Restarts,
		"cycles", stats.CyclesAdded,
	)
	return stats
}

// Grow extends the Path network of grid until no cell can grow. If the grid
// has no Path cell yet, a random interior cell seeds it. Grids without an
// interior are left as they are.
func (gen *Generator) Grow(grid *Grid) GenStats {
	var stats GenStats
	if grid.Width() <= 2 || grid.Height() <= 2 {
		return stats
	}

	cur := grid.RandomCell(gen.rng, Path)
	if cur == nil {
		cur = grid.RandomCellWhere(gen.rng, func(c *Cell) bool {
			return grid.IsInterior(c.X, c.Y)
		})
		grid.SetType(cur.X, cur.Y, Path)
	}

	prev := NoDir
	for {
		dirs := gen.probableDirections(grid, cur)
		total := 0
		for i, ok := range dirs {
			if ok {
				total += gen.weight(Orthogonal[i], prev)
			}
		}

		if total == 0 {
			cur = gen.growableCell(grid)
			if cur == nil {
				break
			}
			stats.Restarts++
			prev = NoDir
			continue
		}

		pick := gen.rng.Intn(total)
		for i, ok := range dirs {
			if !ok {
				continue
			}
			d := Orthogonal[i]
			pick -= gen.weight(d, prev)
			if pick < 0 {
				cur = grid.Neighbor(cur, d)
				grid.SetType(cur.X, cur.Y, Path)
				prev = d
				stats.GrowthSteps++
				break
			}
		}
	}
	stats.PathCells = grid.CountType(Path)
	return stats
}

func (gen *Generator) weight(d, prev Dir) int {
	if d == prev {
		return 1 + gen.Straightness
	}
	return 1
}

// probableDirections returns, per orthogonal direction, whether carving the
// neighbour of c in that direction keeps corridors one cell wide: the
// neighbour must be an interior wall, touch no other Path along the axes,
// and its Path diagonals may only flank the cell we came from.
func (gen *Generator) probableDirections(grid *Grid, c *Cell) [4]bool {
	var out [4]bool
	if c == nil {
		return out
	}
	for i, d := range Orthogonal {
		nei := grid.Neighbor(c, d)
		if nei == nil || nei.Type == Path || !grid.IsInterior(nei.X, nei.Y) {
			continue
		}

		open := 0
		back := NoDir
		for _, dd := range Orthogonal {
			if nn := grid.Neighbor(nei, dd); nn.Type == Path {
				open++
				back = dd
			}
		}
		if open > 1 {
			continue
		}

		ok := true
		for _, diag := range [4]Dir{NE, SE, SW, NW} {
			nn := grid.Neighbor(nei, diag)
			if nn.Type != Path {
				continue
			}
			if (diag+1)%8 != back && (diag+7)%8 != back {
				ok = false
				break
			}
		}
		out[i] = ok
	}
	return out
}

// growableCell searches breadth-first through the Path network for a cell
// that still has a probable direction.
func (gen *Generator) growableCell(grid *Grid) *Cell {
	start := grid.RandomCell(gen.rng, Path)
	if start == nil {
		return nil
	}
	visited := make([]bool, grid.Len())
	visited[grid.index(start)] = true
	queue := []*Cell{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, ok := range gen.probableDirections(grid, cur) {
			if ok {
				return cur
			}
		}
		for _, d := range Orthogonal {
			nei := grid.Neighbor(cur, d)
			if nei == nil || nei.Type != Path || visited[grid.index(nei)] {
				continue
			}
			visited[grid.index(nei)] = true
			queue = append(queue, nei)
		}
	}
	return nil
}

func (gen *Generator) cycleAttempts(grid *Grid) int {
	return int(float64(grid.Len()/cycleDensity) * gen.Cycleness)
}

// InjectCycles converts random straight walls to Path, creating loops
// between parallel corridors. Each attempt draws up to maxWallTries walls
// and gives up quietly when none of them is straight. Returns the converted
// coordinates in conversion order.
func (gen *Generator) InjectCycles(grid *Grid) []Point {
	attempts := gen.cycleAttempts(grid)
	if attempts <= 0 {
		return nil
	}

	walls := make([]int, 0, grid.Len())
	for i := range grid.Len() {
		if c := grid.CellByIndex(i); c.Type == Wall && grid.IsInterior(c.X, c.Y) {
			walls = append(walls, i)
		}
	}

	var added []Point
	for range attempts {
		for try := 0; try < maxWallTries && len(walls) > 0; try++ {
			j := gen.rng.Intn(len(walls))
			c := grid.CellByIndex(walls[j])
			if !grid.IsStraightWall(c) {
				continue
			}
			grid.SetType(c.X, c.Y, Path)
			added = append(added, c.Point())
			walls[j] = walls[len(walls)-1]
			walls = walls[:len(walls)-1]
			break
		}
	}
	return added
}

// GenerateOpenArena opens the whole interior, then scatters obstacle walls
// over percent% of the grid area. Connectivity is not guaranteed.
func (gen *Generator) GenerateOpenArena(grid *Grid, percent int) GenStats {
	grid.Clear(Wall)
	for y := 1; y < grid.Height()-1; y++ {
		for x := 1; x < grid.Width()-1; x++ {
			grid.SetType(x, y, Path)
		}
	}

	obstacles := grid.Len() * percent / 100
	for range obstacles {
		c := grid.RandomCell(gen.rng, Path)
		if c == nil {
			break
		}
		grid.SetType(c.X, c.Y, Wall)
	}

	stats := GenStats{PathCells: grid.CountType(Path)}
	gen.logger.Debug("arena generated", "width", grid.Width(), "height", grid.Height(), "obstacles", obstacles)
	return stats
}
