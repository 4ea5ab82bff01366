package maze

// Traversable decides whether a step from one cell to an adjacent one is
// allowed. It is evaluated lazily on each candidate edge during search.
type Traversable func(from, to *Cell) bool

// BothPath is the default predicate: both ends must be Path.
func BothPath(from, to *Cell) bool {
	return from.Type == Path && to.Type == Path
}

// FindPath runs a breadth-first search over the 4-connected cell graph from
// (x1, y1) to (x2, y2). Neighbours expand in N, E, S, W order, so equal-length
// routes resolve deterministically. The result holds cell values from start
// to goal inclusive; it is empty when either end is out of bounds or no route
// exists. A nil pass uses BothPath.
func (g *Grid) FindPath(x1, y1, x2, y2 int, pass Traversable) []Cell {
	start := g.CellAt(x1, y1)
	goal := g.CellAt(x2, y2)
	if start == nil || goal == nil {
		return nil
	}
	if pass == nil {
		pass = BothPath
	}
	if start == goal {
		return []Cell{*start}
	}

	const none = -1
	cameFrom := make([]int, len(g.cells))
	for i := range cameFrom {
		cameFrom[i] = none
	}
	visited := make([]bool, len(g.cells))

	si := g.index(start)
	gi := g.index(goal)
	visited[si] = true
	queue := []int{si}
	found := false

	for len(queue) > 0 {
		ci := queue[0]
		queue = queue[1:]
		if ci == gi {
			found = true
			break
		}
		cur := &g.cells[ci]
		for _, d := range Orthogonal {
			nei := g.Neighbor(cur, d)
			if nei == nil {
				continue
			}
			ni := g.index(nei)
			if visited[ni] || !pass(cur, nei) {
				continue
			}
			visited[ni] = true
			cameFrom[ni] = ci
			queue = append(queue, ni)
		}
	}
	if !found {
		return nil
	}

	var rev []Cell
	for i := gi; i != none; i = cameFrom[i] {
		rev = append(rev, g.cells[i])
	}
	path := make([]Cell, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}

// Reachable returns the number of cells reachable from (x, y) through pass,
// counting the start cell. Out of bounds yields 0.
func (g *Grid) Reachable(x, y int, pass Traversable) int {
	start := g.CellAt(x, y)
	if start == nil {
		return 0
	}
	if pass == nil {
		pass = BothPath
	}
	visited := make([]bool, len(g.cells))
	visited[g.index(start)] = true
	queue := []*Cell{start}
	n := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		n++
		for _, d := range Orthogonal {
			nei := g.Neighbor(cur, d)
			if nei == nil || visited[g.index(nei)] || !pass(cur, nei) {
				continue
			}
			visited[g.index(nei)] = true
			queue = append(queue, nei)
		}
	}
	return n
}

// CorridorLength counts how many Path cells lie straight ahead of c in
// direction d, stopping at the first non-Path cell or after budget steps.
func (g *Grid) CorridorLength(c *Cell, d Dir, budget int) int {
	n := 0
	for cur := g.Neighbor(c, d); cur != nil && cur.Type == Path && n < budget; cur = g.Neighbor(cur, d) {
		n++
	}
	return n
}

// LongestCorridor returns the orthogonal direction with the longest straight
// run from c and its length. Ties go to the earlier direction in N, E, S, W.
func (g *Grid) LongestCorridor(c *Cell, budget int) (Dir, int) {
	best, bestLen := N, -1
	for _, d := range Orthogonal {
		if n := g.CorridorLength(c, d, budget); n > bestLen {
			best, bestLen = d, n
		}
	}
	return best, bestLen
}
