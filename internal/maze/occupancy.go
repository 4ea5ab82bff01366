package maze

import "fmt"

// OccupantID identifies an actor resident in a cell. The grid never
// dereferences it; ownership stays with the actor registry.
type OccupantID uint32

// Residents returns the IDs registered in c. The slice is a view owned by
// the grid and must not be modified or retained across mutations.
func (g *Grid) Residents(c *Cell) []OccupantID {
	if c == nil {
		return nil
	}
	return g.occ[g.index(c)]
}

// AddResident registers id in c. Registering the same ID twice corrupts
// the index and panics.
func (g *Grid) AddResident(c *Cell, id OccupantID) {
	i := g.index(c)
	for _, r := range g.occ[i] {
		if r == id {
			panic(fmt.Sprintf("maze: occupant %d already resident in cell (%d,%d)", id, c.X, c.Y))
		}
	}
	g.occ[i] = append(g.occ[i], id)
}

// RemoveResident deregisters id from c, reporting whether it was present.
func (g *Grid) RemoveResident(c *Cell, id OccupantID) bool {
	if c == nil {
		return false
	}
	i := g.index(c)
	list := g.occ[i]
	for j, r := range list {
		if r == id {
			last := len(list) - 1
			copy(list[j:], list[j+1:])
			list[last] = 0
			g.occ[i] = list[:last]
			return true
		}
	}
	return false
}

// AnyResident reports whether some resident of c satisfies match. A nil
// match accepts every resident.
func (g *Grid) AnyResident(c *Cell, match func(OccupantID) bool) bool {
	for _, id := range g.Residents(c) {
		if match == nil || match(id) {
			return true
		}
	}
	return false
}

// ClearResidents drops all occupancy records.
func (g *Grid) ClearResidents() {
	for i := range g.occ {
		g.occ[i] = g.occ[i][:0]
	}
}
