package world

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Tuning holds per-kind behaviour parameters.
type Tuning struct {
	PlayerSpeed     float64
	PlayerTurnSpeed float64
	PlayerHP        int
	ShotSpeed       float64
	SpeedBoost      float64
	PickupValue     int

	TurretSpeed     float64
	TurretTurnSpeed float64
	TurretFireRate  float64
	TurretShotSpeed float64
	TurretBounty    int
	MinCorridor     int

	SeekerSpeed  float64
	SeekerRepath int
	SeekerDamage int

	// SpawnRetries bounds random draws when looking for a free cell.
	SpawnRetries int
	// CorridorBudget bounds corridor lookahead walks.
	CorridorBudget int
}

// DefaultTuning returns the stock parameters.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:     4,
		PlayerTurnSpeed: 8,
		PlayerHP:        3,
		ShotSpeed:       12,
		SpeedBoost:      0.2,
		PickupValue:     10,

		TurretSpeed:     5,
		TurretTurnSpeed: 4,
		TurretFireRate:  2,
		TurretShotSpeed: 10,
		TurretBounty:    50,
		MinCorridor:     3,

		SeekerSpeed:  2,
		SeekerRepath: 20,
		SeekerDamage: 1,

		SpawnRetries:   64,
		CorridorBudget: 64,
	}
}

// TickStats summarises one call to Tick.
type TickStats struct {
	Updated      int
	Interactions int
	Reaped       int
	Spawned      int
}

// World is the simulation context for one level. It is not safe for
// concurrent use; Runner wraps it for threaded hosts.
type World struct {
	grid   *maze.Grid
	rng    *rand.Rand
	logger *log.Logger
	tuning Tuning

	actors  map[ActorID]*Actor
	order   []*Actor
	pending []*Actor
	nextID  ActorID
	ticking bool

	spawners []*Spawner
	onReap   []func(*Actor)

	tick    uint64
	elapsed float64
	score   int
	camera  int
	player  ActorID
}

// New creates an empty world over grid. A nil logger discards output.
func New(grid *maze.Grid, rng *rand.Rand, tuning Tuning, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &World{
		grid:   grid,
		rng:    rng,
		logger: logger,
		tuning: tuning,
		actors: make(map[ActorID]*Actor),
	}
	w.OnReap(w.creditKill)
	return w
}

// Grid returns the level grid.
func (w *World) Grid() *maze.Grid { return w.grid }

// Tuning returns the behaviour parameters in use.
func (w *World) Tuning() Tuning { return w.tuning }

// SetTuning replaces the behaviour parameters for future spawns and ticks.
func (w *World) SetTuning(t Tuning) { w.tuning = t }

// Score returns the accumulated score.
func (w *World) Score() int { return w.score }

// AddScore adjusts the score.
func (w *World) AddScore(n int) { w.score += n }

// Ticks returns the number of completed ticks.
func (w *World) Ticks() uint64 { return w.tick }

// Elapsed returns simulated seconds.
func (w *World) Elapsed() float64 { return w.elapsed }

// Actor returns a live actor by id.
func (w *World) Actor(id ActorID) (*Actor, bool) {
	a, ok := w.actors[id]
	return a, ok
}

// Len returns the number of registered actors.
func (w *World) Len() int { return len(w.order) }

// Pending returns the number of spawns waiting to materialize.
func (w *World) Pending() int { return len(w.pending) }

// Each calls fn for every registered actor in insertion order.
func (w *World) Each(fn func(*Actor)) {
	for _, a := range w.order {
		fn(a)
	}
}

// CountKind returns the number of registered actors of kind k.
func (w *World) CountKind(k Kind) int {
	n := 0
	for _, a := range w.order {
		if a.Kind == k {
			n++
		}
	}
	return n
}

// OnReap registers fn to run for every actor removed in the reap pass.
func (w *World) OnReap(fn func(*Actor)) {
	w.onReap = append(w.onReap, fn)
}

// Spawn registers a in cell c and returns its id. During a tick the actor is
// queued and materializes after the reap pass.
func (w *World) Spawn(a *Actor, c *maze.Cell) ActorID {
	if w.ticking {
		return w.Defer(a, c)
	}
	w.assign(a, c)
	w.register(a)
	return a.ID
}

// Defer queues a for registration after the reap pass of the current or
// next tick. The id is assigned immediately.
func (w *World) Defer(a *Actor, c *maze.Cell) ActorID {
	w.assign(a, c)
	w.pending = append(w.pending, a)
	return a.ID
}

func (w *World) assign(a *Actor, c *maze.Cell) {
	if a == nil || c == nil {
		panic("world: spawn of nil actor or into nil cell")
	}
	w.nextID++
	a.ID = w.nextID
	a.cell = c
}

func (w *World) register(a *Actor) {
	w.grid.AddResident(a.cell, a.ID)
	w.actors[a.ID] = a
	w.order = append(w.order, a)
}

// destroy deregisters a from every cell it occupies.
func (w *World) destroy(a *Actor) {
	if a.Mover != nil && a.Mover.moving && a.Mover.to != a.cell {
		w.grid.RemoveResident(a.Mover.to, a.ID)
	}
	w.grid.RemoveResident(a.cell, a.ID)
	delete(w.actors, a.ID)
	for _, fn := range w.onReap {
		fn(a)
	}
}

// Tick advances the simulation by dt seconds: spawners, then the update,
// interaction and reap passes, then deferred spawns.
func (w *World) Tick(dt float64) TickStats {
	var stats TickStats
	w.ticking = true

	for _, s := range w.spawners {
		s.advance(w, dt)
	}

	for _, a := range w.order {
		if a == nil {
			panic("world: nil actor in registry")
		}
		w.update(a, dt)
		stats.Updated++
	}

	for _, a := range w.order {
		c := a.cell
		for _, id := range w.grid.Residents(c) {
			if id == a.ID {
				continue
			}
			b := w.actors[id]
			if b == nil {
				panic(fmt.Sprintf("world: cell (%d,%d) holds unknown actor %d", c.X, c.Y, id))
			}
			// Residents that are only arriving do not share the cell yet.
			if b.cell != c {
				continue
			}
			w.interact(a, b)
			stats.Interactions++
		}
	}

	live := w.order[:0]
	for _, a := range w.order {
		if a.Expired {
			w.destroy(a)
			stats.Reaped++
			continue
		}
		live = append(live, a)
	}
	for i := len(live); i < len(w.order); i++ {
		w.order[i] = nil
	}
	w.order = live

	w.ticking = false
	for _, a := range w.pending {
		w.register(a)
		stats.Spawned++
	}
	w.pending = w.pending[:0]

	w.tick++
	w.elapsed += dt
	return stats
}

// canMove is the per-kind move predicate.
func (w *World) canMove(a *Actor, _, to *maze.Cell) bool {
	if to == nil {
		return false
	}
	switch a.Kind {
	case KindProjectile:
		return true
	case KindSeeker:
		return to.Type == maze.Path && !w.Blocked(to, a.seeker.aim)
	default:
		return to.Type == maze.Path && !w.Blocked(to, NoActor)
	}
}

// Blocked reports whether c holds a non-transparent actor other than ignore.
func (w *World) Blocked(c *maze.Cell, ignore ActorID) bool {
	return w.grid.AnyResident(c, func(id maze.OccupantID) bool {
		if id == ignore {
			return false
		}
		b := w.actors[id]
		return b != nil && !b.Transparent
	})
}

// Occupied reports whether any registered or pending actor claims c.
func (w *World) Occupied(c *maze.Cell) bool {
	if len(w.grid.Residents(c)) > 0 {
		return true
	}
	for _, p := range w.pending {
		if p.cell == c {
			return true
		}
	}
	return false
}

// FreeCell draws random Path cells with no residents that also satisfy keep
// (nil accepts all). It gives up after SpawnRetries draws and returns nil.
func (w *World) FreeCell(keep func(*maze.Cell) bool) *maze.Cell {
	retries := w.tuning.SpawnRetries
	if retries <= 0 {
		retries = 1
	}
	for range retries {
		c := w.grid.RandomCell(w.rng, maze.Path)
		if c == nil {
			return nil
		}
		if w.Occupied(c) {
			continue
		}
		if keep != nil && !keep(c) {
			continue
		}
		return c
	}
	return nil
}
