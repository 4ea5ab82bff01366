// Package world runs the maze simulation: it owns every actor, drives the
// per-tick update, interaction and reap passes, and exposes read-only
// snapshots to renderers.
package world

import "github.com/vovakirdan/tui-maze/internal/maze"

// ActorID identifies an actor for its whole life. Zero is never assigned.
type ActorID = maze.OccupantID

// NoActor is the zero ActorID.
const NoActor ActorID = 0

// Kind tags the closed set of actor behaviours.
type Kind int

const (
	KindPlayer Kind = iota
	KindTurret
	KindProjectile
	KindPickup
	KindSeeker
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindTurret:
		return "turret"
	case KindProjectile:
		return "projectile"
	case KindPickup:
		return "pickup"
	case KindSeeker:
		return "seeker"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// ParseKind maps a config name to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k := KindPlayer; k <= KindObstacle; k++ {
		if k.String() == s {
			return k, true
		}
	}
	if s == "coin" {
		return KindPickup, true
	}
	return 0, false
}

// Vec2 is a continuous position in cell units.
type Vec2 struct {
	X, Y float64
}

// Health tracks hit points.
type Health struct {
	HP  int
	Max int
}

// Damage subtracts n hit points and reports whether the actor is dead.
func (h *Health) Damage(n int) bool {
	h.HP -= n
	if h.HP < 0 {
		h.HP = 0
	}
	return h.HP == 0
}

// Actor is a single simulated object. Capabilities are optional components;
// behaviour is chosen by Kind.
type Actor struct {
	ID          ActorID
	Kind        Kind
	Transparent bool
	Expired     bool

	// Owner is the actor that fired a projectile.
	Owner ActorID
	// Value is the score a pickup is worth.
	Value int
	// Lifetime in seconds; zero means unlimited.
	Lifetime float64

	Mover  *Mover
	Facing *Facing
	Health *Health

	cell *maze.Cell
	age  float64

	player *playerBrain
	turret *turretBrain
	seeker *seekerBrain
}

// Cell returns the cell the actor currently belongs to.
func (a *Actor) Cell() *maze.Cell {
	return a.cell
}

// Position returns the interpolated position of the actor.
func (a *Actor) Position() Vec2 {
	if a.Mover != nil && a.Mover.moving {
		return a.Mover.position()
	}
	return Vec2{X: float64(a.cell.X), Y: float64(a.cell.Y)}
}

// Direction returns the current facing as a quarter-turn index, or -1 for
// actors without one.
func (a *Actor) Direction() int {
	if a.Facing == nil {
		return -1
	}
	return a.Facing.Dir
}

// Moving reports whether the actor is between cells.
func (a *Actor) Moving() bool {
	return a.Mover != nil && a.Mover.moving
}

// Rotating reports whether the actor is mid-turn.
func (a *Actor) Rotating() bool {
	return a.Facing != nil && a.Facing.rotating
}

type playerBrain struct {
	intent maze.Dir
	fire   bool
}

type turretState int

const (
	turretFiring turretState = iota
	turretGathering
	turretIdle
)

func (s turretState) String() string {
	switch s {
	case turretFiring:
		return "firing"
	case turretGathering:
		return "gathering"
	default:
		return "idle"
	}
}

type turretBrain struct {
	state      turretState
	fireRate   float64
	launch     float64
	stateTimer float64
	nextState  float64
	heading    maze.Dir
	killedBy   ActorID
}

type seekerBrain struct {
	aim     ActorID
	path    []maze.Cell
	counter int
}
