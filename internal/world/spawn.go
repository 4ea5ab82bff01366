package world

import "github.com/vovakirdan/tui-maze/internal/maze"

// SpawnPlayer places the player in c. The world tracks a single player;
// spawning another replaces the tracked handle.
func (w *World) SpawnPlayer(c *maze.Cell) Player {
	a := &Actor{
		Kind:   KindPlayer,
		Mover:  NewMover(w.tuning.PlayerSpeed),
		Facing: NewFacing(maze.S.Facing(), w.tuning.PlayerTurnSpeed),
		Health: &Health{HP: w.tuning.PlayerHP, Max: w.tuning.PlayerHP},
		player: &playerBrain{intent: maze.NoDir},
	}
	w.player = w.Spawn(a, c)
	return Player{w: w, id: w.player}
}

// Player returns the handle of the tracked player.
func (w *World) Player() Player {
	return Player{w: w, id: w.player}
}

// SpawnTurret places a turret in c facing dir.
func (w *World) SpawnTurret(c *maze.Cell, dir maze.Dir) ActorID {
	a := &Actor{
		Kind:   KindTurret,
		Mover:  NewMover(w.tuning.TurretSpeed),
		Facing: NewFacing(dir.Facing(), w.tuning.TurretTurnSpeed),
		turret: &turretBrain{
			state:     turretFiring,
			fireRate:  w.tuning.TurretFireRate,
			nextState: 1,
			heading:   maze.NoDir,
		},
	}
	return w.Spawn(a, c)
}

// SpawnSeeker places a seeker in c that hunts aim.
func (w *World) SpawnSeeker(c *maze.Cell, aim ActorID) ActorID {
	a := &Actor{
		Kind:   KindSeeker,
		Mover:  NewMover(w.tuning.SeekerSpeed),
		seeker: &seekerBrain{aim: aim, counter: w.tuning.SeekerRepath},
	}
	return w.Spawn(a, c)
}

// SpawnPickup places a transparent coin worth value in c.
func (w *World) SpawnPickup(c *maze.Cell, value int) ActorID {
	a := &Actor{
		Kind:        KindPickup,
		Transparent: true,
		Value:       value,
	}
	return w.Spawn(a, c)
}

// SpawnObstacle places a static blocker in c.
func (w *World) SpawnObstacle(c *maze.Cell) ActorID {
	return w.Spawn(&Actor{Kind: KindObstacle}, c)
}

// SpawnProjectile launches a projectile from c along dir.
func (w *World) SpawnProjectile(c *maze.Cell, dir maze.Dir, speed float64, owner ActorID) ActorID {
	a := &Actor{
		Kind:        KindProjectile,
		Transparent: true,
		Owner:       owner,
		Mover:       NewMover(speed),
		Facing:      NewFacing(dir.Facing(), 0),
	}
	return w.Spawn(a, c)
}

// turretSite accepts cells with a straight corridor long enough to shoot
// down.
func (w *World) turretSite(c *maze.Cell) bool {
	_, n := w.grid.LongestCorridor(c, w.tuning.CorridorBudget)
	return n >= w.tuning.MinCorridor
}

// Place spawns an actor of kind k on a free cell chosen with FreeCell. keep
// narrows the candidate cells further (nil accepts all). It returns false
// when no cell was found; the spawn is skipped.
func (w *World) Place(k Kind, lifetime float64, keep func(*maze.Cell) bool) (ActorID, bool) {
	pred := keep
	if k == KindTurret {
		pred = func(c *maze.Cell) bool {
			return w.turretSite(c) && (keep == nil || keep(c))
		}
	}
	c := w.FreeCell(pred)
	if c == nil {
		w.logger.Debug("spawn skipped, no free cell", "kind", k)
		return NoActor, false
	}

	var id ActorID
	switch k {
	case KindTurret:
		d, _ := w.grid.LongestCorridor(c, w.tuning.CorridorBudget)
		id = w.SpawnTurret(c, d)
	case KindSeeker:
		id = w.SpawnSeeker(c, w.player)
	case KindPickup:
		id = w.SpawnPickup(c, w.tuning.PickupValue)
	case KindObstacle:
		id = w.SpawnObstacle(c)
	case KindPlayer:
		id = w.SpawnPlayer(c).ID()
	default:
		return NoActor, false
	}
	if lifetime > 0 {
		w.lookup(id).Lifetime = lifetime
	}
	return id, true
}

// lookup finds a registered or pending actor.
func (w *World) lookup(id ActorID) *Actor {
	if a, ok := w.actors[id]; ok {
		return a
	}
	for _, a := range w.pending {
		if a.ID == id {
			return a
		}
	}
	return nil
}
