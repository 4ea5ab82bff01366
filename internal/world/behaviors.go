package world

import "github.com/vovakirdan/tui-maze/internal/maze"

// update runs the per-kind behaviour for one tick.
func (w *World) update(a *Actor, dt float64) {
	if a.Lifetime > 0 {
		a.age += dt
		if a.age >= a.Lifetime {
			a.Expired = true
		}
	}

	switch a.Kind {
	case KindPlayer:
		w.advanceMotion(a, dt)
		w.updatePlayer(a)
	case KindTurret:
		w.advanceMotion(a, dt)
		w.updateTurret(a, dt)
	case KindProjectile:
		if a.cell.Type == maze.Wall {
			a.Expired = true
		} else if !a.Moving() {
			w.RequestMove(a, maze.FromFacing(a.Facing.Dir))
		}
		w.advanceMotion(a, dt)
	case KindSeeker:
		w.advanceMotion(a, dt)
		w.updateSeeker(a)
	case KindPickup, KindObstacle:
	}
}

func (w *World) updatePlayer(a *Actor) {
	p := a.player
	if p.fire {
		p.fire = false
		w.fire(a, w.tuning.ShotSpeed)
	}
	if p.intent == maze.NoDir || a.Moving() || a.Rotating() {
		return
	}
	if want := p.intent.Facing(); a.Facing.Dir != want {
		a.Facing.RequestTurn(want)
		if a.Rotating() {
			return
		}
	}
	w.RequestMove(a, p.intent)
	p.intent = maze.NoDir
}

// fire launches a projectile from a's current cell along its facing.
func (w *World) fire(a *Actor, speed float64) ActorID {
	shot := &Actor{
		Kind:        KindProjectile,
		Transparent: true,
		Owner:       a.ID,
		Mover:       NewMover(speed),
		Facing:      NewFacing(a.Facing.Dir, 0),
	}
	return w.Defer(shot, a.cell)
}

func (w *World) updateTurret(a *Actor, dt float64) {
	t := a.turret
	switch t.state {
	case turretFiring:
		t.launch += dt
		if t.fireRate > 0 && t.launch > 1/t.fireRate {
			w.fire(a, w.tuning.TurretShotSpeed)
			t.launch = 0
		}
	case turretGathering:
		if a.Moving() || a.Rotating() {
			break
		}
		if t.heading != maze.NoDir && a.Facing.Dir == t.heading.Facing() {
			w.RequestMove(a, t.heading)
			t.heading = maze.NoDir
			break
		}
		d, ok := w.wanderDirection(a)
		if !ok {
			t.stateTimer = t.nextState
			break
		}
		if a.Facing.Dir != d.Facing() {
			a.Facing.RequestTurn(d.Facing())
			t.heading = d
			break
		}
		w.RequestMove(a, d)
	case turretIdle:
	}

	t.stateTimer += dt
	if t.stateTimer >= t.nextState {
		t.stateTimer = 0
		t.nextState = float64(w.rng.Intn(5)+5) / 5
		t.state = turretState((int(t.state) + w.rng.Intn(2)) % 3)
		t.heading = maze.NoDir
	}
}

// wanderDirection picks a random legal orthogonal direction, avoiding a
// reversal unless it is the only way out.
func (w *World) wanderDirection(a *Actor) (maze.Dir, bool) {
	back := maze.FromFacing(a.Facing.Dir + 2)
	var options []maze.Dir
	backOK := false
	for _, d := range maze.Orthogonal {
		dest := w.grid.Neighbor(a.cell, d)
		if dest == nil || !w.canMove(a, a.cell, dest) {
			continue
		}
		if d == back {
			backOK = true
			continue
		}
		options = append(options, d)
	}
	if len(options) == 0 {
		if backOK {
			return back, true
		}
		return maze.NoDir, false
	}
	return options[w.rng.Intn(len(options))], true
}

func (w *World) updateSeeker(a *Actor) {
	s := a.seeker
	s.counter++
	if a.Moving() {
		return
	}
	aim, ok := w.actors[s.aim]
	if !ok {
		s.path = nil
		return
	}

	repath := w.tuning.SeekerRepath
	if s.counter > repath {
		s.path = w.grid.FindPath(a.cell.X, a.cell.Y, aim.cell.X, aim.cell.Y, w.avoidObstacles)
		if len(s.path) > 0 {
			s.path = s.path[1:]
		}
		s.counter = 0
	}
	if len(s.path) == 0 {
		return
	}
	next := s.path[0]
	if w.RequestMoveTo(a, next.X, next.Y) {
		s.path = s.path[1:]
	}
	if len(s.path) == 0 {
		s.counter += repath
	}
}

// avoidObstacles lets path searches route around static blockers.
func (w *World) avoidObstacles(from, to *maze.Cell) bool {
	if !maze.BothPath(from, to) {
		return false
	}
	return !w.grid.AnyResident(to, func(id maze.OccupantID) bool {
		b := w.actors[id]
		return b != nil && b.Kind == KindObstacle
	})
}

// interact applies b's effect on a. Only a is mutated, plus world score.
func (w *World) interact(a, b *Actor) {
	switch a.Kind {
	case KindPlayer:
		switch b.Kind {
		case KindPickup:
			w.score += b.Value
			a.Mover.Speed += w.tuning.SpeedBoost
		case KindSeeker:
			w.hurt(a, w.tuning.SeekerDamage)
		case KindProjectile:
			if b.Owner != a.ID {
				w.hurt(a, 1)
			}
		}
	case KindPickup:
		if b.Kind == KindPlayer {
			a.Expired = true
		}
	case KindSeeker:
		if b.Kind == KindPlayer {
			a.Expired = true
		}
	case KindTurret:
		if b.Kind == KindProjectile && b.Owner != a.ID && !a.Expired {
			a.Expired = true
			a.turret.killedBy = b.Owner
		}
	case KindProjectile:
		switch b.Kind {
		case KindProjectile:
			return
		case KindPlayer, KindTurret:
			if b.ID == a.Owner {
				return
			}
		}
		a.Expired = true
	}
}

func (w *World) hurt(a *Actor, n int) {
	if a.Health == nil || a.Expired {
		return
	}
	if a.Health.Damage(n) {
		a.Expired = true
	}
}

// creditKill awards the turret bounty when the player's shot destroyed it.
func (w *World) creditKill(a *Actor) {
	if a.Kind != KindTurret || a.turret.killedBy == NoActor {
		return
	}
	if a.turret.killedBy == w.player {
		w.score += w.tuning.TurretBounty
		w.logger.Debug("turret destroyed", "id", a.ID, "bounty", w.tuning.TurretBounty)
	}
}
