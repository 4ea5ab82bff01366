package world

import "github.com/vovakirdan/tui-maze/internal/maze"

// InputHandler receives discrete input events from the host.
type InputHandler interface {
	MoveRequest(d maze.Dir)
	FireRequest()
	RotateCamera(delta int)
}

// Player is a typed handle to the player actor.
type Player struct {
	w  *World
	id ActorID
}

var _ InputHandler = Player{}

// ID returns the player's actor id.
func (p Player) ID() ActorID { return p.id }

// Actor returns the live player actor.
func (p Player) Actor() (*Actor, bool) {
	if p.w == nil || p.id == NoActor {
		return nil, false
	}
	a := p.w.lookup(p.id)
	return a, a != nil
}

// Alive reports whether the player is still registered and not expired.
func (p Player) Alive() bool {
	a, ok := p.Actor()
	return ok && !a.Expired
}

// HP returns remaining hit points, zero once dead.
func (p Player) HP() int {
	a, ok := p.Actor()
	if !ok {
		return 0
	}
	return a.Health.HP
}

// MoveRequest records a movement intent. The player turns toward d first
// and moves once facing it. The intent persists while the player is busy.
func (p Player) MoveRequest(d maze.Dir) {
	if !d.IsOrthogonal() {
		return
	}
	if a, ok := p.Actor(); ok {
		a.player.intent = d
	}
}

// FireRequest fires a projectile on the player's next update.
func (p Player) FireRequest() {
	if a, ok := p.Actor(); ok {
		a.player.fire = true
	}
}

// RotateCamera forwards delta quarter turns to the camera accumulator.
func (p Player) RotateCamera(delta int) {
	if p.w != nil {
		p.w.RotateCamera(delta)
	}
}

// RotateCamera accumulates view rotation in quarter turns.
func (w *World) RotateCamera(delta int) {
	w.camera = ((w.camera+delta)%4 + 4) % 4
}

// Camera returns the accumulated view rotation, 0..3.
func (w *World) Camera() int { return w.camera }
