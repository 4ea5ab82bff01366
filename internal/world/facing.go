package world

// Facing is a timed quarter-turn rotation state. Dir is 0..3 (up, right,
// down, left).
type Facing struct {
	Dir       int
	TurnSpeed float64 // quarter turns per second; <= 0 turns instantly

	rotating bool
	target   int
	delta    int
	progress float64
}

// NewFacing returns a settled facing.
func NewFacing(dir int, turnSpeed float64) *Facing {
	return &Facing{Dir: wrapFacing(dir), TurnSpeed: turnSpeed}
}

func wrapFacing(d int) int {
	return ((d % 4) + 4) % 4
}

// turnDelta returns the shortest signed quarter-turn count from one facing
// to another. A half turn is always +2.
func turnDelta(from, to int) int {
	switch wrapFacing(to - from) {
	case 1:
		return 1
	case 2:
		return 2
	case 3:
		return -1
	default:
		return 0
	}
}

// RequestTurn begins rotating toward dir. Returns false when already
// rotating or already facing dir.
func (f *Facing) RequestTurn(dir int) bool {
	if f.rotating {
		return false
	}
	dir = wrapFacing(dir)
	delta := turnDelta(f.Dir, dir)
	if delta == 0 {
		return false
	}
	if f.TurnSpeed <= 0 {
		f.Dir = dir
		return true
	}
	f.rotating = true
	f.target = dir
	f.delta = delta
	f.progress = 0
	return true
}

// Rotating reports whether a turn is in progress.
func (f *Facing) Rotating() bool {
	return f.rotating
}

// Angle returns the current heading in quarter turns, interpolated while
// rotating. Renderers round it to the nearest facing.
func (f *Facing) Angle() float64 {
	if !f.rotating {
		return float64(f.Dir)
	}
	return float64(f.Dir) + float64(f.delta)*f.progress
}

func (f *Facing) advance(dt float64) {
	if !f.rotating {
		return
	}
	steps := f.delta
	if steps < 0 {
		steps = -steps
	}
	f.progress += dt * f.TurnSpeed / float64(steps)
	if f.progress >= 1 {
		f.Dir = f.target
		f.rotating = false
		f.progress = 0
		f.delta = 0
	}
}
