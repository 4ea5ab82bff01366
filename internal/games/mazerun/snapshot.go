package mazerun

import (
	"math"

	"github.com/vovakirdan/tui-maze/internal/world"
)

// Snapshot returns a copy of the world state for replay checks and
// headless reporting. The zero Snapshot is returned if no level is loaded.
func (g *Game) Snapshot() world.Snapshot {
	if g.world == nil {
		return world.Snapshot{}
	}
	return g.world.Snapshot()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func Hash(snap world.Snapshot) uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Camera)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerHP) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerID)

	for _, t := range snap.Cells {
		h = h*31 + uint64(t)
	}

	for _, a := range snap.Actors {
		h = h*31 + uint64(a.ID)
		h = h*31 + uint64(a.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(a.Pos.X)
		h = h*31 + math.Float64bits(a.Pos.Y)
		h = h*31 + uint64(a.Facing+1) //#nosec G115 -- hash computation
		h = h*31 + uint64(a.HP)       //#nosec G115 -- hash computation
	}

	return h
}
