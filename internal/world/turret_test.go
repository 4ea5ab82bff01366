package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// newTurretWorld returns a world with a single turret at (x, y) facing dir.
// Shots are disabled so the state machine is the only rng consumer.
func newTurretWorld(g *maze.Grid, seed int64, x, y int, dir maze.Dir) (*World, *Actor) {
	tuning := DefaultTuning()
	tuning.TurretFireRate = 0
	w := New(g, rand.New(rand.NewSource(seed)), tuning, nil)
	id := w.SpawnTurret(g.CellAt(x, y), dir)
	a, _ := w.Actor(id)
	return w, a
}

func TestProjectileStoppedByPickup(t *testing.T) {
	w := newTestWorld(9, 9)
	coin := w.SpawnPickup(w.Grid().CellAt(4, 4), 10)
	shot := w.SpawnProjectile(w.Grid().CellAt(4, 4), maze.E, 1, ActorID(999))

	stats := w.Tick(0.05)
	require.Equal(t, 1, stats.Reaped)

	_, ok := w.Actor(shot)
	require.False(t, ok, "projectile should expire on the coin")
	_, ok = w.Actor(coin)
	require.True(t, ok, "only the player collects coins")
	require.Equal(t, []ActorID{coin}, residentsAt(w, 4, 4))
	require.Empty(t, residentsAt(w, 5, 4))
	require.Zero(t, w.Score())
}

func TestWanderReversesOnlyInDeadEnd(t *testing.T) {
	// Row y=1 is the only open corridor; facing east at its east end
	// leaves west as the single way out.
	w, a := newTurretWorld(openGrid(7, 3), 1, 5, 1, maze.E)

	d, ok := w.wanderDirection(a)
	require.True(t, ok)
	require.Equal(t, maze.W, d)
}

func TestWanderAvoidsReversalAtJunction(t *testing.T) {
	w, a := newTurretWorld(openGrid(7, 7), 2, 3, 3, maze.E)

	seen := make(map[maze.Dir]bool)
	for range 200 {
		d, ok := w.wanderDirection(a)
		require.True(t, ok)
		require.NotEqual(t, maze.W, d, "reversal while other ways are open")
		seen[d] = true
	}
	require.Len(t, seen, 3)
}

func TestWanderBlockedEverywhere(t *testing.T) {
	w, a := newTurretWorld(openGrid(3, 3), 3, 1, 1, maze.N)

	d, ok := w.wanderDirection(a)
	require.False(t, ok)
	require.Equal(t, maze.NoDir, d)
}

func TestGatheringWithoutMoveEndsState(t *testing.T) {
	w, a := newTurretWorld(openGrid(3, 3), 4, 1, 1, maze.N)
	a.turret.state = turretGathering
	a.turret.nextState = 1.6

	w.rng = rand.New(rand.NewSource(11))
	mirror := rand.New(rand.NewSource(11))
	wantNext := float64(mirror.Intn(5)+5) / 5
	wantState := turretState((int(turretGathering) + mirror.Intn(2)) % 3)

	w.updateTurret(a, 0.01)

	require.Zero(t, a.turret.stateTimer, "state timer should roll over at once")
	require.Equal(t, wantNext, a.turret.nextState)
	require.Equal(t, wantState, a.turret.state)
}

func TestTurretStateCycle(t *testing.T) {
	// A boxed-in turret never consumes rng while gathering, so a mirror
	// source reproduces every transition.
	w, a := newTurretWorld(openGrid(3, 3), 5, 1, 1, maze.N)
	mirror := rand.New(rand.NewSource(5))

	const dt = 0.1
	state, timer, next := turretFiring, 0.0, 1.0
	visited := map[turretState]bool{state: true}
	transitions := 0

	for range 400 {
		if state == turretGathering {
			timer = next
		}
		timer += dt
		if timer >= next {
			timer = 0
			next = float64(mirror.Intn(5)+5) / 5
			prev := state
			state = turretState((int(state) + mirror.Intn(2)) % 3)
			if state != prev {
				transitions++
				require.Equal(t, (int(prev)+1)%3, int(state), "states only advance firing, gathering, idle")
			}
			require.GreaterOrEqual(t, next, 1.0)
			require.LessOrEqual(t, next, 1.8)
		}

		w.updateTurret(a, dt)

		require.Equal(t, state, a.turret.state)
		require.Equal(t, next, a.turret.nextState)
		require.InDelta(t, timer, a.turret.stateTimer, 1e-9)
		visited[a.turret.state] = true
	}

	require.Positive(t, transitions)
	require.Len(t, visited, 3, "every state should come up in forty seconds")
	require.Zero(t, w.CountKind(KindProjectile))
	require.Equal(t, maze.Point{X: 1, Y: 1}, a.Cell().Point())
}

func TestGatheringTurretWanders(t *testing.T) {
	w, a := newTurretWorld(openGrid(9, 9), 6, 4, 4, maze.E)

	moves, reversals := 0, 0
	last := a.Cell().Point()
	lastDir := maze.NoDir
	for range 300 {
		a.turret.state = turretGathering
		a.turret.stateTimer = 0
		w.Tick(1.0 / 60)

		if p := a.Cell().Point(); p != last {
			d := dirBetween(last, p)
			if lastDir != maze.NoDir && d == lastDir.Opposite() {
				reversals++
			}
			moves++
			last, lastDir = p, d
		}
	}

	require.Greater(t, moves, 3)
	require.Zero(t, reversals, "an open grid always offers a way other than back")
}

func dirBetween(from, to maze.Point) maze.Dir {
	for _, d := range maze.Orthogonal {
		if from.Add(d.Offset()) == to {
			return d
		}
	}
	return maze.NoDir
}
