package mazerun

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/world"
)

// Game modes
const (
	ModeMaze  = "maze"  // generated corridors with cycles
	ModeArena = "arena" // open floor with scattered walls
)

// Level is a freshly built world together with how it was generated.
type Level struct {
	World *world.World
	Mode  string
	Seed  int64
	Stats maze.GenStats

	Spawners []*world.Spawner
	periods  []float64 // base period per spawner, before difficulty scaling
}

// TuningFromConfig maps the YAML sections onto world behaviour parameters.
func TuningFromConfig(cfg config.MazeConfig) world.Tuning {
	t := world.DefaultTuning()

	t.PlayerSpeed = cfg.Player.Speed
	t.PlayerTurnSpeed = cfg.Player.TurnSpeed
	t.PlayerHP = cfg.Player.HP
	t.ShotSpeed = cfg.Player.ShotSpeed
	t.SpeedBoost = cfg.Player.SpeedBoost
	t.PickupValue = cfg.Pickups.Value

	t.TurretSpeed = cfg.Turrets.Speed
	t.TurretTurnSpeed = cfg.Turrets.TurnSpeed
	t.TurretFireRate = cfg.Turrets.FireRate
	t.TurretShotSpeed = cfg.Turrets.ShotSpeed
	t.TurretBounty = cfg.Turrets.Bounty
	t.MinCorridor = cfg.Turrets.MinCorridor

	t.SeekerSpeed = cfg.Seekers.Speed
	t.SeekerRepath = cfg.Seekers.RepathTicks
	t.SeekerDamage = cfg.Seekers.Damage

	if cfg.Grid.SpawnRetries > 0 {
		t.SpawnRetries = cfg.Grid.SpawnRetries
	}
	if cfg.Grid.CorridorBudget > 0 {
		t.CorridorBudget = cfg.Grid.CorridorBudget
	}
	return t
}

// GenerateGrid builds the terrain for mode using rng.
func GenerateGrid(cfg config.MazeConfig, mode string, rng *rand.Rand, logger *log.Logger) (*maze.Grid, maze.GenStats, error) {
	grid := maze.NewGrid(cfg.Grid.Width, cfg.Grid.Height)
	gen := maze.NewGenerator(rng, logger)

	switch mode {
	case ModeMaze:
		gen.Straightness = cfg.Generator.Straightness
		gen.Cycleness = cfg.Generator.Cycleness
		return grid, gen.Generate(grid), nil
	case ModeArena:
		return grid, gen.GenerateOpenArena(grid, cfg.Grid.ArenaObstacles), nil
	default:
		return nil, maze.GenStats{}, fmt.Errorf("mazerun: unknown mode %q", mode)
	}
}

// BuildWorld generates a level and populates it: the player first, then
// the configured turrets, seekers and pickups on free cells, then the
// periodic spawn schedules. Placement failures for anything but the
// player are skipped.
func BuildWorld(cfg config.MazeConfig, mode string, seed int64, logger *log.Logger) (*Level, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := rand.New(rand.NewSource(seed)) //#nosec G404 -- game RNG, not crypto

	grid, stats, err := GenerateGrid(cfg, mode, rng, logger)
	if err != nil {
		return nil, err
	}

	w := world.New(grid, rng, TuningFromConfig(cfg), logger)
	lvl := &Level{World: w, Mode: mode, Seed: seed, Stats: stats}

	start := w.FreeCell(nil)
	if start == nil {
		return nil, fmt.Errorf("mazerun: no free cell for the player in %dx%d %s", grid.Width(), grid.Height(), mode)
	}
	w.SpawnPlayer(start)

	populate := func(k world.Kind, n int) {
		placed := 0
		for range n {
			if _, ok := w.Place(k, 0, nil); ok {
				placed++
			}
		}
		if placed < n {
			logger.Debug("level underpopulated", "kind", k, "wanted", n, "placed", placed)
		}
	}
	populate(world.KindTurret, cfg.Turrets.Count)
	populate(world.KindSeeker, cfg.Seekers.Count)
	populate(world.KindPickup, cfg.Pickups.Count)

	for _, sc := range cfg.Spawns {
		k, ok := world.ParseKind(sc.Kind)
		if !ok {
			return nil, fmt.Errorf("mazerun: spawn kind %q: %w", sc.Kind, config.ErrInvalidConfig)
		}
		sp := w.AddSchedule(world.Schedule{
			Kind:     k,
			Period:   sc.Period,
			Batch:    sc.Batch,
			Lifetime: sc.Lifetime,
			Max:      sc.Max,
		})
		lvl.Spawners = append(lvl.Spawners, sp)
		lvl.periods = append(lvl.periods, sc.Period)
	}

	logger.Info("level built",
		"mode", mode,
		"seed", seed,
		"size", fmt.Sprintf("%dx%d", grid.Width(), grid.Height()),
		"paths", stats.PathCells,
		"cycles", stats.CyclesAdded,
		"actors", w.Len(),
	)
	return lvl, nil
}

// Scale applies difficulty to the level: spawn periods shrink and newly
// spawned seekers move faster as score and time grow.
func (l *Level) Scale(dm *config.DifficultyManager, base world.Tuning) {
	score := l.World.Score()
	ticks := int(l.World.Ticks())

	t := l.World.Tuning()
	t.SeekerSpeed = dm.Speed(base.SeekerSpeed, score, ticks)
	t.TurretSpeed = dm.Speed(base.TurretSpeed, score, ticks)
	l.World.SetTuning(t)

	for i, sp := range l.Spawners {
		sp.Period = dm.Period(l.periods[i], score, ticks)
	}
}
