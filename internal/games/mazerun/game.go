package mazerun

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/world"
)

// GameState constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover" // player died or the level could not be built
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives level and game-over events. Discarded unless set.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An empty string keeps the
// config file's own difficulty section.
func SetDifficultyPreset(preset string) {
	if preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes game logs to l. Nil restores the discard logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a world.World to the registry.Game interface.
type Game struct {
	mode string

	level *Level
	world *world.World
	state string
	err   error // why the level could not be built

	runtime    core.RuntimeConfig
	cfg        config.MazeConfig
	base       world.Tuning
	difficulty *config.DifficultyManager
	lastStats  world.TickStats

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game in the given mode (ModeMaze or ModeArena).
func New(mode string) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.mode
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeArena {
		return "Maze Run (Arena)"
	}
	return "Maze Run"
}

// Reset loads config and builds a fresh level from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultMazeConfig()
	}

	if difficultyPreset != "" {
		config.ApplyMazePreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.base = TuningFromConfig(cfg)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.minScreenW = 24
	g.minScreenH = 8
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.lastStats = world.TickStats{}
	g.level, g.err = BuildWorld(cfg, g.mode, runtime.Seed, logger)
	if g.err != nil {
		logger.Error("level build failed", "mode", g.mode, "err", g.err)
		g.world = nil
		g.state = StateGameOver
		return
	}
	g.world = g.level.World
	g.state = StatePlaying
}

// screenDir converts a direction on screen (0 up, 1 right, 2 down, 3 left)
// into a world direction under the current camera rotation.
func (g *Game) screenDir(f int) maze.Dir {
	return maze.FromFacing(f - g.world.Camera())
}

// Step translates input into world requests and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	p := g.world.Player()
	switch {
	case in.Has(core.ActionUp):
		p.MoveRequest(g.screenDir(0))
	case in.Has(core.ActionRight):
		p.MoveRequest(g.screenDir(1))
	case in.Has(core.ActionDown):
		p.MoveRequest(g.screenDir(2))
	case in.Has(core.ActionLeft):
		p.MoveRequest(g.screenDir(3))
	}
	if in.Has(core.ActionFire) {
		p.FireRequest()
	}
	if in.Has(core.ActionCamLeft) {
		p.RotateCamera(-1)
	}
	if in.Has(core.ActionCamRight) {
		p.RotateCamera(1)
	}

	g.level.Scale(g.difficulty, g.base)
	g.lastStats = g.world.Tick(g.runtime.DT())

	if !p.Alive() {
		g.state = StateGameOver
		logger.Info("game over",
			"mode", g.mode,
			"score", g.world.Score(),
			"ticks", g.world.Ticks(),
		)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.world != nil {
		score = g.world.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// World exposes the running simulation, nil if the level failed to build.
func (g *Game) World() *world.World {
	return g.world
}

// Level returns the current level and its generation stats.
func (g *Game) Level() *Level {
	return g.level
}

// Register the modes with the registry
func init() {
	registry.Register(ModeMaze, func() registry.Game {
		return New(ModeMaze)
	})
	registry.Register(ModeArena, func() registry.Game {
		return New(ModeArena)
	})
}
