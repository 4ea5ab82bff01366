// Package config provides YAML-based level configuration loading and
// difficulty management for the maze game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MazeConfig contains all configuration for a maze level.
type MazeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Player     PlayerConfig     `yaml:"player"`
	Turrets    TurretConfig     `yaml:"turrets"`
	Seekers    SeekerConfig     `yaml:"seekers"`
	Pickups    PickupConfig     `yaml:"pickups"`
	Spawns     []SpawnConfig    `yaml:"spawns"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines level dimensions and placement limits.
type GridConfig struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	ArenaObstacles int `yaml:"arena_obstacles"` // percent of the area walled in arena mode
	SpawnRetries   int `yaml:"spawn_retries"`   // random draws per free-cell search
	CorridorBudget int `yaml:"corridor_budget"` // max steps for corridor lookahead
}

// GeneratorConfig defines maze shape parameters.
type GeneratorConfig struct {
	Straightness int     `yaml:"straightness"`
	Cycleness    float64 `yaml:"cycleness"`
}

// PlayerConfig defines the player actor.
type PlayerConfig struct {
	Speed      float64 `yaml:"speed"`      // cells per second
	TurnSpeed  float64 `yaml:"turn_speed"` // quarter turns per second
	HP         int     `yaml:"hp"`
	ShotSpeed  float64 `yaml:"shot_speed"`
	SpeedBoost float64 `yaml:"speed_boost"` // added per pickup
}

// TurretConfig defines wandering cannons.
type TurretConfig struct {
	Count       int     `yaml:"count"`
	Speed       float64 `yaml:"speed"`
	TurnSpeed   float64 `yaml:"turn_speed"`
	FireRate    float64 `yaml:"fire_rate"` // shots per second while firing
	ShotSpeed   float64 `yaml:"shot_speed"`
	Bounty      int     `yaml:"bounty"`
	MinCorridor int     `yaml:"min_corridor"`
}

// SeekerConfig defines path-following hunters.
type SeekerConfig struct {
	Count       int     `yaml:"count"`
	Speed       float64 `yaml:"speed"`
	RepathTicks int     `yaml:"repath_ticks"`
	Damage      int     `yaml:"damage"`
}

// PickupConfig defines coins placed at level start.
type PickupConfig struct {
	Count int `yaml:"count"`
	Value int `yaml:"value"`
}

// SpawnConfig defines a periodic spawn schedule.
type SpawnConfig struct {
	Kind     string  `yaml:"kind"`     // pickup, turret, seeker, obstacle
	Period   float64 `yaml:"period"`   // seconds between batches
	Batch    int     `yaml:"batch"`    // actors per batch
	Lifetime float64 `yaml:"lifetime"` // seconds, 0 = unlimited
	Max      int     `yaml:"max"`      // total cap, 0 = unlimited
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
	PeriodReduction float64 `yaml:"period_reduction"` // Fraction cut from spawn periods at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values yield normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return DifficultyNormal
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks the config for values the simulation cannot run with.
func (c MazeConfig) Validate() error {
	switch {
	case c.Grid.Width < 3 || c.Grid.Height < 3:
		return fmt.Errorf("%w: grid %dx%d is smaller than 3x3", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.Grid.ArenaObstacles < 0 || c.Grid.ArenaObstacles > 90:
		return fmt.Errorf("%w: arena_obstacles %d outside 0..90", ErrInvalidConfig, c.Grid.ArenaObstacles)
	case c.Generator.Straightness < 0:
		return fmt.Errorf("%w: negative straightness", ErrInvalidConfig)
	case c.Generator.Cycleness < 0:
		return fmt.Errorf("%w: negative cycleness", ErrInvalidConfig)
	case c.Player.Speed <= 0 || c.Player.ShotSpeed <= 0:
		return fmt.Errorf("%w: player speeds must be positive", ErrInvalidConfig)
	case c.Player.HP <= 0:
		return fmt.Errorf("%w: player hp must be positive", ErrInvalidConfig)
	case c.Turrets.Count < 0 || c.Seekers.Count < 0 || c.Pickups.Count < 0:
		return fmt.Errorf("%w: negative actor count", ErrInvalidConfig)
	case c.uses("turret") && (c.Turrets.Speed <= 0 || c.Turrets.ShotSpeed <= 0):
		return fmt.Errorf("%w: turret speeds must be positive", ErrInvalidConfig)
	case c.uses("seeker") && c.Seekers.Speed <= 0:
		return fmt.Errorf("%w: seeker speed must be positive", ErrInvalidConfig)
	}
	for i, s := range c.Spawns {
		switch s.Kind {
		case "pickup", "coin", "turret", "seeker", "obstacle":
		default:
			return fmt.Errorf("%w: spawns[%d]: unknown kind %q", ErrInvalidConfig, i, s.Kind)
		}
		if s.Period <= 0 || s.Batch <= 0 {
			return fmt.Errorf("%w: spawns[%d]: period and batch must be positive", ErrInvalidConfig, i)
		}
		if s.Lifetime < 0 || s.Max < 0 {
			return fmt.Errorf("%w: spawns[%d]: negative lifetime or max", ErrInvalidConfig, i)
		}
	}
	return nil
}

// uses reports whether the level places kind at start or spawns it later.
func (c MazeConfig) uses(kind string) bool {
	switch kind {
	case "turret":
		if c.Turrets.Count > 0 {
			return true
		}
	case "seeker":
		if c.Seekers.Count > 0 {
			return true
		}
	}
	for _, s := range c.Spawns {
		if s.Kind == kind {
			return true
		}
	}
	return false
}
