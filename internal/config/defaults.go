package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Grid: GridConfig{
			Width:          41,
			Height:         21,
			ArenaObstacles: 8,
			SpawnRetries:   64,
			CorridorBudget: 64,
		},
		Generator: GeneratorConfig{
			Straightness: 5,
			Cycleness:    1.0,
		},
		Player: PlayerConfig{
			Speed:      4,
			TurnSpeed:  8,
			HP:         3,
			ShotSpeed:  12,
			SpeedBoost: 0.2,
		},
		Turrets: TurretConfig{
			Count:       3,
			Speed:       5,
			TurnSpeed:   4,
			FireRate:    2,
			ShotSpeed:   10,
			Bounty:      50,
			MinCorridor: 3,
		},
		Seekers: SeekerConfig{
			Count:       1,
			Speed:       2,
			RepathTicks: 20,
			Damage:      1,
		},
		Pickups: PickupConfig{
			Count: 15,
			Value: 10,
		},
		Spawns: []SpawnConfig{
			{Kind: "pickup", Period: 5, Batch: 2, Lifetime: 20},
			{Kind: "seeker", Period: 30, Batch: 1, Max: 4},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				PeriodReduction: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "maze", "arena":
		return defaultMazeYAML
	default:
		return nil
	}
}
