package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseMaze(defaultMazeYAML)
	if err != nil {
		t.Fatalf("ParseMaze(embedded) error: %v", err)
	}
	def := DefaultMazeConfig()

	if cfg.Grid != def.Grid {
		t.Errorf("grid = %+v, expected %+v", cfg.Grid, def.Grid)
	}
	if cfg.Generator != def.Generator {
		t.Errorf("generator = %+v, expected %+v", cfg.Generator, def.Generator)
	}
	if cfg.Turrets != def.Turrets {
		t.Errorf("turrets = %+v, expected %+v", cfg.Turrets, def.Turrets)
	}
	if len(cfg.Spawns) != len(def.Spawns) {
		t.Fatalf("spawns = %d, expected %d", len(cfg.Spawns), len(def.Spawns))
	}
	for i := range cfg.Spawns {
		if cfg.Spawns[i] != def.Spawns[i] {
			t.Errorf("spawns[%d] = %+v, expected %+v", i, cfg.Spawns[i], def.Spawns[i])
		}
	}
}

func TestParseMazeOverlaysDefaults(t *testing.T) {
	cfg, err := ParseMaze([]byte("grid:\n  width: 15\n  height: 9\ngenerator:\n  straightness: 0\n"))
	if err != nil {
		t.Fatalf("ParseMaze() error: %v", err)
	}
	if cfg.Grid.Width != 15 || cfg.Grid.Height != 9 {
		t.Errorf("grid = %dx%d, expected 15x9", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Generator.Straightness != 0 {
		t.Errorf("straightness = %d, expected 0", cfg.Generator.Straightness)
	}
	if cfg.Generator.Cycleness != 1.0 {
		t.Errorf("cycleness = %v, expected default 1.0", cfg.Generator.Cycleness)
	}
	if cfg.Player.HP != 3 {
		t.Errorf("player hp = %d, expected default 3", cfg.Player.HP)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*MazeConfig)
	}{
		{"tiny grid", func(c *MazeConfig) { c.Grid.Width = 2 }},
		{"negative cycleness", func(c *MazeConfig) { c.Generator.Cycleness = -1 }},
		{"zero player speed", func(c *MazeConfig) { c.Player.Speed = 0 }},
		{"zero hp", func(c *MazeConfig) { c.Player.HP = 0 }},
		{"negative turret count", func(c *MazeConfig) { c.Turrets.Count = -1 }},
		{"arena too dense", func(c *MazeConfig) { c.Grid.ArenaObstacles = 95 }},
		{"unknown spawn kind", func(c *MazeConfig) {
			c.Spawns = append(c.Spawns, SpawnConfig{Kind: "dragon", Period: 1, Batch: 1})
		}},
		{"spawned turret cannot move", func(c *MazeConfig) {
			c.Turrets.Count = 0
			c.Turrets.Speed = 0
			c.Spawns = []SpawnConfig{{Kind: "turret", Period: 5, Batch: 1}}
		}},
		{"spawned seeker cannot move", func(c *MazeConfig) {
			c.Seekers.Count = 0
			c.Seekers.Speed = 0
			c.Spawns = []SpawnConfig{{Kind: "seeker", Period: 5, Batch: 1}}
		}},
		{"zero spawn period", func(c *MazeConfig) {
			c.Spawns = []SpawnConfig{{Kind: "pickup", Period: 0, Batch: 1}}
		}},
	}

	if err := DefaultMazeConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMazeConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadMazeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.yaml")
	if err := os.WriteFile(path, []byte("pickups:\n  count: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMaze(path)
	if err != nil {
		t.Fatalf("LoadMaze() error: %v", err)
	}
	if cfg.Pickups.Count != 2 {
		t.Errorf("pickups.count = %d, expected 2", cfg.Pickups.Count)
	}

	if _, err := LoadMaze(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadMaze(missing) should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid:\n  width: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMaze(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadMaze(bad) = %v, expected ErrInvalidConfig", err)
	}
}

func TestApplyMazePreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
		hp           int
	}{
		{DifficultyEasy, true, 0.0, 5},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMazeConfig()
			ApplyMazePreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("initial level = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
			if cfg.Player.HP != tc.hp {
				t.Errorf("hp = %d, expected %d", cfg.Player.HP, tc.hp)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) mismatch")
	}
	if ParsePreset("bogus") != DifficultyNormal {
		t.Error("unknown preset should fall back to normal")
	}
}

func TestDifficultyManager(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, PeriodReduction: 0.5},
	})

	if got := dm.Level(50, 0); got != 0.5 {
		t.Errorf("Level(50) = %v, expected 0.5", got)
	}
	if got := dm.Level(500, 0); got != 1.0 {
		t.Errorf("Level(500) = %v, expected clamp to 1.0", got)
	}
	if got := dm.Speed(2, 100, 0); got != 4 {
		t.Errorf("Speed(2) at max = %v, expected 4", got)
	}
	if got := dm.Period(10, 100, 0); got != 5 {
		t.Errorf("Period(10) at max = %v, expected 5", got)
	}

	dm.SetEnabled(false)
	dm.SetInitialLevel(0.2)
	if got := dm.Level(100, 0); got != 0.2 {
		t.Errorf("disabled Level = %v, expected initial 0.2", got)
	}
}

func TestValidateIgnoresSpeedOfUnusedKinds(t *testing.T) {
	cfg := DefaultMazeConfig()
	cfg.Turrets.Count = 0
	cfg.Turrets.Speed = 0
	cfg.Spawns = []SpawnConfig{{Kind: "pickup", Period: 5, Batch: 1}}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil when no turret is ever placed", err)
	}
}
