// maze is a terminal maze runner built on a tile-grid actor simulation.
//
// Usage:
//
//	maze list                - List available modes
//	maze play <mode>         - Play a mode
//	maze menu                - Start menu to pick modes interactively
//	maze scores <mode>       - Show high scores for a mode
//	maze generate            - Print a generated level as ASCII
//	maze simulate            - Run a headless simulation with a random bot
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible levels
//	--db <path>           - Set database path (default: ~/.maze/scores.db)
//	--config <path>       - Custom level config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file (needed to see logs while playing)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/mazerun"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logger is built from --log-level before any command runs.
var logger = log.New(io.Discard)

// logSink is the open --log-file, if any.
var logSink *os.File

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze Run - Survive generated mazes in your terminal",
	Long: `Maze Run drops you into a procedurally generated maze full of
wandering turrets, path-finding seekers and coins.

Available commands:
  list      - Show all available modes
  play      - Play a specific mode directly
  menu      - Interactive mode picker menu
  scores    - View high scores
  generate  - Print a generated level
  simulate  - Run the simulation headless

Examples:
  maze list
  maze play maze
  maze play arena --difficulty hard
  maze menu
  maze generate --seed 42 --save
  maze simulate --ticks 1200 --log-level debug`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.maze/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom level config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setupLogging builds the CLI logger and hands the game its settings.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("maze: --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("maze: open log file: %w", err)
		}
		logSink = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          "maze",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})

	mazerun.SetConfigPath(flagConfig)
	mazerun.SetDifficultyPreset(flagDifficulty)
	// The alt screen owns stderr while playing, so the game only logs
	// when a file is given.
	if logSink != nil {
		mazerun.SetLogger(logger)
	}
	return nil
}

// runSeed returns --seed, or a time-based seed when it is unset.
func runSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
