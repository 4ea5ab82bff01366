package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/games/mazerun"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/world"
)

var (
	flagSimMode   string
	flagSimTicks  uint64
	flagSimReport time.Duration
	flagSimBot    bool
	flagSimDeath  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless",
	Long: `Run a level without the TUI. The world ticks on its own goroutine at
--fps while this command reports its state and, with --bot, steers the
player at random. Ctrl+C stops the run after the current tick.

Examples:
  maze simulate
  maze simulate --ticks 3600 --fps 120 --seed 7
  maze simulate --mode arena --bot=false --log-level debug`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimMode, "mode", mazerun.ModeMaze, "Level mode: maze or arena")
	simulateCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 600, "Stop after this many ticks (0 = until interrupted)")
	simulateCmd.Flags().DurationVar(&flagSimReport, "report", time.Second, "Status report interval")
	simulateCmd.Flags().BoolVar(&flagSimBot, "bot", true, "Drive the player with random input")
	simulateCmd.Flags().BoolVar(&flagSimDeath, "stop-on-death", true, "Stop when the player dies")
}

var (
	simTickStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	simScoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	simHPStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	simDeadStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	simDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := runSeed()
	lvl, err := mazerun.BuildWorld(cfg, flagSimMode, seed, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, simDimStyle.Render(fmt.Sprintf("%s seed=%d size=%dx%d paths=%d cycles=%d",
		flagSimMode, seed, lvl.World.Grid().Width(), lvl.World.Grid().Height(),
		lvl.Stats.PathCells, lvl.Stats.CyclesAdded)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := world.NewRunner(lvl.World, flagFPS, logger)
	r.MaxTicks = flagSimTicks
	r.StopOnDeath = flagSimDeath

	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx)
	}()

	dm := config.NewDifficultyManager(cfg.Difficulty)
	base := mazerun.TuningFromConfig(cfg)
	bot := rand.New(rand.NewSource(seed + 1)) //#nosec G404 -- bot input, not crypto

	report := time.NewTicker(flagSimReport)
	defer report.Stop()
	steer := time.NewTicker(150 * time.Millisecond)
	defer steer.Stop()

	for {
		select {
		case err := <-done:
			snap := r.Snapshot()
			fmt.Fprintln(out, statusLine(snap, r.LastStats()))
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(out, simDimStyle.Render("interrupted"))
				return nil
			}
			return err

		case <-report.C:
			fmt.Fprintln(out, statusLine(r.Snapshot(), r.LastStats()))

		case <-steer.C:
			dir := maze.Orthogonal[bot.Intn(len(maze.Orthogonal))]
			fire := flagSimBot && bot.Intn(3) == 0
			move := flagSimBot
			r.Submit(func(w *world.World) {
				lvl.Scale(dm, base)
				p := w.Player()
				if move {
					p.MoveRequest(dir)
				}
				if fire {
					p.FireRequest()
				}
			})
		}
	}
}

// statusLine renders one report row from a published snapshot.
func statusLine(snap world.Snapshot, stats world.TickStats) string {
	hp := simHPStyle.Render(fmt.Sprintf("hp=%d", snap.PlayerHP))
	if !snap.PlayerAlive {
		hp = simDeadStyle.Render("dead")
	}
	return fmt.Sprintf("%s %s %s %s",
		simTickStyle.Render(fmt.Sprintf("tick=%-6d", snap.Tick)),
		simScoreStyle.Render(fmt.Sprintf("score=%-5d", snap.Score)),
		hp,
		simDimStyle.Render(fmt.Sprintf("turrets=%d seekers=%d coins=%d shots=%d updated=%d reaped=%d",
			snap.CountKind(world.KindTurret), snap.CountKind(world.KindSeeker),
			snap.CountKind(world.KindPickup), snap.CountKind(world.KindProjectile),
			stats.Updated, stats.Reaped)),
	)
}
