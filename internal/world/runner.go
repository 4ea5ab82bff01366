package world

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Command mutates the world on the simulation goroutine between ticks.
type Command func(w *World)

// Runner drives a World at a fixed rate on its own goroutine and publishes
// a snapshot after every tick. Readers never touch the World directly.
type Runner struct {
	world    *World
	tickRate int
	logger   *log.Logger

	// MaxTicks stops the loop after that many ticks; zero runs until
	// cancelled.
	MaxTicks uint64
	// StopOnDeath stops the loop once the player is gone.
	StopOnDeath bool

	cmds chan Command
	quit atomic.Bool

	mu    sync.RWMutex
	snap  Snapshot
	stats TickStats
}

// NewRunner wraps w. A nil logger discards output.
func NewRunner(w *World, tickRate int, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Runner{
		world:    w,
		tickRate: tickRate,
		logger:   logger,
		cmds:     make(chan Command, 64),
		snap:     w.Snapshot(),
	}
}

// Submit queues cmd for the next tick. It returns false if the queue is
// full.
func (r *Runner) Submit(cmd Command) bool {
	select {
	case r.cmds <- cmd:
		return true
	default:
		return false
	}
}

// Snapshot returns the most recently published state.
func (r *Runner) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap
}

// LastStats returns the stats of the most recent tick.
func (r *Runner) LastStats() TickStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}

// Stop asks the loop to exit at the next tick boundary.
func (r *Runner) Stop() {
	r.quit.Store(true)
}

// Run ticks the world until ctx is cancelled, Stop is called or a stop
// condition is met. Quit state is checked once per tick, never mid-tick.
func (r *Runner) Run(ctx context.Context) error {
	dt := 1.0 / float64(r.tickRate)
	ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
	defer ticker.Stop()

	r.logger.Info("simulation started", "tick_rate", r.tickRate)
	defer func() {
		r.logger.Info("simulation stopped", "ticks", r.world.Ticks(), "score", r.world.Score())
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if r.quit.Load() {
			return nil
		}

		r.drain()
		stats := r.world.Tick(dt)
		snap := r.world.Snapshot()

		r.mu.Lock()
		r.snap = snap
		r.stats = stats
		r.mu.Unlock()

		if r.MaxTicks > 0 && snap.Tick >= r.MaxTicks {
			return nil
		}
		if r.StopOnDeath && !snap.PlayerAlive {
			r.logger.Info("player died", "tick", snap.Tick)
			return nil
		}
	}
}

func (r *Runner) drain() {
	for {
		select {
		case cmd := <-r.cmds:
			cmd(r.world)
		default:
			return
		}
	}
}
