package world

import "github.com/vovakirdan/tui-maze/internal/maze"

// Schedule describes a periodic spawn.
type Schedule struct {
	Kind     Kind
	Period   float64 // seconds between batches
	Batch    int
	Lifetime float64 // seconds; zero means unlimited
	Max      int     // total spawns; zero means unlimited
	Where    func(*maze.Cell) bool
}

// Spawner drives one Schedule.
type Spawner struct {
	Schedule

	timer   float64
	spawned int
	skipped int
}

// AddSchedule registers s; it runs at the start of every tick.
func (w *World) AddSchedule(s Schedule) *Spawner {
	sp := &Spawner{Schedule: s}
	w.spawners = append(w.spawners, sp)
	return sp
}

// Spawned returns how many actors this schedule has placed.
func (s *Spawner) Spawned() int { return s.spawned }

// Skipped returns how many spawns found no free cell.
func (s *Spawner) Skipped() int { return s.skipped }

// Exhausted reports whether the schedule reached Max.
func (s *Spawner) Exhausted() bool {
	return s.Max > 0 && s.spawned >= s.Max
}

func (s *Spawner) advance(w *World, dt float64) {
	if s.Period <= 0 || s.Batch <= 0 || s.Exhausted() {
		return
	}
	s.timer += dt
	for s.timer >= s.Period {
		s.timer -= s.Period
		for range s.Batch {
			if s.Exhausted() {
				return
			}
			if _, ok := w.Place(s.Kind, s.Lifetime, s.Where); ok {
				s.spawned++
			} else {
				s.skipped++
			}
		}
	}
}
