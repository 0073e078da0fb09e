// apps/go-server/internal/sched/sched.go
//
// Scheduler collaborator for timed presentation effects.
// The game engine emits effects as (delay, action) data and never
// sleeps; this package turns them into real timer callbacks for sinks
// that want paced delivery (the websocket playback stream).
//
// No cancellation is offered: if a game resets mid-playback, stale
// callbacks still fire, but every effect is idempotent on the
// presentation side, so late delivery is harmless.

package sched

import (
	"sort"
	"time"

	"github.com/robalobadob/simon/apps/go-server/internal/game"
)

// Sink receives one effect when its delay elapses.
type Sink func(game.Effect)

// Scheduler dispatches effects on real timers.
type Scheduler struct{}

// New constructs a Scheduler.
func New() *Scheduler { return &Scheduler{} }

// Run schedules every effect against its own timer. Zero-delay effects
// are delivered synchronously, in emission order, before Run returns;
// delayed effects fire later on timer goroutines. Each delay is
// measured from the call to Run.
func (s *Scheduler) Run(effects []game.Effect, sink Sink) {
	for _, e := range effects {
		if e.Delay <= 0 {
			sink(e)
			continue
		}
		e := e
		time.AfterFunc(e.Delay, func() { sink(e) })
	}
}

// RunSync delivers all effects synchronously in delay order, ignoring
// real time. Used by tests and by callers that only need ordering.
func (s *Scheduler) RunSync(effects []game.Effect, sink Sink) {
	sorted := make([]game.Effect, len(effects))
	copy(sorted, effects)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Delay < sorted[j].Delay })
	for _, e := range sorted {
		sink(e)
	}
}

// Duration reports the total wall-clock span of an effect batch: the
// largest delay it contains. Callers use it to know when playback for
// a round has fully elapsed.
func Duration(effects []game.Effect) time.Duration {
	var max time.Duration
	for _, e := range effects {
		if e.Delay > max {
			max = e.Delay
		}
	}
	return max
}
