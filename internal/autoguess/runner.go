// internal/autoguess/runner.go
//
// Runner drives a Scheduler from a single goroutine.
//
// Hint updates, chat text, user commands and timer fires are all funneled
// through one channel and applied in arrival order, so the scheduler itself
// needs no locks. Runner is also the scheduler's Ticker: it keeps at most
// one *time.Timer and tags every arm with a generation so a fire that raced
// a Cancel is dropped.

package autoguess

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/skribbl-hints/internal/game"
)

const eventBuffer = 64

type event struct {
	fn   func(*Scheduler)
	tick bool
	gen  uint64
}

// Runner owns a Scheduler and its event loop.
type Runner struct {
	ID string

	sched  *Scheduler
	events chan event
	done   chan struct{}

	// loop-goroutine only
	timer *time.Timer
	gen   uint64
}

// NewRunner builds a Runner; call Run to start the loop.
func NewRunner(cfg Config, src WordSource, sink GuessSink, opts ...Option) *Runner {
	r := &Runner{
		ID:     uuid.NewString(),
		events: make(chan event, eventBuffer),
		done:   make(chan struct{}),
	}
	logger := log.With().Str("run", r.ID).Logger()
	opts = append([]Option{WithLogger(logger)}, opts...)
	r.sched = New(cfg, src, sink, r, opts...)
	return r
}

// Run processes events until ctx is done. It must be called once.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)
	defer r.Cancel()

	r.sched.log.Info().Msg("auto-guess loop started")
	for {
		select {
		case <-ctx.Done():
			r.sched.log.Info().Msg("auto-guess loop stopped")
			return ctx.Err()
		case ev := <-r.events:
			if ev.tick {
				if ev.gen == r.gen {
					r.timer = nil
					r.sched.Tick()
				}
				continue
			}
			ev.fn(r.sched)
		}
	}
}

// Do runs fn on the loop goroutine. It reports false if the loop has exited.
func (r *Runner) Do(fn func(*Scheduler)) bool {
	return r.post(event{fn: fn})
}

// Observe forwards a game observation.
func (r *Runner) Observe(obs game.Observation) bool {
	return r.Do(func(s *Scheduler) { s.Observe(obs) })
}

// Chat forwards one chat message.
func (r *Runner) Chat(line string) bool {
	return r.Do(func(s *Scheduler) { s.HandleChatLine(line) })
}

// Start starts sending.
func (r *Runner) Start() bool { return r.Do(func(s *Scheduler) { s.Start() }) }

// Stop stops sending.
func (r *Runner) Stop() bool {
	return r.Do(func(s *Scheduler) { s.Stop("stopped") })
}

// Status fetches a snapshot from the loop.
func (r *Runner) Status(ctx context.Context) (Status, error) {
	reply := make(chan Status, 1)
	if !r.Do(func(s *Scheduler) { reply <- s.Status() }) {
		return Status{}, context.Canceled
	}
	select {
	case st := <-reply:
		return st, nil
	case <-ctx.Done():
		return Status{}, ctx.Err()
	case <-r.done:
		return Status{}, context.Canceled
	}
}

func (r *Runner) post(ev event) bool {
	select {
	case <-r.done:
		return false
	default:
	}
	select {
	case r.events <- ev:
		return true
	case <-r.done:
		return false
	}
}

// ---- Ticker (called from the loop goroutine only) ----

// Schedule arms the timer, replacing any pending fire.
func (r *Runner) Schedule(d time.Duration) {
	r.Cancel()
	gen := r.gen
	r.timer = time.AfterFunc(d, func() { r.post(event{tick: true, gen: gen}) })
}

// Cancel disarms the timer and invalidates any fire already in flight.
func (r *Runner) Cancel() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.gen++
}
