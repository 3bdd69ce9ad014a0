// internal/autoguess/state.go
//
// State owned by the scheduler. RoundState covers one hidden word and is
// dropped wholesale on a round boundary; SchedulerState adds the live hint,
// candidates and settings that outlive a round.

package autoguess

import (
	"time"

	"github.com/robalobadob/skribbl-hints/internal/game"
)

// RoundState is everything learned while guessing one word.
type RoundState struct {
	SentThisRound   map[string]struct{}
	SentAttempts    map[string]int
	RetryMap        map[string]int // close-hit retries, capped at Config.MaxRetries
	CloseHitPending string         // at most one word awaiting a priority resend
	Queue           []string
}

func newRoundState() RoundState {
	return RoundState{
		SentThisRound: make(map[string]struct{}),
		SentAttempts:  make(map[string]int),
		RetryMap:      make(map[string]int),
	}
}

// reset empties the round in place.
func (r *RoundState) reset() {
	clear(r.SentThisRound)
	clear(r.SentAttempts)
	clear(r.RetryMap)
	r.CloseHitPending = ""
	r.Queue = nil
}

// tried reports whether w was already sent or attempted this round.
func (r *RoundState) tried(w string) bool {
	if _, ok := r.SentThisRound[w]; ok {
		return true
	}
	return r.SentAttempts[w] > 0
}

// SchedulerState is the full mutable state of one Scheduler.
type SchedulerState struct {
	Round  RoundState
	Config Config

	Running          bool
	Phase            game.Phase
	Blank            string // current blank pattern, "" when no hint
	Compact          string // compact form of Blank, "" when not derivable
	Candidates       []string
	SpamBlockedUntil time.Time
	LastGuess        string
	Message          string
}

// Status is a read-only snapshot for display.
type Status struct {
	Running           bool          `json:"running"`
	Phase             game.Phase    `json:"phase"`
	Blank             string        `json:"blank"`
	Compact           string        `json:"compact"`
	Candidates        int           `json:"candidates"`
	Preview           []string      `json:"preview"`
	Queue             int           `json:"queue"`
	CloseHitPending   string        `json:"closeHitPending,omitempty"`
	LastGuess         string        `json:"lastGuess,omitempty"`
	CooldownRemaining time.Duration `json:"cooldownRemaining"`
	Message           string        `json:"message"`
}
