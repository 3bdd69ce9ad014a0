// internal/autoguess/scheduler.go
//
// Guess-automation scheduler.
//
// Responsibilities:
//   - Derive the phase and current hint from a game.Observation.
//   - Filter and rank the word list into a queue of untried candidates.
//   - Pace sends through a GuessSink, honoring spam cooldowns, close-hit
//     retries and round resets signalled in chat.
//
// Concurrency:
//   - Scheduler is not safe for concurrent use. Every method must be called
//     from one goroutine; Runner provides that loop. Timer fires arrive via
//     Tick, scheduled through the Ticker the scheduler was built with, and
//     at most one is ever pending.

package autoguess

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/skribbl-hints/internal/chat"
	"github.com/robalobadob/skribbl-hints/internal/game"
	"github.com/robalobadob/skribbl-hints/internal/pattern"
	"github.com/robalobadob/skribbl-hints/internal/words"
)

// GuessSink submits a guess to the game. Send reports whether the attempt
// went through structurally, not whether the guess was right.
type GuessSink interface {
	Send(text string) bool
}

// WordSource supplies the known words. *words.Collection satisfies it.
type WordSource interface {
	List() []string
}

// Ticker arms the scheduler's single timer. Schedule replaces any pending
// fire; the driver calls Scheduler.Tick when it goes off.
type Ticker interface {
	Schedule(d time.Duration)
	Cancel()
}

// Option customizes a Scheduler.
type Option func(*Scheduler)

// WithClock overrides time.Now, for cooldown arithmetic in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithLogger sets the logger used for sends, pauses and resets.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

// Scheduler is the auto-guess state machine.
type Scheduler struct {
	state   SchedulerState
	words   WordSource
	sink    GuessSink
	ticker  Ticker
	obs     game.Observation
	parser  *chat.Parser
	now     func() time.Time
	log     zerolog.Logger
	pending bool // a tick is scheduled on ticker
}

// New builds an idle scheduler.
func New(cfg Config, src WordSource, sink GuessSink, ticker Ticker, opts ...Option) *Scheduler {
	cfg = cfg.normalized()
	s := &Scheduler{
		state: SchedulerState{
			Round:   newRoundState(),
			Config:  cfg,
			Phase:   game.PhaseUnknown,
			Message: "idle",
		},
		words:  src,
		sink:   sink,
		ticker: ticker,
		parser: chat.NewParser(cfg.SelfName),
		now:    time.Now,
		log:    log.Logger,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ---------------------------------------------------------------------------
// Observation & candidates
// ---------------------------------------------------------------------------

// Observe installs the latest game observation and refreshes candidates.
// Entering a between-words phase from any other phase starts a new round.
func (s *Scheduler) Observe(obs game.Observation) {
	prev := s.state.Phase
	s.obs = obs
	s.Refresh()
	if cur := s.state.Phase; cur != prev && cur.IsBoundary() && prev != game.PhaseUnknown {
		s.ResetRound("round boundary")
	}
}

// Refresh re-reads the hint, recomputes the ranked candidates and, while
// running, refills the queue.
func (s *Scheduler) Refresh() {
	st := &s.state
	st.Phase = game.DerivePhase(s.obs)
	st.Blank = game.CurrentBlank(s.obs)
	st.Compact = ""
	if strings.Contains(st.Blank, "_") {
		st.Compact = pattern.BlankToCompact(st.Blank)
	}

	// Round bookkeeping (attempts, retries) survives a pause; only the live
	// candidates go.
	if !st.Phase.AllowsGuessing() {
		st.Candidates = nil
		st.Round.Queue = nil
		return
	}

	var matched []string
	for _, w := range s.words.List() {
		if s.matches(w) {
			matched = append(matched, w)
		}
	}
	ranked := pattern.Rank(words.Unique(matched), st.Blank)
	if len(ranked) > st.Config.WorkingSet {
		ranked = ranked[:st.Config.WorkingSet]
	}
	st.Candidates = ranked

	if st.Running {
		s.refill()
	}
}

// matches applies the compact filter first (cheaper) and then the blank one.
func (s *Scheduler) matches(w string) bool {
	if s.state.Compact != "" && !pattern.MatchesCompact(w, s.state.Compact) {
		return false
	}
	if strings.Contains(s.state.Blank, "_") && !pattern.MatchesBlank(w, s.state.Blank) {
		return false
	}
	return true
}

// refill keeps queued words in their order, dropping those the current hint
// rules out, then appends untried candidates not yet queued.
func (s *Scheduler) refill() {
	r := &s.state.Round
	queue := make([]string, 0, len(r.Queue)+len(s.state.Candidates))
	queued := make(map[string]struct{}, cap(queue))

	for _, w := range r.Queue {
		if _, dup := queued[w]; dup || !s.matches(w) {
			continue
		}
		queue = append(queue, w)
		queued[w] = struct{}{}
	}
	for _, c := range s.state.Candidates {
		w := pattern.Normalize(c)
		if w == "" || r.tried(w) {
			continue
		}
		if _, dup := queued[w]; dup {
			continue
		}
		queue = append(queue, w)
		queued[w] = struct{}{}
	}
	r.Queue = queue
}

// ---------------------------------------------------------------------------
// Run control
// ---------------------------------------------------------------------------

// Start begins sending. The first tick fires after a short kickoff.
func (s *Scheduler) Start() {
	st := &s.state
	st.Running = true
	st.Message = "running"
	s.Refresh()
	s.log.Info().Str("phase", string(st.Phase)).Int("queue", len(st.Round.Queue)).Msg("automation started")
	s.schedule(kickoff(st.Config.Delay))
}

// Stop halts sending, cancels the pending tick and forgets the round.
func (s *Scheduler) Stop(reason string) {
	st := &s.state
	st.Running = false
	if s.pending {
		s.ticker.Cancel()
		s.pending = false
	}
	st.Round.reset()
	st.Message = reason
	s.log.Info().Str("reason", reason).Msg("automation stopped")
}

// ResetRound drops all per-word state and refreshes.
func (s *Scheduler) ResetRound(reason string) {
	s.state.Round.reset()
	s.state.LastGuess = ""
	if s.state.Running {
		s.state.Message = "paused: " + strings.ToLower(reason)
	}
	s.log.Debug().Str("reason", reason).Msg("round reset")
	s.Refresh()
}

// SetDelay changes the send delay; it applies from the next scheduled tick.
func (s *Scheduler) SetDelay(d time.Duration) { s.state.Config.Delay = ClampDelay(d) }

// SetDotPrefix toggles the "." guess prefix.
func (s *Scheduler) SetDotPrefix(on bool) { s.state.Config.DotPrefix = on }

// SetSelfName updates the name used to recognize our own success notice.
func (s *Scheduler) SetSelfName(name string) {
	s.state.Config.SelfName = name
	s.parser.SetSelfName(name)
}

// ---------------------------------------------------------------------------
// Send loop
// ---------------------------------------------------------------------------

// Tick is the timer callback: one step of the send loop.
func (s *Scheduler) Tick() {
	s.pending = false
	s.tick()
}

func (s *Scheduler) tick() {
	st := &s.state
	if !st.Running {
		return
	}
	delay := st.Config.Delay

	if now := s.now(); now.Before(st.SpamBlockedUntil) {
		st.Message = "paused: spam cooldown"
		s.schedule(pausePoll(delay, cooldownPollFloor))
		return
	}

	st.Phase = game.DerivePhase(s.obs)
	if !st.Phase.AllowsGuessing() {
		st.Message = "paused: " + string(st.Phase)
		s.schedule(pausePoll(delay, pausePollFloor))
		return
	}

	if word := st.Round.CloseHitPending; word != "" {
		st.Round.CloseHitPending = ""
		if s.send(word) {
			st.Round.SentThisRound[word] = struct{}{}
			st.Message = "close-hit retry sent: " + word
		}
	} else {
		if len(st.Round.Queue) == 0 {
			s.Refresh()
			st.Message = "paused: waiting for new letters"
			s.schedule(pausePoll(delay, pausePollFloor))
			return
		}
		next := st.Round.Queue[0]
		st.Round.Queue = st.Round.Queue[1:]

		payload := next
		if st.Config.DotPrefix {
			payload = "." + next
		}
		// Counted before sending so a broken sink cannot loop on one word.
		st.Round.SentAttempts[next]++
		st.Round.SentThisRound[next] = struct{}{}
		if s.send(payload) {
			st.Message = "sent: " + payload
		} else {
			st.Message = "send failed, skipped: " + payload
		}
	}

	s.schedule(delay)
}

func (s *Scheduler) send(text string) bool {
	if !s.sink.Send(text) {
		s.log.Warn().Str("guess", text).Msg("guess send failed")
		return false
	}
	s.state.LastGuess = text
	s.log.Debug().Str("guess", text).Int("queue", len(s.state.Round.Queue)).Msg("guess sent")
	return true
}

func (s *Scheduler) schedule(d time.Duration) {
	s.pending = true
	s.ticker.Schedule(d)
}

// ---------------------------------------------------------------------------
// Chat signals
// ---------------------------------------------------------------------------

// HandleChat consumes the full chat log; only the newly appended tail counts.
func (s *Scheduler) HandleChat(fullText string) {
	s.apply(s.parser.Feed(fullText))
}

// HandleChatLine consumes one standalone chat message.
func (s *Scheduler) HandleChatLine(line string) {
	s.apply(s.parser.Parse(line))
}

// apply acts on one chunk's signals. A spam notice or our own success ends
// processing of that chunk.
func (s *Scheduler) apply(sig chat.Signals) {
	st := &s.state
	if sig.Spam {
		st.SpamBlockedUntil = s.now().Add(st.Config.SpamCooldown)
		st.Message = "paused: spam cooldown"
		s.log.Info().Dur("cooldown", st.Config.SpamCooldown).Msg("spam notice")
		return
	}
	if sig.SelfSolved && st.Running {
		s.Stop("solved word detected")
		return
	}
	if sig.CloseWord != "" {
		s.EnqueueCloseRetry(sig.CloseWord)
	}
	if sig.Transition {
		s.ResetRound("word/round transition")
	}
}

// EnqueueCloseRetry marks word for an immediate resend, at most
// Config.MaxRetries times per round. An idle running loop is woken at once.
// It reports whether the retry was accepted.
func (s *Scheduler) EnqueueCloseRetry(word string) bool {
	n := pattern.Normalize(word)
	if n == "" {
		return false
	}
	r := &s.state.Round
	if r.RetryMap[n] >= s.state.Config.MaxRetries {
		return false
	}
	r.RetryMap[n]++
	r.CloseHitPending = n
	s.log.Debug().Str("word", n).Int("retry", r.RetryMap[n]).Msg("close hit")
	if s.state.Running && !s.pending {
		s.tick()
	}
	return true
}

// ---------------------------------------------------------------------------
// Introspection
// ---------------------------------------------------------------------------

// Status snapshots the state for display.
func (s *Scheduler) Status() Status {
	st := &s.state
	preview := st.Candidates
	if len(preview) > st.Config.Preview {
		preview = preview[:st.Config.Preview]
	}
	var cooldown time.Duration
	if now := s.now(); now.Before(st.SpamBlockedUntil) {
		cooldown = st.SpamBlockedUntil.Sub(now)
	}
	return Status{
		Running:           st.Running,
		Phase:             st.Phase,
		Blank:             st.Blank,
		Compact:           st.Compact,
		Candidates:        len(st.Candidates),
		Preview:           append([]string(nil), preview...),
		Queue:             len(st.Round.Queue),
		CloseHitPending:   st.Round.CloseHitPending,
		LastGuess:         st.LastGuess,
		CooldownRemaining: cooldown,
		Message:           st.Message,
	}
}
