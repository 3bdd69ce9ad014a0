// internal/game/types.go
//
// Core type definitions for observing a running skribbl game.
// Defines:
//   - Phase: the coarse classification of the current game moment.
//   - Observation: the signals a host integration exposes to the auto-guesser.
//   - Snapshot: a plain value implementation of Observation (JSON friendly).

package game

// Phase classifies the current game moment. Only PhaseGuessing permits
// automatic guesses.
type Phase string

const (
	PhaseUnknown       Phase = "unknown"
	PhaseWaitingHint   Phase = "waiting-hint"
	PhaseDrawing       Phase = "drawing"
	PhaseChoosing      Phase = "choosing"
	PhaseBetweenWords  Phase = "between-words"
	PhaseBetweenRounds Phase = "between-rounds"
	PhaseGuessing      Phase = "guessing"
)

// AllowsGuessing reports whether guesses may be sent in this phase.
func (p Phase) AllowsGuessing() bool { return p == PhaseGuessing }

// IsBoundary reports whether the phase sits between two words.
func (p Phase) IsBoundary() bool {
	return p == PhaseChoosing || p == PhaseBetweenWords || p == PhaseBetweenRounds
}

// Observation exposes the current state of the game surface. Implementations
// are read fresh on every refresh and tick; nothing is cached between calls.
type Observation interface {
	// WordChoicesVisible is true while the local player picks a word to draw.
	WordChoicesVisible() bool
	// BetweenWordsAnnounced is true while "X is choosing a word" is shown.
	BetweenWordsAnnounced() bool
	// DrawingBannerVisible is true while the local player is drawing.
	DrawingBannerVisible() bool
	// BetweenRoundOverlayVisible is true while a "the word was…" summary is up.
	BetweenRoundOverlayVisible() bool
	// HintText is the raw text of the hint area.
	HintText() string
	// HintLength is a word length shown outside the hint itself, or 0.
	HintLength() int
	// GuessInputEditable is true when the guess box accepts text.
	GuessInputEditable() bool
}

// Snapshot is a static Observation, typically decoded from a host event.
type Snapshot struct {
	WordChoices   bool   `json:"wordChoices"`
	BetweenWords  bool   `json:"betweenWords"`
	DrawingBanner bool   `json:"drawingBanner"`
	RoundOverlay  bool   `json:"roundOverlay"`
	Hint          string `json:"hint"`
	Length        int    `json:"length"`
	InputEditable bool   `json:"inputEditable"`
}

func (s Snapshot) WordChoicesVisible() bool         { return s.WordChoices }
func (s Snapshot) BetweenWordsAnnounced() bool      { return s.BetweenWords }
func (s Snapshot) DrawingBannerVisible() bool       { return s.DrawingBanner }
func (s Snapshot) BetweenRoundOverlayVisible() bool { return s.RoundOverlay }
func (s Snapshot) HintText() string                 { return s.Hint }
func (s Snapshot) HintLength() int                  { return s.Length }
func (s Snapshot) GuessInputEditable() bool         { return s.InputEditable }
