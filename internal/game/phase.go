// internal/game/phase.go
//
// Phase derivation and the textual cues hosts use to compute the boolean
// signals of an Observation from visible status text.

package game

import (
	"regexp"
	"strings"

	"github.com/robalobadob/skribbl-hints/internal/pattern"
)

var (
	reRoundOver    = regexp.MustCompile(`\bthe word was\b|\bround over\b|\bnext round\b`)
	reChoosingWord = regexp.MustCompile(`\bis choosing a word\b|\bchoose a word\b|\bpick a word\b`)
	reDrawing      = regexp.MustCompile(`you are drawing|you are the drawer`)
)

const (
	maxRoundStatusLen  = 120
	maxChoosingTextLen = 160
)

// DerivePhase classifies the moment. First match wins:
// choosing, between-words, drawing, between-rounds, guessing, waiting-hint.
// A nil observation, or one with no resolvable signal, is PhaseUnknown.
func DerivePhase(obs Observation) Phase {
	if obs == nil {
		return PhaseUnknown
	}
	switch {
	case obs.WordChoicesVisible():
		return PhaseChoosing
	case obs.BetweenWordsAnnounced():
		return PhaseBetweenWords
	case obs.DrawingBannerVisible():
		return PhaseDrawing
	case obs.BetweenRoundOverlayVisible():
		return PhaseBetweenRounds
	}
	if !obs.GuessInputEditable() {
		return PhaseUnknown
	}
	if HasHint(obs) {
		return PhaseGuessing
	}
	return PhaseWaitingHint
}

// HasHint reports whether a pattern or a known length is available.
func HasHint(obs Observation) bool {
	return CurrentBlank(obs) != ""
}

// CurrentBlank resolves the blank pattern the observation implies, synthesizing
// one from the known length when the hint text carries no blanks.
func CurrentBlank(obs Observation) string {
	if obs == nil {
		return ""
	}
	return pattern.ResolveHint(obs.HintText(), obs.HintLength())
}

// IsRoundOverText matches a round-summary status line.
func IsRoundOverText(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	return t != "" && len(t) <= maxRoundStatusLen && reRoundOver.MatchString(t)
}

// IsChoosingText matches a "someone is choosing a word" status line.
func IsChoosingText(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	return t != "" && len(t) <= maxChoosingTextLen && reChoosingWord.MatchString(t)
}

// IsDrawingText matches the banner shown to the drawing player.
func IsDrawingText(text string) bool {
	return reDrawing.MatchString(strings.ToLower(text))
}
