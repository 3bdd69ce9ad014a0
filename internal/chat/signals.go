// internal/chat/signals.go
//
// Extraction of auto-guesser signals from the game's chat log.
//
// The host hands over the full chat text each time it changes; Parser keeps
// the length it has already seen and only inspects the appended tail. All
// detection is case-insensitive phrase matching.

package chat

import (
	"regexp"
	"strings"

	"github.com/robalobadob/skribbl-hints/internal/pattern"
)

var (
	reSpam       = regexp.MustCompile(`spam detected|sending messages too quickly`)
	reSelfSolved = regexp.MustCompile(`you guessed the word!`)
	reTransition = regexp.MustCompile(`\bthe word was\b|\bround over\b|\bis drawing now\b|\bis choosing a word\b|\bchoose a word\b|\bpick a word\b`)

	// ".ice cream is close!" (guesses are usually sent with a dot prefix)
	reCloseDotted = regexp.MustCompile(`\.([^\s.!?,]+(?:\s+[^\s.!?,]+)*)\s+is close!`)
	// "'ice cream' is close!"
	reCloseQuoted = regexp.MustCompile(`['"]([^'"]+)['"]\s+is close!`)
	// "apple is close!"
	reCloseBare = regexp.MustCompile(`([^\s.!?,:'"]+)\s+is close!`)
)

// Signals is what one chunk of chat text means to the auto-guesser.
type Signals struct {
	// Spam is set when the host throttles us. Nothing else is reported
	// alongside it.
	Spam bool
	// SelfSolved is set when the local player guessed the word.
	SelfSolved bool
	// CloseWord is the normalized guess the host called close, if any.
	CloseWord string
	// Transition is set on a word or round boundary.
	Transition bool
}

// Empty reports whether the chunk carried no signal.
func (s Signals) Empty() bool {
	return !s.Spam && !s.SelfSolved && s.CloseWord == "" && !s.Transition
}

// Parser tracks how much of the chat log has been consumed.
type Parser struct {
	selfName string
	seen     int
}

// NewParser creates a parser that recognizes selfName's own success notice.
func NewParser(selfName string) *Parser {
	return &Parser{selfName: pattern.Normalize(selfName)}
}

// SetSelfName updates the local player name once it becomes known.
func (p *Parser) SetSelfName(name string) { p.selfName = pattern.Normalize(name) }

// Feed parses the part of the full chat log not seen before. A log that
// shrank (chat cleared) is read again from the start.
func (p *Parser) Feed(fullText string) Signals {
	if len(fullText) < p.seen {
		p.seen = 0
	}
	delta := fullText[p.seen:]
	p.seen = len(fullText)
	return p.Parse(delta)
}

// Reset forgets the consumed offset.
func (p *Parser) Reset() { p.seen = 0 }

// Parse inspects a standalone chunk of chat text.
func (p *Parser) Parse(text string) Signals {
	recent := strings.ToLower(text)
	if strings.TrimSpace(recent) == "" {
		return Signals{}
	}
	if reSpam.MatchString(recent) {
		return Signals{Spam: true}
	}

	var sig Signals
	sig.SelfSolved = reSelfSolved.MatchString(recent) || p.ownNameSolved(recent)
	sig.CloseWord = closeWord(recent)
	sig.Transition = reTransition.MatchString(recent)
	return sig
}

func (p *Parser) ownNameSolved(recent string) bool {
	if p.selfName == "" {
		return false
	}
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(p.selfName) + `\s+guessed the word!`)
	if err != nil {
		return false
	}
	return re.MatchString(recent)
}

func closeWord(recent string) string {
	for _, re := range []*regexp.Regexp{reCloseDotted, reCloseQuoted, reCloseBare} {
		if m := re.FindStringSubmatch(recent); m != nil {
			return pattern.Normalize(m[1])
		}
	}
	return ""
}
