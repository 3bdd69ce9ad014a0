// internal/autoguess/config.go
//
// Scheduler settings, their defaults and the timing rules derived from them.

package autoguess

import (
	"time"

	"golang.org/x/exp/constraints"

	"github.com/robalobadob/skribbl-hints/internal/config"
)

const (
	DefaultDelay        = 1000 * time.Millisecond
	MinDelay            = 0
	MaxDelay            = 8000 * time.Millisecond
	DefaultPreview      = 12
	DefaultMaxRetries   = 5
	DefaultWorkingSet   = 1200
	DefaultSpamCooldown = 1200 * time.Millisecond

	pollInterval      = 150 * time.Millisecond
	cooldownPollFloor = 50 * time.Millisecond
	pausePollFloor    = 80 * time.Millisecond
	kickoffFloor      = 60 * time.Millisecond
	kickoffCeiling    = 500 * time.Millisecond
)

// Config is the caller-controlled part of the scheduler state.
type Config struct {
	Delay        time.Duration // between sends; clamped to [MinDelay, MaxDelay]
	DotPrefix    bool          // send ".word" instead of "word"
	SelfName     string        // local player, for "<name> guessed the word!"
	MaxRetries   int           // close-hit retries per word
	Preview      int           // candidates reported by Status
	WorkingSet   int           // ranked candidates kept per refresh
	SpamCooldown time.Duration
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		Delay:        DefaultDelay,
		MaxRetries:   DefaultMaxRetries,
		Preview:      DefaultPreview,
		WorkingSet:   DefaultWorkingSet,
		SpamCooldown: DefaultSpamCooldown,
	}
}

// FromSettings builds a Config from the YAML settings file, keeping defaults
// for anything left unset.
func FromSettings(a config.Autoguess) Config {
	c := DefaultConfig()
	if a.DelayMS != nil {
		c.Delay = time.Duration(*a.DelayMS) * time.Millisecond
	}
	c.DotPrefix = a.DotPrefix
	c.SelfName = a.SelfName
	if a.Limits.MaxRetries > 0 {
		c.MaxRetries = a.Limits.MaxRetries
	}
	if a.Limits.Preview > 0 {
		c.Preview = a.Limits.Preview
	}
	if a.Limits.WorkingSet > 0 {
		c.WorkingSet = a.Limits.WorkingSet
	}
	if a.Limits.SpamCooldownMS > 0 {
		c.SpamCooldown = time.Duration(a.Limits.SpamCooldownMS) * time.Millisecond
	}
	return c.normalized()
}

// normalized clamps the delay and fills non-positive limits with defaults.
func (c Config) normalized() Config {
	c.Delay = ClampDelay(c.Delay)
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.Preview <= 0 {
		c.Preview = DefaultPreview
	}
	if c.WorkingSet <= 0 {
		c.WorkingSet = DefaultWorkingSet
	}
	if c.SpamCooldown <= 0 {
		c.SpamCooldown = DefaultSpamCooldown
	}
	return c
}

// ClampDelay bounds a send delay to [MinDelay, MaxDelay].
func ClampDelay(d time.Duration) time.Duration {
	return clamp(d, MinDelay, MaxDelay)
}

// pausePoll is the re-check interval while sending is paused, the delay
// bounded to [floor, pollInterval].
func pausePoll(delay, floor time.Duration) time.Duration {
	return clamp(delay, floor, pollInterval)
}

// kickoff is the wait before the first send after Start.
func kickoff(delay time.Duration) time.Duration {
	return clamp(delay, kickoffFloor, kickoffCeiling)
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
