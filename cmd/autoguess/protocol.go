// cmd/autoguess/protocol.go
//
// Line protocol between a host integration and the auto-guesser.

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/skribbl-hints/internal/autoguess"
	"github.com/robalobadob/skribbl-hints/internal/game"
)

const maxLine = 1 << 20

// message is one stdin line.
type message struct {
	Type        string         `json:"type"`
	Observation *game.Snapshot `json:"observation,omitempty"`
	Text        string         `json:"text,omitempty"`
	MS          int            `json:"ms,omitempty"`
	On          bool           `json:"on,omitempty"`
	Name        string         `json:"name,omitempty"`
}

// controller is the subset of *autoguess.Runner the protocol drives.
type controller interface {
	Do(fn func(*autoguess.Scheduler)) bool
	Observe(obs game.Observation) bool
	Chat(line string) bool
	Start() bool
	Stop() bool
	Status(ctx context.Context) (autoguess.Status, error)
}

// pump reads messages from r until EOF or ctx is done. Malformed lines are
// logged and skipped. Reading happens on its own goroutine so a blocked read
// does not keep pump from returning once ctx is cancelled.
func pump(ctx context.Context, r io.Reader, c controller) error {
	lines := make(chan []byte)
	errc := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLine)
		for sc.Scan() {
			line := append([]byte(nil), sc.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
		close(lines)
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var line []byte
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-errc
			}
			line = l
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if len(line) == 0 {
			continue
		}
		var m message
		if err := json.Unmarshal(line, &m); err != nil {
			log.Warn().Err(err).Msg("skipping malformed message")
			continue
		}
		if err := dispatch(ctx, c, m); err != nil {
			log.Warn().Err(err).Str("type", m.Type).Msg("message rejected")
		}
	}
}

func dispatch(ctx context.Context, c controller, m message) error {
	switch m.Type {
	case "observe":
		if m.Observation == nil {
			return fmt.Errorf("observe without observation")
		}
		c.Observe(*m.Observation)
	case "chat":
		c.Chat(m.Text)
	case "start":
		c.Start()
	case "stop":
		c.Stop()
	case "delay":
		d := time.Duration(m.MS) * time.Millisecond
		c.Do(func(s *autoguess.Scheduler) { s.SetDelay(d) })
	case "prefix":
		on := m.On
		c.Do(func(s *autoguess.Scheduler) { s.SetDotPrefix(on) })
	case "self":
		name := m.Name
		c.Do(func(s *autoguess.Scheduler) { s.SetSelfName(name) })
	case "status":
		st, err := c.Status(ctx)
		if err != nil {
			return err
		}
		log.Info().
			Bool("running", st.Running).
			Str("phase", string(st.Phase)).
			Str("blank", st.Blank).
			Str("compact", st.Compact).
			Int("candidates", st.Candidates).
			Int("queue", st.Queue).
			Strs("preview", st.Preview).
			Str("message", st.Message).
			Msg("status")
	default:
		return fmt.Errorf("unknown message type %q", m.Type)
	}
	return nil
}
