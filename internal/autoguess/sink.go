// internal/autoguess/sink.go
//
// GuessSink implementations for hosts that relay guesses over a stream.

package autoguess

import (
	"fmt"
	"io"
	"sync"
)

// WriterSink writes each guess as one line to w.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink wraps w.
func NewWriterSink(w io.Writer) *WriterSink { return &WriterSink{w: w} }

// Send writes text and a newline; a write error counts as a failed send.
func (ws *WriterSink) Send(text string) bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	_, err := fmt.Fprintln(ws.w, text)
	return err == nil
}

// SinkFunc adapts a function to GuessSink.
type SinkFunc func(text string) bool

func (f SinkFunc) Send(text string) bool { return f(text) }
