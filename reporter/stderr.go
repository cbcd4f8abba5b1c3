package reporter

import (
	"fmt"
	"io"
	"os"
)

// StderrSink is the default Sink described in spec.md §6.5: it prints
// non-fatal events to its writer and treats a Fatal as a hard failure
// by recording it for the caller to inspect after the parse returns
// (the core itself always also returns a *PositionedError from the
// call that triggered the Fatal; this sink's job is only the
// human-readable trail, same division of labor as the teacher's
// default reporter in compiler.go, which logs via log/slog and lets
// the compile error propagate separately).
type StderrSink struct {
	w        io.Writer
	prefix   string
	lastFatal *Event
}

// NewStderrSink creates a sink that writes to w using prefix (e.g.
// "uxf" or "uxfcmp") as the message prefix.
func NewStderrSink(w io.Writer, prefix string) *StderrSink {
	return &StderrSink{w: w, prefix: prefix}
}

// NewDefaultSink is NewStderrSink(os.Stderr, "uxf").
func NewDefaultSink() *StderrSink {
	return NewStderrSink(os.Stderr, "uxf")
}

func (s *StderrSink) OnEvent(e Event) {
	fmt.Fprintln(s.w, e.format(s.prefix))
	if e.Kind == Fatal {
		ev := e
		s.lastFatal = &ev
	}
}

// LastFatal returns the most recent Fatal event seen, if any.
func (s *StderrSink) LastFatal() (Event, bool) {
	if s.lastFatal == nil {
		return Event{}, false
	}
	return *s.lastFatal, true
}
