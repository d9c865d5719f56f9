package event

import "sync"

// Kind classifies messages emitted during one pipeline run.
type Kind string

const (
	KindStatus  Kind = "status"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
	KindDebug   Kind = "debug"
	KindFinish  Kind = "finish"
)

// FinishPayload is the terminal payload. Exactly one of Summary/Err is
// populated.
type FinishPayload struct {
	Summary string `json:"summary,omitempty"`
	Err     string `json:"error,omitempty"`
}

// Event is one fire-and-forget message to the presentation layer. Finish
// is set only when Kind is KindFinish.
type Event struct {
	Kind    Kind           `json:"kind"`
	Message string         `json:"message,omitempty"`
	Finish  *FinishPayload `json:"finish,omitempty"`
}

// Status builds a status event.
func Status(message string) Event {
	return Event{Kind: KindStatus, Message: message}
}

// Warning builds a warning event.
func Warning(message string) Event {
	return Event{Kind: KindWarning, Message: message}
}

// Error builds an error event.
func Error(message string) Event {
	return Event{Kind: KindError, Message: message}
}

// Debug builds a debug event.
func Debug(message string) Event {
	return Event{Kind: KindDebug, Message: message}
}

// Finished builds the terminal success event.
func Finished(summary string) Event {
	return Event{Kind: KindFinish, Finish: &FinishPayload{Summary: summary}}
}

// Failed builds the terminal failure event.
func Failed(errMessage string) Event {
	return Event{Kind: KindFinish, Finish: &FinishPayload{Err: errMessage}}
}

// Sink receives the ordered event stream of one run. Emit must be safe to
// call from the pipeline's goroutine, which may differ from the
// presentation layer's.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// Discard ignores every event.
var Discard Sink = SinkFunc(func(Event) {})

// MemorySink records events in order. Safe for concurrent use.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

// NewMemorySink creates an empty recording sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Emit appends one event.
func (s *MemorySink) Emit(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

// Events returns a copy of the recorded stream.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Finish returns the terminal payload, or nil if the run has not finished.
func (s *MemorySink) Finish() *FinishPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.Kind == KindFinish {
			return e.Finish
		}
	}
	return nil
}
