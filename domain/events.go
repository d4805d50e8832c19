package domain

import "sync"

type EventKind string

const (
	EventStatus   EventKind = "status"
	EventProgress EventKind = "progress"
	EventComplete EventKind = "complete"
	EventError    EventKind = "error"
)

type Event struct {
	Kind     EventKind
	Message  string
	Progress int
	Result   *GenerationResult
}

// Terminal reports whether no further events follow this one.
func (e Event) Terminal() bool {
	return e.Kind == EventComplete || e.Kind == EventError
}

// EventStream is the per-request event channel with its ordering rules
// enforced at runtime: progress never decreases, exactly one terminal event
// is emitted, and nothing is emitted after it. The channel closes right
// after the terminal event.
//
// The buffer must cover every event a single run can emit so producers
// never block on a consumer that went away; non-terminal events are dropped
// if it ever fills up.
type EventStream struct {
	mu           sync.Mutex
	ch           chan Event
	lastProgress int
	terminal     bool
}

func NewEventStream(buffer int) *EventStream {
	if buffer < 8 {
		buffer = 8
	}
	return &EventStream{ch: make(chan Event, buffer)}
}

func (s *EventStream) Events() <-chan Event {
	return s.ch
}

func (s *EventStream) Status(message string) {
	s.emit(Event{Kind: EventStatus, Message: message})
}

func (s *EventStream) Progress(progress int, message string) {
	s.mu.Lock()
	if progress < s.lastProgress {
		progress = s.lastProgress
	}
	s.lastProgress = progress
	s.mu.Unlock()

	s.emit(Event{Kind: EventProgress, Progress: progress, Message: message})
}

func (s *EventStream) Complete(result GenerationResult) {
	s.finish(Event{Kind: EventComplete, Result: &result})
}

func (s *EventStream) Fail(message string) {
	s.finish(Event{Kind: EventError, Message: message})
}

func (s *EventStream) emit(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.terminal {
		return
	}
	select {
	case s.ch <- ev:
	default:
	}
}

func (s *EventStream) finish(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.terminal {
		return
	}
	s.terminal = true
	for {
		select {
		case s.ch <- ev:
			close(s.ch)
			return
		default:
		}
		// Full buffer: evict the oldest event so the terminal one
		// always gets through.
		select {
		case <-s.ch:
		default:
		}
	}
}
