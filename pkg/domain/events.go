package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventAttempt EventType = "attempt"
	EventReject  EventType = "reject"
	EventAccept  EventType = "accept"
)

// RejectReason names the stage that refused a line.
type RejectReason string

const (
	ReasonSanitize RejectReason = "sanitize"
	ReasonParse    RejectReason = "parse"
	ReasonTest     RejectReason = "test"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Attempt   int       `json:"attempt"` // 1-based within one Get call
}

// AttemptEvent is emitted after a line is read, before it is checked.
type AttemptEvent struct {
	EventBase
	Input string `json:"input"`
}

// RejectEvent is emitted when a line does not produce a value.
type RejectEvent struct {
	EventBase
	Reason  RejectReason `json:"reason"`
	Message string       `json:"message"`
	// TestIndex is the position of the failing test, or -1 when Reason is not ReasonTest.
	TestIndex int   `json:"test_index"`
	Err       error `json:"-"`
}

// AcceptEvent is emitted when a session produces its value.
type AcceptEvent struct {
	EventBase
	Defaulted bool `json:"defaulted,omitempty"`
}

// Hooks defines callbacks for session observability.
// Any field may be nil.
type Hooks struct {
	OnAttempt func(*AttemptEvent)
	OnReject  func(*RejectEvent)
	OnAccept  func(*AcceptEvent)
}

// Merge returns hooks that call h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnAttempt: chain(h.OnAttempt, other.OnAttempt),
		OnReject:  chain(h.OnReject, other.OnReject),
		OnAccept:  chain(h.OnAccept, other.OnAccept),
	}
}

func chain[E any](a, b func(E)) func(E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e E) {
		a(e)
		b(e)
	}
}
