package submit

import (
	"github.com/google/uuid"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"

	MessageSuccess = "Login successful"
	MessageFailure = "Login failed. Please check your credentials."
)

type (
	// Event is a single submit notification. PreventDefault suppresses the
	// source's native submission (page navigation in a browser).
	Event interface {
		PreventDefault()
	}

	// EventSource delivers submit events to one registered listener. The
	// returned function removes the listener.
	EventSource interface {
		OnSubmit(listener func(Event)) (unbind func())
	}

	// Form exposes the current value of a named field.
	Form interface {
		Value(field string) string
	}

	// Notifier shows a blocking message to the user.
	Notifier interface {
		Alert(message string)
	}

	// Credentials live for one submission only.
	Credentials struct {
		Email    string
		Password string
	}

	OutcomeKind int

	// Outcome is the tagged result of one submission.
	Outcome struct {
		Kind         OutcomeKind
		SubmissionID uuid.UUID
		Err          error // set for OutcomeTransportError only
	}
)

const (
	OutcomeSuccess OutcomeKind = iota + 1
	OutcomeRejected
	OutcomeTransportError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRejected:
		return "rejected"
	case OutcomeTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Message returns the alert text for the outcome, or "" when the outcome is
// not shown to the user.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeSuccess:
		return MessageSuccess
	case OutcomeRejected:
		return MessageFailure
	default:
		return ""
	}
}
