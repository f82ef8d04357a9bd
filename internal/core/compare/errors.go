package compare

import "errors"

// Kind classifies failures of the comparison workflow.
type Kind int

const (
	// KindValidation is missing or empty input for the active mode. It never
	// reaches the network.
	KindValidation Kind = iota + 1
	// KindTransport is a network failure or a response that is not JSON.
	KindTransport
	// KindService is a parsed response carrying an explicit failure flag.
	KindService
	// KindExportPrecondition is an export requested with no current result.
	KindExportPrecondition
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindService:
		return "service"
	case KindExportPrecondition:
		return "export_precondition"
	default:
		return "unknown"
	}
}

// Error is a user-facing failure. Message is safe to show as-is.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewError returns an Error of the given kind.
func NewError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ErrNoResult is returned when an export is requested before any successful
// comparison.
var ErrNoResult = NewError(KindExportPrecondition, "no results to export", nil)
