package extract

import "fmt"

// ErrorKind is the closed set of classified extraction failures. Every
// failure path in the service terminates in exactly one of these.
type ErrorKind string

const (
	KindPasswordProtected  ErrorKind = "PASSWORD_PROTECTED"
	KindScannedNoText      ErrorKind = "SCANNED_NO_TEXT"
	KindInvalidOrCorrupt   ErrorKind = "INVALID_OR_CORRUPT"
	KindTooLarge           ErrorKind = "TOO_LARGE"
	KindUnsupportedFormat  ErrorKind = "UNSUPPORTED_FORMAT"
	KindTimedOut           ErrorKind = "TIMED_OUT"
	KindDecoderUnavailable ErrorKind = "DECODER_UNAVAILABLE"
	KindUnknown            ErrorKind = "UNKNOWN"
)

// recoverableKinds are the failures for which a different decoding
// strategy might still succeed; they gate the primary→fallback chain.
var recoverableKinds = map[ErrorKind]bool{
	KindTimedOut:           true,
	KindInvalidOrCorrupt:   true,
	KindDecoderUnavailable: true,
	KindUnknown:            true,
}

// ExtractionError is a classified extraction failure.
type ExtractionError struct {
	Kind        ErrorKind
	Message     string
	Recoverable bool
	Cause       error
}

// NewError builds a classified error; Recoverable is derived from the kind.
func NewError(kind ErrorKind, message string) *ExtractionError {
	return &ExtractionError{
		Kind:        kind,
		Message:     message,
		Recoverable: recoverableKinds[kind],
	}
}

// WrapError builds a classified error preserving the underlying cause.
func WrapError(kind ErrorKind, message string, cause error) *ExtractionError {
	e := NewError(kind, message)
	e.Cause = cause
	return e
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// AllKinds lists every member of the taxonomy, for totality checks.
func AllKinds() []ErrorKind {
	return []ErrorKind{
		KindPasswordProtected,
		KindScannedNoText,
		KindInvalidOrCorrupt,
		KindTooLarge,
		KindUnsupportedFormat,
		KindTimedOut,
		KindDecoderUnavailable,
		KindUnknown,
	}
}
