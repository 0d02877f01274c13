package analysis

import (
	"errors"
	"net/http"
)

// Kind classifies gateway failures.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindConfiguration  Kind = "configuration"
	KindRateLimit      Kind = "rate_limit"
	KindQuotaExhausted Kind = "quota_exhausted"
	KindUpstream       Kind = "upstream"
	KindFormat         Kind = "format"
	KindInternal       Kind = "internal"
)

// Error is a terminal failure of one analysis. Status and Message are what
// the HTTP layer sends back; Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Kind != KindInternal {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrFormat) works
// regardless of the wrapped cause.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrValidation     = &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: "Protein sequence is required."}
	ErrConfiguration  = &Error{Kind: KindConfiguration, Status: http.StatusInternalServerError, Message: "AI service not configured."}
	ErrRateLimit      = &Error{Kind: KindRateLimit, Status: http.StatusTooManyRequests, Message: "Rate limit exceeded. Please try again later."}
	ErrQuotaExhausted = &Error{Kind: KindQuotaExhausted, Status: http.StatusPaymentRequired, Message: "AI credits exhausted. Please add credits to continue."}
	ErrUpstream       = &Error{Kind: KindUpstream, Status: http.StatusInternalServerError, Message: "AI processing failed."}
	ErrFormat         = &Error{Kind: KindFormat, Status: http.StatusInternalServerError, Message: "Invalid AI response format."}
)

func withCause(base *Error, cause error) *Error {
	return &Error{Kind: base.Kind, Status: base.Status, Message: base.Message, Err: cause}
}

// Internal wraps an unclassified failure. Its message is the cause's message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: err.Error(), Err: err}
}

// Status returns the HTTP status and public message for err.
func Status(err error) (int, string) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status, ae.Message
	}
	return http.StatusInternalServerError, err.Error()
}
