package span

import (
	"errors"
	"strings"

	"go.scnd.dev/open/stackwalk"
)

// Error is a chain of wraps, innermost first, each tagged with the call site
// that produced it.
type Error struct {
	Items []*ErrorItem `json:"items,omitempty"`
}

func (r *Error) Error() string {
	parts := make([]string, 0, len(r.Items)+1)
	for i := len(r.Items) - 1; i >= 0; i-- {
		if r.Items[i].Message != nil && *r.Items[i].Message != "" {
			parts = append(parts, *r.Items[i].Message)
		}
	}
	if cause := r.Unwrap(); cause != nil {
		parts = append(parts, cause.Error())
	}

	return strings.Join(parts, ": ")
}

func (r *Error) Unwrap() error {
	if len(r.Items) == 0 {
		return nil
	}

	return r.Items[0].Error
}

// Trace returns the call sites of the chain, outermost first.
func (r *Error) Trace() []string {
	trace := make([]string, 0, len(r.Items))
	for i := len(r.Items) - 1; i >= 0; i-- {
		trace = append(trace, r.Items[i].Trace.String())
	}

	return trace
}

type ErrorItem struct {
	Span    *Span   `json:"-"`
	Trace   *Caller `json:"trace,omitempty"`
	Message *string `json:"message,omitempty"`
	Error   error   `json:"-"`
}

// NewError records message at the caller's call site. When err already is an
// *Error the item is appended to that chain.
func NewError(span *Span, message string, err error) error {
	var w stackwalk.Walker
	if span != nil {
		w = span.walker
	}

	return newError(w, span, message, err)
}

// NewWalkerError is NewError for code that holds a walker but no span.
func NewWalkerError(w stackwalk.Walker, message string, err error) error {
	return newError(w, nil, message, err)
}

func newError(w stackwalk.Walker, span *Span, message string, err error) *Error {
	trace := OuterCaller(w)
	if err == nil {
		return &Error{
			Items: []*ErrorItem{
				{
					Span:    span,
					Trace:   trace,
					Message: &message,
					Error:   nil,
				},
			},
		}
	}

	var e *Error
	if errors.As(err, &e) {
		e.Items = append(e.Items, &ErrorItem{
			Span:    span,
			Trace:   trace,
			Message: &message,
			Error:   nil,
		})
		return e
	}

	return &Error{
		Items: []*ErrorItem{
			{
				Span:    span,
				Trace:   trace,
				Message: &message,
				Error:   err,
			},
		},
	}
}
