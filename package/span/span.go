package span

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.scnd.dev/open/stackwalk"
)

type Span struct {
	Name      *string        `json:"name,omitempty"`
	Path      []*string      `json:"path,omitempty"`
	Layer     *Layer         `json:"layer,omitempty"`
	Caller    *Caller        `json:"caller,omitempty"`
	Variables map[string]any `json:"variables,omitempty"`
	Started   *time.Time     `json:"started,omitempty"`
	Ended     *time.Time     `json:"ended,omitempty"`
	Children  []*Span        `json:"children,omitempty"`
	TraceSpan trace.Span     `json:"-"`
	walker    stackwalk.Walker
}

func (r *Span) Variable(key string, value any) {
	r.Variables[key] = value
	r.Trace().SetAttributes(attribute.String("variable."+key, fmt.Sprint(value)))
}

// Error wraps err with message at the caller's call site and marks the span as
// failed.
func (r *Span) Error(message string, err error) error {
	e := newError(r.walker, r, message, err)
	r.Trace().RecordError(e)
	r.Trace().SetStatus(codes.Error, message)
	return e
}

func (r *Span) Trace() trace.Span {
	if r.TraceSpan == nil {
		return trace.SpanFromContext(context.Background())
	}

	return r.TraceSpan
}

func (r *Span) End() {
	end := time.Now()
	r.Ended = &end
	r.Trace().End()
}

func (r *Span) Duration() time.Duration {
	if r.Started == nil || r.Ended == nil {
		return 0
	}

	return r.Ended.Sub(*r.Started)
}
