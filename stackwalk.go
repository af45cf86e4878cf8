package stackwalk

import (
	"context"
	"iter"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.scnd.dev/open/stackwalk/package/walker"
)

type Walker interface {
	FunctionName(skip int, predicate walker.Predicate) (string, bool)
	Frame(skip int, predicate walker.Predicate) (*walker.Frame, bool)
	Frames(skip int) iter.Seq[*walker.Frame]
	Names(skip int, limit int) []string
	Render(function string) string
}

type Provider interface {
	Config() *Config
	Walker() Walker
	Tracer() trace.Tracer
	Layer(name string, typ string) Layer
}

type Layer interface {
	With(ctx context.Context) (Span, context.Context)
}

type Span interface {
	Started() *time.Time
	Variable(key string, value any)
	Error(message string, err error) error
	Trace() trace.Span
	End()
}
