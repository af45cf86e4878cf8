package span

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.scnd.dev/open/stackwalk"
)

type Layer struct {
	Provider stackwalk.Provider `json:"-"`
	Name     string             `json:"name,omitempty"`
	Type     string             `json:"type,omitempty"`
	Caller   *Caller            `json:"caller,omitempty"`
}

// NewLayer records where the layer was declared. A nil provider is resolved
// from the context on every With.
func NewLayer(provider stackwalk.Provider, name string, typ string) *Layer {
	return &Layer{
		Provider: provider,
		Name:     name,
		Type:     typ,
		Caller:   OuterCaller(walkerOf(provider)),
	}
}

// With opens a span named after the function that called With, nested under
// the span already carried by ctx.
func (r *Layer) With(ctx context.Context) (stackwalk.Span, context.Context) {
	provider := r.Provider
	if provider == nil {
		provider = FromContext(ctx)
	}
	w := walkerOf(provider)

	parent := SpanFromContext(ctx)
	caller := OuterCaller(w)
	name := caller.String()
	now := time.Now()

	var layer *Layer
	if r.Name != "" {
		layer = r
	}

	// * start tracing span
	var traceSpan trace.Span
	if provider != nil && provider.Tracer() != nil {
		ctx, traceSpan = provider.Tracer().Start(ctx, *caller.Name, trace.WithAttributes(
			attribute.String("span.layer", fmt.Sprintf("%s/%s", r.Type, r.Name)),
			attribute.String("code.function", *caller.Name),
			attribute.Int("code.lineno", *caller.Line),
		))
	}

	s := &Span{
		Name:      &name,
		Path:      []*string{},
		Layer:     layer,
		Caller:    caller,
		Variables: make(map[string]any),
		Started:   &now,
		Ended:     nil,
		Children:  []*Span{},
		TraceSpan: traceSpan,
		walker:    w,
	}

	if parent != nil {
		s.Path = append(append(s.Path, parent.Path...), parent.Name)
		parent.Children = append(parent.Children, s)
	}

	return &Wrapper{Span: s}, context.WithValue(ctx, ContextKeySpan, s)
}

func walkerOf(provider stackwalk.Provider) stackwalk.Walker {
	if provider == nil {
		return nil
	}

	return provider.Walker()
}
