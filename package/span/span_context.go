package span

import (
	"context"

	"go.scnd.dev/open/stackwalk"
)

type ContextKey struct {
	Name string
}

var (
	ContextKeyProvider = ContextKey{
		Name: "stackwalk",
	}
	ContextKeySpan = ContextKey{
		Name: "stackwalk.span",
	}
)

func NewContext(provider stackwalk.Provider, ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextKeyProvider, provider)
}

func FromContext(ctx context.Context) stackwalk.Provider {
	p, ok := ctx.Value(ContextKeyProvider).(stackwalk.Provider)
	if !ok {
		return nil
	}

	return p
}

func SpanFromContext(ctx context.Context) *Span {
	s, ok := ctx.Value(ContextKeySpan).(*Span)
	if !ok {
		return nil
	}

	return s
}
