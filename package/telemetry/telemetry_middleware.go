package telemetry

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.scnd.dev/open/stackwalk"
	"go.scnd.dev/open/stackwalk/package/span"
	"go.scnd.dev/open/stackwalk/package/walker"
)

// Middleware opens a span per request and renames it after the route handler
// once the handler has run.
func (r *Telemetry) Middleware(provider stackwalk.Provider) fiber.Handler {
	layer := provider.Layer("http", "telemetry")

	return func(c fiber.Ctx) error {
		// * ensure context
		ctx := c.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = span.NewContext(provider, ctx)

		// * start span
		s, ctx := layer.With(ctx)
		defer s.End()

		// * set context
		c.SetContext(ctx)

		// * set attributes
		s.Trace().SetAttributes(
			attribute.String("http.method", c.Method()),
			attribute.String("http.url", c.OriginalURL()),
			attribute.String("http.user_agent", c.Get("User-Agent")),
		)

		// * count metric
		r.Instrument.HttpActiveRequestCounter(ctx, 1, c.OriginalURL())
		defer r.Instrument.HttpActiveRequestCounter(ctx, -1, c.OriginalURL())

		// * proceed to next
		err := c.Next()

		// * name span after handler
		if handler := Handler(provider.Walker(), c.Route()); handler != "" {
			s.Trace().SetName(handler)
			s.Trace().SetAttributes(attribute.String("http.route.handler", handler))
		}

		// * count metric
		r.Instrument.HttpDurationRecord(ctx, time.Since(*s.Started()).Milliseconds(), c.OriginalURL(), c.Response().StatusCode())
		s.Trace().SetAttributes(attribute.Int("http.status_code", c.Response().StatusCode()))
		return err
	}
}

// Handler renders the last handler of route, which is the endpoint itself.
func Handler(w stackwalk.Walker, route *fiber.Route) string {
	if route == nil || len(route.Handlers) == 0 {
		return ""
	}
	function := walker.FunctionOf(route.Handlers[len(route.Handlers)-1])
	if function == "" {
		return ""
	}

	return w.Render(function)
}
