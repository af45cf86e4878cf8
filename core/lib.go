package core

import (
	"context"

	"github.com/gofiber/fiber/v3"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.scnd.dev/open/stackwalk"
	"go.scnd.dev/open/stackwalk/package/span"
	"go.scnd.dev/open/stackwalk/package/telemetry"
	"go.scnd.dev/open/stackwalk/package/walker"
)

type Instance struct {
	config    *stackwalk.Config
	walker    *walker.Inspector
	telemetry *telemetry.Telemetry
}

func New(config *stackwalk.Config, options ...telemetry.Option) (_ *Instance, err error) {
	i := &Instance{
		config:    config,
		walker:    nil,
		telemetry: nil,
	}

	i.walker, err = NewWalker(config)
	if err != nil {
		return nil, err
	}

	i.telemetry, err = telemetry.New(config, append([]telemetry.Option{telemetry.WithWalker(i.walker)}, options...)...)
	if err != nil {
		return nil, err
	}

	return i, nil
}

func NewWalker(config *stackwalk.Config) (*walker.Inspector, error) {
	options := make([]walker.Option, 0)

	if config.Naming != nil {
		naming, err := walker.ParseNaming(*config.Naming)
		if err != nil {
			return nil, span.NewError(nil, "invalid naming", err)
		}
		options = append(options, walker.WithNaming(naming))
	}
	if config.Depth != nil {
		options = append(options, walker.WithDepth(*config.Depth))
	}
	if config.Runtime != nil {
		options = append(options, walker.WithRuntime(*config.Runtime))
	}
	for _, exclude := range config.Exclude {
		if exclude != nil {
			options = append(options, walker.WithExclude(*exclude))
		}
	}

	return walker.New(options...), nil
}

func (r *Instance) Config() *stackwalk.Config {
	return r.config
}

func (r *Instance) Walker() stackwalk.Walker {
	return r.walker
}

func (r *Instance) Inspector() *walker.Inspector {
	return r.walker
}

func (r *Instance) Layer(name string, typ string) stackwalk.Layer {
	return span.NewLayer(r, name, typ)
}

func (r *Instance) Tracer() oteltrace.Tracer {
	return r.telemetry.Tracer
}

func (r *Instance) Instrument() *telemetry.Instrument {
	return r.telemetry.Instrument
}

func (r *Instance) Middleware() fiber.Handler {
	return r.telemetry.Middleware(r)
}

// FunctionName is walker.Inspector.FunctionName with the inspection counted.
// Skip 0 is the caller of FunctionName.
func (r *Instance) FunctionName(ctx context.Context, skip int, predicate walker.Predicate) (string, bool) {
	name, ok := r.walker.FunctionName(skip+1, predicate)
	r.telemetry.Instrument.InspectionRecord(ctx, ok)
	return name, ok
}

func (r *Instance) Shutdown(ctx context.Context) error {
	return r.telemetry.Shutdown(ctx)
}
