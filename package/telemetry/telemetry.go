package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
	"go.opentelemetry.io/otel/trace"
	"go.scnd.dev/open/stackwalk"
	"go.scnd.dev/open/stackwalk/package/span"
)

type Telemetry struct {
	Config         *stackwalk.Config
	Meter          metric.Meter
	Tracer         trace.Tracer
	Instrument     *Instrument
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
	walker         stackwalk.Walker
}

type settings struct {
	processors []sdktrace.SpanProcessor
	readers    []sdkmetric.Reader
	walker     stackwalk.Walker
}

type Option func(settings *settings)

func WithSpanProcessor(processor sdktrace.SpanProcessor) Option {
	return func(settings *settings) {
		settings.processors = append(settings.processors, processor)
	}
}

func WithReader(reader sdkmetric.Reader) Option {
	return func(settings *settings) {
		settings.readers = append(settings.readers, reader)
	}
}

// WithWalker sets the walker that resolves call sites of construction errors.
func WithWalker(w stackwalk.Walker) Option {
	return func(settings *settings) {
		settings.walker = w
	}
}

func New(config *stackwalk.Config, opts ...Option) (_ *Telemetry, err error) {
	s := new(settings)
	for _, opt := range opts {
		opt(s)
	}

	// * construct telemetry
	telemetry := &Telemetry{
		Config:     config,
		Meter:      nil,
		Tracer:     nil,
		Instrument: nil,
		walker:     s.walker,
	}

	// * construct resource
	attributes := make([]attribute.KeyValue, 0)
	if config.AppName != nil {
		attributes = append(attributes, semconv.ServiceName(*config.AppName))
	}
	if config.AppVersion != nil {
		attributes = append(attributes, semconv.ServiceVersion(*config.AppVersion))
	}
	if config.AppNamespace != nil {
		attributes = append(attributes, semconv.ServiceNamespace(*config.AppNamespace))
	}
	if config.AppInstanceId != nil {
		attributes = append(attributes, semconv.ServiceInstanceID(*config.AppInstanceId))
	}
	res, err := resource.New(context.Background(), resource.WithAttributes(attributes...))
	if err != nil {
		return nil, span.NewWalkerError(telemetry.walker, "unable to initialize resource", err)
	}

	// * construct meter
	telemetry.Meter, err = NewMeter(telemetry, res, s.readers)
	if err != nil {
		return nil, err
	}

	// * construct tracer
	telemetry.Tracer, err = NewTracer(telemetry, res, s.processors)
	if err != nil {
		return nil, err
	}

	// * construct instrument
	telemetry.Instrument, err = NewInstrument(telemetry.Meter)
	if err != nil {
		return nil, span.NewWalkerError(telemetry.walker, "unable to initialize instrument", err)
	}

	return telemetry, nil
}

// Walker reports the walker used for error call sites, nil when none was set.
func (r *Telemetry) Walker() stackwalk.Walker {
	return r.walker
}

func (r *Telemetry) exporting() bool {
	return r.Config.TelemetryUrl != nil && *r.Config.TelemetryUrl != ""
}

func (r *Telemetry) headers() map[string]string {
	headers := make(map[string]string)
	if r.Config.TelemetryOrganization != nil {
		headers["X-Scope-OrgID"] = *r.Config.TelemetryOrganization
	}

	return headers
}

func NewMeter(telemetry *Telemetry, res *resource.Resource, readers []sdkmetric.Reader) (metric.Meter, error) {
	options := []sdkmetric.Option{
		sdkmetric.WithResource(res),
	}
	for _, reader := range readers {
		options = append(options, sdkmetric.WithReader(reader))
	}

	// * construct exporter
	if telemetry.exporting() {
		exporter, err := otlpmetricgrpc.New(
			context.Background(),
			otlpmetricgrpc.WithEndpoint(*telemetry.Config.TelemetryUrl),
			otlpmetricgrpc.WithHeaders(telemetry.headers()),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return nil, span.NewWalkerError(telemetry.walker, "unable to initialize metric exporter", err)
		}
		options = append(options, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(time.Minute),
		)))
	}

	// * construct provider
	telemetry.meterProvider = sdkmetric.NewMeterProvider(options...)

	return telemetry.meterProvider.Meter("stackwalk-meter"), nil
}

func NewTracer(telemetry *Telemetry, res *resource.Resource, processors []sdktrace.SpanProcessor) (trace.Tracer, error) {
	options := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
	}
	for _, processor := range processors {
		options = append(options, sdktrace.WithSpanProcessor(processor))
	}

	// * construct exporter
	if telemetry.exporting() {
		exporter, err := otlptracegrpc.New(
			context.Background(),
			otlptracegrpc.WithEndpoint(*telemetry.Config.TelemetryUrl),
			otlptracegrpc.WithHeaders(telemetry.headers()),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, span.NewWalkerError(telemetry.walker, "unable to initialize trace exporter", err)
		}
		options = append(options, sdktrace.WithBatcher(exporter))
	}

	// * construct provider
	telemetry.tracerProvider = sdktrace.NewTracerProvider(options...)

	return telemetry.tracerProvider.Tracer("stackwalk-tracer"), nil
}

func (r *Telemetry) Shutdown(ctx context.Context) error {
	return errors.Join(
		r.tracerProvider.Shutdown(ctx),
		r.meterProvider.Shutdown(ctx),
	)
}
