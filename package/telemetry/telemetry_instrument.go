package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Instrument struct {
	InspectionCounter              metric.Int64Counter
	HttpDurationHistogram          metric.Int64Histogram
	HttpActiveRequestUpDownCounter metric.Int64UpDownCounter
}

func NewInstrument(meter metric.Meter) (*Instrument, error) {
	inspectionCounter, err := meter.Int64Counter(
		"stackwalk.inspection.count",
		metric.WithDescription("Number of call stack inspections"),
	)
	if err != nil {
		return nil, err
	}

	httpDurationHistogram, err := meter.Int64Histogram(
		"app.http.duration",
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	httpActiveRequestUpDownCounter, err := meter.Int64UpDownCounter(
		"app.http.active_requests",
		metric.WithDescription("Number of active HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &Instrument{
		InspectionCounter:              inspectionCounter,
		HttpDurationHistogram:          httpDurationHistogram,
		HttpActiveRequestUpDownCounter: httpActiveRequestUpDownCounter,
	}, nil
}

func (r *Instrument) InspectionRecord(ctx context.Context, found bool) {
	r.InspectionCounter.Add(
		ctx,
		1,
		metric.WithAttributes(
			attribute.Bool("found", found),
		),
	)
}

func (r *Instrument) HttpDurationRecord(ctx context.Context, duration int64, path string, status int) {
	r.HttpDurationHistogram.Record(
		ctx,
		duration,
		metric.WithAttributes(
			attribute.String("http.path", path),
			attribute.Int("http.status", status),
		),
	)
}

func (r *Instrument) HttpActiveRequestCounter(ctx context.Context, delta int64, path string) {
	r.HttpActiveRequestUpDownCounter.Add(
		ctx,
		delta,
		metric.WithAttributes(
			attribute.String("http.path", path),
		),
	)
}
