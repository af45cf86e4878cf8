package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/bsthun/gut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.scnd.dev/open/stackwalk"
	"go.scnd.dev/open/stackwalk/package/walker"
)

func TestNewWithWalker(t *testing.T) {
	w := walker.New()
	traced, err := New(new(stackwalk.Config), WithWalker(w))
	require.NoError(t, err)
	assert.Same(t, w, traced.Walker())
	assert.NoError(t, traced.Shutdown(context.Background()))

	plain, err := New(new(stackwalk.Config))
	require.NoError(t, err)
	assert.Nil(t, plain.Walker())
	assert.NoError(t, plain.Shutdown(context.Background()))
}

func TestNewWithoutExporter(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	reader := sdkmetric.NewManualReader()

	telemetry, err := New(&stackwalk.Config{
		AppName:    gut.Ptr("stackwalk"),
		AppVersion: gut.Ptr("test"),
	}, WithSpanProcessor(recorder), WithReader(reader))
	require.NoError(t, err)
	require.NotNil(t, telemetry.Tracer)
	require.NotNil(t, telemetry.Instrument)

	_, s := telemetry.Tracer.Start(context.Background(), "inspect")
	s.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "inspect", ended[0].Name())
	name, ok := ended[0].Resource().Set().Value("service.name")
	require.True(t, ok)
	assert.Equal(t, "stackwalk", name.AsString())

	require.NoError(t, telemetry.Shutdown(context.Background()))
}

func TestInspectionRecord(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	telemetry, err := New(new(stackwalk.Config), WithReader(reader))
	require.NoError(t, err)

	ctx := context.Background()
	telemetry.Instrument.InspectionRecord(ctx, true)
	telemetry.Instrument.InspectionRecord(ctx, true)
	telemetry.Instrument.InspectionRecord(ctx, false)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	found := make(map[bool]int64)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != "stackwalk.inspection.count" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, point := range sum.DataPoints {
				value, _ := point.Attributes.Value(attribute.Key("found"))
				found[value.AsBool()] = point.Value
			}
		}
	}
	assert.Equal(t, map[bool]int64{true: 2, false: 1}, found)
}

func TestNewWithExporter(t *testing.T) {
	telemetry, err := New(&stackwalk.Config{
		TelemetryUrl:          gut.Ptr("localhost:4317"),
		TelemetryOrganization: gut.Ptr("scnd"),
	})
	require.NoError(t, err)
	assert.True(t, telemetry.exporting())
	assert.Equal(t, map[string]string{"X-Scope-OrgID": "scnd"}, telemetry.headers())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = telemetry.Shutdown(ctx)
}

func TestHandler(t *testing.T) {
	assert.Empty(t, Handler(walker.New(), nil))
}
