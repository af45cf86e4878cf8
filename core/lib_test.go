package core

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.scnd.dev/open/stackwalk"
	"go.scnd.dev/open/stackwalk/package/telemetry"
	"go.scnd.dev/open/stackwalk/package/walker"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

//go:noinline
func lookup(instance *Instance, skip int) (string, bool) {
	return instance.FunctionName(context.Background(), skip, nil)
}

func handleStack(c fiber.Ctx) error {
	return c.SendString("ok")
}

func TestNewWalker(t *testing.T) {
	inspector, err := NewWalker(&stackwalk.Config{
		Naming:  gut.Ptr("package"),
		Depth:   gut.Ptr(8),
		Runtime: gut.Ptr(true),
		Exclude: []*string{gut.Ptr("go.scnd.dev/open/stackwalk/core.lookup")},
	})
	require.NoError(t, err)
	assert.Equal(t, walker.NamingPackage, inspector.Naming())

	name, ok := inspector.FunctionName(0, nil)
	require.True(t, ok)
	assert.Equal(t, "core.TestNewWalker", name)

	_, err = NewWalker(&stackwalk.Config{Naming: gut.Ptr("qualified")})
	assert.Error(t, err)
}

func TestNewInvalidConfig(t *testing.T) {
	_, err := New(&stackwalk.Config{Naming: gut.Ptr("qualified")})
	assert.ErrorContains(t, err, "invalid naming")
}

func TestNewSharesWalker(t *testing.T) {
	instance, err := New(new(stackwalk.Config))
	require.NoError(t, err)
	defer func() {
		_ = instance.Shutdown(context.Background())
	}()

	assert.Same(t, instance.walker, instance.telemetry.Walker())
}

func TestFunctionName(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	instance, err := New(new(stackwalk.Config), telemetry.WithReader(reader))
	require.NoError(t, err)

	name, ok := lookup(instance, 0)
	require.True(t, ok)
	assert.Equal(t, "lookup", name)

	name, ok = lookup(instance, 1)
	require.True(t, ok)
	assert.Equal(t, "TestFunctionName", name)

	_, ok = lookup(instance, 100)
	assert.False(t, ok)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	counts := make(map[bool]int64)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == "stackwalk.inspection.count" {
				for _, point := range sum.DataPoints {
					value, _ := point.Attributes.Value(attribute.Key("found"))
					counts[value.AsBool()] = point.Value
				}
			}
		}
	}
	assert.Equal(t, map[bool]int64{true: 2, false: 1}, counts)
}

func TestLayer(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	instance, err := New(new(stackwalk.Config), telemetry.WithSpanProcessor(recorder))
	require.NoError(t, err)

	s, _ := instance.Layer("core", "test").With(context.Background())
	s.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "core.TestLayer", ended[0].Name())
}

func TestMiddleware(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	instance, err := New(new(stackwalk.Config), telemetry.WithSpanProcessor(recorder))
	require.NoError(t, err)

	app := fiber.New()
	app.Use(instance.Middleware())
	app.Get("/stack", handleStack)

	response, err := app.Test(httptest.NewRequest("GET", "/stack", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, response.StatusCode)

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "handleStack", ended[0].Name())

	attributes := make(map[attribute.Key]attribute.Value)
	for _, kv := range ended[0].Attributes() {
		attributes[kv.Key] = kv.Value
	}
	assert.Equal(t, "GET", attributes["http.method"].AsString())
	assert.Equal(t, "handleStack", attributes["http.route.handler"].AsString())
	assert.Equal(t, int64(200), attributes["http.status_code"].AsInt64())
}

func TestModule(t *testing.T) {
	var provider stackwalk.Provider
	var w stackwalk.Walker

	app := fxtest.New(
		t,
		fx.NopLogger,
		fx.Supply(&stackwalk.Config{Naming: gut.Ptr("full")}),
		Module,
		fx.Populate(&provider, &w),
	)
	app.RequireStart()

	require.NotNil(t, provider)
	name, ok := w.FunctionName(0, nil)
	require.True(t, ok)
	assert.Equal(t, "go.scnd.dev/open/stackwalk/core.TestModule", name)
	assert.Equal(t, "full", *provider.Config().Naming)

	app.RequireStop()
}
