package otel_test

import (
	"context"
	"errors"
	"testing"

	"lodge/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorder() (*tracetest.SpanRecorder, otel.Otel) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	return recorder, otel.NewWithProvider(provider)
}

func TestScope_RecordsAttributesAndErrors(t *testing.T) {
	recorder, tracer := newRecorder()

	_, scope := tracer.NewScope(context.Background(), "service", "service.Create")
	scope.SetAttributes(map[string]any{
		"booking.reference": "BK-1-ABCD",
		"booking.duration":  12,
		"booking.total":     1300.0,
		"booking.cash":      true,
	})
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("room is not available"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "service.Create", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "room is not available", span.Status().Description)
	assert.Len(t, span.Attributes(), 4)
}

func TestScope_TraceIfErrorNil(t *testing.T) {
	recorder, tracer := newRecorder()

	_, scope := tracer.NewScope(context.Background(), "handler", "handler.Get")
	scope.TraceIfError(nil)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestNoop(t *testing.T) {
	tracer := otel.NewNoop()

	ctx, scope := tracer.NewScope(context.Background(), "service", "service.Get")
	scope.SetAttribute("key", "value")
	scope.End()

	assert.NotNil(t, ctx)
	assert.NoError(t, tracer.Shutdown(context.Background()))
}
