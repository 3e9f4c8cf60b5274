package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/snapsync/internal/adapters/telemetry"
	"go.trai.ch/snapsync/internal/core/domain"
	"go.trai.ch/snapsync/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
}

func TestOTelTracer_StartRecordsAttributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test-tracer", recorder)

	_, span := tracer.Start(context.Background(), "fetch documents", ports.WithAttribute("checksums", 3))
	span.SetAttribute("round", "documents")
	span.SetAttribute("root", domain.ChecksumOf([]byte("root")))
	span.SetAttribute("cached", true)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "fetch documents", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.Int("checksums", 3))
	assert.Contains(t, ended[0].Attributes(), attribute.String("round", "documents"))
	assert.Contains(t, ended[0].Attributes(), attribute.String("root", domain.ChecksumOf([]byte("root")).String()))
	assert.Contains(t, ended[0].Attributes(), attribute.Bool("cached", true))

	require.NoError(t, tracer.Shutdown(context.Background()))
}

func TestOTelSpan_RecordError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test-tracer", recorder)

	_, span := tracer.Start(context.Background(), "synchronize solution")
	span.RecordError(errors.New("remote unavailable"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "remote unavailable", ended[0].Status().Description)
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	assert.NotNil(t, tracer)

	ctx := context.Background()
	got, span := tracer.Start(ctx, "test-span", ports.WithAttribute("k", "v"))
	assert.Equal(t, ctx, got)
	assert.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()

	require.NoError(t, tracer.Shutdown(ctx))
}
