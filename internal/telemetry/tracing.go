package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// defaultTracerName is the tracer name used when none is configured.
const defaultTracerName = "renderkit"

// TracingConfig configures the OpenTelemetry instrumentation.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "renderkit").
	TracerName string
	// IncludeContainerLabel is stored in the config only. StartRenderSpan
	// takes no container and never adds a "container" attribute, whatever
	// this is set to. Defaults to false.
	IncludeContainerLabel bool

	tracer trace.Tracer
}

// TracingOption configures the OpenTelemetry instrumentation.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) { c.TracerName = name }
}

// WithContainerLabel sets IncludeContainerLabel; spans are not affected by it.
func WithContainerLabel(include bool) TracingOption {
	return func(c *TracingConfig) { c.IncludeContainerLabel = include }
}

func defaultTracingConfig() TracingConfig {
	return TracingConfig{TracerName: defaultTracerName}
}

// Tracer wraps a resolved OpenTelemetry tracer for render-pass spans.
//
// Example:
//
//	tr := telemetry.NewTracer(telemetry.WithTracerName("my-app"))
//	ctx, span := tr.StartRenderSpan(context.Background(), "mount")
//	defer span.End()
//
// The tracer uses the global OpenTelemetry tracer provider; configure it in
// main() before starting the renderer.
func NewTracer(opts ...TracingOption) *Tracer {
	config := defaultTracingConfig()
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)
	return &Tracer{config: config}
}

// Tracer is the resolved tracing capability returned by NewTracer, used to
// open span-scoped render passes.
type Tracer struct {
	config TracingConfig
}

// StartRenderSpan starts a span covering one patch() call.
func (t *Tracer) StartRenderSpan(ctx context.Context, kind string) (context.Context, trace.Span) {
	return t.config.tracer.Start(ctx, "renderkit.render",
		trace.WithAttributes(attribute.String("renderkit.kind", kind)))
}

// RecordError sets span's status to error and records err as a span event.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
