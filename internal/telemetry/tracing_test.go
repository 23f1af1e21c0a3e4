package telemetry

import (
	"context"
	"errors"
	"testing"
)

func TestStartRenderSpanReturnsAUsableSpan(t *testing.T) {
	tr := NewTracer(WithTracerName("test"))

	ctx, span := tr.StartRenderSpan(context.Background(), "mount")
	if ctx == nil {
		t.Fatal("expected a non-nil context")
	}
	if span == nil {
		t.Fatal("expected a non-nil span")
	}
	span.End()
}

func TestRecordErrorIsNilSafe(t *testing.T) {
	_, span := NewTracer().StartRenderSpan(context.Background(), "update")
	defer span.End()

	// Must not panic, and must be a no-op, when err is nil.
	RecordError(span, nil)
	RecordError(span, errors.New("boom"))
}
