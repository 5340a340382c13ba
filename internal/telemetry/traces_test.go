package telemetry

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestSpanNameFormatter(t *testing.T) {
	tests := map[string]struct {
		pattern  string
		expected string
	}{
		"matched-pattern": {
			pattern:  "GET /api/v1/tasks/{task_id}",
			expected: "GET /api/v1/tasks/{task_id}",
		},
		"unmatched-request": {
			expected: "GET /api/v1/tasks/42",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/42", nil)
			req.Pattern = tt.pattern
			assert.Equal(t, tt.expected, SpanNameFormatter("", req))
		})
	}
}

func TestHttpMetricAttributes(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", nil)
	req.Pattern = "POST /api/v1/tasks"

	attrs := httpMetricAttributes(req)
	assert.Contains(t, attrs, attribute.String("http.route", "POST /api/v1/tasks"))
	assert.Contains(t, attrs, attribute.String("http.request.method", http.MethodPost))
}

func TestRecordErrorAndStatus(t *testing.T) {
	span := &spyRecorder{}
	assert.True(t, RecordErrorAndStatus(span, errors.New("task 3 not found")))
	assert.Equal(t, "task 3 not found", span.lastError)
	assert.Equal(t, codes.Error, span.statusCode)

	span = &spyRecorder{}
	assert.False(t, RecordErrorAndStatus(span, nil))
	assert.Empty(t, span.lastError)
	assert.Equal(t, codes.Ok, span.statusCode)
}

func TestStart(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)))
	previous := tracer
	tracer = tp.Tracer("test")
	t.Cleanup(func() { tracer = previous })

	_, span := Start(t.Context(), trace.WithAttributes(UserID(7)))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "telemetry::TestStart", spans[0].Name)
	assert.Contains(t, spans[0].Attributes, attribute.Int64("user_id", 7))
}

type spyRecorder struct {
	trace.Span
	lastError  string
	statusCode codes.Code
}

func (s *spyRecorder) RecordError(err error, _ ...trace.EventOption) {
	s.lastError = err.Error()
}

func (s *spyRecorder) SetStatus(code codes.Code, _ string) {
	s.statusCode = code
}
