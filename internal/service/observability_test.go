package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_WritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(zerolog.New(&buf))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "complete-lesson",
		TraceID:  "trace-1",
		Duration: 42 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"lesson_id": 7},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "submit-assignment",
		Err:  errors.New("boom"),
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var ok map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ok))
	assert.Equal(t, "info", ok["level"])
	assert.Equal(t, "service_use_case", ok["message"])
	assert.Equal(t, "complete-lesson", ok["use_case"])
	assert.EqualValues(t, 42, ok["duration_ms"])
	assert.Equal(t, true, ok["success"])
	assert.EqualValues(t, 7, ok["lesson_id"])
	assert.Equal(t, "trace-1", ok["trace_id"])

	var failed map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failed))
	assert.Equal(t, "error", failed["level"])
	assert.Equal(t, "boom", failed["error"])
	assert.Equal(t, false, failed["success"])
	assert.NotContains(t, failed, "trace_id")
}

func TestObserve_ReportsOutcomeWithTraceID(t *testing.T) {
	rec := &recordingObserver{}

	observe(context.Background(), rec, "a", map[string]any{"k": 1})(nil)
	observe(context.Background(), rec, "b", nil)(errors.New("nope"))

	require.Len(t, rec.events, 2)
	assert.True(t, rec.events[0].Success)
	assert.Equal(t, 1, rec.events[0].Fields["k"])
	assert.False(t, rec.events[1].Success)
	assert.EqualError(t, rec.events[1].Err, "nope")
	assert.NotEmpty(t, rec.events[0].TraceID)
	assert.NotEqual(t, rec.events[0].TraceID, rec.events[1].TraceID)
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}
