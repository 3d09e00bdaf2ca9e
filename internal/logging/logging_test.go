package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/config"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.LoggingConfig{Level: "info"}, &buf)
	require.NoError(t, err)

	log.Info().Int("course_id", 3).Msg("lesson completed")
	log.Debug().Msg("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "lesson completed", entry["message"])
	assert.EqualValues(t, 3, entry["course_id"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_PrettyOutputHasNoColorOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.LoggingConfig{Level: "warn", Pretty: true}, &buf)
	require.NoError(t, err)

	log.Warn().Str("user", "amara").Msg("streak reset")

	out := buf.String()
	assert.Contains(t, out, "streak reset")
	assert.Contains(t, out, "user=amara")
	assert.NotContains(t, out, "\x1b[")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.WarnLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{" INFO ", zerolog.InfoLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"loud", zerolog.WarnLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_UnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.LoggingConfig{Level: "chatty"}, &buf)
	require.Error(t, err)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}
