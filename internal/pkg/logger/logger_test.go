package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configureBuffer(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cfg.Output = &buf
	Configure(cfg)
	t.Cleanup(func() { Configure(Config{Format: FormatText}) })
	return &buf
}

func entries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(line, &entry), string(line))
		out = append(out, entry)
	}
	return out
}

func TestConfigureWritesJSONAtLevel(t *testing.T) {
	buf := configureBuffer(t, Config{Level: "WARN", Format: FormatJSON})

	Info().Msg("dropped")
	Warn().Str("store", "student").Msg("kept")

	got := entries(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "warn", got[0]["level"])
	assert.Equal(t, "student", got[0]["store"])
	assert.Equal(t, "registrar", got[0]["service"])
	assert.Equal(t, "kept", got[0]["message"])
}

func TestConfigureUnknownLevelFallsBackToInfo(t *testing.T) {
	buf := configureBuffer(t, Config{Level: "verbose", Format: FormatJSON})

	Debug().Msg("dropped")
	Info().Msg("kept")

	got := entries(t, buf)
	require.Len(t, got, 2)
	assert.Equal(t, "warn", got[0]["level"])
	assert.Equal(t, "verbose", got[0]["requested"])
	assert.Equal(t, "Unknown log level, falling back to info", got[0]["message"])
	assert.Equal(t, "kept", got[1]["message"])
}

func TestConfigureDisabled(t *testing.T) {
	buf := configureBuffer(t, Config{Level: "disabled", Format: FormatJSON})
	Error().Msg("dropped")
	assert.Zero(t, buf.Len())
}

func TestConfigureTextFormat(t *testing.T) {
	buf := configureBuffer(t, Config{Level: "info", Format: FormatText})
	Info().Msg("readable")

	assert.Contains(t, buf.String(), "readable")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestComponentAddsField(t *testing.T) {
	buf := configureBuffer(t, Config{Level: "debug", Format: FormatJSON})

	l := Component("websocket")
	l.Debug().Msg("hello")

	got := entries(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "websocket", got[0]["component"])
}
