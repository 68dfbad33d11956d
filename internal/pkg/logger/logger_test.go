package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := ConfigFrom("WARN", "json")
	cfg.Output = &buf
	Configure(cfg)
	t.Cleanup(func() { Configure(Config{Level: InfoLevel}) })

	Info().Msg("dropped")
	Warn().Str("session", "abc").Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "abc", entry["session"])
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestConfigFrom(t *testing.T) {
	assert.Equal(t, Config{Level: DebugLevel, Pretty: true}, ConfigFrom("Debug", "TEXT"))
	assert.Equal(t, Config{Level: InfoLevel, Pretty: false}, ConfigFrom("info", "json"))
}
