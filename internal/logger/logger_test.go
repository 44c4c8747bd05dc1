package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf, "warn", "json")

	log.Info().Msg("hidden")
	log.Warn().Str("path", "marks.xlsx").Msg("shown")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "marks.xlsx", entry["path"])
	assert.Contains(t, entry, "time")
}

func TestSetupPretty(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf, "info", "pretty")
	log.Info().Msg("report written")

	assert.Contains(t, buf.String(), "report written")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestSetupUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf, "chatty", "json")

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
	log.Info().Msg("shown")
	assert.NotEmpty(t, buf.String())
}
