package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)

	l := Component(New(&buf, loc), "database")
	l.Info().Str("event", "db_migration_check").Msg("checking")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "database", entry["component"])
	assert.Equal(t, "db_migration_check", entry["event"])
	assert.Equal(t, "checking", entry["msg"])

	ts, ok := entry["ts"].(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	require.NoError(t, err)
	_, offset := parsed.Zone()
	_, want := time.Now().In(loc).Zone()
	assert.Equal(t, want, offset)
}

func TestNew_NilLocation(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, nil)
	l.Warn().Msg("utc")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
