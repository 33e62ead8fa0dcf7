package logging

import (
	"bytes"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"":        LevelInfo,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestJSONLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: LevelInfo, Format: FormatJSON, Writer: &buf})
	require.NoError(t, err)

	l.Debug("hidden")
	l.With("source", "matches.csv").Info("loaded", "rows", 3, "err", errors.New("boom"))
	require.NoError(t, l.Sync())

	var entry map[string]any
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "loaded", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "matches.csv", entry["source"])
	assert.EqualValues(t, 3, entry["rows"])
	assert.Equal(t, "boom", entry["err"])
}

func TestConsoleLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: LevelWarn, Writer: &buf})
	require.NoError(t, err)
	l.Info("quiet")
	l.Warn("loud", "odd")
	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
	assert.Contains(t, out, "odd")
}

func TestUnknownFormat(t *testing.T) {
	_, err := New(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestDefaultIsNeverNil(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })
	SetDefault(nil)
	require.NotNil(t, Default())
	var nilLogger *Logger
	assert.NotPanics(t, func() { nilLogger.Info("ignored") })
}
