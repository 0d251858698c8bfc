package logging

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(log.New(&buf, "", 0), InfoLevel)
	require.False(t, l.Enabled(DebugLevel))
	require.True(t, l.Enabled(InfoLevel))
	require.True(t, l.Enabled(ErrorLevel))

	l.Debugf("hidden %d", 1)
	l.Logf(WarnLevel, "shown %d", 2)
	l.Errorf("failed: %s", "boom")
	require.Equal(t, "[WARN] shown 2\n[ERROR] failed: boom\n", buf.String())
}

func TestDisabledAndNilLoggers(t *testing.T) {
	var buf bytes.Buffer
	l := New(log.New(&buf, "", 0), Disabled)
	l.Errorf("nothing")
	require.Empty(t, buf.String())

	var none *Logger
	require.False(t, none.Enabled(FatalLevel))
	none.Tracef("nothing")
}

func TestLogLevelToString(t *testing.T) {
	require.Equal(t, "TRACE", LogLevelToString(TraceLevel))
	require.Equal(t, "DEBUG", LogLevelToString(DebugLevel))
	require.Equal(t, "FATAL", LogLevelToString(FatalLevel))
	require.Equal(t, "OFF", LogLevelToString(Disabled))
}
