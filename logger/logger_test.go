package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
	}{
		{name: "JSON output mode", jsonOutput: true},
		{name: "Console output mode", jsonOutput: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Logger = nil
			JSONOutput = false

			var buf bytes.Buffer
			err := InitializeWithSink(tt.jsonOutput, VerbosityInfo, &buf)
			require.NoError(t, err)
			require.NotNil(t, Logger)
			assert.Equal(t, tt.jsonOutput, JSONOutput)

			Infow("generated component", FieldComponent, "Video")
			Cleanup()
			assert.Contains(t, buf.String(), "Video")
		})
	}
}

func TestInitialize_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitializeWithSink(true, VerbosityInfo, &buf))

	Warnw("overwriting hand-edited file", FieldFile, "Video.tsx", FieldComponent, "Video")
	Cleanup()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "Video.tsx", entry[FieldFile])
	assert.Equal(t, "Video", entry[FieldComponent])
	assert.Equal(t, "warn", entry["level"])
}

func TestInitialize_VerbosityFiltersInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitializeWithSink(false, VerbosityUser, &buf))

	Infow("hidden at default verbosity")
	Debugw("also hidden")
	Warnw("visible")
	Cleanup()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{VerbosityTrace, zapcore.DebugLevel},
		{9, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestShouldOutput(t *testing.T) {
	assert.True(t, ShouldOutput(VerbosityUser, OutputProgress))
	assert.True(t, ShouldOutput(VerbosityUser, OutputSummary))
	assert.False(t, ShouldOutput(VerbosityUser, OutputFileStatus))
	assert.True(t, ShouldOutput(VerbosityInfo, OutputFileStatus))
	assert.False(t, ShouldOutput(VerbosityDebug, OutputHookCommand))
	assert.True(t, ShouldOutput(VerbosityTrace, OutputHookCommand))
	assert.False(t, ShouldOutput(VerbosityDebug, OutputCategory(99)))
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "User", LevelName(0))
	assert.Equal(t, "Info (-v)", LevelName(1))
	assert.Equal(t, "Trace (-vvv+)", LevelName(7))
	assert.Equal(t, "Unknown", LevelName(-2))
}

func TestInitialize_RecordsVerbosity(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitializeWithSink(false, VerbosityTrace, &buf))
	assert.Equal(t, VerbosityTrace, Verbosity)
	assert.True(t, ShouldLogTrace(Verbosity))

	require.NoError(t, InitializeWithSink(false, VerbosityDebug, &buf))
	assert.Equal(t, VerbosityDebug, Verbosity)
	assert.False(t, ShouldLogTrace(Verbosity))
}

func TestChildLogger(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitializeWithSink(true, VerbosityInfo, &buf))

	child := ChildLogger(ComponentLogger("writer"), FieldComponent, "Video")
	child.Infow("File handled", FieldFile, "Video.tsx")
	Cleanup()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "Video", entry[FieldComponent])
	assert.Equal(t, "Video.tsx", entry[FieldFile])
	assert.Equal(t, "writer", entry["logger"])
}
