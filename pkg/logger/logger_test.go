package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLevel := GetLevel()
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(prevLevel)
	})
	return &buf
}

func TestLogMessage_WritesComponentAndFields(t *testing.T) {
	buf := captureOutput(t)
	SetLevel(DEBUG)

	InfoCF("commands", "Registered owner", map[string]any{"owner": "calc", "commands": 3})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "commands", entry["component"])
	assert.Equal(t, "Registered owner", entry["message"])
	assert.Equal(t, "calc", entry["owner"])
	assert.Equal(t, float64(3), entry["commands"])
}

func TestLogMessage_RespectsLevel(t *testing.T) {
	buf := captureOutput(t)
	SetLevel(WARN)

	Debug("hidden")
	InfoC("x", "hidden")
	assert.Empty(t, buf.String())

	WarnC("x", "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestFatal_Exits(t *testing.T) {
	captureOutput(t)
	code := -1
	prev := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = prev })

	Fatal("going down")
	assert.Equal(t, 1, code)
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]LogLevel{
		"debug":   DEBUG,
		"INFO":    INFO,
		"warning": WARN,
		"Error":   ERROR,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestEnableFileLogging(t *testing.T) {
	captureOutput(t)
	SetLevel(INFO)
	path := filepath.Join(t.TempDir(), "picocmd.log")

	require.NoError(t, EnableFileLogging(path))
	Info("to file")
	DisableFileLogging()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"message":"to file"`))
}
