package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpledeadly/fleeets-companion/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestParseSize(t *testing.T) {
	n, err := ParseSize("10MB")
	require.NoError(t, err)
	assert.Equal(t, uint64(10*1000*1000), n)

	n, err = ParseSize("2MiB")
	require.NoError(t, err)
	assert.Equal(t, uint64(2*1024*1024), n)

	n, err = ParseSize("")
	require.NoError(t, err)
	assert.Equal(t, uint64(defaultMaxFileSize), n)

	_, err = ParseSize("lots")
	assert.Error(t, err)
	_, err = ParseSize("0")
	assert.Error(t, err)
}

func TestSimpleHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	h := NewSimpleHandler(slog.LevelInfo, &buf, nil)
	h.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.UTC) }

	logger := slog.New(h).With("window", "main")
	logger.Debug("hidden")
	logger.WithGroup("tray").Info("clicked", "button", "left")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[2026-01-02 03:04:05.006]")
	assert.Contains(t, out, "[INFO] clicked window=main tray.button=left")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestSimpleHandlerTruncatesConsoleOnly(t *testing.T) {
	var console, file bytes.Buffer
	logger := slog.New(NewSimpleHandler(slog.LevelInfo, &console, &file))

	long := strings.Repeat("x", maxConsoleMessage+50)
	logger.Info(long)

	assert.Contains(t, console.String(), "(显示截断)")
	assert.Contains(t, file.String(), long)
}

func TestSimpleHandlerTruncatesOnRuneBoundary(t *testing.T) {
	var console bytes.Buffer
	logger := slog.New(NewSimpleHandler(slog.LevelInfo, &console, nil))

	// 3 bytes per rune, so a byte cut would land mid-character
	long := "a" + strings.Repeat("窗口", maxConsoleMessage)
	logger.Info(long)

	out := console.String()
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "(显示截断)")

	cut, ok := truncateRunes(long, maxConsoleMessage)
	require.True(t, ok)
	assert.Equal(t, maxConsoleMessage, utf8.RuneCountInString(cut))
	assert.Contains(t, out, cut+"... (显示截断)")
}

func TestTruncateRunesShortMessage(t *testing.T) {
	s, ok := truncateRunes("托盘已启动", 5)
	assert.False(t, ok)
	assert.Equal(t, "托盘已启动", s)

	s, ok = truncateRunes("托盘已启动", 2)
	assert.True(t, ok)
	assert.Equal(t, "托盘", s)
}

func TestRotateSizeMB(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"10MB", 10},
		{"1MB", 1},
		{"500KB", 1},
		{"10MiB", 10},
		{"10.5MiB", 11},
		{"100MB", 96},
	}
	for _, tt := range tests {
		size, err := ParseSize(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, rotateSizeMB(size), tt.in)
	}
	assert.Equal(t, 1, rotateSizeMB(0))
}

func TestSetupWithFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "app.log")

	var console bytes.Buffer
	l, err := Setup(config.LoggingConfig{
		Level:       "debug",
		FileEnabled: true,
		FilePath:    path,
		MaxFileSize: "1MB",
		MaxFiles:    2,
	}, &console)
	require.NoError(t, err)

	l.Debug("hello", "n", 1)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] hello session="+l.Session()+" n=1")
	assert.Contains(t, console.String(), "hello")
	assert.Len(t, l.Session(), 8)
}

func TestSetupInvalidSize(t *testing.T) {
	_, err := Setup(config.LoggingConfig{
		FileEnabled: true,
		FilePath:    filepath.Join(t.TempDir(), "app.log"),
		MaxFileSize: "huge",
	}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestSetLevel(t *testing.T) {
	var console bytes.Buffer
	l, err := Setup(config.LoggingConfig{Level: "info"}, &console)
	require.NoError(t, err)

	l.Debug("before")
	l.SetLevel("debug")
	assert.Equal(t, slog.LevelDebug, l.Level())
	l.Debug("after")

	assert.NotContains(t, console.String(), "before")
	assert.Contains(t, console.String(), "after")
	assert.NoError(t, l.Close())
}
