// Package logging 基于 log/slog 的日志初始化：控制台 + 可轮转的文件输出
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/simpledeadly/fleeets-companion/config"
)

const defaultMaxFileSize = 10 * 1024 * 1024

// Logger bundles the slog logger with what needs closing and re-levelling.
type Logger struct {
	*slog.Logger

	level   *slog.LevelVar
	file    *lumberjack.Logger
	session string
}

// ParseLevel maps the config level name; unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseSize parses sizes such as "10MB"; the result is in bytes.
func ParseSize(s string) (uint64, error) {
	if strings.TrimSpace(s) == "" {
		return defaultMaxFileSize, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("invalid size %q: must be positive", s)
	}
	return n, nil
}

// Setup 配置结构化日志
// console may be nil (stdout). Every record carries a per-launch session id.
func Setup(cfg config.LoggingConfig, console io.Writer) (*Logger, error) {
	level := &slog.LevelVar{}
	level.Set(ParseLevel(cfg.Level))

	l := &Logger{
		level:   level,
		session: uuid.NewString()[:8],
	}

	var file io.Writer
	if cfg.FileEnabled && cfg.FilePath != "" {
		maxSize, err := ParseSize(cfg.MaxFileSize)
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		l.file = &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    rotateSizeMB(maxSize),
			MaxBackups: cfg.MaxFiles,
			Compress:   cfg.CompressRotated,
			LocalTime:  true,
		}
		file = l.file
	}

	handler := NewSimpleHandler(level, console, file)
	l.Logger = slog.New(handler).With("session", l.session)
	return l, nil
}

// rotateSizeMB 把字节数换算成 lumberjack 的 MB（MiB）单位，向上取整
// "10MB" 按 SI 解析为 10,000,000 字节，结果仍是 10
func rotateSizeMB(size uint64) int {
	const mib = 1 << 20
	megabytes := int((size + mib - 1) / mib)
	if megabytes < 1 {
		megabytes = 1
	}
	return megabytes
}

// Session returns the per-launch id attached to every record.
func (l *Logger) Session() string {
	return l.session
}

// SetLevel changes the level of every logger derived from l.
func (l *Logger) SetLevel(name string) {
	l.level.Set(ParseLevel(name))
}

// Level returns the current level.
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
