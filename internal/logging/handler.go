package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// maxConsoleMessage 控制台单条日志最多显示的字符数
const maxConsoleMessage = 500

// SimpleHandler 简化的日志处理器
// 输出格式: [2006-01-02 15:04:05.000] [PID:123] [INFO] message key=value
type SimpleHandler struct {
	level   slog.Leveler
	console io.Writer
	file    io.Writer
	attrs   []string
	group   string

	mu *sync.Mutex
	// now is replaced in tests
	now func() time.Time
}

// NewSimpleHandler writes to console and, when file is non-nil, to file.
func NewSimpleHandler(level slog.Leveler, console, file io.Writer) *SimpleHandler {
	if console == nil {
		console = os.Stdout
	}
	return &SimpleHandler{
		level:   level,
		console: console,
		file:    file,
		mu:      &sync.Mutex{},
		now:     time.Now,
	}
}

func (h *SimpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *SimpleHandler) Handle(_ context.Context, r slog.Record) error {
	message := r.Message

	attrs := make([]string, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, formatAttr(h.group, a))
		return true
	})

	if len(attrs) > 0 {
		message = message + " " + strings.Join(attrs, " ")
	}

	timestamp := h.now().Format("2006-01-02 15:04:05.000")
	prefix := fmt.Sprintf("[%s] [PID:%d] [%s] ", timestamp, os.Getpid(), levelName(r.Level))

	h.mu.Lock()
	defer h.mu.Unlock()

	// 文件输出（不截断）
	if h.file != nil {
		if _, err := io.WriteString(h.file, prefix+message+"\n"); err != nil {
			return err
		}
	}

	// 控制台输出
	displayMessage := message
	if cut, ok := truncateRunes(displayMessage, maxConsoleMessage); ok {
		displayMessage = cut + "... (显示截断)"
	}
	_, err := io.WriteString(h.console, prefix+displayMessage+"\n")
	return err
}

// truncateRunes 按字符截断，不会切开多字节的 UTF-8 编码
func truncateRunes(s string, n int) (string, bool) {
	count := 0
	for i := range s {
		if count == n {
			return s[:i], true
		}
		count++
	}
	return s, false
}

func (h *SimpleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = append([]string{}, h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, formatAttr(h.group, a))
	}
	return &clone
}

func (h *SimpleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if clone.group != "" {
		clone.group = clone.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

func levelName(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARN"
	case l >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

func formatAttr(group string, a slog.Attr) string {
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	return fmt.Sprintf("%s=%v", key, a.Value.Resolve())
}
