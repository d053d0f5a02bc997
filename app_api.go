// app_api.go - 暴露给前端的 API 方法 (Wails Bindings)
// 这些方法会被自动生成为 JavaScript 调用

package main

import (
	"fmt"
	"time"

	"github.com/simpledeadly/fleeets-companion/internal/visibility"
)

// ShellInfo 前端展示用的外壳信息
type ShellInfo struct {
	Version       string `json:"version"`
	Hotkey        string `json:"hotkey"`     // 平台显示形式，如 "⌥ Space"
	HotkeyRaw     string `json:"hotkey_raw"` // 规范形式，如 "Alt+Space"
	HideOnBlur    bool   `json:"hide_on_blur"`
	Platform      string `json:"platform"`
	Session       string `json:"session"`
	ConfigPath    string `json:"config_path"`
	Uptime        string `json:"uptime"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// GetShellInfo 获取外壳信息
func (a *App) GetShellInfo() ShellInfo {
	uptime := time.Since(a.startTime)

	info := ShellInfo{
		Version:       Version,
		Hotkey:        a.accel.Display(a.goos),
		HotkeyRaw:     a.accel.String(),
		Platform:      a.goos,
		ConfigPath:    a.configPath,
		Uptime:        formatDuration(uptime),
		UptimeSeconds: int64(uptime.Seconds()),
	}
	if a.controller != nil {
		info.HideOnBlur = a.controller.HideOnBlur()
	}
	if a.logger != nil {
		info.Session = a.logger.Session()
	}
	return info
}

// HideWindow 前端按 Esc 时调用
func (a *App) HideWindow() {
	a.post(visibility.HideRequested())
}

// formatDuration 格式化时长
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
