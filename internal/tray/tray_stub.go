//go:build stub

package tray

import "log/slog"

// stubController 无图形环境下的托盘占位实现（go build -tags stub）。
type stubController struct {
	items int
}

func (c stubController) Stop() {
	slog.Debug("托盘占位实现已停止", "items", c.items)
}

func start(opts Options) (Controller, error) {
	slog.Info("⚠️ 以 stub 方式构建，系统托盘已禁用", "items", len(opts.Items))
	return stubController{items: len(opts.Items)}, nil
}
