package tray

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrNoMenuItems   = errors.New("tray menu has no items")
	ErrNoMenuHandler = errors.New("tray menu handler not set")
)

// Controller 表示托盘控制器（用于停止托盘）。
type Controller interface {
	Stop()
}

// MenuItem 托盘菜单项。
type MenuItem struct {
	// ID 点击后回传给 OnMenuItem 的标识。
	ID      string
	Label   string
	Tooltip string
}

// Options 托盘启动参数。
type Options struct {
	// Icon 托盘图标内容（Windows 推荐 .ico 字节；其它平台使用 .png）。
	Icon []byte

	// Title 菜单栏标题（仅 macOS/Linux 显示，可为空）。
	Title string

	// Tooltip 托盘悬浮提示文本。
	Tooltip string

	// Items 菜单项，按顺序显示。
	Items []MenuItem

	// OnClick 左键点击托盘图标时触发。
	OnClick func()

	// OnMenuItem 菜单项被选择时触发，参数为菜单项 ID。
	OnMenuItem func(id string)
}

// Validate checks the options before any native tray call is made.
func (o Options) Validate() error {
	if len(o.Items) == 0 {
		return ErrNoMenuItems
	}
	if o.OnMenuItem == nil {
		return ErrNoMenuHandler
	}

	ids := lo.Map(o.Items, func(item MenuItem, _ int) string {
		return strings.TrimSpace(item.ID)
	})
	if lo.Contains(ids, "") {
		return fmt.Errorf("tray menu item with empty id")
	}
	if dup := lo.FindDuplicates(ids); len(dup) > 0 {
		return fmt.Errorf("duplicate tray menu item ids: %s", strings.Join(dup, ", "))
	}
	return nil
}

// Start 启动系统托盘（平台相关实现）。
// 必须在 Wails 的主循环启动之后调用，即 OnStartup 中。
func Start(opts Options) (Controller, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tray options: %w", err)
	}
	return start(opts)
}
