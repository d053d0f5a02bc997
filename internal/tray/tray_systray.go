//go:build !stub

package tray

import (
	"github.com/energye/systray"
)

type systrayController struct {
	opts  Options
	state *lifecycle
}

func (c *systrayController) Stop() {
	c.state.stop()
}

func start(opts Options) (Controller, error) {
	ctrl := &systrayController{opts: opts}
	ctrl.state = newLifecycle(launch(ctrl.onReady, ctrl.onExit))
	return ctrl, nil
}

func (c *systrayController) onReady() {
	if !c.state.markReady() {
		return
	}

	// 设置图标
	if len(c.opts.Icon) > 0 {
		systray.SetIcon(c.opts.Icon)
	}
	if c.opts.Title != "" {
		systray.SetTitle(c.opts.Title)
	}
	if c.opts.Tooltip != "" {
		systray.SetTooltip(c.opts.Tooltip)
	}

	// 左键：切换窗口；右键：弹出菜单
	systray.SetOnClick(func(menu systray.IMenu) {
		if c.state.isStopped() || c.opts.OnClick == nil {
			return
		}
		c.opts.OnClick()
	})
	systray.SetOnRClick(func(menu systray.IMenu) {
		if c.state.isStopped() {
			return
		}
		_ = menu.ShowMenu()
	})

	for _, item := range c.opts.Items {
		id := item.ID
		m := systray.AddMenuItem(item.Label, item.Tooltip)
		m.Click(func() {
			if c.state.isStopped() {
				return
			}
			c.opts.OnMenuItem(id)
		})
	}
}

func (c *systrayController) onExit() {}
