// app.go - Wails 应用核心结构
// 把托盘、全局快捷键、页面焦点事件接到同一个事件循环上

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	goruntime "runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/simpledeadly/fleeets-companion/config"
	"github.com/simpledeadly/fleeets-companion/internal/chrome"
	"github.com/simpledeadly/fleeets-companion/internal/hotkey"
	"github.com/simpledeadly/fleeets-companion/internal/logging"
	"github.com/simpledeadly/fleeets-companion/internal/tray"
	"github.com/simpledeadly/fleeets-companion/internal/visibility"
	"github.com/simpledeadly/fleeets-companion/internal/window"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App 是 Wails 应用的核心结构
// 它持有窗口可见性控制器，并暴露少量方法给前端调用
type App struct {
	// Wails 上下文
	ctx context.Context

	// 核心组件
	config        *config.Config
	configWatcher *config.ConfigWatcher
	logger        *logging.Logger
	host          *window.Host
	controller    *visibility.Controller
	loop          *visibility.Loop
	stopLoop      context.CancelFunc
	tray          tray.Controller
	hotkey        io.Closer
	accel         hotkey.Accelerator
	offFocus      func()
	platform      chrome.Platform

	// 启动时登记的窗口名，重载配置不会改变它
	windowName string

	// 应用状态
	startTime  time.Time
	configPath string

	// 并发控制
	mu       sync.RWMutex
	quitting int32

	// 平台相关调用，测试时替换
	runtime        window.Runtime
	startTray      func(opts tray.Options) (tray.Controller, error)
	registerHotkey func(a hotkey.Accelerator, onPress func()) (io.Closer, error)
	eventsOn       func(ctx context.Context, name string, cb func(optionalData ...interface{})) func()
	exit           func(code int)
	goos           string
}

// NewApp 创建新的应用实例
func NewApp(cfg *config.Config, logger *logging.Logger, watcher *config.ConfigWatcher) *App {
	return &App{
		config:        cfg,
		configWatcher: watcher,
		logger:        logger,
		platform:      chrome.Current(),
		startTime:     time.Now(),

		runtime:   window.WailsRuntime{},
		startTray: tray.Start,
		registerHotkey: func(a hotkey.Accelerator, onPress func()) (io.Closer, error) {
			l, err := hotkey.Register(a, onPress)
			if err != nil {
				return nil, err
			}
			return l, nil
		},
		eventsOn: runtime.EventsOn,
		exit:     os.Exit,
		goos:     goruntime.GOOS,
	}
}

// startup 在 Wails 应用启动时调用
// 任何一步失败都以状态码 1 退出
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	cfg := a.getConfig()

	// 1. 解析快捷键（托盘菜单文案需要）
	accel, err := hotkey.ParseAccelerator(cfg.Hotkey.Toggle)
	if err != nil {
		a.fatal("全局快捷键配置无效", err)
		return
	}
	a.accel = accel

	// 2. 登记 Wails 创建的主窗口
	a.windowName = cfg.Window.Name
	a.host = window.NewHost(a.runtime)
	a.host.Attach(ctx, a.windowName, !cfg.Window.StartHidden)
	if _, err := a.host.Lookup(a.windowName); err != nil {
		a.fatal("主窗口不存在", err)
		return
	}

	// Dock 图标要等 Wails 完成启动后再隐藏
	a.applyPlatformChrome(cfg)

	// 3. 控制器与事件循环
	a.setupController()
	a.startEventLoop()

	// 4. 托盘
	if err := a.setupTray(); err != nil {
		a.fatal("系统托盘创建失败", err)
		return
	}

	// 5. 全局快捷键
	if err := a.setupHotkey(); err != nil {
		a.fatal("全局快捷键注册失败", err)
		return
	}

	// 6. 页面焦点上报
	a.setupFocusBridge()

	// 7. 设置配置热重载
	a.setupConfigReload()

	a.logger.Info("✅ Fleeets Companion 启动完成",
		"window", a.windowName,
		"hotkey", a.accel.String(),
		"hide_on_blur", a.controller.HideOnBlur(),
		"start_hidden", cfg.Window.StartHidden)
}

// domReady 页面加载完成：窗口可见时把输入焦点交给页面
func (a *App) domReady(ctx context.Context) {
	w, err := a.host.Lookup(a.windowName)
	if err != nil {
		return
	}
	if visible, err := w.IsVisible(); err == nil && visible {
		a.emit(window.EventFocusRequest)
	}
}

// beforeClose 在窗口关闭前调用，返回 true 阻止关闭
// 关闭窗口只隐藏到托盘，退出走托盘菜单
func (a *App) beforeClose(ctx context.Context) bool {
	if atomic.LoadInt32(&a.quitting) == 1 {
		return false
	}
	a.post(visibility.HideRequested())
	return true
}

// shutdown 在 Wails 应用关闭时调用
func (a *App) shutdown(ctx context.Context) {
	atomic.StoreInt32(&a.quitting, 1)

	if a.stopLoop != nil {
		a.stopLoop()
	}
	if a.offFocus != nil {
		a.offFocus()
	}
	if a.hotkey != nil {
		if err := a.hotkey.Close(); err != nil {
			a.logger.Warn("⚠️ 注销全局快捷键失败", "error", err)
		}
	}
	if a.tray != nil {
		a.tray.Stop()
	}
	if a.configWatcher != nil {
		if err := a.configWatcher.Close(); err != nil {
			a.logger.Warn("⚠️ 关闭配置监听失败", "error", err)
		}
	}
	if a.host != nil {
		a.host.Detach()
	}

	a.logger.Info("👋 Fleeets Companion 已关闭",
		"uptime", time.Since(a.startTime).Round(time.Second).String())
	a.logger.Close()
}

// getConfig 有热重载时以 watcher 中的配置为准
func (a *App) getConfig() *config.Config {
	if a.configWatcher != nil {
		return a.configWatcher.GetConfig()
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.config
}

// applyPlatformChrome 启动期的一次性平台设置
func (a *App) applyPlatformChrome(cfg *config.Config) {
	if a.platform == nil {
		return
	}
	if chrome.HideDock(a.platform, cfg.Tray.HideDockIcon) {
		a.logger.Debug("🫥 已隐藏 Dock 图标", "platform", a.platform.Name())
	}
}

// resolveWindow 每个事件都重新按名称查找窗口
func (a *App) resolveWindow(name string) (visibility.Window, error) {
	w, err := a.host.Lookup(name)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// setupController 创建可见性控制器和事件循环
func (a *App) setupController() {
	cfg := a.getConfig()
	a.controller = visibility.NewController(
		visibility.ResolverFunc(a.resolveWindow),
		visibility.WithWindowName(a.windowName),
		visibility.WithHideOnBlur(cfg.Behavior.HideOnBlurEnabled()),
		visibility.WithExit(a.quit),
		visibility.WithLogger(a.logger.Logger),
	)
	a.loop = visibility.NewLoop(a.controller, visibility.WithLoopLogger(a.logger.Logger))
}

// startEventLoop 在单独的 goroutine 中串行处理所有窗口事件
func (a *App) startEventLoop() {
	loopCtx, cancel := context.WithCancel(context.Background())
	a.stopLoop = cancel

	go func() {
		err := a.loop.Run(loopCtx)
		if err == nil || errors.Is(err, visibility.ErrQuit) {
			return
		}
		a.fatal("窗口事件处理失败", err)
	}()
}

// post 把事件交给事件循环；循环停止后丢弃
func (a *App) post(e visibility.Event) {
	if a.loop == nil || !a.loop.Post(e) {
		a.logger.Debug("事件循环未运行，丢弃事件", "event", e.String())
	}
}

// setupTray 启动系统托盘：左键切换窗口，菜单 Show / Quit
func (a *App) setupTray() error {
	cfg := a.getConfig()

	showLabel := cfg.Tray.ShowLabel
	if showLabel == "" {
		showLabel = fmt.Sprintf("Show (%s)", a.accel.Display(a.goos))
	}

	ctrl, err := a.startTray(tray.Options{
		Icon:    trayIcon(a.goos),
		Title:   cfg.Tray.Title,
		Tooltip: cfg.Tray.Tooltip,
		Items: []tray.MenuItem{
			{ID: visibility.MenuItemShow, Label: showLabel},
			{ID: visibility.MenuItemQuit, Label: cfg.Tray.QuitLabel},
		},
		OnClick: func() {
			a.post(visibility.TrayLeftClick())
		},
		OnMenuItem: func(id string) {
			a.post(visibility.MenuSelect(id))
		},
	})
	if err != nil {
		return err
	}
	a.tray = ctrl
	a.logger.Debug("📌 系统托盘已启动", "show_label", showLabel)
	return nil
}

// setupHotkey 注册全局快捷键，进程存活期间一直有效
func (a *App) setupHotkey() error {
	l, err := a.registerHotkey(a.accel, func() {
		a.post(visibility.HotkeyPressed())
	})
	if err != nil {
		return fmt.Errorf("%s: %w", a.accel, err)
	}
	a.hotkey = l
	a.logger.Info("⌨️ 全局快捷键已注册", "hotkey", a.accel.Display(a.goos))
	return nil
}

// setupFocusBridge 订阅页面上报的焦点变化
func (a *App) setupFocusBridge() {
	a.offFocus = a.eventsOn(a.ctx, EventWindowFocusChanged, a.onFocusChanged)
}

func (a *App) onFocusChanged(data ...interface{}) {
	if len(data) == 0 {
		a.logger.Warn("⚠️ 焦点事件缺少参数")
		return
	}
	focused, ok := data[0].(bool)
	if !ok {
		a.logger.Warn("⚠️ 焦点事件参数类型错误", "value", fmt.Sprintf("%v", data[0]))
		return
	}

	if w, err := a.host.Lookup(a.windowName); err == nil {
		w.SetFocused(focused)
	}
	a.post(visibility.FocusChanged(focused))
}

// setupConfigReload 设置配置热重载
func (a *App) setupConfigReload() {
	if a.configWatcher == nil {
		return
	}

	a.configWatcher.AddReloadCallback(func(_, newCfg *config.Config) {
		a.controller.SetHideOnBlur(newCfg.Behavior.HideOnBlurEnabled())
		a.logger.SetLevel(newCfg.Logging.Level)

		a.logger.Info("🔄 配置已重新加载",
			"hide_on_blur", newCfg.Behavior.HideOnBlurEnabled(),
			"log_level", newCfg.Logging.Level)

		// 通知前端配置已更新
		a.emitConfigReloaded()
	})

	a.logger.Info("🔄 配置热重载已启用", "path", a.configWatcher.Path())
}

// quit 托盘 Quit：立即结束进程
func (a *App) quit(code int) {
	atomic.StoreInt32(&a.quitting, 1)
	a.logger.Info("👋 退出 Fleeets Companion", "code", code)

	if a.tray != nil {
		a.tray.Stop()
	}
	a.logger.Close()
	a.exit(code)
}

// fatal 记录错误并以状态码 1 退出
func (a *App) fatal(msg string, err error) {
	atomic.StoreInt32(&a.quitting, 1)
	a.logger.Error("❌ "+msg, "error", err)
	a.logger.Close()
	a.exit(1)
}
