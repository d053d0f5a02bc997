// main.go - Fleeets Companion 入口
// 常驻托盘的小窗口：托盘左键 / Alt+Space 切换显示，失焦自动隐藏

package main

import (
	"embed"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/simpledeadly/fleeets-companion/config"
	"github.com/simpledeadly/fleeets-companion/internal/chrome"
	"github.com/simpledeadly/fleeets-companion/internal/logging"
	"github.com/simpledeadly/fleeets-companion/internal/utils"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
)

// 版本信息
var (
	Version   = "0.1.0"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// 命令行参数
var (
	configPath  = flag.String("config", "", "配置文件路径（默认位于应用数据目录）")
	showVersion = flag.Bool("version", false, "显示版本信息")
)

// 嵌入前端资源
//
//go:embed all:frontend/dist
var assets embed.FS

// 嵌入应用图标
//
//go:embed build/appicon.png
var icon []byte

// 托盘图标：Windows 需要 .ico
var (
	//go:embed build/trayicon.png
	trayIconPNG []byte
	//go:embed build/trayicon.ico
	trayIconICO []byte
)

func trayIcon(goos string) []byte {
	if goos == "windows" {
		return trayIconICO
	}
	return trayIconPNG
}

func main() {
	flag.Parse()

	// 处理版本标志
	if *showVersion {
		printVersion(os.Stdout)
		os.Exit(0)
	}

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}

	// 确保应用目录存在
	if err := utils.EnsureAppDirs(); err != nil {
		slog.Warn("⚠️ 无法创建应用目录", "error", err)
	}

	// 首次运行写入默认配置
	created, err := config.EnsureConfigFile(path, config.DefaultYAML)
	if err != nil {
		fatal(nil, "无法写入默认配置", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		fatal(nil, "加载配置失败", err)
	}

	logger, err := logging.Setup(cfg.Logging, nil)
	if err != nil {
		fatal(nil, "初始化日志失败", err)
	}
	slog.SetDefault(logger.Logger)

	if created {
		logger.Info("📝 已生成默认配置文件", "path", path)
	}
	logger.Info("🚀 Fleeets Companion 启动中...",
		"version", Version,
		"config_file", path,
		"log_level", cfg.Logging.Level)

	// 配置热重载失败不影响启动
	watcher, err := config.NewConfigWatcher(path, logger.Logger)
	if err != nil {
		logger.Warn("⚠️ 配置热重载不可用", "error", err)
	}

	app := NewApp(cfg, logger, watcher)
	app.configPath = path

	appOptions, err := buildOptions(app, cfg, app.platform)
	if err != nil {
		fatal(logger, "窗口配置无效", err)
	}

	// 运行 Wails 应用
	if err := wails.Run(appOptions); err != nil {
		fatal(logger, "应用运行失败", err)
	}
}

// buildOptions 根据配置生成 Wails 启动参数
func buildOptions(app *App, cfg *config.Config, platform chrome.Platform) (*options.App, error) {
	bg, err := config.ParseColour(cfg.Window.Background)
	if err != nil {
		return nil, err
	}

	appOptions := &options.App{
		Title:       cfg.Window.Title,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		Frameless:   cfg.Window.Frameless,
		AlwaysOnTop: cfg.Window.AlwaysOnTop,
		StartHidden: cfg.Window.StartHidden,

		// 资源服务器
		AssetServer: &assetserver.Options{
			Assets: assets,
		},

		// 生命周期回调
		OnStartup:     app.startup,
		OnDomReady:    app.domReady,
		OnBeforeClose: app.beforeClose,
		OnShutdown:    app.shutdown,

		// 绑定到前端的方法
		Bind: []interface{}{
			app,
		},
	}

	chrome.Apply(appOptions, platform, chrome.Style{
		Transparent: cfg.Window.Transparent,
		Background:  options.RGBA{R: bg.R, G: bg.G, B: bg.B, A: bg.A},
		Icon:        icon,
		ProgramName: "fleeets-companion",
	})

	// macOS 关于面板
	appOptions.Mac.About = &mac.AboutInfo{
		Title:   cfg.Window.Title,
		Message: fmt.Sprintf("版本 %s", Version),
		Icon:    icon,
	}

	return appOptions, nil
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "Fleeets Companion\n")
	fmt.Fprintf(w, "Version: %s\n", Version)
	fmt.Fprintf(w, "Commit: %s\n", Commit)
	fmt.Fprintf(w, "Built: %s\n", BuildTime)
}

// fatal 启动失败：记录错误并以状态码 1 退出，logger 为 nil 时只写 stderr
func fatal(logger *logging.Logger, msg string, err error) {
	if logger != nil {
		logger.Error("❌ "+msg, "error", err)
		logger.Close()
	}
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	os.Exit(1)
}
