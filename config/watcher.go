package config

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

// ConfigWatcher handles automatic configuration reloading
type ConfigWatcher struct {
	configPath    string
	config        *Config
	mutex         sync.RWMutex
	watcher       *fsnotify.Watcher
	logger        *slog.Logger
	callbacks     []func(old, new *Config)
	lastModTime   time.Time
	debounce      time.Duration
	debounceTimer *time.Timer
	done          chan struct{}
}

// NewConfigWatcher creates a new configuration watcher
func NewConfigWatcher(configPath string, logger *slog.Logger) (*ConfigWatcher, error) {
	return newConfigWatcher(configPath, logger, defaultDebounce)
}

func newConfigWatcher(configPath string, logger *slog.Logger, debounce time.Duration) (*ConfigWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// Load initial configuration
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial config: %w", err)
	}

	// Get initial modification time
	fileInfo, err := os.Stat(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	// Create file watcher
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	cw := &ConfigWatcher{
		configPath:  configPath,
		config:      config,
		watcher:     watcher,
		logger:      logger,
		lastModTime: fileInfo.ModTime(),
		debounce:    debounce,
		done:        make(chan struct{}),
	}

	// Add config file to watcher
	if err := watcher.Add(configPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch config file: %w", err)
	}

	// Start watching in background
	go cw.watchLoop()

	return cw, nil
}

// GetConfig returns the current configuration (thread-safe)
func (cw *ConfigWatcher) GetConfig() *Config {
	cw.mutex.RLock()
	defer cw.mutex.RUnlock()
	return cw.config
}

// Path returns the watched file.
func (cw *ConfigWatcher) Path() string {
	return cw.configPath
}

func (cw *ConfigWatcher) log() *slog.Logger {
	cw.mutex.RLock()
	defer cw.mutex.RUnlock()
	return cw.logger
}

// AddReloadCallback adds a callback function that will be called when config is reloaded
func (cw *ConfigWatcher) AddReloadCallback(callback func(old, new *Config)) {
	cw.mutex.Lock()
	defer cw.mutex.Unlock()
	cw.callbacks = append(cw.callbacks, callback)
}

// watchLoop monitors the config file for changes
func (cw *ConfigWatcher) watchLoop() {
	defer close(cw.done)

	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}

			// Handle file write events, chmod covers touch-style mtime updates
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Chmod) {
				// Check if file was actually modified by comparing modification time
				fileInfo, err := os.Stat(cw.configPath)
				if err != nil {
					cw.log().Warn(fmt.Sprintf("⚠️ 无法获取配置文件信息: %v", err))
					continue
				}

				// Skip if modification time hasn't changed
				if !fileInfo.ModTime().After(cw.lastModTime) {
					continue
				}
				cw.lastModTime = fileInfo.ModTime()

				cw.scheduleReload(event.Name)
			}

			// Handle file rename/remove events (some editors rename files during save)
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				// Re-add the file to watcher in case it was recreated
				time.Sleep(100 * time.Millisecond)
				if _, err := os.Stat(cw.configPath); err == nil {
					if err := cw.watcher.Add(cw.configPath); err == nil {
						cw.log().Info(fmt.Sprintf("🔄 重新监听配置文件: %s", cw.configPath))
						cw.scheduleReload(event.Name)
					}
				}
			}

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.log().Error(fmt.Sprintf("⚠️ 配置文件监听错误: %v", err))
		}
	}
}

// scheduleReload debounces rapid successive writes into one reload.
func (cw *ConfigWatcher) scheduleReload(name string) {
	cw.mutex.Lock()
	defer cw.mutex.Unlock()

	if cw.debounceTimer != nil {
		cw.debounceTimer.Stop()
	}
	cw.debounceTimer = time.AfterFunc(cw.debounce, func() {
		cw.log().Info(fmt.Sprintf("🔄 检测到配置文件变更，正在重新加载... - 文件: %s", name))
		if err := cw.reloadConfig(); err != nil {
			cw.log().Error(fmt.Sprintf("❌ 配置文件重新加载失败，继续使用旧配置: %v", err))
		} else {
			cw.log().Info("✅ 配置文件重新加载成功")
		}
	})
}

// reloadConfig reloads the configuration from file
func (cw *ConfigWatcher) reloadConfig() error {
	newConfig, err := LoadConfig(cw.configPath)
	if err != nil {
		return err
	}

	cw.mutex.Lock()
	oldConfig := cw.config
	cw.config = newConfig
	callbacks := make([]func(old, new *Config), len(cw.callbacks))
	copy(callbacks, cw.callbacks)
	cw.mutex.Unlock()

	// Call all registered callbacks
	for _, callback := range callbacks {
		callback(oldConfig, newConfig)
	}

	// Log configuration changes
	cw.logConfigChanges(oldConfig, newConfig)

	return nil
}

// logConfigChanges logs the key differences between old and new configurations
func (cw *ConfigWatcher) logConfigChanges(oldConfig, newConfig *Config) {
	logger := cw.log()

	if oldConfig.Behavior.HideOnBlurEnabled() != newConfig.Behavior.HideOnBlurEnabled() {
		logger.Info("🪟 失焦隐藏变更",
			"old_enabled", oldConfig.Behavior.HideOnBlurEnabled(),
			"new_enabled", newConfig.Behavior.HideOnBlurEnabled())
	}

	if oldConfig.Logging.Level != newConfig.Logging.Level {
		logger.Info("📝 日志级别变更",
			"old_level", oldConfig.Logging.Level,
			"new_level", newConfig.Logging.Level)
	}

	// 以下配置只在启动时生效
	if oldConfig.Hotkey.Toggle != newConfig.Hotkey.Toggle {
		logger.Warn("⌨️ 全局快捷键变更需要重启后生效",
			"old_hotkey", oldConfig.Hotkey.Toggle,
			"new_hotkey", newConfig.Hotkey.Toggle)
	}

	if oldConfig.Window != newConfig.Window {
		logger.Warn("🪟 窗口配置变更需要重启后生效")
	}

	if oldConfig.Tray != newConfig.Tray {
		logger.Warn("📌 托盘配置变更需要重启后生效")
	}
}

// Close stops the configuration watcher
func (cw *ConfigWatcher) Close() error {
	cw.mutex.Lock()
	// Cancel any pending debounce timer
	if cw.debounceTimer != nil {
		cw.debounceTimer.Stop()
	}
	cw.mutex.Unlock()

	err := cw.watcher.Close()
	<-cw.done
	return err
}
