package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	appDirName     = "Fleeets Companion"
	appDirNameUnix = "fleeets-companion"
)

// GetAppDataDir 获取应用数据目录（跨平台）
// Windows: %APPDATA%\Fleeets Companion
// macOS: ~/Library/Application Support/Fleeets Companion
// Linux: $XDG_DATA_HOME/fleeets-companion 或 ~/.local/share/fleeets-companion
func GetAppDataDir() string {
	return appDataDir(runtime.GOOS, os.Getenv)
}

func appDataDir(goos string, getenv func(string) string) string {
	homeDir, _ := os.UserHomeDir()

	switch goos {
	case "windows":
		baseDir := getenv("APPDATA")
		if baseDir == "" {
			baseDir = filepath.Join(getenv("USERPROFILE"), "AppData", "Roaming")
		}
		return filepath.Join(baseDir, appDirName)

	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", appDirName)

	case "linux":
		if xdgDataHome := getenv("XDG_DATA_HOME"); xdgDataHome != "" {
			return filepath.Join(xdgDataHome, appDirNameUnix)
		}
		return filepath.Join(homeDir, ".local", "share", appDirNameUnix)

	default:
		return filepath.Join(homeDir, "."+appDirNameUnix)
	}
}

// GetLogDir 日志目录
func GetLogDir() string {
	return filepath.Join(GetAppDataDir(), "logs")
}

// EnsureAppDirs 创建数据目录和日志目录
func EnsureAppDirs() error {
	for _, dir := range []string{GetAppDataDir(), GetLogDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建目录失败 %s: %w", dir, err)
		}
	}
	return nil
}
