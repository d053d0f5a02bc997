//go:build !stub && !darwin

package tray

import (
	"runtime"

	"github.com/energye/systray"
)

// launch 在独立的 goroutine 中运行托盘消息循环，返回退出函数
// Windows 的托盘窗口只能在创建它的线程上取消息，所以锁定线程
func launch(onReady, onExit func()) (quit func()) {
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		systray.Run(onReady, onExit)
	}()
	return systray.Quit
}
