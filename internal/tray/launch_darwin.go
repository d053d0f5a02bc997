//go:build !stub && darwin

package tray

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework Cocoa

#import <Cocoa/Cocoa.h>

extern void trayStartOnMainThread(void);

// 在主线程上创建状态栏图标，之后把 NSApp 的 delegate 还给 Wails
static inline void trayAttachToRunningApp(void) {
    void (^attach)(void) = ^{
        id<NSApplicationDelegate> wails = [NSApp delegate];
        trayStartOnMainThread();
        if (wails != nil) {
            [NSApp setDelegate:wails];
        }
    };
    if ([NSThread isMainThread]) {
        attach();
    } else {
        dispatch_sync(dispatch_get_main_queue(), attach);
    }
}
*/
import "C"

import (
	"sync"

	"github.com/energye/systray"
)

var (
	pendingMu    sync.Mutex
	pendingStart func()
)

//export trayStartOnMainThread
func trayStartOnMainThread() {
	pendingMu.Lock()
	run := pendingStart
	pendingStart = nil
	pendingMu.Unlock()

	if run != nil {
		run()
	}
}

// launch 复用 Wails 已经在跑的 Cocoa 主循环，不再调用 [NSApp run]
// 退出函数为空：end() 会 [NSApp terminate:]，重新进入 Wails 的退出流程；
// 状态栏图标随进程一起移除
func launch(onReady, onExit func()) (quit func()) {
	startLoop, _ := systray.RunWithExternalLoop(onReady, onExit)

	pendingMu.Lock()
	pendingStart = startLoop
	pendingMu.Unlock()

	C.trayAttachToRunningApp()
	return func() {}
}
