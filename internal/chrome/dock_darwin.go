//go:build darwin

package chrome

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Foundation -framework AppKit

#import <Foundation/Foundation.h>
#import <AppKit/AppKit.h>

// Wails 在 applicationWillFinishLaunching 里会把策略重置为 Regular，
// 所以排到主队列，等 Cocoa 主循环跑起来再设置
void hideFromDock() {
    dispatch_async(dispatch_get_main_queue(), ^{
        if ([NSApp isRunning]) {
            [NSApp setActivationPolicy:NSApplicationActivationPolicyAccessory];
        }
    });
}
*/
import "C"

type darwinPlatform struct {
	Base
}

// Current returns the platform of this build.
func Current() Platform { return darwinPlatform{} }

func (darwinPlatform) Name() string               { return "darwin" }
func (darwinPlatform) SupportsDockHiding() bool   { return true }
func (darwinPlatform) SupportsTransparency() bool { return true }

// HideDockIcon 在 OnStartup 中调用，Cocoa 主循环未运行时不生效
func (darwinPlatform) HideDockIcon() {
	C.hideFromDock()
}
