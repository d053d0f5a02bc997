// app_events.go - Wails 事件
// 前端 → Go：焦点变化；Go → 前端：焦点请求、配置重载

package main

// 事件名称常量
const (
	// EventWindowFocusChanged 前端在 window focus/blur 时发送，参数为 bool
	EventWindowFocusChanged = "window:focus-changed"
	EventConfigReloaded     = "config:reloaded"
)

// emit 发送事件到前端
func (a *App) emit(name string, data ...interface{}) {
	if a.ctx == nil || a.runtime == nil {
		return
	}
	a.runtime.EventsEmit(a.ctx, name, data...)
}

// emitConfigReloaded 通知前端配置已更新
func (a *App) emitConfigReloaded() {
	a.emit(EventConfigReloaded, a.GetShellInfo())
}
