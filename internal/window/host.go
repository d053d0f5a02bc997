// Package window 将 Wails 运行时的窗口操作包装为按名称寻址的窗口句柄
package window

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// EventFocusRequest is emitted to the page after the window is given focus.
const EventFocusRequest = "window:focus"

var (
	ErrWindowNotFound = errors.New("window not found")
	ErrWindowClosed   = errors.New("window closed")
)

// Runtime is the subset of the Wails runtime the host uses.
type Runtime interface {
	WindowShow(ctx context.Context)
	WindowHide(ctx context.Context)
	WindowUnminimise(ctx context.Context)
	EventsEmit(ctx context.Context, name string, data ...interface{})
}

// WailsRuntime forwards to github.com/wailsapp/wails/v2/pkg/runtime.
type WailsRuntime struct{}

func (WailsRuntime) WindowShow(ctx context.Context)       { runtime.WindowShow(ctx) }
func (WailsRuntime) WindowHide(ctx context.Context)       { runtime.WindowHide(ctx) }
func (WailsRuntime) WindowUnminimise(ctx context.Context) { runtime.WindowUnminimise(ctx) }
func (WailsRuntime) EventsEmit(ctx context.Context, name string, data ...interface{}) {
	runtime.EventsEmit(ctx, name, data...)
}

// Host 管理应用窗口句柄
type Host struct {
	rt Runtime

	mu      sync.RWMutex
	windows map[string]*Window
}

// NewHost creates a host; a nil rt uses the Wails runtime.
func NewHost(rt Runtime) *Host {
	if rt == nil {
		rt = WailsRuntime{}
	}
	return &Host{
		rt:      rt,
		windows: make(map[string]*Window),
	}
}

// Attach registers the window Wails created for ctx under name.
// visible is the state the window was created in.
func (h *Host) Attach(ctx context.Context, name string, visible bool) *Window {
	w := &Window{
		name: name,
		ctx:  ctx,
		rt:   h.rt,
	}
	w.visible.Store(visible)
	w.focused.Store(visible)

	h.mu.Lock()
	h.windows[name] = w
	h.mu.Unlock()
	return w
}

// Lookup returns the window registered under name.
func (h *Host) Lookup(name string) (*Window, error) {
	h.mu.RLock()
	w, ok := h.windows[name]
	h.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWindowNotFound, name)
	}
	return w, nil
}

// Detach closes every window; later calls on them fail with ErrWindowClosed.
func (h *Host) Detach() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for name, w := range h.windows {
		w.closed.Store(true)
		delete(h.windows, name)
	}
}

// Window is one host window. Visibility and focus are only changed through
// its methods or by focus reports from the page.
type Window struct {
	name string
	ctx  context.Context
	rt   Runtime

	visible atomic.Bool
	focused atomic.Bool
	closed  atomic.Bool
}

func (w *Window) Name() string { return w.name }

func (w *Window) check() error {
	if w.closed.Load() {
		return fmt.Errorf("%w: %s", ErrWindowClosed, w.name)
	}
	if w.ctx == nil {
		return fmt.Errorf("window %s has no runtime context", w.name)
	}
	return nil
}

// IsVisible reports whether the window is currently shown.
func (w *Window) IsVisible() (bool, error) {
	if err := w.check(); err != nil {
		return false, err
	}
	return w.visible.Load(), nil
}

// IsFocused reports the last focus state known for the window.
func (w *Window) IsFocused() bool {
	return w.focused.Load()
}

// Show 显示窗口
func (w *Window) Show() error {
	if err := w.check(); err != nil {
		return err
	}
	w.rt.WindowShow(w.ctx)
	w.visible.Store(true)
	return nil
}

// Hide 隐藏窗口
func (w *Window) Hide() error {
	if err := w.check(); err != nil {
		return err
	}
	w.rt.WindowHide(w.ctx)
	w.visible.Store(false)
	w.focused.Store(false)
	return nil
}

// Focus 恢复最小化并让前端把输入焦点放回输入框
func (w *Window) Focus() error {
	if err := w.check(); err != nil {
		return err
	}
	w.rt.WindowUnminimise(w.ctx)
	w.focused.Store(true)
	w.rt.EventsEmit(w.ctx, EventFocusRequest)
	return nil
}

// SetFocused records a focus change reported by the page.
func (w *Window) SetFocused(focused bool) {
	w.focused.Store(focused)
}
