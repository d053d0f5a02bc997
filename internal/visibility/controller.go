package visibility

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
)

// MainWindow is the logical name of the single shell window.
const MainWindow = "main"

// Window is the capability set the controller needs from the host window.
type Window interface {
	IsVisible() (bool, error)
	Show() error
	Hide() error
	Focus() error
}

// Resolver looks a window up by logical name.
type Resolver interface {
	Window(name string) (Window, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(name string) (Window, error)

func (f ResolverFunc) Window(name string) (Window, error) { return f(name) }

// ErrNilWindow is returned when a resolver reports success without a window.
var ErrNilWindow = errors.New("resolver returned nil window")

// Controller translates events into window commands.
// It keeps no copy of the window's visibility: every event re-resolves the
// window and asks the host.
type Controller struct {
	resolver   Resolver
	windowName string
	hideOnBlur atomic.Bool
	exit       func(code int)
	logger     *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithWindowName overrides the logical window name (default "main").
func WithWindowName(name string) Option {
	return func(c *Controller) {
		if name != "" {
			c.windowName = name
		}
	}
}

// WithHideOnBlur sets the initial focus-loss policy (default true).
func WithHideOnBlur(enabled bool) Option {
	return func(c *Controller) { c.hideOnBlur.Store(enabled) }
}

// WithExit replaces os.Exit, mainly for tests.
func WithExit(exit func(code int)) Option {
	return func(c *Controller) {
		if exit != nil {
			c.exit = exit
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController creates a controller bound to resolver.
func NewController(resolver Resolver, opts ...Option) *Controller {
	c := &Controller{
		resolver:   resolver,
		windowName: MainWindow,
		exit:       os.Exit,
		logger:     slog.Default(),
	}
	c.hideOnBlur.Store(true)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetHideOnBlur changes the focus-loss policy; safe to call from any goroutine.
func (c *Controller) SetHideOnBlur(enabled bool) {
	c.hideOnBlur.Store(enabled)
}

// HideOnBlur reports the current focus-loss policy.
func (c *Controller) HideOnBlur() bool {
	return c.hideOnBlur.Load()
}

// Handle runs one event to completion and returns the command it issued.
// Quit calls the exit function with code 0 before returning.
func (c *Controller) Handle(e Event) (Command, error) {
	if e.Terminal() {
		c.logger.Info("👋 退出菜单被选择，立即退出进程")
		c.exit(0)
		return CommandQuit, nil
	}

	w, err := c.resolver.Window(c.windowName)
	if err != nil {
		return CommandNone, fmt.Errorf("resolve window %q: %w", c.windowName, err)
	}
	if w == nil {
		return CommandNone, fmt.Errorf("resolve window %q: %w", c.windowName, ErrNilWindow)
	}

	visible, err := w.IsVisible()
	if err != nil {
		return CommandNone, fmt.Errorf("query visibility of %q: %w", c.windowName, err)
	}

	m := Machine{HideOnBlur: c.hideOnBlur.Load()}
	from := StateOf(visible)
	to, cmd := m.Transition(from, e)

	switch cmd {
	case CommandShow:
		if err := w.Show(); err != nil {
			return cmd, fmt.Errorf("show %q: %w", c.windowName, err)
		}
		if err := w.Focus(); err != nil {
			return cmd, fmt.Errorf("focus %q: %w", c.windowName, err)
		}
	case CommandHide:
		if err := w.Hide(); err != nil {
			return cmd, fmt.Errorf("hide %q: %w", c.windowName, err)
		}
	case CommandQuit:
		// Transition only yields quit for terminal events, handled above.
		c.exit(0)
		return cmd, nil
	case CommandNone:
		if e.Kind == EventMenuSelect {
			c.logger.Debug("忽略未知托盘菜单项", "id", e.MenuID)
		}
	}

	c.logger.Debug("窗口事件已处理",
		"event", e.String(),
		"from", from.String(),
		"to", to.String(),
		"command", cmd.String())

	return cmd, nil
}
