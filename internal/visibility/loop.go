package visibility

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// ErrQuit is returned by Loop.Run after a quit command was handled.
var ErrQuit = errors.New("quit requested")

const defaultQueueSize = 32

// Loop serialises events from every host callback onto one goroutine.
type Loop struct {
	ctrl   *Controller
	events chan Event
	done   chan struct{}
	once   sync.Once
	logger *slog.Logger
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithQueueSize sets the event buffer size.
func WithQueueSize(n int) LoopOption {
	return func(l *Loop) {
		if n > 0 {
			l.events = make(chan Event, n)
		}
	}
}

// WithLoopLogger sets the logger.
func WithLoopLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoop creates a loop driving ctrl.
func NewLoop(ctrl *Controller, opts ...LoopOption) *Loop {
	l := &Loop{
		ctrl:   ctrl,
		events: make(chan Event, defaultQueueSize),
		done:   make(chan struct{}),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Post queues e. It blocks while the queue is full and returns false once the
// loop has stopped.
func (l *Loop) Post(e Event) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.events <- e:
		return true
	case <-l.done:
		return false
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run processes events until ctx is cancelled, an event fails or quit is handled.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })

	for {
		select {
		case <-ctx.Done():
			return nil
		case e := <-l.events:
			cmd, err := l.ctrl.Handle(e)
			if err != nil {
				l.logger.Error("❌ 窗口事件处理失败", "event", e.String(), "error", err)
				return err
			}
			if cmd == CommandQuit {
				return ErrQuit
			}
		}
	}
}
