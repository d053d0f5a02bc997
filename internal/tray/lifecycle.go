package tray

import "sync"

// lifecycle 记录托盘是否已就绪、是否已停止
// Stop 可能早于 onReady 发生，此时由 onReady 负责退出原生循环
type lifecycle struct {
	mu      sync.Mutex
	ready   bool
	stopped bool
	quit    func()
	once    sync.Once
}

func newLifecycle(quit func()) *lifecycle {
	return &lifecycle{quit: quit}
}

// markReady 原生托盘就绪时调用，返回 false 表示已经停止
func (l *lifecycle) markReady() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		l.quitOnce()
		return false
	}
	l.ready = true
	return true
}

func (l *lifecycle) stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopped = true
	if l.ready {
		l.quitOnce()
	}
}

func (l *lifecycle) isStopped() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stopped
}

func (l *lifecycle) quitOnce() {
	l.once.Do(func() {
		if l.quit != nil {
			l.quit()
		}
	})
}
