//go:build stub || !(darwin || windows || linux)

package hotkey

import "fmt"

// Listener 占位实现：注册成功但永远不会触发
type Listener struct{}

// Register accepts a but never calls onPress.
func Register(a Accelerator, onPress func()) (*Listener, error) {
	if onPress == nil {
		return nil, fmt.Errorf("register %s: nil handler", a)
	}
	return &Listener{}, nil
}

func (l *Listener) Close() error { return nil }
