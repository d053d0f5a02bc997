//go:build !stub && (darwin || windows || linux)

package hotkey

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"
)

// Listener 已注册的全局快捷键
type Listener struct {
	hk   *hotkey.Hotkey
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Register registers a as a global shortcut and calls onPress on every key down.
// onPress runs on the listener goroutine.
func Register(a Accelerator, onPress func()) (*Listener, error) {
	if onPress == nil {
		return nil, fmt.Errorf("register %s: nil handler", a)
	}

	mods, key, err := a.native()
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", a, err)
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, fmt.Errorf("register %s: %w", a, err)
	}

	l := &Listener{
		hk:   hk,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go l.listen(onPress)
	return l, nil
}

func (l *Listener) listen(onPress func()) {
	defer close(l.done)

	keydown := l.hk.Keydown()
	for {
		select {
		case <-l.stop:
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			onPress()
		}
	}
}

// Close stops listening and unregisters the shortcut.
func (l *Listener) Close() error {
	var err error
	l.once.Do(func() {
		close(l.stop)
		<-l.done
		err = l.hk.Unregister()
	})
	return err
}

func (a Accelerator) native() ([]hotkey.Modifier, hotkey.Key, error) {
	key, ok := nativeKeys[a.Key]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrUnknownKey, a.Key)
	}

	var mods []hotkey.Modifier
	for _, m := range modifierOrder {
		if !a.Has(m) {
			continue
		}
		nm, ok := nativeModifier(m)
		if !ok {
			return nil, 0, fmt.Errorf("%w: %s", ErrUnknownModifier, m)
		}
		mods = append(mods, nm)
	}
	return mods, key, nil
}

var nativeKeys = map[string]hotkey.Key{
	"Space":  hotkey.KeySpace,
	"Enter":  hotkey.KeyReturn,
	"Escape": hotkey.KeyEscape,
	"Tab":    hotkey.KeyTab,
	"Delete": hotkey.KeyDelete,
	"Left":   hotkey.KeyLeft,
	"Right":  hotkey.KeyRight,
	"Up":     hotkey.KeyUp,
	"Down":   hotkey.KeyDown,

	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3, "4": hotkey.Key4,
	"5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7, "8": hotkey.Key8, "9": hotkey.Key9,

	"A": hotkey.KeyA, "B": hotkey.KeyB, "C": hotkey.KeyC, "D": hotkey.KeyD, "E": hotkey.KeyE,
	"F": hotkey.KeyF, "G": hotkey.KeyG, "H": hotkey.KeyH, "I": hotkey.KeyI, "J": hotkey.KeyJ,
	"K": hotkey.KeyK, "L": hotkey.KeyL, "M": hotkey.KeyM, "N": hotkey.KeyN, "O": hotkey.KeyO,
	"P": hotkey.KeyP, "Q": hotkey.KeyQ, "R": hotkey.KeyR, "S": hotkey.KeyS, "T": hotkey.KeyT,
	"U": hotkey.KeyU, "V": hotkey.KeyV, "W": hotkey.KeyW, "X": hotkey.KeyX, "Y": hotkey.KeyY,
	"Z": hotkey.KeyZ,

	"F1": hotkey.KeyF1, "F2": hotkey.KeyF2, "F3": hotkey.KeyF3, "F4": hotkey.KeyF4,
	"F5": hotkey.KeyF5, "F6": hotkey.KeyF6, "F7": hotkey.KeyF7, "F8": hotkey.KeyF8,
	"F9": hotkey.KeyF9, "F10": hotkey.KeyF10, "F11": hotkey.KeyF11, "F12": hotkey.KeyF12,
}
