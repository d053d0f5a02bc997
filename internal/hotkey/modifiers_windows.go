//go:build !stub

package hotkey

import "golang.design/x/hotkey"

func nativeModifier(m Modifier) (hotkey.Modifier, bool) {
	switch m {
	case ModCtrl, ModCmdOrCtrl:
		return hotkey.ModCtrl, true
	case ModAlt:
		return hotkey.ModAlt, true
	case ModShift:
		return hotkey.ModShift, true
	case ModSuper:
		return hotkey.ModWin, true
	}
	return 0, false
}
