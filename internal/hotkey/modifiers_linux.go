//go:build !stub

package hotkey

import "golang.design/x/hotkey"

// X11: Mod1 is Alt, Mod4 is Super on common keymaps.
func nativeModifier(m Modifier) (hotkey.Modifier, bool) {
	switch m {
	case ModCtrl, ModCmdOrCtrl:
		return hotkey.ModCtrl, true
	case ModAlt:
		return hotkey.Mod1, true
	case ModShift:
		return hotkey.ModShift, true
	case ModSuper:
		return hotkey.Mod4, true
	}
	return 0, false
}
