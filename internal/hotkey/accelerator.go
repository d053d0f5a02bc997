// Package hotkey parses accelerator strings such as "Alt+Space" and registers
// them as process-wide global shortcuts.
package hotkey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyAccelerator = errors.New("empty accelerator")
	ErrUnknownModifier  = errors.New("unknown modifier")
	ErrUnknownKey       = errors.New("unknown key")
	ErrNoKey            = errors.New("accelerator has no key")
	ErrMultipleKeys     = errors.New("accelerator has more than one key")
	ErrNoModifier       = errors.New("global shortcut needs at least one modifier")
)

// Modifier is a platform-neutral modifier key.
type Modifier uint8

const (
	ModCmdOrCtrl Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModShift
	ModSuper
)

// order used by String and Display
var modifierOrder = []Modifier{ModCmdOrCtrl, ModCtrl, ModAlt, ModShift, ModSuper}

var modifierNames = map[string]Modifier{
	"cmdorctrl":        ModCmdOrCtrl,
	"commandorcontrol": ModCmdOrCtrl,
	"ctrl":             ModCtrl,
	"control":          ModCtrl,
	"alt":              ModAlt,
	"option":           ModAlt,
	"opt":              ModAlt,
	"shift":            ModShift,
	"super":            ModSuper,
	"cmd":              ModSuper,
	"command":          ModSuper,
	"meta":             ModSuper,
	"win":              ModSuper,
}

func (m Modifier) String() string {
	switch m {
	case ModCmdOrCtrl:
		return "CmdOrCtrl"
	case ModCtrl:
		return "Ctrl"
	case ModAlt:
		return "Alt"
	case ModShift:
		return "Shift"
	case ModSuper:
		return "Super"
	}
	return fmt.Sprintf("Modifier(%d)", uint8(m))
}

// keyAliases maps lower-case input to the canonical key name.
var keyAliases = map[string]string{
	"space":  "Space",
	"enter":  "Enter",
	"return": "Enter",
	"escape": "Escape",
	"esc":    "Escape",
	"tab":    "Tab",
	"delete": "Delete",
	"del":    "Delete",
	"left":   "Left",
	"right":  "Right",
	"up":     "Up",
	"down":   "Down",
}

func canonicalKey(s string) (string, bool) {
	lower := strings.ToLower(s)
	if k, ok := keyAliases[lower]; ok {
		return k, true
	}
	if len(s) == 1 {
		c := s[0]
		switch {
		case c >= 'a' && c <= 'z':
			return string(c - 'a' + 'A'), true
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return s, true
		}
	}
	if len(lower) >= 2 && lower[0] == 'f' {
		if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 && n <= 12 && strconv.Itoa(n) == lower[1:] {
			return "F" + strconv.Itoa(n), true
		}
	}
	return "", false
}

// Accelerator is a parsed shortcut.
type Accelerator struct {
	Modifiers Modifier
	Key       string
}

// ParseAccelerator parses "Mod+Mod+Key". Parts are case-insensitive.
func ParseAccelerator(s string) (Accelerator, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Accelerator{}, ErrEmptyAccelerator
	}

	var a Accelerator
	parts := strings.Split(s, "+")
	for i, raw := range parts {
		part := strings.TrimSpace(raw)
		if part == "" {
			return Accelerator{}, fmt.Errorf("%q: empty part", s)
		}
		if m, ok := modifierNames[strings.ToLower(part)]; ok {
			a.Modifiers |= m
			continue
		}
		key, ok := canonicalKey(part)
		if !ok {
			// modifiers come first, so only the last part can be a key
			if i < len(parts)-1 {
				return Accelerator{}, fmt.Errorf("%q: %w: %s", s, ErrUnknownModifier, part)
			}
			return Accelerator{}, fmt.Errorf("%q: %w: %s", s, ErrUnknownKey, part)
		}
		if a.Key != "" {
			return Accelerator{}, fmt.Errorf("%q: %w", s, ErrMultipleKeys)
		}
		a.Key = key
	}

	if a.Key == "" {
		return Accelerator{}, fmt.Errorf("%q: %w", s, ErrNoKey)
	}
	if a.Modifiers == 0 {
		return Accelerator{}, fmt.Errorf("%q: %w", s, ErrNoModifier)
	}
	return a, nil
}

// MustParseAccelerator is ParseAccelerator for constants.
func MustParseAccelerator(s string) Accelerator {
	a, err := ParseAccelerator(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Has reports whether m is part of the accelerator.
func (a Accelerator) Has(m Modifier) bool {
	return a.Modifiers&m != 0
}

// String returns the canonical form, e.g. "Alt+Space".
func (a Accelerator) String() string {
	parts := make([]string, 0, len(modifierOrder)+1)
	for _, m := range modifierOrder {
		if a.Has(m) {
			parts = append(parts, m.String())
		}
	}
	parts = append(parts, a.Key)
	return strings.Join(parts, "+")
}

// Display renders the accelerator the way the platform shows shortcuts:
// "⌥ Space" on darwin, "Alt+Space" elsewhere.
func (a Accelerator) Display(goos string) string {
	if goos == "darwin" {
		var sym strings.Builder
		for _, m := range modifierOrder {
			if !a.Has(m) {
				continue
			}
			switch m {
			case ModCmdOrCtrl, ModSuper:
				sym.WriteString("⌘")
			case ModCtrl:
				sym.WriteString("⌃")
			case ModAlt:
				sym.WriteString("⌥")
			case ModShift:
				sym.WriteString("⇧")
			}
		}
		return sym.String() + " " + a.Key
	}

	parts := make([]string, 0, len(modifierOrder)+1)
	for _, m := range modifierOrder {
		if !a.Has(m) {
			continue
		}
		switch m {
		case ModCmdOrCtrl:
			parts = append(parts, "Ctrl")
		case ModSuper:
			if goos == "windows" {
				parts = append(parts, "Win")
			} else {
				parts = append(parts, "Super")
			}
		default:
			parts = append(parts, m.String())
		}
	}
	parts = append(parts, a.Key)
	return strings.Join(parts, "+")
}
