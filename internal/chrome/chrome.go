// Package chrome 平台相关的窗口外观与 Dock 行为
package chrome

import (
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

// Platform describes what the current OS can do for the shell window.
type Platform interface {
	Name() string
	SupportsDockHiding() bool
	// HideDockIcon removes the dock/taskbar presence so only the tray icon remains.
	HideDockIcon()
	SupportsTransparency() bool
}

// Base is the no-op platform every implementation embeds.
type Base struct{}

func (Base) Name() string               { return "generic" }
func (Base) SupportsDockHiding() bool   { return false }
func (Base) HideDockIcon()              {}
func (Base) SupportsTransparency() bool { return false }

// HideDock hides the dock icon when requested and p supports it, reporting whether it did.
func HideDock(p Platform, requested bool) bool {
	if !requested || !p.SupportsDockHiding() {
		return false
	}
	p.HideDockIcon()
	return true
}

// Style is the requested window look.
type Style struct {
	Transparent bool
	Background  options.RGBA
	Icon        []byte
	ProgramName string
}

// Transparent reports whether p renders s transparently.
func Transparent(p Platform, s Style) bool {
	return s.Transparent && p.SupportsTransparency()
}

// Apply fills background and per-OS window options on app.
func Apply(app *options.App, p Platform, s Style) {
	bg := s.Background
	if Transparent(p, s) {
		bg = options.RGBA{R: 0, G: 0, B: 0, A: 0}
	}
	app.BackgroundColour = &bg

	transparent := Transparent(p, s)

	app.Mac = &mac.Options{
		TitleBar:             mac.TitleBarHidden(),
		WebviewIsTransparent: transparent,
		WindowIsTranslucent:  false,
	}

	app.Windows = &windows.Options{
		WebviewIsTransparent: transparent,
		WindowIsTranslucent:  false,
		DisableWindowIcon:    false,
	}

	app.Linux = &linux.Options{
		Icon:                s.Icon,
		WindowIsTranslucent: transparent,
		ProgramName:         s.ProgramName,
	}
}
