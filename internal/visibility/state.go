// Package visibility decides what happens to the shell window when the tray,
// the tray menu, the global hotkey or a focus change fires.
package visibility

import "fmt"

// State 窗口可见状态
type State int

const (
	StateHidden State = iota
	StateVisible
)

func (s State) String() string {
	if s == StateVisible {
		return "visible"
	}
	return "hidden"
}

// StateOf maps the host-reported flag onto a State.
func StateOf(visible bool) State {
	if visible {
		return StateVisible
	}
	return StateHidden
}

// Tray menu item identifiers.
const (
	MenuItemShow = "show"
	MenuItemQuit = "quit"
)

// EventKind 事件类型
type EventKind int

const (
	EventTrayLeftClick EventKind = iota + 1
	EventMenuSelect
	EventHotkeyPressed
	EventFocusChanged
	// EventHideRequested comes from the page (Escape) or a window close request.
	EventHideRequested
)

// Event is one trigger delivered by the host framework.
type Event struct {
	Kind    EventKind
	MenuID  string // EventMenuSelect only
	Focused bool   // EventFocusChanged only
}

func TrayLeftClick() Event { return Event{Kind: EventTrayLeftClick} }
func MenuSelect(id string) Event { return Event{Kind: EventMenuSelect, MenuID: id} }
func HotkeyPressed() Event { return Event{Kind: EventHotkeyPressed} }
func FocusChanged(focused bool) Event { return Event{Kind: EventFocusChanged, Focused: focused} }
func HideRequested() Event { return Event{Kind: EventHideRequested} }

// Terminal reports whether the event ends the process.
func (e Event) Terminal() bool {
	return e.Kind == EventMenuSelect && e.MenuID == MenuItemQuit
}

func (e Event) String() string {
	switch e.Kind {
	case EventTrayLeftClick:
		return "tray_left_click"
	case EventMenuSelect:
		return fmt.Sprintf("menu_select(%s)", e.MenuID)
	case EventHotkeyPressed:
		return "hotkey_pressed"
	case EventFocusChanged:
		return fmt.Sprintf("focus_changed(%t)", e.Focused)
	case EventHideRequested:
		return "hide_requested"
	default:
		return fmt.Sprintf("event(%d)", int(e.Kind))
	}
}

// Command 控制器对窗口发出的指令
type Command int

const (
	CommandNone Command = iota
	// CommandShow always means show followed by focus.
	CommandShow
	CommandHide
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandShow:
		return "show"
	case CommandHide:
		return "hide"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

// Machine holds the policy knobs of the transition table.
type Machine struct {
	// HideOnBlur enables hiding the window when it loses input focus.
	HideOnBlur bool
}

// Transition returns the next state and the command that gets there.
// It has no side effects; callers pass the visibility the host reports right now.
func (m Machine) Transition(s State, e Event) (State, Command) {
	switch e.Kind {
	case EventTrayLeftClick, EventHotkeyPressed:
		return toggle(s)

	case EventMenuSelect:
		switch e.MenuID {
		case MenuItemShow:
			return StateVisible, CommandShow
		case MenuItemQuit:
			return s, CommandQuit
		}
		// 未知菜单项：忽略
		return s, CommandNone

	case EventFocusChanged:
		if !e.Focused && m.HideOnBlur && s == StateVisible {
			return StateHidden, CommandHide
		}
		return s, CommandNone

	case EventHideRequested:
		if s == StateVisible {
			return StateHidden, CommandHide
		}
		return s, CommandNone
	}

	return s, CommandNone
}

func toggle(s State) (State, Command) {
	if s == StateVisible {
		return StateHidden, CommandHide
	}
	return StateVisible, CommandShow
}
