// Package tray owns the notification-area icon and its popup menu.
package tray

// CallbackMessage is sent to the owner window for icon mouse events
// (WM_APP+1).
const CallbackMessage = 0x8000 + 1

// Command is a menu selection routed to the controller.
type Command int

const (
	CommandExit     Command = 100
	CommandSettings Command = 101
	CommandAbout    Command = 102
)

func (c Command) String() string {
	switch c {
	case CommandExit:
		return "exit"
	case CommandSettings:
		return "settings"
	case CommandAbout:
		return "about"
	}
	return "unknown"
}

// MenuItem is one popup menu entry; a zero Command is a separator.
type MenuItem struct {
	Command Command
	Label   string
}

// Menu lists the popup menu from top to bottom.
func Menu() []MenuItem {
	return []MenuItem{
		{CommandAbout, "&About LetsZoom"},
		{},
		{CommandSettings, "&Settings..."},
		{},
		{CommandExit, "E&xit"},
	}
}

// Gesture is what a mouse event on the icon asks for.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureMenu
	GestureOpenSettings
)

const (
	wmContextMenu   = 0x007B
	wmLButtonDblClk = 0x0203
	wmRButtonUp     = 0x0205
)

// Classify maps the lParam of a CallbackMessage to a gesture.
func Classify(lParam uintptr) Gesture {
	switch lParam & 0xFFFF {
	case wmRButtonUp, wmContextMenu:
		return GestureMenu
	case wmLButtonDblClk:
		return GestureOpenSettings
	}
	return GestureNone
}
