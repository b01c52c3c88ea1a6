package notify

import (
	"letszoom/internal/config"
)

// Notifier shows a short user-facing message.
type Notifier interface {
	Show(title, message string) error
}

// Nop discards every notification.
type Nop struct{}

func (Nop) Show(string, string) error { return nil }

// New returns the back-end for style. The balloon back-end is the tray icon,
// which the caller owns; a nil balloon falls back to Nop.
func New(style string, balloon Notifier) Notifier {
	if style == config.NotifyToast {
		return NewToast()
	}
	if balloon == nil {
		return Nop{}
	}
	return balloon
}
