//go:build windows

package notify

import (
	"github.com/go-toast/toast"
	"github.com/rs/zerolog/log"
)

const appID = "LetsZoom"

// Toast shows Windows toast notifications.
type Toast struct {
	appID string
}

// NewToast creates a toast notifier.
func NewToast() Notifier {
	return &Toast{appID: appID}
}

// Show pushes the toast in the background; pushing spawns PowerShell and
// must not stall the message loop. Failures are only logged.
func (n *Toast) Show(title, message string) error {
	go func() {
		notification := toast.Notification{
			AppID:   n.appID,
			Title:   title,
			Message: message,
		}
		if err := notification.Push(); err != nil {
			log.Debug().Err(err).Str("component", "notify").Msg("toast push failed")
		}
	}()
	return nil
}
