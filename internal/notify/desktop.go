package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Desktop sends notifications through the host OS notification surface
// (notify-send/dbus on Linux, Notification Center on macOS, toast on
// Windows).
type Desktop struct {
	// Icon is an optional path to an icon file shown with the notification.
	Icon string
}

// Notify implements Notifier.
func (d *Desktop) Notify(title, body string) error {
	if err := beeep.Notify(title, body, d.Icon); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	return nil
}
