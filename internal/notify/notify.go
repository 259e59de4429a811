// Package notify dispatches reminder notifications. All implementations are
// best-effort and fire-and-forget: failures are returned for the caller to
// log, never retried, never fatal.
package notify

// Title is the notification title used for due reminders.
const Title = "⏰ Reminder"

// Notifier delivers a single notification with a title and body.
type Notifier interface {
	Notify(title, body string) error
}
