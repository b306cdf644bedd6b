package domain

import "time"

// NotificationType classifies what produced a notification.
type NotificationType string

const (
	NotificationMention      NotificationType = "mention"
	NotificationAssignment   NotificationType = "assignment"
	NotificationDueSoon      NotificationType = "due_soon"
	NotificationStatusChange NotificationType = "status_change"
)

// Notification is a user-facing alert. TaskID is a weak reference; the task
// may have been deleted since the notification was created.
type Notification struct {
	ID        string
	Type      NotificationType
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
	TaskID    string // optional
}
