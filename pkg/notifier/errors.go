package notifier

import "errors"

var (
	// ErrNotFound is returned when a notification is not found.
	ErrNotFound = errors.New("notifier: notification not found")

	// ErrInvalidNotification is returned when a record is missing required fields.
	ErrInvalidNotification = errors.New("notifier: notification is missing required fields")
)
