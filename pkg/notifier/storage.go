package notifier

import (
	"context"
	"time"
)

// Storage handles notification persistence and retrieval.
type Storage interface {
	// Insert stores a notification, first deleting any existing record with
	// the identical content tuple (replace, not accumulate). Returns the
	// stored record.
	Insert(ctx context.Context, notif Notification) (Notification, error)

	// Get retrieves a single notification belonging to a recipient.
	Get(ctx context.Context, recipientID, notifID string) (*Notification, error)

	// List returns notifications for a recipient, newest first.
	List(ctx context.Context, recipientID string, opts ListOptions) ([]Notification, error)

	// MarkAllOpened flips the opened flag for every unopened notification
	// across all given recipient identities in one bulk operation. Returns
	// the number of records updated.
	MarkAllOpened(ctx context.Context, recipientIDs ...string) (int64, error)

	// CountUnopened returns the unopened count for a recipient.
	CountUnopened(ctx context.Context, recipientID string) (int, error)

	// ExistsSince reports whether a notification of the given type, for the
	// given recipient and related entity, was created after the given time.
	// Handlers use it to suppress repeat alerts inside a trailing window.
	ExistsSince(ctx context.Context, recipientID, entityID string, typ Type, since time.Time) (bool, error)
}

// ListOptions provides filtering and pagination for listing notifications.
type ListOptions struct {
	Limit        int        // Maximum number to return (0 = no limit)
	Offset       int        // Number to skip for pagination
	OnlyUnopened bool       // When true, only unopened notifications
	Types        []Type     // If set, only these types
	Since        *time.Time // If set, only records created after this time
}
