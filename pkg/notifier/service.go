package notifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rosterhub/notify/pkg/logger"
)

// IdentityResolver resolves every profile identity associated with a user:
// the user itself plus any linked role-profiles (athlete, scout, team).
// Bulk read-state operations span all of them.
type IdentityResolver interface {
	LinkedProfileIDs(ctx context.Context, userID string) ([]string, error)
}

// Service is the single insert entrypoint for in-app notifications,
// wrapping Storage with the failure policy the event handlers rely on.
type Service struct {
	storage  Storage
	resolver IdentityResolver
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger for the Service.
func WithServiceLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a notification service. The resolver may be nil when no
// linked-profile semantics exist (tests, single-identity deployments);
// MarkAllRead then covers only the user's own identity.
func NewService(storage Storage, resolver IdentityResolver, opts ...ServiceOption) *Service {
	s := &Service{
		storage:  storage,
		resolver: resolver,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Notify inserts a notification, generating its ID and timestamp. Storage
// failures are logged and swallowed: the returned bool reports success so
// observability layers can count failures, but callers never get an error to
// propagate into the triggering business flow.
func (s *Service) Notify(ctx context.Context, notif Notification) (Notification, bool) {
	if notif.ID == "" {
		notif.ID = uuid.New().String()
	}
	if notif.CreatedAt.IsZero() {
		notif.CreatedAt = time.Now()
	}

	stored, err := s.storage.Insert(ctx, notif)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to store notification",
			logger.NotificationID(notif.ID),
			logger.RecipientID(notif.RecipientID),
			logger.EntityID(notif.EntityID),
			slog.String("type", string(notif.Type)),
			logger.Error(err),
		)
		return Notification{}, false
	}
	return stored, true
}

// AlreadyAlerted reports whether a notification of the given type for the
// recipient and entity was created within the trailing window. A storage
// error fails open (reports false) after logging: a repeated alert is
// preferable to a silently dropped one.
func (s *Service) AlreadyAlerted(ctx context.Context, recipientID, entityID string, typ Type, window time.Duration) bool {
	since := time.Now().Add(-window)
	exists, err := s.storage.ExistsSince(ctx, recipientID, entityID, typ, since)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "suppression-window lookup failed",
			logger.RecipientID(recipientID),
			logger.EntityID(entityID),
			slog.String("type", string(typ)),
			logger.Error(err),
		)
		return false
	}
	return exists
}

// MarkAllRead flips the opened flag for every unopened notification across
// all profile identities linked to the user, in one bulk operation.
func (s *Service) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	identities := []string{userID}
	if s.resolver != nil {
		linked, err := s.resolver.LinkedProfileIDs(ctx, userID)
		if err != nil {
			return 0, err
		}
		for _, id := range linked {
			if id != userID {
				identities = append(identities, id)
			}
		}
	}

	return s.storage.MarkAllOpened(ctx, identities...)
}

// List returns the recipient's notifications, newest first.
func (s *Service) List(ctx context.Context, recipientID string, opts ListOptions) ([]Notification, error) {
	return s.storage.List(ctx, recipientID, opts)
}

// CountUnopened returns the recipient's unopened notification count.
func (s *Service) CountUnopened(ctx context.Context, recipientID string) (int, error) {
	return s.storage.CountUnopened(ctx, recipientID)
}

// Storage returns the underlying notification storage.
func (s *Service) Storage() Storage {
	return s.storage
}
