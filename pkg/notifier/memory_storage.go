package notifier

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryStorage is an in-memory implementation of Storage.
// Suitable for development and tests; retention expiry is simulated by
// filtering on read rather than by a background sweep.
type MemoryStorage struct {
	notifications map[string][]Notification // recipientID -> notifications
	mu            sync.RWMutex
}

// NewMemoryStorage creates an empty in-memory notification storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		notifications: make(map[string][]Notification),
	}
}

func (s *MemoryStorage) Insert(ctx context.Context, notif Notification) (Notification, error) {
	if notif.ID == "" || notif.RecipientID == "" {
		return Notification{}, fmt.Errorf("%w: id and recipient are required", ErrInvalidNotification)
	}
	if notif.CreatedAt.IsZero() {
		notif.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Dedup: drop any existing record with the identical content tuple.
	existing := s.notifications[notif.RecipientID]
	kept := existing[:0]
	for _, n := range existing {
		if !n.SameContent(notif) {
			kept = append(kept, n)
		}
	}
	s.notifications[notif.RecipientID] = append(kept, notif)

	return notif, nil
}

func (s *MemoryStorage) Get(ctx context.Context, recipientID, notifID string) (*Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notifications[recipientID] {
		if n.ID == notifID {
			notif := n
			return &notif, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) List(ctx context.Context, recipientID string, opts ListOptions) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []Notification
	for _, n := range s.notifications[recipientID] {
		if expired(n) {
			continue
		}
		if opts.OnlyUnopened && n.Opened {
			continue
		}
		if len(opts.Types) > 0 && !containsType(opts.Types, n.Type) {
			continue
		}
		if opts.Since != nil && n.CreatedAt.Before(*opts.Since) {
			continue
		}
		filtered = append(filtered, n)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	start := opts.Offset
	if start > len(filtered) {
		return []Notification{}, nil
	}
	end := start + opts.Limit
	if opts.Limit == 0 || end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], nil
}

func (s *MemoryStorage) MarkAllOpened(ctx context.Context, recipientIDs ...string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated int64
	for _, recipientID := range recipientIDs {
		notifs := s.notifications[recipientID]
		for i := range notifs {
			if !notifs[i].Opened {
				notifs[i].MarkOpened()
				updated++
			}
		}
		s.notifications[recipientID] = notifs
	}
	return updated, nil
}

func (s *MemoryStorage) CountUnopened(ctx context.Context, recipientID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications[recipientID] {
		if !n.Opened && !expired(n) {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStorage) ExistsSince(ctx context.Context, recipientID, entityID string, typ Type, since time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notifications[recipientID] {
		if n.Type == typ && n.EntityID == entityID && n.CreatedAt.After(since) {
			return true, nil
		}
	}
	return false, nil
}

func expired(n Notification) bool {
	return time.Since(n.CreatedAt) > RetentionPeriod
}

func containsType(types []Type, t Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
