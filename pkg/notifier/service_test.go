package notifier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rosterhub/notify/pkg/notifier"
)

// MockStorage for testing Service failure policy.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Insert(ctx context.Context, notif notifier.Notification) (notifier.Notification, error) {
	args := m.Called(ctx, notif)
	return args.Get(0).(notifier.Notification), args.Error(1)
}

func (m *MockStorage) Get(ctx context.Context, recipientID, notifID string) (*notifier.Notification, error) {
	args := m.Called(ctx, recipientID, notifID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notifier.Notification), args.Error(1)
}

func (m *MockStorage) List(ctx context.Context, recipientID string, opts notifier.ListOptions) ([]notifier.Notification, error) {
	args := m.Called(ctx, recipientID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]notifier.Notification), args.Error(1)
}

func (m *MockStorage) MarkAllOpened(ctx context.Context, recipientIDs ...string) (int64, error) {
	args := m.Called(ctx, recipientIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) CountUnopened(ctx context.Context, recipientID string) (int, error) {
	args := m.Called(ctx, recipientID)
	return args.Int(0), args.Error(1)
}

func (m *MockStorage) ExistsSince(ctx context.Context, recipientID, entityID string, typ notifier.Type, since time.Time) (bool, error) {
	args := m.Called(ctx, recipientID, entityID, typ, since)
	return args.Bool(0), args.Error(1)
}

type stubResolver struct {
	ids []string
	err error
}

func (r stubResolver) LinkedProfileIDs(ctx context.Context, userID string) ([]string, error) {
	return r.ids, r.err
}

func TestService_Notify(t *testing.T) {
	t.Parallel()

	t.Run("fills id and timestamp", func(t *testing.T) {
		t.Parallel()

		storage := notifier.NewMemoryStorage()
		svc := notifier.NewService(storage, nil)

		stored, ok := svc.Notify(context.Background(), notifier.Notification{
			RecipientID: "user-1",
			Title:       "Welcome",
			Message:     "Welcome to RosterHub",
			Type:        notifier.TypeRegistration,
		})
		require.True(t, ok)
		assert.NotEmpty(t, stored.ID)
		assert.False(t, stored.CreatedAt.IsZero())
	})

	t.Run("storage failure is swallowed", func(t *testing.T) {
		t.Parallel()

		storage := new(MockStorage)
		storage.On("Insert", mock.Anything, mock.Anything).
			Return(notifier.Notification{}, errors.New("connection reset"))

		svc := notifier.NewService(storage, nil)
		_, ok := svc.Notify(context.Background(), notifier.Notification{
			RecipientID: "user-1",
			Title:       "t",
			Message:     "m",
			Type:        notifier.TypeSystem,
		})
		assert.False(t, ok, "failure is reported as a boolean, never an error")
		storage.AssertExpectations(t)
	})
}

func TestService_AlreadyAlerted(t *testing.T) {
	t.Parallel()

	t.Run("reflects storage answer", func(t *testing.T) {
		t.Parallel()

		storage := new(MockStorage)
		storage.On("ExistsSince", mock.Anything, "athlete-1", "msg-1", notifier.TypeUnreadMessageAlert, mock.Anything).
			Return(true, nil)

		svc := notifier.NewService(storage, nil)
		assert.True(t, svc.AlreadyAlerted(context.Background(), "athlete-1", "msg-1", notifier.TypeUnreadMessageAlert, 24*time.Hour))
	})

	t.Run("storage error fails open", func(t *testing.T) {
		t.Parallel()

		storage := new(MockStorage)
		storage.On("ExistsSince", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(false, errors.New("timeout"))

		svc := notifier.NewService(storage, nil)
		assert.False(t, svc.AlreadyAlerted(context.Background(), "athlete-1", "msg-1", notifier.TypeUnreadMessageAlert, 24*time.Hour),
			"on lookup failure the alert should still go out")
	})
}

func TestService_MarkAllRead(t *testing.T) {
	t.Parallel()

	t.Run("spans user and linked profiles", func(t *testing.T) {
		t.Parallel()

		storage := notifier.NewMemoryStorage()
		ctx := context.Background()

		seed := func(id, recipient string) {
			_, err := storage.Insert(ctx, notifier.Notification{
				ID: id, RecipientID: recipient, Title: "t" + id, Message: "m" + id, Type: notifier.TypeSystem,
			})
			require.NoError(t, err)
		}
		seed("n1", "user-1")
		seed("n2", "athlete-profile-1")
		seed("n3", "scout-profile-1")

		svc := notifier.NewService(storage, stubResolver{ids: []string{"athlete-profile-1", "scout-profile-1"}})

		updated, err := svc.MarkAllRead(ctx, "user-1")
		require.NoError(t, err)
		assert.EqualValues(t, 3, updated)
	})

	t.Run("resolver failure propagates", func(t *testing.T) {
		t.Parallel()

		svc := notifier.NewService(notifier.NewMemoryStorage(), stubResolver{err: errors.New("directory down")})
		_, err := svc.MarkAllRead(context.Background(), "user-1")
		assert.Error(t, err)
	})

	t.Run("nil resolver covers own identity", func(t *testing.T) {
		t.Parallel()

		storage := notifier.NewMemoryStorage()
		ctx := context.Background()
		_, err := storage.Insert(ctx, notifier.Notification{
			ID: "n1", RecipientID: "user-1", Title: "t", Message: "m", Type: notifier.TypeSystem,
		})
		require.NoError(t, err)

		svc := notifier.NewService(storage, nil)
		updated, err := svc.MarkAllRead(ctx, "user-1")
		require.NoError(t, err)
		assert.EqualValues(t, 1, updated)
	})
}
