package eventbus_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterhub/notify/pkg/eventbus"
)

func TestBus_Publish(t *testing.T) {
	t.Parallel()

	t.Run("invokes handlers in subscription order", func(t *testing.T) {
		t.Parallel()

		bus := eventbus.New()
		var order []string

		bus.Subscribe("user.registered", func(ctx context.Context, e eventbus.Event) error {
			order = append(order, "A")
			return nil
		})
		bus.Subscribe("user.registered", func(ctx context.Context, e eventbus.Event) error {
			order = append(order, "B")
			return nil
		})

		err := bus.Publish(context.Background(), "user.registered", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, order)
	})

	t.Run("zero subscribers is a no-op", func(t *testing.T) {
		t.Parallel()

		bus := eventbus.New()
		err := bus.Publish(context.Background(), "nobody.cares", map[string]string{"k": "v"})
		assert.NoError(t, err)
	})

	t.Run("payload is passed through untouched", func(t *testing.T) {
		t.Parallel()

		type payload struct{ UserID string }

		bus := eventbus.New()
		var got eventbus.Event
		bus.Subscribe("billing.payment.success", func(ctx context.Context, e eventbus.Event) error {
			got = e
			return nil
		})

		require.NoError(t, bus.Publish(context.Background(), "billing.payment.success", payload{UserID: "u1"}))
		assert.Equal(t, "billing.payment.success", got.Name)
		assert.Equal(t, payload{UserID: "u1"}, got.Payload)
	})

	t.Run("first handler error aborts the rest", func(t *testing.T) {
		t.Parallel()

		bus := eventbus.New()
		boom := errors.New("boom")
		secondRan := false

		bus.Subscribe("claim.created", func(ctx context.Context, e eventbus.Event) error {
			return boom
		})
		bus.Subscribe("claim.created", func(ctx context.Context, e eventbus.Event) error {
			secondRan = true
			return nil
		})

		err := bus.Publish(context.Background(), "claim.created", nil)
		require.ErrorIs(t, err, boom)
		assert.False(t, secondRan, "sibling handler must not run after a propagated error")
	})

	t.Run("handlers for other events are not invoked", func(t *testing.T) {
		t.Parallel()

		bus := eventbus.New()
		called := false
		bus.Subscribe("email.verify", func(ctx context.Context, e eventbus.Event) error {
			called = true
			return nil
		})

		require.NoError(t, bus.Publish(context.Background(), "email.verified", nil))
		assert.False(t, called)
	})
}

func TestBus_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("nil handler is ignored", func(t *testing.T) {
		t.Parallel()

		bus := eventbus.New()
		bus.Subscribe("user.registered", nil)
		assert.Equal(t, 0, bus.SubscriberCount("user.registered"))
	})

	t.Run("counts handlers per event name", func(t *testing.T) {
		t.Parallel()

		bus := eventbus.New()
		noop := func(ctx context.Context, e eventbus.Event) error { return nil }
		bus.Subscribe("conversation.message", noop)
		bus.Subscribe("conversation.message", noop)
		bus.Subscribe("conversation.started", noop)

		assert.Equal(t, 2, bus.SubscriberCount("conversation.message"))
		assert.Equal(t, 1, bus.SubscriberCount("conversation.started"))
	})
}

func TestBus_HandlerTimeout(t *testing.T) {
	t.Parallel()

	t.Run("slow handler yields timeout error", func(t *testing.T) {
		t.Parallel()

		bus := eventbus.New(eventbus.WithHandlerTimeout(20 * time.Millisecond))
		release := make(chan struct{})
		t.Cleanup(func() { close(release) })

		bus.Subscribe("slow.event", func(ctx context.Context, e eventbus.Event) error {
			<-release
			return nil
		})

		err := bus.Publish(context.Background(), "slow.event", nil)
		assert.ErrorIs(t, err, eventbus.ErrHandlerTimeout)
	})

	t.Run("fast handler is unaffected", func(t *testing.T) {
		t.Parallel()

		bus := eventbus.New(eventbus.WithHandlerTimeout(time.Second))
		bus.Subscribe("fast.event", func(ctx context.Context, e eventbus.Event) error {
			return nil
		})

		assert.NoError(t, bus.Publish(context.Background(), "fast.event", nil))
	})
}
