package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterhub/notify/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()

	t.Run("returns result of function", func(t *testing.T) {
		t.Parallel()

		f := async.Async(context.Background(), 21, func(ctx context.Context, n int) (int, error) {
			return n * 2, nil
		})

		result, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, result)
	})

	t.Run("propagates function error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		f := async.Async(context.Background(), "x", func(ctx context.Context, s string) (string, error) {
			return "", boom
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, boom)
	})

	t.Run("pre-cancelled context skips function", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ran := false
		f := async.Async(ctx, 0, func(ctx context.Context, _ int) (int, error) {
			ran = true
			return 1, nil
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, ran)
	})
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	f := async.Async(context.Background(), 0, func(ctx context.Context, _ int) (int, error) {
		<-release
		return 1, nil
	})

	_, err := f.AwaitWithTimeout(10 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)
}

func TestSettle(t *testing.T) {
	t.Parallel()

	t.Run("awaits every future despite failures", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("channel down")
		ok := func(ctx context.Context, _ struct{}) (string, error) { return "sent", nil }
		bad := func(ctx context.Context, _ struct{}) (string, error) { return "", boom }

		ctx := context.Background()
		results, err := async.Settle(
			async.Async(ctx, struct{}{}, bad),
			async.Async(ctx, struct{}{}, ok),
			async.Async(ctx, struct{}{}, ok),
		)

		require.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"", "sent", "sent"}, results)
	})

	t.Run("nil error when all succeed", func(t *testing.T) {
		t.Parallel()

		ok := func(ctx context.Context, n int) (int, error) { return n, nil }
		ctx := context.Background()

		results, err := async.Settle(async.Async(ctx, 1, ok), async.Async(ctx, 2, ok))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, results)
	})

	t.Run("joined error reports each failure", func(t *testing.T) {
		t.Parallel()

		errA := errors.New("a")
		errB := errors.New("b")
		ctx := context.Background()

		_, err := async.Settle(
			async.Async(ctx, 0, func(ctx context.Context, _ int) (int, error) { return 0, errA }),
			async.Async(ctx, 0, func(ctx context.Context, _ int) (int, error) { return 0, errB }),
		)

		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)
	})
}

func TestWaitAll(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	ctx := context.Background()

	results, err := async.WaitAll(
		async.Async(ctx, 1, func(ctx context.Context, n int) (int, error) { return n, nil }),
		async.Async(ctx, 2, func(ctx context.Context, n int) (int, error) { return 0, boom }),
		async.Async(ctx, 3, func(ctx context.Context, n int) (int, error) { return n, nil }),
	)

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, results[0])
}
