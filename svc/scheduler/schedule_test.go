package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rosterhub/notify/svc/scheduler"
)

func TestEvery(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	s := scheduler.Every(15 * time.Minute)

	assert.Equal(t, from.Add(15*time.Minute), s.Next(from))
	assert.Equal(t, "every 15m0s", s.String())
}

func TestDailyAt(t *testing.T) {
	t.Parallel()

	s := scheduler.DailyAt(4, 0)

	t.Run("before the fire time stays on the same day", func(t *testing.T) {
		t.Parallel()

		from := time.Date(2025, 3, 10, 1, 15, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2025, 3, 10, 4, 0, 0, 0, time.UTC), s.Next(from))
	})

	t.Run("after the fire time rolls to the next day", func(t *testing.T) {
		t.Parallel()

		from := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2025, 3, 11, 4, 0, 0, 0, time.UTC), s.Next(from))
	})

	t.Run("exactly at the fire time rolls forward", func(t *testing.T) {
		t.Parallel()

		from := time.Date(2025, 3, 10, 4, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2025, 3, 11, 4, 0, 0, 0, time.UTC), s.Next(from))
	})
}
