package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rosterhub/notify/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns empty attr", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", logger.Error(nil).Key)
	})

	t.Run("non-nil error keyed as error", func(t *testing.T) {
		t.Parallel()
		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
	})
}

func TestErrors(t *testing.T) {
	t.Parallel()

	t.Run("all nil returns empty attr", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", logger.Errors(nil, nil).Key)
	})

	t.Run("skips nil members", func(t *testing.T) {
		t.Parallel()
		attr := logger.Errors(nil, errors.New("a"), errors.New("b"))
		assert.Equal(t, "errors", attr.Key)
		assert.Len(t, attr.Value.Group(), 2)
	})
}

func TestIdentifierAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", logger.RecipientID("").Key)
	assert.Equal(t, "recipient_id", logger.RecipientID("u1").Key)
	assert.Equal(t, "entity_id", logger.EntityID("m1").Key)
	assert.Equal(t, "", logger.EntityID("").Key)
	assert.Equal(t, "event", logger.EventName("user.registered").Key)
	assert.Equal(t, "channel", logger.Channel("sms").Key)
}
