package sms_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterhub/notify/pkg/sms"
)

func TestSendParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  sms.SendParams
		wantErr error
	}{
		{
			name:   "valid plain message",
			params: sms.SendParams{To: "+14155552671", Message: "Your profile has new views"},
		},
		{
			name: "valid content template without body",
			params: sms.SendParams{
				To:               "+14155552671",
				ContentSID:       "HX0123456789abcdef0123456789abcdef",
				ContentVariables: map[string]string{"1": "Jo"},
			},
		},
		{
			name:    "missing recipient",
			params:  sms.SendParams{Message: "hi"},
			wantErr: sms.ErrMissingRecipient,
		},
		{
			name:    "missing both body and content sid",
			params:  sms.SendParams{To: "+14155552671"},
			wantErr: sms.ErrMissingContent,
		},
		{
			name:    "oversized body rejected",
			params:  sms.SendParams{To: "+14155552671", Message: strings.Repeat("x", sms.MaxMessageLength+1)},
			wantErr: sms.ErrMessageTooLong,
		},
		{
			name:   "body at exactly the limit accepted",
			params: sms.SendParams{To: "+14155552671", Message: strings.Repeat("x", sms.MaxMessageLength)},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.params.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("dev provider", func(t *testing.T) {
		t.Parallel()

		sender, err := sms.New(sms.Config{Provider: sms.ProviderDev, DevOutputDir: t.TempDir(), DefaultRegion: "US"})
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})

	t.Run("twilio provider without credentials fails", func(t *testing.T) {
		t.Parallel()

		_, err := sms.New(sms.Config{Provider: sms.ProviderTwilio})
		assert.ErrorIs(t, err, sms.ErrInvalidConfig)
	})

	t.Run("twilio provider without sending identity fails", func(t *testing.T) {
		t.Parallel()

		_, err := sms.New(sms.Config{
			Provider:         sms.ProviderTwilio,
			TwilioAccountSID: "AC123",
			TwilioAuthToken:  "token",
		})
		assert.ErrorIs(t, err, sms.ErrInvalidConfig)
	})

	t.Run("unknown provider rejected", func(t *testing.T) {
		t.Parallel()

		_, err := sms.New(sms.Config{Provider: "pigeon"})
		assert.ErrorIs(t, err, sms.ErrInvalidConfig)
	})
}

func TestDevSender_Send(t *testing.T) {
	t.Parallel()

	t.Run("normalizes destination and writes message", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := sms.NewDevSender(dir, "US")

		err := sender.Send(context.Background(), sms.SendParams{
			To:      "(415) 555-2671",
			Message: "You have an unread message from Coach Taylor",
		})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
		require.NoError(t, err)

		var msg map[string]any
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, "+14155552671", msg["to"])
	})

	t.Run("invalid number rejected before writing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := sms.NewDevSender(dir, "US")

		err := sender.Send(context.Background(), sms.SendParams{To: "12345", Message: "hi"})
		assert.ErrorIs(t, err, sms.ErrInvalidPhoneNumber)

		entries, readErr := os.ReadDir(dir)
		if readErr == nil {
			assert.Empty(t, entries)
		}
	})
}
