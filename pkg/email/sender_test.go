package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterhub/notify/pkg/email"
)

func TestSendParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  email.SendParams
		wantErr error
	}{
		{
			name: "valid raw html",
			params: email.SendParams{
				To:       "user@example.com",
				Subject:  "Welcome to RosterHub",
				BodyHTML: "<p>Hello</p>",
			},
		},
		{
			name: "valid templated",
			params: email.SendParams{
				To:            "user@example.com",
				TemplateAlias: "welcome",
				TemplateModel: map[string]any{"name": "Alex"},
			},
		},
		{
			name:    "missing recipient",
			params:  email.SendParams{Subject: "s", BodyHTML: "<p>x</p>"},
			wantErr: email.ErrInvalidRecipient,
		},
		{
			name:    "malformed recipient",
			params:  email.SendParams{To: "not-an-email", Subject: "s", BodyHTML: "<p>x</p>"},
			wantErr: email.ErrInvalidRecipient,
		},
		{
			name:    "neither body nor template",
			params:  email.SendParams{To: "user@example.com", Subject: "s"},
			wantErr: email.ErrMissingContent,
		},
		{
			name: "both body and template",
			params: email.SendParams{
				To:            "user@example.com",
				Subject:       "s",
				BodyHTML:      "<p>x</p>",
				TemplateAlias: "welcome",
			},
			wantErr: email.ErrMissingContent,
		},
		{
			name:    "raw content without subject",
			params:  email.SendParams{To: "user@example.com", BodyHTML: "<p>x</p>"},
			wantErr: email.ErrMissingContent,
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

		sender, err := email.New(email.Config{Provider: email.ProviderDev, DevOutputDir: t.TempDir()})
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})

	t.Run("postmark provider without tokens fails", func(t *testing.T) {
		t.Parallel()

		_, err := email.New(email.Config{
			Provider:     email.ProviderPostmark,
			SenderEmail:  "no-reply@rosterhub.app",
			SupportEmail: "support@rosterhub.app",
		})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})

	t.Run("unknown provider rejected", func(t *testing.T) {
		t.Parallel()

		_, err := email.New(email.Config{Provider: "sendpigeon"})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})
}

func TestNewPostmarkSender_ConfigValidation(t *testing.T) {
	t.Parallel()

	valid := email.Config{
		Provider:             email.ProviderPostmark,
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "no-reply@rosterhub.app",
		SupportEmail:         "support@rosterhub.app",
	}

	t.Run("valid config succeeds", func(t *testing.T) {
		t.Parallel()
		_, err := email.NewPostmarkSender(valid)
		assert.NoError(t, err)
	})

	tests := []struct {
		name   string
		mutate func(*email.Config)
	}{
		{"missing server token", func(c *email.Config) { c.PostmarkServerToken = "" }},
		{"missing account token", func(c *email.Config) { c.PostmarkAccountToken = "" }},
		{"missing sender email", func(c *email.Config) { c.SenderEmail = "" }},
		{"invalid sender email", func(c *email.Config) { c.SenderEmail = "nope" }},
		{"invalid support email", func(c *email.Config) { c.SupportEmail = "nope" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tt.mutate(&cfg)
			_, err := email.NewPostmarkSender(cfg)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
		})
	}
}

func TestDevSender_Send(t *testing.T) {
	t.Parallel()

	t.Run("writes html and metadata files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		err := sender.Send(context.Background(), email.SendParams{
			To:       "athlete@example.com",
			Subject:  "Payment received",
			BodyHTML: "<h1>Thanks!</h1>",
			Tag:      "payment-success",
		})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		var jsonFile string
		for _, e := range entries {
			if strings.HasSuffix(e.Name(), ".json") {
				jsonFile = e.Name()
			}
		}
		require.NotEmpty(t, jsonFile)

		data, err := os.ReadFile(filepath.Join(dir, jsonFile))
		require.NoError(t, err)

		var meta map[string]any
		require.NoError(t, json.Unmarshal(data, &meta))
		assert.Equal(t, "athlete@example.com", meta["to"])
		assert.Equal(t, "payment-success", meta["tag"])
	})

	t.Run("templated send writes metadata only", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		err := sender.Send(context.Background(), email.SendParams{
			To:            "athlete@example.com",
			TemplateAlias: "profile-reminder",
			TemplateModel: map[string]any{"name": "Jo"},
		})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.True(t, strings.HasSuffix(entries[0].Name(), ".json"))
	})

	t.Run("invalid params rejected before writing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		err := sender.Send(context.Background(), email.SendParams{To: "user@example.com"})
		assert.ErrorIs(t, err, email.ErrMissingContent)

		entries, readErr := os.ReadDir(dir)
		if readErr == nil {
			assert.Empty(t, entries)
		}
	})
}
