package sms

import (
	"context"
	"fmt"
)

// MaxMessageLength is the longest accepted message body. Anything above the
// concatenated-SMS ceiling is rejected rather than silently truncated.
const MaxMessageLength = 1600

// Sender represents an interface for sending SMS messages.
type Sender interface {
	Send(ctx context.Context, params SendParams) error
}

// SendParams represents the parameters for sending a single message.
// Message is optional only when ContentSID references a provider-side
// template; ContentVariables supplies its substitution values.
type SendParams struct {
	To               string            `json:"to"`
	Message          string            `json:"message,omitempty"`
	ContentSID       string            `json:"content_sid,omitempty"`
	ContentVariables map[string]string `json:"content_variables,omitempty"`
}

// Validate rejects malformed parameters before any external call is attempted.
// Destination numbers are checked against E.164 here by the senders after the
// reformatting pass; Validate only covers shape.
func (p SendParams) Validate() error {
	if p.To == "" {
		return ErrMissingRecipient
	}
	if p.Message == "" && p.ContentSID == "" {
		return ErrMissingContent
	}
	if len(p.Message) > MaxMessageLength {
		return fmt.Errorf("%w: %d characters (max %d)", ErrMessageTooLong, len(p.Message), MaxMessageLength)
	}
	return nil
}

// New selects and constructs a sender based on cfg.Provider. The selection
// happens once at startup; an unknown provider name is a configuration error.
func New(cfg Config) (Sender, error) {
	switch cfg.Provider {
	case ProviderTwilio:
		return NewTwilioSender(cfg)
	case ProviderDev:
		return NewDevSender(cfg.DevOutputDir, cfg.DefaultRegion), nil
	default:
		return nil, fmt.Errorf("%w: unknown sms provider %q", ErrInvalidConfig, cfg.Provider)
	}
}
