package email

import (
	"context"
	"fmt"
	"regexp"
)

// Sender represents an interface for sending emails.
type Sender interface {
	Send(ctx context.Context, params SendParams) error
}

// SendParams represents the parameters for sending a single email.
// Exactly one of BodyHTML or TemplateAlias must be set: BodyHTML sends raw
// content, TemplateAlias renders a provider-side template with TemplateModel
// as substitution data.
type SendParams struct {
	To            string         `json:"to"`
	Subject       string         `json:"subject"`
	BodyHTML      string         `json:"body_html,omitempty"`
	TemplateAlias string         `json:"template_alias,omitempty"`
	TemplateModel map[string]any `json:"template_model,omitempty"`
	Tag           string         `json:"tag,omitempty"`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate rejects malformed parameters before any external call is attempted.
func (p SendParams) Validate() error {
	if p.To == "" || !emailRegex.MatchString(p.To) {
		return fmt.Errorf("%w: %q", ErrInvalidRecipient, p.To)
	}
	if p.BodyHTML == "" && p.TemplateAlias == "" {
		return ErrMissingContent
	}
	if p.BodyHTML != "" && p.TemplateAlias != "" {
		return fmt.Errorf("%w: body and template are mutually exclusive", ErrMissingContent)
	}
	if p.TemplateAlias == "" && p.Subject == "" {
		return fmt.Errorf("%w: subject is required for raw content", ErrMissingContent)
	}
	return nil
}

// New selects and constructs a sender based on cfg.Provider. The selection
// happens once at startup; an unknown provider name is a configuration error.
func New(cfg Config) (Sender, error) {
	switch cfg.Provider {
	case ProviderPostmark:
		return NewPostmarkSender(cfg)
	case ProviderDev:
		return NewDevSender(cfg.DevOutputDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown email provider %q", ErrInvalidConfig, cfg.Provider)
	}
}
