package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mrz1836/postmark"

	"github.com/rosterhub/notify/pkg/logger"
)

type postmarkSender struct {
	client *postmark.Client
	config Config
	logger *slog.Logger
}

// NewPostmarkSender creates a Postmark-backed email sender.
// All credentials are validated up front so a misconfigured process fails at
// startup instead of at first send.
func NewPostmarkSender(cfg Config) (Sender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" || !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if cfg.SupportEmail == "" || !emailRegex.MatchString(cfg.SupportEmail) {
		return nil, fmt.Errorf("%w: SupportEmail must be a valid email address", ErrInvalidConfig)
	}

	return &postmarkSender{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
		logger: slog.Default(),
	}, nil
}

// MustNewPostmarkSender panics on invalid config, failing fast during
// initialization rather than letting a broken channel start.
func MustNewPostmarkSender(cfg Config) Sender {
	sender, err := NewPostmarkSender(cfg)
	if err != nil {
		panic(err)
	}
	return sender
}

// Send delivers through Postmark's transactional API. Raw HTML and templated
// sends take separate API paths; Reply-To always points at the support
// address so customer responses reach the right team.
func (s *postmarkSender) Send(ctx context.Context, params SendParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	var err error
	if params.TemplateAlias != "" {
		err = s.sendTemplated(ctx, params)
	} else {
		err = s.sendRaw(ctx, params)
	}

	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "email send failed",
			slog.String("to", params.To),
			slog.String("tag", params.Tag),
			logger.Error(err),
		)
		return err
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "email sent",
		slog.String("to", params.To),
		slog.String("tag", params.Tag),
	)
	return nil
}

func (s *postmarkSender) sendRaw(ctx context.Context, params SendParams) error {
	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       s.config.SenderEmail,
		ReplyTo:    s.config.SupportEmail,
		To:         params.To,
		Subject:    params.Subject,
		Tag:        params.Tag,
		HTMLBody:   params.BodyHTML,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrFailedToSend, fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
	}
	return nil
}

func (s *postmarkSender) sendTemplated(ctx context.Context, params SendParams) error {
	model := params.TemplateModel
	if model == nil {
		model = map[string]any{}
	}

	resp, err := s.client.SendTemplatedEmail(ctx, postmark.TemplatedEmail{
		TemplateAlias: params.TemplateAlias,
		TemplateModel: model,
		InlineCSS:     true,
		From:          s.config.SenderEmail,
		ReplyTo:       s.config.SupportEmail,
		To:            params.To,
		Tag:           params.Tag,
		TrackOpens:    true,
	})
	if err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrFailedToSend, fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
	}
	return nil
}
