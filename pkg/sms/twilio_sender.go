package sms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/rosterhub/notify/pkg/logger"
)

type twilioSender struct {
	client *twilio.RestClient
	config Config
	logger *slog.Logger
}

// NewTwilioSender creates a Twilio-backed SMS sender.
// Credentials and a sending identity (from-number or messaging service) are
// validated up front so a misconfigured process fails at startup instead of
// at first send.
func NewTwilioSender(cfg Config) (Sender, error) {
	if cfg.TwilioAccountSID == "" {
		return nil, fmt.Errorf("%w: TwilioAccountSID is required", ErrInvalidConfig)
	}
	if cfg.TwilioAuthToken == "" {
		return nil, fmt.Errorf("%w: TwilioAuthToken is required", ErrInvalidConfig)
	}
	if cfg.TwilioFromNumber == "" && cfg.TwilioMessagingServiceSID == "" {
		return nil, fmt.Errorf("%w: either TwilioFromNumber or TwilioMessagingServiceSID is required", ErrInvalidConfig)
	}
	if cfg.TwilioFromNumber != "" && !IsE164(cfg.TwilioFromNumber) {
		return nil, fmt.Errorf("%w: TwilioFromNumber must be E.164", ErrInvalidConfig)
	}

	return &twilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		config: cfg,
		logger: slog.Default(),
	}, nil
}

// MustNewTwilioSender panics on invalid config.
func MustNewTwilioSender(cfg Config) Sender {
	sender, err := NewTwilioSender(cfg)
	if err != nil {
		panic(err)
	}
	return sender
}

// Send delivers through the Twilio Messages API. The destination is
// normalized to E.164 (with one reformatting pass under the default region)
// before any network call.
func (s *twilioSender) Send(ctx context.Context, params SendParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	to, err := NormalizeE164(params.To, s.config.DefaultRegion)
	if err != nil {
		return err
	}

	msgParams := &twilioapi.CreateMessageParams{}
	msgParams.SetTo(to)
	if s.config.TwilioMessagingServiceSID != "" {
		msgParams.SetMessagingServiceSid(s.config.TwilioMessagingServiceSID)
	} else {
		msgParams.SetFrom(s.config.TwilioFromNumber)
	}

	if params.ContentSID != "" {
		msgParams.SetContentSid(params.ContentSID)
		if len(params.ContentVariables) > 0 {
			vars, err := json.Marshal(params.ContentVariables)
			if err != nil {
				return fmt.Errorf("%w: marshal content variables: %v", ErrFailedToSend, err)
			}
			msgParams.SetContentVariables(string(vars))
		}
	} else {
		msgParams.SetBody(params.Message)
	}

	resp, err := s.client.Api.CreateMessage(msgParams)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "sms send failed",
			slog.String("to", to),
			logger.Error(err),
		)
		return errors.Join(ErrFailedToSend, err)
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "sms sent",
		slog.String("to", to),
		slog.String("message_sid", sid),
	)
	return nil
}
