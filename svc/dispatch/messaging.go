package dispatch

import (
	"context"
	"log/slog"

	"github.com/rosterhub/notify/pkg/email"
	"github.com/rosterhub/notify/pkg/eventbus"
	"github.com/rosterhub/notify/pkg/logger"
	"github.com/rosterhub/notify/pkg/notifier"
	"github.com/rosterhub/notify/pkg/sms"
)

// onConversationStarted alerts the athlete party only; the team opened the
// conversation and needs no alert. Email and SMS settle in parallel.
func (r *Registrar) onConversationStarted(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[ConversationStarted](e)
	if err != nil {
		return err
	}

	athlete, err := r.directory.AthleteByID(ctx, p.AthleteID)
	if err != nil {
		r.logger.LogAttrs(ctx, slog.LevelError, "athlete lookup failed",
			logger.EventName(e.Name),
			logger.EntityID(p.AthleteID),
			logger.Error(err),
		)
		return nil
	}
	user, ok := r.lookupUser(ctx, e.Name, athlete.UserID)
	if !ok {
		return nil
	}

	attempts := []channelAttempt{
		emailAttempt(r.email, email.SendParams{
			To:            user.Email,
			TemplateAlias: "conversation-started",
			TemplateModel: map[string]any{"name": user.Name, "team_name": p.TeamName},
			Tag:           "conversation-started",
		}),
	}
	if user.Phone != "" {
		attempts = append(attempts, smsAttempt(r.sms, sms.SendParams{
			To:      user.Phone,
			Message: p.TeamName + " started a conversation with you on RosterHub. Log in to reply.",
		}))
	}

	succeeded, failed := r.settle(ctx, e.Name, user.ID, attempts...)
	r.report(e.Name, succeeded, failed)
	return nil
}

// onConversationMessage records an in-app notification for the receiving
// party. The dedup tuple is keyed to the message so edits replace rather
// than pile up.
func (r *Registrar) onConversationMessage(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[ConversationMessage](e)
	if err != nil {
		return err
	}

	succeeded, failed := r.settle(ctx, e.Name, p.ReceiverID, r.notifyAttempt(notifier.Notification{
		RecipientID: p.ReceiverID,
		SenderID:    p.SenderID,
		Title:       "New message from " + p.SenderName,
		Message:     p.Preview,
		Type:        notifier.TypeMessage,
		EntityID:    p.MessageID,
		EntityKind:  "message",
	}))
	r.report(e.Name, succeeded, failed)
	return nil
}
