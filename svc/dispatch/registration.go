package dispatch

import (
	"context"
	"log/slog"

	"github.com/rosterhub/notify/pkg/email"
	"github.com/rosterhub/notify/pkg/eventbus"
	"github.com/rosterhub/notify/pkg/logger"
	"github.com/rosterhub/notify/pkg/notifier"
)

// onUserRegistered notifies every admin about the signup and sends the new
// user their welcome email. The two sides settle independently.
func (r *Registrar) onUserRegistered(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[UserRegistered](e)
	if err != nil {
		return err
	}

	attempts := []channelAttempt{
		emailAttempt(r.email, email.SendParams{
			To:            p.Email,
			TemplateAlias: "welcome",
			TemplateModel: map[string]any{"name": p.Name},
			Tag:           "welcome",
		}),
	}

	admins, err := r.directory.AdminsWithRole(ctx, RoleAdmin)
	if err != nil {
		r.logger.LogAttrs(ctx, slog.LevelError, "admin lookup failed",
			logger.EventName(e.Name),
			logger.Error(err),
		)
	}
	for _, admin := range admins {
		attempts = append(attempts, r.notifyAttempt(notifier.Notification{
			RecipientID: admin.ID,
			Title:       "New user registered",
			Message:     p.Name + " (" + p.Email + ") just signed up",
			Type:        notifier.TypeRegistration,
			EntityID:    p.UserID,
			EntityKind:  "user",
		}))
	}

	succeeded, failed := r.settle(ctx, e.Name, p.UserID, attempts...)
	r.report(e.Name, succeeded, failed)
	return nil
}

func (r *Registrar) onEmailVerify(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[EmailVerification](e)
	if err != nil {
		return err
	}

	succeeded, failed := r.settle(ctx, e.Name, "", emailAttempt(r.email, email.SendParams{
		To:            p.Email,
		TemplateAlias: "email-verify",
		TemplateModel: map[string]any{"name": p.Name, "verify_url": p.VerifyURL},
		Tag:           "email-verify",
	}))
	r.report(e.Name, succeeded, failed)
	return nil
}

func (r *Registrar) onEmailVerified(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[EmailVerified](e)
	if err != nil {
		return err
	}

	succeeded, failed := r.settle(ctx, e.Name, "", emailAttempt(r.email, email.SendParams{
		To:            p.Email,
		TemplateAlias: "email-verified",
		TemplateModel: map[string]any{"name": p.Name},
		Tag:           "email-verified",
	}))
	r.report(e.Name, succeeded, failed)
	return nil
}

func (r *Registrar) onPasswordResetRequested(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[PasswordResetRequested](e)
	if err != nil {
		return err
	}

	succeeded, failed := r.settle(ctx, e.Name, "", emailAttempt(r.email, email.SendParams{
		To:            p.Email,
		TemplateAlias: "password-reset",
		TemplateModel: map[string]any{"name": p.Name, "reset_url": p.ResetURL},
		Tag:           "password-reset",
	}))
	r.report(e.Name, succeeded, failed)
	return nil
}

func (r *Registrar) onPasswordResetCompleted(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[PasswordResetCompleted](e)
	if err != nil {
		return err
	}

	succeeded, failed := r.settle(ctx, e.Name, "", emailAttempt(r.email, email.SendParams{
		To:            p.Email,
		TemplateAlias: "password-reset-confirmed",
		TemplateModel: map[string]any{"name": p.Name},
		Tag:           "password-reset-confirmed",
	}))
	r.report(e.Name, succeeded, failed)
	return nil
}
