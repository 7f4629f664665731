package dispatch

import (
	"context"
	"log/slog"

	"github.com/rosterhub/notify/pkg/email"
	"github.com/rosterhub/notify/pkg/eventbus"
	"github.com/rosterhub/notify/pkg/logger"
	"github.com/rosterhub/notify/pkg/notifier"
)

// onClaimCreated acknowledges the requester by email and notifies every
// developer-role admin, who handle claim verification.
func (r *Registrar) onClaimCreated(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[ClaimCreated](e)
	if err != nil {
		return err
	}

	attempts := []channelAttempt{
		emailAttempt(r.email, email.SendParams{
			To:            p.RequesterEmail,
			TemplateAlias: "claim-received",
			TemplateModel: map[string]any{"name": p.RequesterName, "athlete_name": p.AthleteName},
			Tag:           "claim-received",
		}),
	}

	developers, err := r.directory.AdminsWithRole(ctx, RoleDeveloper)
	if err != nil {
		r.logger.LogAttrs(ctx, slog.LevelError, "developer lookup failed",
			logger.EventName(e.Name),
			logger.Error(err),
		)
	}
	for _, dev := range developers {
		attempts = append(attempts, r.notifyAttempt(notifier.Notification{
			RecipientID: dev.ID,
			SenderID:    p.RequesterID,
			Title:       "New profile claim",
			Message:     p.RequesterName + " claimed the profile of " + p.AthleteName,
			Type:        notifier.TypeClaim,
			EntityID:    p.ClaimID,
			EntityKind:  "claim",
		}))
	}

	succeeded, failed := r.settle(ctx, e.Name, p.RequesterID, attempts...)
	r.report(e.Name, succeeded, failed)
	return nil
}
