package dispatch

import (
	"context"

	"github.com/rosterhub/notify/pkg/email"
	"github.com/rosterhub/notify/pkg/eventbus"
	"github.com/rosterhub/notify/pkg/notifier"
)

// onTeamInvited notifies and emails the invited team profile.
func (r *Registrar) onTeamInvited(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[TeamInvited](e)
	if err != nil {
		return err
	}

	succeeded, failed := r.settle(ctx, e.Name, p.TeamProfileID,
		r.notifyAttempt(notifier.Notification{
			RecipientID: p.TeamProfileID,
			Title:       "You've been invited",
			Message:     p.InviterName + " invited " + p.TeamName + " to connect on RosterHub.",
			Type:        notifier.TypeTeamInvite,
			EntityKind:  "team_invite",
		}),
		emailAttempt(r.email, email.SendParams{
			To:            p.TeamEmail,
			TemplateAlias: "team-invite",
			TemplateModel: map[string]any{"team_name": p.TeamName, "inviter_name": p.InviterName},
			Tag:           "team-invite",
		}),
	)
	r.report(e.Name, succeeded, failed)
	return nil
}
