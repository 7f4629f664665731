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

// onProfileCompletionAlert reminds an athlete to finish their profile.
// The SMS channel is gated on the recipient's opt-in flag.
func (r *Registrar) onProfileCompletionAlert(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[ProfileCompletionAlert](e)
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
			TemplateAlias: "profile-reminder",
			TemplateModel: map[string]any{"name": user.Name},
			Tag:           "profile-reminder",
		}),
	}
	if user.SMSOptIn && user.Phone != "" {
		attempts = append(attempts, smsAttempt(r.sms, sms.SendParams{
			To:      user.Phone,
			Message: "RosterHub: your profile is almost there. Add a photo and your measurements so scouts can find you.",
		}))
	}

	succeeded, failed := r.settle(ctx, e.Name, user.ID, attempts...)
	r.report(e.Name, succeeded, failed)
	return nil
}

// onProfileViewRecorded stores a view notification. Whether the viewer's
// identity appears depends on the athlete's current plan; without the
// entitlement they get a generic notice.
func (r *Registrar) onProfileViewRecorded(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[ProfileViewRecorded](e)
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

	notif := notifier.Notification{
		RecipientID: athlete.UserID,
		Title:       "Profile view",
		Message:     "Someone viewed your profile. Upgrade your plan to see who.",
		Type:        notifier.TypeProfileView,
		EntityKind:  "profile_view",
	}
	if athlete.ViewerVisibility {
		notif.SenderID = p.ViewerID
		notif.Message = p.ViewerName + " viewed your profile."
		notif.EntityID = p.ViewerID
	}

	succeeded, failed := r.settle(ctx, e.Name, athlete.UserID, r.notifyAttempt(notif))
	r.report(e.Name, succeeded, failed)
	return nil
}
