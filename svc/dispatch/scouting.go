package dispatch

import (
	"context"

	"github.com/rosterhub/notify/pkg/eventbus"
	"github.com/rosterhub/notify/pkg/notifier"
)

// onScoutReportSubmitted notifies the scouted athlete about the new report
// and tells the submitting scout how processing went.
func (r *Registrar) onScoutReportSubmitted(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[ScoutReportSubmitted](e)
	if err != nil {
		return err
	}

	scoutMessage := "Your report was accepted and published."
	if !p.Accepted {
		scoutMessage = "Your report was rejected: " + p.Reason
	}

	attempts := []channelAttempt{
		r.notifyAttempt(notifier.Notification{
			RecipientID: p.ScoutID,
			Title:       "Scout report processed",
			Message:     scoutMessage,
			Type:        notifier.TypeScoutReport,
			EntityID:    p.ReportID,
			EntityKind:  "scout_report",
		}),
	}
	if p.Accepted {
		attempts = append(attempts, r.notifyAttempt(notifier.Notification{
			RecipientID: p.AthleteID,
			SenderID:    p.ScoutID,
			Title:       "New scout report",
			Message:     "A scout added a report to your profile.",
			Type:        notifier.TypeScoutReport,
			EntityID:    p.ReportID,
			EntityKind:  "scout_report",
		}))
	}

	succeeded, failed := r.settle(ctx, e.Name, p.AthleteID, attempts...)
	r.report(e.Name, succeeded, failed)
	return nil
}
