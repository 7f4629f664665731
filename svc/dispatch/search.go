package dispatch

import (
	"context"

	"github.com/rosterhub/notify/pkg/eventbus"
	"github.com/rosterhub/notify/pkg/notifier"
)

func (r *Registrar) onSearchReportGenerated(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[SearchReportGenerated](e)
	if err != nil {
		return err
	}

	succeeded, failed := r.settle(ctx, e.Name, p.UserID, r.notifyAttempt(notifier.Notification{
		RecipientID: p.UserID,
		Title:       "Search report ready",
		Message:     "Your report \"" + p.Title + "\" is ready to view.",
		Type:        notifier.TypeSearchReport,
		EntityID:    p.ReportID,
		EntityKind:  "search_report",
	}))
	r.report(e.Name, succeeded, failed)
	return nil
}
