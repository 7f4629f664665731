package dispatch

import (
	"context"

	"github.com/rosterhub/notify/pkg/eventbus"
	"github.com/rosterhub/notify/pkg/notifier"
)

func (r *Registrar) onSupportTicketCreated(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[SupportTicketCreated](e)
	if err != nil {
		return err
	}

	succeeded, failed := r.settle(ctx, e.Name, p.RequesterID, r.notifyAttempt(notifier.Notification{
		RecipientID: p.RequesterID,
		Title:       "Support ticket received",
		Message:     "We received your ticket \"" + p.Subject + "\" and will get back to you soon.",
		Type:        notifier.TypeSupport,
		EntityID:    p.TicketID,
		EntityKind:  "support_ticket",
	}))
	r.report(e.Name, succeeded, failed)
	return nil
}

// onSupportTicketUpdated notifies the requester unless they authored the
// update themselves, and the assigned agent if one exists and isn't the
// author.
func (r *Registrar) onSupportTicketUpdated(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[SupportTicketUpdated](e)
	if err != nil {
		return err
	}

	var attempts []channelAttempt
	if p.AuthorID != p.RequesterID {
		attempts = append(attempts, r.notifyAttempt(notifier.Notification{
			RecipientID: p.RequesterID,
			SenderID:    p.AuthorID,
			Title:       "Support ticket updated",
			Message:     "There's a new update on your ticket \"" + p.Subject + "\".",
			Type:        notifier.TypeSupport,
			EntityID:    p.TicketID,
			EntityKind:  "support_ticket",
		}))
	}
	if p.AgentID != "" && p.AgentID != p.AuthorID {
		attempts = append(attempts, r.notifyAttempt(notifier.Notification{
			RecipientID: p.AgentID,
			SenderID:    p.AuthorID,
			Title:       "Assigned ticket updated",
			Message:     "Ticket \"" + p.Subject + "\" has a new update.",
			Type:        notifier.TypeSupport,
			EntityID:    p.TicketID,
			EntityKind:  "support_ticket",
		}))
	}
	if len(attempts) == 0 {
		return nil
	}

	succeeded, failed := r.settle(ctx, e.Name, p.RequesterID, attempts...)
	r.report(e.Name, succeeded, failed)
	return nil
}
