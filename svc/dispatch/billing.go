package dispatch

import (
	"context"

	"github.com/rosterhub/notify/pkg/email"
	"github.com/rosterhub/notify/pkg/eventbus"
	"github.com/rosterhub/notify/pkg/notifier"
	"github.com/rosterhub/notify/pkg/sms"
)

// onPaymentSucceeded dispatches notification, email and SMS in parallel.
// A user without a phone number simply gets no SMS attempt; the other two
// channels are unaffected.
func (r *Registrar) onPaymentSucceeded(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[PaymentResult](e)
	if err != nil {
		return err
	}

	user, ok := r.lookupUser(ctx, e.Name, p.UserID)
	if !ok {
		return nil
	}

	attempts := []channelAttempt{
		r.notifyAttempt(notifier.Notification{
			RecipientID: user.ID,
			Title:       "Payment received",
			Message:     "Your payment for the " + p.PlanName + " plan went through.",
			Type:        notifier.TypePayment,
			EntityID:    p.InvoiceID,
			EntityKind:  "invoice",
		}),
		emailAttempt(r.email, email.SendParams{
			To:            user.Email,
			TemplateAlias: "payment-success",
			TemplateModel: map[string]any{
				"name":    user.Name,
				"plan":    p.PlanName,
				"amount":  p.Amount,
				"invoice": p.InvoiceID,
			},
			Tag: "payment-success",
		}),
	}
	if user.Phone != "" {
		attempts = append(attempts, smsAttempt(r.sms, sms.SendParams{
			To:      user.Phone,
			Message: "RosterHub: your payment of " + p.Amount + " was received. Thanks!",
		}))
	}

	succeeded, failed := r.settle(ctx, e.Name, user.ID, attempts...)
	r.report(e.Name, succeeded, failed)
	return nil
}

func (r *Registrar) onPaymentFailed(ctx context.Context, e eventbus.Event) error {
	p, err := payloadAs[PaymentResult](e)
	if err != nil {
		return err
	}

	user, ok := r.lookupUser(ctx, e.Name, p.UserID)
	if !ok {
		return nil
	}

	attempts := []channelAttempt{
		r.notifyAttempt(notifier.Notification{
			RecipientID: user.ID,
			Title:       "Payment failed",
			Message:     "We couldn't process your payment for the " + p.PlanName + " plan. Please update your payment method.",
			Type:        notifier.TypePayment,
			EntityID:    p.InvoiceID,
			EntityKind:  "invoice",
		}),
		emailAttempt(r.email, email.SendParams{
			To:            user.Email,
			TemplateAlias: "payment-failed",
			TemplateModel: map[string]any{
				"name":    user.Name,
				"plan":    p.PlanName,
				"reason":  p.Reason,
				"invoice": p.InvoiceID,
			},
			Tag: "payment-failed",
		}),
	}
	if user.Phone != "" {
		attempts = append(attempts, smsAttempt(r.sms, sms.SendParams{
			To:      user.Phone,
			Message: "RosterHub: your payment failed. Please update your payment method to keep your plan active.",
		}))
	}

	succeeded, failed := r.settle(ctx, e.Name, user.ID, attempts...)
	r.report(e.Name, succeeded, failed)
	return nil
}
