// Package dispatch wires the platform's business events to their side
// effects: in-app notifications, email and SMS. A Registrar subscribes one
// handler per event at process startup; each handler looks up the affected
// records through the narrow Directory interface and fans out to the
// delivery channels with a settle-all pattern, so one channel's failure
// never suppresses another's attempt.
//
// Handlers swallow downstream failures after logging them: notification
// side effects must never break the business transaction that published the
// event. The only errors a handler returns to the bus are malformed
// payloads, which indicate a publisher bug rather than a transient fault.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rosterhub/notify/pkg/async"
	"github.com/rosterhub/notify/pkg/email"
	"github.com/rosterhub/notify/pkg/eventbus"
	"github.com/rosterhub/notify/pkg/logger"
	"github.com/rosterhub/notify/pkg/notifier"
	"github.com/rosterhub/notify/pkg/sms"
)

// ErrInvalidPayload is returned by handlers when an event carries a payload
// of an unexpected type.
var ErrInvalidPayload = errors.New("dispatch: unexpected event payload type")

var errNotificationFailed = errors.New("dispatch: notification insert failed")

// Result aggregates one handler invocation's channel outcomes. It is handed
// to the registrar's result hook so an observability layer can count
// failures instead of scraping log lines.
type Result struct {
	Event      string
	Notified   int // in-app notifications stored
	EmailsSent int
	SMSSent    int
	Failures   int
}

// Registrar owns the handler set and their shared dependencies.
type Registrar struct {
	notifier  *notifier.Service
	email     email.Sender
	sms       sms.Sender
	directory Directory
	logger    *slog.Logger
	onResult  func(Result)
}

// RegistrarOption configures a Registrar.
type RegistrarOption func(*Registrar)

// WithLogger sets the registrar's logger.
func WithLogger(l *slog.Logger) RegistrarOption {
	return func(r *Registrar) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithResultHook registers a callback receiving every handler's Result.
func WithResultHook(hook func(Result)) RegistrarOption {
	return func(r *Registrar) {
		r.onResult = hook
	}
}

// NewRegistrar creates the handler set over its collaborators.
func NewRegistrar(svc *notifier.Service, emailSender email.Sender, smsSender sms.Sender, dir Directory, opts ...RegistrarOption) *Registrar {
	r := &Registrar{
		notifier:  svc,
		email:     emailSender,
		sms:       smsSender,
		directory: dir,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register subscribes every handler on the bus. Call once at startup, after
// the primary stores and channel providers are initialized.
func (r *Registrar) Register(bus *eventbus.Bus) {
	bus.Subscribe(EventUserRegistered, r.onUserRegistered)
	bus.Subscribe(EventEmailVerify, r.onEmailVerify)
	bus.Subscribe(EventEmailVerified, r.onEmailVerified)
	bus.Subscribe(EventPasswordResetRequested, r.onPasswordResetRequested)
	bus.Subscribe(EventPasswordResetCompleted, r.onPasswordResetCompleted)
	bus.Subscribe(EventConversationStarted, r.onConversationStarted)
	bus.Subscribe(EventConversationMessage, r.onConversationMessage)
	bus.Subscribe(EventPaymentSucceeded, r.onPaymentSucceeded)
	bus.Subscribe(EventPaymentFailed, r.onPaymentFailed)
	bus.Subscribe(EventClaimCreated, r.onClaimCreated)
	bus.Subscribe(EventScoutReportSubmitted, r.onScoutReportSubmitted)
	bus.Subscribe(EventProfileCompletionAlert, r.onProfileCompletionAlert)
	bus.Subscribe(EventProfileViewRecorded, r.onProfileViewRecorded)
	bus.Subscribe(EventSearchReportGenerated, r.onSearchReportGenerated)
	bus.Subscribe(EventSupportTicketCreated, r.onSupportTicketCreated)
	bus.Subscribe(EventSupportTicketUpdated, r.onSupportTicketUpdated)
	bus.Subscribe(EventTeamInvited, r.onTeamInvited)
}

func payloadAs[T any](e eventbus.Event) (T, error) {
	payload, ok := e.Payload.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s got %T", ErrInvalidPayload, e.Name, e.Payload)
	}
	return payload, nil
}

// channelAttempt is one delivery channel's work inside a settle-all fan-out.
type channelAttempt struct {
	channel string
	fn      func(context.Context) error
}

// settle runs every attempt concurrently and waits for all of them to
// finish, success or failure. Each failure is logged with identifying
// context and counted; none aborts its siblings. The future's own error is
// the source of truth so attempts aborted before their function ran (a
// cancelled context) still count as failures.
func (r *Registrar) settle(ctx context.Context, event, recipientID string, attempts ...channelAttempt) (succeeded map[string]int, failed int) {
	futures := make([]*async.Future[struct{}], len(attempts))
	for i, attempt := range attempts {
		futures[i] = async.Async(ctx, attempt, func(ctx context.Context, a channelAttempt) (struct{}, error) {
			return struct{}{}, a.fn(ctx)
		})
	}

	succeeded = make(map[string]int)
	for i, future := range futures {
		if _, err := future.Await(); err != nil {
			failed++
			r.logger.LogAttrs(ctx, slog.LevelError, "channel dispatch failed",
				logger.EventName(event),
				logger.Channel(attempts[i].channel),
				logger.RecipientID(recipientID),
				logger.Error(err),
			)
			continue
		}
		succeeded[attempts[i].channel]++
	}
	return succeeded, failed
}

// notifyAttempt adapts a notification insert into a settle-all channel.
func (r *Registrar) notifyAttempt(n notifier.Notification) channelAttempt {
	return channelAttempt{channel: "notification", fn: func(ctx context.Context) error {
		if _, ok := r.notifier.Notify(ctx, n); !ok {
			return errNotificationFailed
		}
		return nil
	}}
}

func emailAttempt(sender email.Sender, params email.SendParams) channelAttempt {
	return channelAttempt{channel: "email", fn: func(ctx context.Context) error {
		return sender.Send(ctx, params)
	}}
}

func smsAttempt(sender sms.Sender, params sms.SendParams) channelAttempt {
	return channelAttempt{channel: "sms", fn: func(ctx context.Context) error {
		return sender.Send(ctx, params)
	}}
}

func (r *Registrar) report(event string, succeeded map[string]int, failed int) {
	if r.onResult == nil {
		return
	}
	r.onResult(Result{
		Event:      event,
		Notified:   succeeded["notification"],
		EmailsSent: succeeded["email"],
		SMSSent:    succeeded["sms"],
		Failures:   failed,
	})
}

// lookupUser fetches a user and logs the miss; handlers treat an unknown
// recipient as a swallowed failure, not a bus error.
func (r *Registrar) lookupUser(ctx context.Context, event, userID string) (User, bool) {
	user, err := r.directory.UserByID(ctx, userID)
	if err != nil {
		r.logger.LogAttrs(ctx, slog.LevelError, "recipient lookup failed",
			logger.EventName(event),
			logger.UserID(userID),
			logger.Error(err),
		)
		return User{}, false
	}
	return user, true
}
