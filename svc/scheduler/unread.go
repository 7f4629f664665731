package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/rosterhub/notify/pkg/async"
	"github.com/rosterhub/notify/pkg/email"
	"github.com/rosterhub/notify/pkg/logger"
	"github.com/rosterhub/notify/pkg/notifier"
	"github.com/rosterhub/notify/pkg/sms"
)

const (
	// UnreadMessageAge is how long a message must sit unread before the
	// alerter picks it up.
	UnreadMessageAge = 2 * time.Hour

	// UnreadSuppressionWindow is how long after alerting about a message
	// the alerter stays silent about it.
	UnreadSuppressionWindow = 24 * time.Hour
)

// UnreadMessage is one alert candidate: an unread message in an active
// conversation, joined with the recipient's contact details.
type UnreadMessage struct {
	MessageID      string
	ConversationID string
	RecipientID    string
	RecipientName  string
	RecipientEmail string
	RecipientPhone string
	SMSOptIn       bool
	SenderName     string
	Preview        string
	SentAt         time.Time
}

// MessageSource lists unread athlete-bound messages older than the cutoff.
type MessageSource interface {
	UnreadAthleteMessages(ctx context.Context, olderThan time.Time) ([]UnreadMessage, error)
}

// UnreadReport summarizes one alerter run.
type UnreadReport struct {
	Processed  int // candidates past the suppression check
	Suppressed int
	EmailsSent int
	SMSSent    int
	Errors     int
}

// UnreadMessageAlerter periodically nudges athletes about messages they have
// not opened. Alerts fan out to notification, email and SMS in parallel; a
// per-message suppression window keeps repeat runs quiet.
type UnreadMessageAlerter struct {
	source   MessageSource
	notifier *notifier.Service
	email    email.Sender
	sms      sms.Sender
	schedule Schedule
	logger   *slog.Logger
	state    runState
}

// AlerterOption configures an UnreadMessageAlerter.
type AlerterOption func(*UnreadMessageAlerter)

// WithAlerterLogger sets the alerter's logger.
func WithAlerterLogger(l *slog.Logger) AlerterOption {
	return func(a *UnreadMessageAlerter) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithAlerterSchedule overrides the default hourly schedule.
func WithAlerterSchedule(s Schedule) AlerterOption {
	return func(a *UnreadMessageAlerter) {
		if s != nil {
			a.schedule = s
		}
	}
}

// NewUnreadMessageAlerter wires the alerter over its collaborators.
func NewUnreadMessageAlerter(source MessageSource, svc *notifier.Service, emailSender email.Sender, smsSender sms.Sender, opts ...AlerterOption) (*UnreadMessageAlerter, error) {
	if source == nil || svc == nil || emailSender == nil || smsSender == nil {
		return nil, ErrNilDependency
	}
	a := &UnreadMessageAlerter{
		source:   source,
		notifier: svc,
		email:    emailSender,
		sms:      smsSender,
		schedule: Every(time.Hour),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	// Status reports a meaningful next run even before Start's first loop
	// iteration, or when the job is driven purely by TriggerNow.
	a.state.setNextRun(a.schedule.Next(time.Now()))
	return a, nil
}

// Start runs the alerter on its schedule until ctx is cancelled.
func (a *UnreadMessageAlerter) Start(ctx context.Context) error {
	a.logger.LogAttrs(ctx, slog.LevelInfo, "unread message alerter started",
		slog.String("schedule", a.schedule.String()),
	)
	return loop(ctx, a.schedule, &a.state, func(ctx context.Context) {
		if _, err := a.run(ctx); err != nil {
			a.logger.LogAttrs(ctx, slog.LevelError, "unread alert run failed", logger.Error(err))
		}
	})
}

// TriggerNow runs one sweep immediately. Returns ErrRunInProgress when a
// scheduled run is still active.
func (a *UnreadMessageAlerter) TriggerNow(ctx context.Context) (UnreadReport, error) {
	return a.run(ctx)
}

// Status reports whether a run is active and when the next one fires.
func (a *UnreadMessageAlerter) Status() Status {
	return a.state.status()
}

func (a *UnreadMessageAlerter) run(ctx context.Context) (UnreadReport, error) {
	if !a.state.begin() {
		return UnreadReport{}, ErrRunInProgress
	}
	defer a.state.end()

	var report UnreadReport

	cutoff := time.Now().Add(-UnreadMessageAge)
	messages, err := a.source.UnreadAthleteMessages(ctx, cutoff)
	if err != nil {
		return report, err
	}

	for _, msg := range messages {
		if a.notifier.AlreadyAlerted(ctx, msg.RecipientID, msg.MessageID, notifier.TypeUnreadMessageAlert, UnreadSuppressionWindow) {
			report.Suppressed++
			continue
		}
		report.Processed++
		a.alert(ctx, msg, &report)
	}

	a.logger.LogAttrs(ctx, slog.LevelInfo, "unread alert run finished",
		slog.Int("processed", report.Processed),
		slog.Int("suppressed", report.Suppressed),
		slog.Int("emails_sent", report.EmailsSent),
		slog.Int("sms_sent", report.SMSSent),
		slog.Int("errors", report.Errors),
	)
	return report, nil
}

// alert fans one message's channels out in parallel and waits for all of
// them. Failures are logged and counted, never returned; one channel's
// outage must not silence the others. Each future's own error is the source
// of truth so attempts aborted before their function ran (a cancelled
// context) still count as failures.
func (a *UnreadMessageAlerter) alert(ctx context.Context, msg UnreadMessage, report *UnreadReport) {
	type attempt struct {
		channel string
		fn      func(context.Context) error
	}

	attempts := []attempt{
		{channel: "notification", fn: func(ctx context.Context) error {
			if _, ok := a.notifier.Notify(ctx, notifier.Notification{
				RecipientID: msg.RecipientID,
				Title:       "Unread message from " + msg.SenderName,
				Message:     msg.Preview,
				Type:        notifier.TypeUnreadMessageAlert,
				EntityID:    msg.MessageID,
				EntityKind:  "message",
			}); !ok {
				return errAlertStoreFailed
			}
			return nil
		}},
		{channel: "email", fn: func(ctx context.Context) error {
			return a.email.Send(ctx, email.SendParams{
				To:            msg.RecipientEmail,
				TemplateAlias: "unread-message",
				TemplateModel: map[string]any{
					"name":        msg.RecipientName,
					"sender_name": msg.SenderName,
					"preview":     msg.Preview,
				},
				Tag: "unread-message",
			})
		}},
	}
	if msg.SMSOptIn && msg.RecipientPhone != "" {
		attempts = append(attempts, attempt{channel: "sms", fn: func(ctx context.Context) error {
			return a.sms.Send(ctx, sms.SendParams{
				To:      msg.RecipientPhone,
				Message: "You have an unread message from " + msg.SenderName + " on RosterHub.",
			})
		}})
	}

	futures := make([]*async.Future[struct{}], len(attempts))
	for i, att := range attempts {
		futures[i] = async.Async(ctx, att, func(ctx context.Context, att attempt) (struct{}, error) {
			return struct{}{}, att.fn(ctx)
		})
	}

	for i, future := range futures {
		if _, err := future.Await(); err != nil {
			report.Errors++
			a.logger.LogAttrs(ctx, slog.LevelError, "unread alert channel failed",
				logger.Channel(attempts[i].channel),
				logger.RecipientID(msg.RecipientID),
				logger.EntityID(msg.MessageID),
				logger.Error(err),
			)
			continue
		}
		switch attempts[i].channel {
		case "email":
			report.EmailsSent++
		case "sms":
			report.SMSSent++
		}
	}
}
