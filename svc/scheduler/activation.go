package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/rosterhub/notify/pkg/logger"
)

// StaleProfileAge is the grace period a fresh profile gets before the sweep
// considers deactivating it.
const StaleProfileAge = 24 * time.Hour

// ProfileRecord is the activation sweep's view of an athlete profile.
type ProfileRecord struct {
	ID              string
	CreatedAt       time.Time
	Active          bool
	HasImage        bool
	HasMetrics      bool
	HasMeasurements bool
	HasResume       bool
}

// HasCompletionSignal reports whether the profile shows any sign of being
// filled in. A single signal is enough to keep or bring it back.
func (p ProfileRecord) HasCompletionSignal() bool {
	return p.HasImage || p.HasMetrics || p.HasMeasurements || p.HasResume
}

// ProfileStore is the persistence surface the sweep needs.
type ProfileStore interface {
	// StaleCandidates lists active profiles created before the cutoff.
	StaleCandidates(ctx context.Context, createdBefore time.Time) ([]ProfileRecord, error)

	// DeactivatedProfiles lists profiles previously deactivated by the sweep.
	DeactivatedProfiles(ctx context.Context) ([]ProfileRecord, error)

	// SetActive flips a profile's active flag.
	SetActive(ctx context.Context, profileID string, active bool) error
}

// ActivationReport summarizes one sweep.
type ActivationReport struct {
	Deactivated int
	Reactivated int
	Errors      int
}

// ProfileActivationSweep deactivates profiles that stayed empty past the
// grace period and reactivates ones that have since gained a completion
// signal. Both directions run in the same pass so a profile never flaps
// within a run.
type ProfileActivationSweep struct {
	store    ProfileStore
	schedule Schedule
	logger   *slog.Logger
	state    runState
}

// SweepOption configures a ProfileActivationSweep.
type SweepOption func(*ProfileActivationSweep)

// WithSweepLogger sets the sweep's logger.
func WithSweepLogger(l *slog.Logger) SweepOption {
	return func(s *ProfileActivationSweep) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSweepSchedule overrides the default daily 04:00 schedule.
func WithSweepSchedule(schedule Schedule) SweepOption {
	return func(s *ProfileActivationSweep) {
		if schedule != nil {
			s.schedule = schedule
		}
	}
}

// NewProfileActivationSweep wires the sweep over its store.
func NewProfileActivationSweep(store ProfileStore, opts ...SweepOption) (*ProfileActivationSweep, error) {
	if store == nil {
		return nil, ErrNilDependency
	}
	s := &ProfileActivationSweep{
		store:    store,
		schedule: DailyAt(4, 0),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	// Status reports a meaningful next run even before Start's first loop
	// iteration, or when the job is driven purely by TriggerNow.
	s.state.setNextRun(s.schedule.Next(time.Now()))
	return s, nil
}

// Start runs the sweep on its schedule until ctx is cancelled.
func (s *ProfileActivationSweep) Start(ctx context.Context) error {
	s.logger.LogAttrs(ctx, slog.LevelInfo, "profile activation sweep started",
		slog.String("schedule", s.schedule.String()),
	)
	return loop(ctx, s.schedule, &s.state, func(ctx context.Context) {
		if _, err := s.run(ctx); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelError, "activation sweep failed", logger.Error(err))
		}
	})
}

// TriggerNow runs one sweep immediately. Returns ErrRunInProgress when a
// scheduled run is still active.
func (s *ProfileActivationSweep) TriggerNow(ctx context.Context) (ActivationReport, error) {
	return s.run(ctx)
}

// Status reports whether a run is active and when the next one fires.
func (s *ProfileActivationSweep) Status() Status {
	return s.state.status()
}

func (s *ProfileActivationSweep) run(ctx context.Context) (ActivationReport, error) {
	if !s.state.begin() {
		return ActivationReport{}, ErrRunInProgress
	}
	defer s.state.end()

	var report ActivationReport

	cutoff := time.Now().Add(-StaleProfileAge)
	stale, err := s.store.StaleCandidates(ctx, cutoff)
	if err != nil {
		return report, err
	}
	for _, profile := range stale {
		if profile.HasCompletionSignal() {
			continue
		}
		if err := s.store.SetActive(ctx, profile.ID, false); err != nil {
			report.Errors++
			s.logger.LogAttrs(ctx, slog.LevelError, "profile deactivation failed",
				logger.EntityID(profile.ID),
				logger.Error(err),
			)
			continue
		}
		report.Deactivated++
	}

	deactivated, err := s.store.DeactivatedProfiles(ctx)
	if err != nil {
		return report, err
	}
	for _, profile := range deactivated {
		if !profile.HasCompletionSignal() {
			continue
		}
		if err := s.store.SetActive(ctx, profile.ID, true); err != nil {
			report.Errors++
			s.logger.LogAttrs(ctx, slog.LevelError, "profile reactivation failed",
				logger.EntityID(profile.ID),
				logger.Error(err),
			)
			continue
		}
		report.Reactivated++
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "activation sweep finished",
		slog.Int("deactivated", report.Deactivated),
		slog.Int("reactivated", report.Reactivated),
		slog.Int("errors", report.Errors),
	)
	return report, nil
}
