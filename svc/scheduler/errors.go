package scheduler

import "errors"

var (
	// ErrRunInProgress is returned by TriggerNow when the previous run has
	// not finished yet. Overlapping runs are skipped, never queued.
	ErrRunInProgress = errors.New("scheduler: run already in progress")

	// ErrNilDependency is returned by constructors missing a collaborator.
	ErrNilDependency = errors.New("scheduler: nil dependency")
)

var errAlertStoreFailed = errors.New("scheduler: alert notification insert failed")
