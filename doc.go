// Package notify is RosterHub's notification subsystem: an in-process event
// bus, email and SMS channel providers, an idempotent notification store,
// per-domain event handlers and the time-driven alert jobs.
//
// Reusable building blocks live under pkg/ (eventbus, notifier, email, sms,
// async, logger, config, mongodb); the wiring that gives them RosterHub
// semantics lives under svc/ (dispatch, scheduler). A host application
// constructs the providers and stores, registers the dispatch handlers on a
// bus, and publishes events after its own transactions commit.
package notify
