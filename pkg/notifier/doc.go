// Package notifier provides the durable record of in-app notifications and
// their read state, with pluggable storage.
//
// # Architecture
//
// The package follows a layered design:
//
//   - Storage: persistence with idempotent-insert semantics (Mongo-backed in
//     production, in-memory for development and tests)
//   - Service: the single insert entrypoint used by event handlers, plus
//     read-state operations and the alert-suppression lookup
//
// # Deduplication
//
// Inserting a notification whose (recipient, sender, title, message, type,
// entity) tuple matches an existing record deletes the old record first: a
// semantically identical notification replaces its predecessor rather than
// accumulating, so a user who was notified twice about the same thing sees
// one entry with the newer timestamp.
//
// # Retention
//
// Records expire 60 days after creation via a TTL index on the Mongo
// collection (EnsureIndexes sets it up). Application code never hard-deletes
// notifications outside of the dedup replace.
//
// # Failure Policy
//
// Service.Notify swallows storage failures after logging them: an in-app
// notification failing to save must never block the email/SMS side effects
// or the business transaction that triggered the event. Callers that need to
// observe the outcome get a boolean, not an error to propagate.
package notifier
