// Package scheduler hosts the time-driven alert jobs that are not triggered
// by a business event: the unread-message digest and the profile activation
// sweep. Each job owns a Schedule, refuses overlapping runs, and exposes
// TriggerNow for manual kicks from an admin surface.
package scheduler
