// Package logger builds configured slog.Logger instances and provides typed
// attribute helpers for the identifiers that repeat across the notification
// core (recipients, events, entities, channels).
//
// Handlers and schedulers log with LogAttrs and these helpers so that every
// failure line carries enough identifying context to trace it back to the
// triggering event:
//
//	log := logger.New(logger.WithFormat(logger.FormatJSON))
//	log.LogAttrs(ctx, slog.LevelError, "email send failed",
//	    logger.RecipientID(user.ID),
//	    logger.EventName("billing.payment.failed"),
//	    logger.Error(err),
//	)
package logger
