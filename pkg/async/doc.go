// Package async provides small Future-based helpers for fanning work out to
// goroutines and collecting the results.
//
// The primary consumer is the notification dispatch layer, which sends to
// several delivery channels at once and must wait for every attempt to finish,
// success or failure, before reporting:
//
//	emailF := async.Async(ctx, params, sendEmail)
//	smsF := async.Async(ctx, params, sendSMS)
//
//	_, err := async.Settle(emailF, smsF)
//	// err joins individual channel failures; every channel was attempted.
//
// Settle never short-circuits: one channel failing does not prevent the
// others from being awaited. Use WaitAll when the first failure should stop
// the collection instead.
package async
