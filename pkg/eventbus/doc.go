// Package eventbus provides an in-memory, single-process publish/subscribe
// primitive for decoupling business actions from their side effects.
//
// The bus is an explicit object constructed once at startup and injected into
// every handler registrar, so tests can build a fresh bus per test instead of
// sharing module-level state.
//
// # Dispatch Semantics
//
// Handlers subscribed to an event name run sequentially, in subscription
// order, and Publish does not return until every handler has completed. The
// bus does not catch handler errors: the first non-nil error aborts the
// remaining handlers for that publish and propagates to the caller. Handler
// authors that must not break the publishing transaction are expected to log
// and return nil.
//
// # Basic Usage
//
//	bus := eventbus.New()
//	bus.Subscribe("user.registered", func(ctx context.Context, e eventbus.Event) error {
//	    payload := e.Payload.(UserRegistered)
//	    // persist notification, send welcome email...
//	    return nil
//	})
//
//	// After the registration transaction commits:
//	_ = bus.Publish(ctx, "user.registered", UserRegistered{UserID: "u1"})
//
// A publish with zero subscribers is a silent no-op. Events are ephemeral:
// never persisted, never replayed, at-most-once per process lifetime.
//
// # Timeouts
//
// By default a slow handler stalls Publish indefinitely. Construct the bus
// with WithHandlerTimeout to bound each handler's execution; a handler that
// exceeds the timeout yields ErrHandlerTimeout to the publisher while its
// goroutine is left to finish in the background.
package eventbus
