package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Event carries a dot-namespaced name and an arbitrary payload. Each handler
// defines its expected payload shape by convention; the bus enforces nothing.
type Event struct {
	Name    string
	Payload any
}

// Handler processes a single published event.
type Handler func(ctx context.Context, e Event) error

// Option configures a Bus.
type Option func(*Bus)

// WithLogger sets the logger used for subscription bookkeeping.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithHandlerTimeout bounds the execution time of each handler. Zero (the
// default) means unbounded: a hanging handler stalls the publisher.
func WithHandlerTimeout(d time.Duration) Option {
	return func(b *Bus) {
		b.handlerTimeout = d
	}
}

// Bus is an in-memory publish/subscribe dispatcher. Subscribe is expected at
// startup, Publish at runtime; both are safe for concurrent use. There is no
// unsubscription: a registration lives for the process lifetime.
type Bus struct {
	mu             sync.RWMutex
	handlers       map[string][]Handler
	handlerTimeout time.Duration
	logger         *slog.Logger
}

// New creates an empty bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		handlers: make(map[string][]Handler),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a handler under an event name. Insertion order is
// invocation order. Nil handlers are ignored.
func (b *Bus) Subscribe(name string, h Handler) {
	if h == nil {
		return
	}

	b.mu.Lock()
	b.handlers[name] = append(b.handlers[name], h)
	count := len(b.handlers[name])
	b.mu.Unlock()

	b.logger.LogAttrs(context.Background(), slog.LevelDebug, "subscribed event handler",
		slog.String("event", name),
		slog.Int("handler_count", count),
	)
}

// Publish invokes every handler registered under name, sequentially and in
// subscription order, awaiting each before starting the next. The first
// handler error aborts the rest and is returned to the caller; callers that
// must not fail their own transaction on a notification error should treat
// the returned error as advisory.
func (b *Bus) Publish(ctx context.Context, name string, payload any) error {
	b.mu.RLock()
	handlers := b.handlers[name]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	e := Event{Name: name, Payload: payload}
	for i, h := range handlers {
		if err := b.invoke(ctx, h, e); err != nil {
			return fmt.Errorf("eventbus: handler %d for %q: %w", i, name, err)
		}
	}
	return nil
}

// SubscriberCount reports how many handlers are registered under name.
func (b *Bus) SubscriberCount(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[name])
}

func (b *Bus) invoke(ctx context.Context, h Handler, e Event) error {
	if b.handlerTimeout <= 0 {
		return h(ctx, e)
	}

	hctx, cancel := context.WithTimeout(ctx, b.handlerTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- h(hctx, e)
	}()

	select {
	case err := <-done:
		return err
	case <-hctx.Done():
		// The handler goroutine keeps running; the buffered channel lets it
		// exit without leaking once it eventually returns.
		return ErrHandlerTimeout
	}
}
