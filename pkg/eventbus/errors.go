package eventbus

import "errors"

var (
	// ErrHandlerTimeout is returned by Publish when a handler exceeds the
	// bus's configured handler timeout.
	ErrHandlerTimeout = errors.New("eventbus: handler timed out")
)
