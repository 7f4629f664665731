package email

import "errors"

var (
	ErrInvalidConfig    = errors.New("email: invalid configuration")
	ErrInvalidRecipient = errors.New("email: invalid recipient address")
	ErrMissingContent   = errors.New("email: either html body or template alias is required")
	ErrFailedToSend     = errors.New("email: failed to send")
)
