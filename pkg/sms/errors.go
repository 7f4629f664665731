package sms

import "errors"

var (
	ErrInvalidConfig      = errors.New("sms: invalid configuration")
	ErrMissingRecipient   = errors.New("sms: destination phone number is required")
	ErrMissingContent     = errors.New("sms: either message body or content sid is required")
	ErrMessageTooLong     = errors.New("sms: message body too long")
	ErrInvalidPhoneNumber = errors.New("sms: phone number is not a valid E.164 number")
	ErrFailedToSend       = errors.New("sms: failed to send")
)
