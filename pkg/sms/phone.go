package sms

import (
	"fmt"
	"regexp"

	"github.com/nyaruka/phonenumbers"
)

var e164Regex = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

// IsE164 reports whether raw is already in strict E.164 format.
func IsE164(raw string) bool {
	return e164Regex.MatchString(raw)
}

// NormalizeE164 validates raw against E.164 and, when it doesn't conform,
// attempts one reformatting pass assuming defaultRegion (e.g. a national
// "415 555 2671" becomes "+14155552671" under region US). It returns the
// formatted number or ErrInvalidPhoneNumber if the number cannot be made
// valid.
func NormalizeE164(raw, defaultRegion string) (string, error) {
	if raw == "" {
		return "", ErrMissingRecipient
	}

	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidPhoneNumber, raw, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhoneNumber, raw)
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}
