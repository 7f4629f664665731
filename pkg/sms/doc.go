// Package sms abstracts outbound SMS delivery behind a provider-selectable
// Sender interface, mirroring the email channel.
//
// The provider is chosen once at process start via Config.Provider:
//
//   - twilio: delivery through the Twilio Messages API, supporting plain
//     bodies and provider-side content templates (ContentSID + variables)
//   - dev: writes outgoing messages to disk for local development
//
// Every destination number is validated against E.164 before any network
// call. Numbers that fail validation get one reformatting pass assuming the
// configured default region (national-format numbers from web forms are the
// common case); a number that is still invalid afterwards is rejected with
// ErrInvalidPhoneNumber. Message bodies are capped at 1600 characters, the
// upper bound of a concatenated SMS.
//
// Senders do not retry; a failed send is logged and returned to the caller.
package sms
