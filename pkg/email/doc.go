// Package email abstracts outbound email delivery behind a provider-selectable
// Sender interface.
//
// The provider is chosen once at process start via Config.Provider; runtime
// provider switching is not supported. Two providers ship with the package:
//
//   - postmark: transactional delivery through the Postmark API, supporting
//     both raw HTML bodies and provider-side templates with substitution data
//   - dev: writes outgoing emails to disk for local development
//
// A send must carry either a raw HTML body or a template alias; supplying
// neither is a validation error rejected before any network call. Missing
// credentials are a configuration error surfaced at construction time, not at
// first send: a capability that cannot work should halt startup rather than
// degrade silently.
//
// Senders do not retry. Callers decide whether a failed send is worth
// retrying; in practice handlers log the failure and move on so that one
// channel's outage never blocks another channel's attempt.
package email
