package dispatch

// Event names published on the bus. Names are dot-namespaced; payloads are
// the structs below, passed by value.
const (
	EventUserRegistered          = "user.registered"
	EventEmailVerify             = "email.verify"
	EventEmailVerified           = "email.verified"
	EventPasswordResetRequested  = "password.reset.requested"
	EventPasswordResetCompleted  = "password.reset.completed"
	EventConversationStarted     = "conversation.started"
	EventConversationMessage     = "conversation.message"
	EventPaymentSucceeded        = "billing.payment.success"
	EventPaymentFailed           = "billing.payment.failed"
	EventClaimCreated            = "claim.created"
	EventScoutReportSubmitted    = "scout.report.submitted"
	EventProfileCompletionAlert  = "athlete.profile.completion.alert"
	EventProfileViewRecorded     = "athlete.view.recorded"
	EventSearchReportGenerated   = "search.report.generated"
	EventSupportTicketCreated    = "support.ticket.created"
	EventSupportTicketUpdated    = "support.ticket.updated"
	EventTeamInvited             = "team.invited"
)

// UserRegistered is published after a registration transaction commits.
type UserRegistered struct {
	UserID string
	Email  string
	Name   string
}

// EmailVerification carries the double-opt-in link for a fresh address.
type EmailVerification struct {
	Email     string
	Name      string
	VerifyURL string
}

// EmailVerified confirms a completed verification.
type EmailVerified struct {
	Email string
	Name  string
}

// PasswordResetRequested carries the reset link.
type PasswordResetRequested struct {
	Email    string
	Name     string
	ResetURL string
}

// PasswordResetCompleted confirms a finished reset.
type PasswordResetCompleted struct {
	Email string
	Name  string
}

// ConversationStarted is published when a team opens a conversation with an
// athlete. Only the athlete party is alerted.
type ConversationStarted struct {
	ConversationID string
	AthleteID      string
	TeamName       string
}

// ConversationMessage is published per message sent inside a conversation.
type ConversationMessage struct {
	ConversationID string
	MessageID      string
	SenderID       string
	SenderName     string
	ReceiverID     string
	Preview        string
}

// PaymentResult covers both success and failure billing events.
type PaymentResult struct {
	UserID    string
	InvoiceID string
	PlanName  string
	Amount    string
	Reason    string // failure reason, empty on success
}

// ClaimCreated is published when someone claims an athlete profile.
type ClaimCreated struct {
	ClaimID        string
	RequesterID    string
	RequesterName  string
	RequesterEmail string
	AthleteName    string
}

// ScoutReportSubmitted is published once a scout's report has been processed.
type ScoutReportSubmitted struct {
	ReportID  string
	ScoutID   string
	AthleteID string
	Accepted  bool
	Reason    string // rejection reason, empty when accepted
}

// ProfileCompletionAlert nudges an athlete with an incomplete profile.
// Synthesized by schedulers, not by user actions.
type ProfileCompletionAlert struct {
	AthleteID string
}

// ProfileViewRecorded is published when someone views an athlete profile.
type ProfileViewRecorded struct {
	AthleteID  string
	ViewerID   string
	ViewerName string
}

// SearchReportGenerated announces a finished search report.
type SearchReportGenerated struct {
	ReportID string
	UserID   string
	Title    string
}

// SupportTicketCreated is published on ticket creation.
type SupportTicketCreated struct {
	TicketID    string
	RequesterID string
	Subject     string
}

// SupportTicketUpdated is published on every ticket change. AuthorID is who
// made the change; the requester is not re-notified about their own updates.
type SupportTicketUpdated struct {
	TicketID    string
	RequesterID string
	AuthorID    string
	AgentID     string // assigned agent, empty if unassigned
	Subject     string
}

// TeamInvited is published when an athlete invites a team to connect.
type TeamInvited struct {
	TeamProfileID string
	TeamEmail     string
	TeamName      string
	InviterName   string
}
