package notifier

import (
	"time"
)

// Type is the taxonomy tag of a notification.
type Type string

const (
	TypeSystem             Type = "system"
	TypeRegistration       Type = "registration"
	TypeMessage            Type = "message"
	TypePayment            Type = "payment"
	TypeClaim              Type = "claim"
	TypeScoutReport        Type = "scout_report"
	TypeProfileView        Type = "profile_view"
	TypeSearchReport       Type = "search_report"
	TypeSupport            Type = "support"
	TypeTeamInvite         Type = "team_invite"
	TypeUnreadMessageAlert Type = "unread_message_alert"
)

// RetentionPeriod is how long notifications are kept before the background
// expiry removes them.
const RetentionPeriod = 60 * 24 * time.Hour

// Notification is the persisted in-app notification record.
// SenderID is empty for system-generated notifications. EntityID/EntityKind
// optionally reference the record the notification is about (a message, an
// invoice, a support ticket) and drive the alert-suppression lookup.
type Notification struct {
	ID          string     `bson:"_id" json:"id"`
	RecipientID string     `bson:"recipient_id" json:"recipient_id"`
	SenderID    string     `bson:"sender_id,omitempty" json:"sender_id,omitempty"`
	Title       string     `bson:"title" json:"title"`
	Message     string     `bson:"message" json:"message"`
	Type        Type       `bson:"type" json:"type"`
	EntityID    string     `bson:"entity_id,omitempty" json:"entity_id,omitempty"`
	EntityKind  string     `bson:"entity_kind,omitempty" json:"entity_kind,omitempty"`
	Opened      bool       `bson:"opened" json:"opened"`
	OpenedAt    *time.Time `bson:"opened_at,omitempty" json:"opened_at,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
}

// SameContent reports whether two notifications carry the identical
// (recipient, sender, title, message, type, entity) tuple. Insert uses this
// tuple to replace rather than accumulate duplicates.
func (n Notification) SameContent(other Notification) bool {
	return n.RecipientID == other.RecipientID &&
		n.SenderID == other.SenderID &&
		n.Title == other.Title &&
		n.Message == other.Message &&
		n.Type == other.Type &&
		n.EntityID == other.EntityID
}

// MarkOpened flips the opened flag with the current timestamp.
func (n *Notification) MarkOpened() {
	n.Opened = true
	now := time.Now()
	n.OpenedAt = &now
}
