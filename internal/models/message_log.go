package models

import (
	"database/sql"
	"time"
)

type MessageStatus string

const (
	MessageStatusQueued    MessageStatus = "queued"
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusRead      MessageStatus = "read"
	MessageStatusFailed    MessageStatus = "failed"
)

// MessageCategory classifies an outbound message by the workflow that
// produced it.
type MessageCategory string

const (
	CategoryReminder2Day  MessageCategory = "reminder_2day"
	CategoryReminder1Day  MessageCategory = "reminder_1day"
	CategoryReminderDayOf MessageCategory = "reminder_day_of"
	CategoryConfirmation  MessageCategory = "confirmation"
	CategoryFollowUp      MessageCategory = "follow_up"
)

// MessageLogEntry is one outbound send attempt and its delivery lifecycle.
type MessageLogEntry struct {
	ID            string          `db:"id" json:"id"`
	ChannelID     string          `db:"channel_id" json:"channel_id"`
	TenantID      string          `db:"tenant_id" json:"tenant_id"`
	PatientID     sql.NullString  `db:"patient_id" json:"patient_id,omitempty"`
	AppointmentID sql.NullString  `db:"appointment_id" json:"appointment_id,omitempty"`
	Category      MessageCategory `db:"category" json:"category"`
	Recipient     string          `db:"recipient" json:"recipient"`
	Content       string          `db:"content" json:"content"`
	Status        MessageStatus   `db:"status" json:"status"`
	ExternalID    sql.NullString  `db:"external_id" json:"external_id,omitempty"`
	Error         sql.NullString  `db:"error" json:"error,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// Terminal reports whether no further status transitions are accepted.
func (s MessageStatus) Terminal() bool {
	return s == MessageStatusRead || s == MessageStatusFailed
}

func ValidMessageStatus(s MessageStatus) bool {
	switch s {
	case MessageStatusQueued, MessageStatusSent, MessageStatusDelivered, MessageStatusRead, MessageStatusFailed:
		return true
	}
	return false
}

func ValidMessageCategory(c MessageCategory) bool {
	switch c {
	case CategoryReminder2Day, CategoryReminder1Day, CategoryReminderDayOf, CategoryConfirmation, CategoryFollowUp:
		return true
	}
	return false
}

// CanTransition reports whether a status callback may move an entry from
// one state to another. Delivery callbacks can arrive out of order, so
// forward skips are accepted (a "delivered" report for an entry still
// "queued"); backward moves and transitions out of a terminal state are
// not. Repeating the current status is not a transition; callers treat it
// as a no-op.
func CanTransition(from, to MessageStatus) bool {
	if from == to || from.Terminal() {
		return false
	}

	switch to {
	case MessageStatusSent:
		return from == MessageStatusQueued
	case MessageStatusDelivered:
		return from == MessageStatusQueued || from == MessageStatusSent
	case MessageStatusRead:
		return from == MessageStatusQueued || from == MessageStatusSent || from == MessageStatusDelivered
	case MessageStatusFailed:
		return from == MessageStatusQueued || from == MessageStatusSent
	}

	return false
}

// AllowedPredecessors returns the states an entry may be in for a
// transition into the given status to be valid. Used to guard status
// updates at the storage layer.
func AllowedPredecessors(to MessageStatus) []MessageStatus {
	switch to {
	case MessageStatusSent:
		return []MessageStatus{MessageStatusQueued}
	case MessageStatusDelivered:
		return []MessageStatus{MessageStatusQueued, MessageStatusSent}
	case MessageStatusRead:
		return []MessageStatus{MessageStatusQueued, MessageStatusSent, MessageStatusDelivered}
	case MessageStatusFailed:
		return []MessageStatus{MessageStatusQueued, MessageStatusSent}
	}
	return nil
}

// DeliveryWindowStats aggregates log outcomes over a trailing window,
// read in a single query so the health computation sees one consistent
// snapshot.
type DeliveryWindowStats struct {
	Total     int `db:"total"`
	Delivered int `db:"delivered"`
	Failed    int `db:"failed"`
}

// MessageLogFilter narrows log queries; zero values mean "any".
type MessageLogFilter struct {
	ChannelID string
	TenantID  string
	Status    MessageStatus
	Since     time.Time
	Limit     int
}
