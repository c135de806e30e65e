package models

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx/types"
)

type AlertType string

const (
	AlertHealthCritical   AlertType = "health_critical"
	AlertHealthLow        AlertType = "health_low"
	AlertLowDeliveryRate  AlertType = "low_delivery_rate"
	AlertLimitApproaching AlertType = "limit_approaching"
)

type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is an operational alert raised against a channel. At most one
// unresolved alert may exist per (channel, type) pair.
type Alert struct {
	ID             string         `db:"id" json:"id"`
	ChannelID      string         `db:"channel_id" json:"channel_id"`
	TenantID       string         `db:"tenant_id" json:"tenant_id"`
	Type           AlertType      `db:"alert_type" json:"alert_type"`
	Severity       AlertSeverity  `db:"severity" json:"severity"`
	Message        string         `db:"message" json:"message"`
	Metadata       types.JSONText `db:"metadata" json:"metadata,omitempty"`
	Resolved       bool           `db:"resolved" json:"resolved"`
	ResolutionNote sql.NullString `db:"resolution_note" json:"resolution_note,omitempty"`
	ResolvedAt     sql.NullTime   `db:"resolved_at" json:"resolved_at,omitempty"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}

// AlertFilter narrows alert queries; nil/zero values mean "any".
type AlertFilter struct {
	TenantID  string
	ChannelID string
	Type      AlertType
	Severity  AlertSeverity
	Resolved  *bool
	Limit     int
}
