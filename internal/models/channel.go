// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"time"
)

// ChannelType identifies the kind of messaging endpoint behind a channel.
type ChannelType string

const (
	ChannelTypeWhatsApp    ChannelType = "whatsapp"
	ChannelTypeMessenger   ChannelType = "messenger"
	ChannelTypeWebhook     ChannelType = "webhook_automation"
	ChannelTypeSupportDesk ChannelType = "support_desk"
)

// ChannelPurpose is the traffic class a channel serves. Rotation and
// defaults are scoped per purpose.
type ChannelPurpose string

const (
	PurposeReminders         ChannelPurpose = "reminders"
	PurposeClinicIntegration ChannelPurpose = "clinic_integration"
)

type ChannelStatus string

const (
	ChannelStatusConnecting ChannelStatus = "connecting"
	ChannelStatusActive     ChannelStatus = "active"
	ChannelStatusInactive   ChannelStatus = "inactive"
	ChannelStatusError      ChannelStatus = "error"
)

// Channel represents a configured communication endpoint for a tenant.
// DailyLimit mirrors the antiblock config so the daily counter can be
// checked and incremented in a single statement.
type Channel struct {
	ID                string         `db:"id" json:"id"`
	TenantID          string         `db:"tenant_id" json:"tenant_id"`
	Name              string         `db:"name" json:"name"`
	Type              ChannelType    `db:"channel_type" json:"channel_type"`
	Purpose           ChannelPurpose `db:"purpose" json:"purpose"`
	Status            ChannelStatus  `db:"status" json:"status"`
	HealthScore       int            `db:"health_score" json:"health_score"`
	DailyLimit        int            `db:"daily_limit" json:"daily_limit"`
	MessagesSentToday int            `db:"messages_sent_today" json:"messages_sent_today"`
	IsDefault         bool           `db:"is_default" json:"is_default"`
	EndpointURL       string         `db:"endpoint_url" json:"endpoint_url"`
	AuthKey           sql.NullString `db:"auth_key" json:"-"`
	LastSendAt        sql.NullTime   `db:"last_send_at" json:"last_send_at,omitempty"`
	LastHealthCheckAt sql.NullTime   `db:"last_health_check_at" json:"last_health_check_at,omitempty"`
	LastError         sql.NullString `db:"last_error" json:"last_error,omitempty"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}

func ValidChannelType(t ChannelType) bool {
	switch t {
	case ChannelTypeWhatsApp, ChannelTypeMessenger, ChannelTypeWebhook, ChannelTypeSupportDesk:
		return true
	}
	return false
}

func ValidChannelPurpose(p ChannelPurpose) bool {
	return p == PurposeReminders || p == PurposeClinicIntegration
}
