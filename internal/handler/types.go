package handler

import (
	"time"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type CreateChannelRequest struct {
	TenantID    string                `json:"tenant_id"`
	Name        string                `json:"name"`
	ChannelType models.ChannelType    `json:"channel_type"`
	Purpose     models.ChannelPurpose `json:"purpose"`
	EndpointURL string                `json:"endpoint_url"`
	AuthKey     string                `json:"auth_key,omitempty"`
	IsDefault   bool                  `json:"is_default,omitempty"`

	DailyLimit         *int `json:"daily_limit,omitempty"`
	HourlyLimit        *int `json:"hourly_limit,omitempty"`
	MinIntervalSeconds *int `json:"min_interval_seconds,omitempty"`
	AutoPauseThreshold *int `json:"auto_pause_threshold,omitempty"`
}

type UpdateAntiblockRequest struct {
	DailyLimit         *int  `json:"daily_limit,omitempty"`
	HourlyLimit        *int  `json:"hourly_limit,omitempty"`
	MinIntervalSeconds *int  `json:"min_interval_seconds,omitempty"`
	AutoRotate         *bool `json:"auto_rotate,omitempty"`
	AutoPauseThreshold *int  `json:"auto_pause_threshold,omitempty"`
}

type SetDefaultRequest struct {
	TenantID string                `json:"tenant_id"`
	Purpose  models.ChannelPurpose `json:"purpose"`
}

type RecordSendRequest struct {
	TenantID      string                 `json:"tenant_id"`
	Category      models.MessageCategory `json:"category"`
	Recipient     string                 `json:"recipient"`
	Content       string                 `json:"content"`
	PatientID     string                 `json:"patient_id,omitempty"`
	AppointmentID string                 `json:"appointment_id,omitempty"`
}

type RecordSendResponse struct {
	EntryID string `json:"entry_id"`
}

type DeliveryCallbackRequest struct {
	MessageID string               `json:"message_id"`
	Status    models.MessageStatus `json:"status"`
	Error     *string              `json:"error,omitempty"`
}

type ResolveAlertRequest struct {
	Note string `json:"note"`
}

type ResetResponse struct {
	Status     string    `json:"status"`
	ExecutedAt time.Time `json:"executed_at"`
}

type ChannelListResponse struct {
	Channels []*models.Channel `json:"channels"`
}

type AlertListResponse struct {
	Alerts []*models.Alert `json:"alerts"`
}
