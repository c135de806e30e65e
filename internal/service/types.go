package service

import (
	"time"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
)

// CreateChannelInput carries channel provisioning parameters. Antiblock
// fields left nil fall back to the configured defaults.
type CreateChannelInput struct {
	TenantID    string
	Name        string
	Type        models.ChannelType
	Purpose     models.ChannelPurpose
	EndpointURL string
	AuthKey     string
	IsDefault   bool

	DailyLimit         *int
	HourlyLimit        *int
	MinIntervalSeconds *int
	AutoPauseThreshold *int
}

// AntiblockConfigPatch updates selected antiblock policy fields; nil
// fields are left unchanged.
type AntiblockConfigPatch struct {
	DailyLimit         *int
	HourlyLimit        *int
	MinIntervalSeconds *int
	AutoRotate         *bool
	AutoPauseThreshold *int
}

// SendRequest describes the message a reminder workflow wants recorded.
type SendRequest struct {
	TenantID      string
	Category      models.MessageCategory
	Recipient     string
	Content       string
	PatientID     string
	AppointmentID string
}

// HealthMetrics carries the computed window metrics into alert evaluation.
type HealthMetrics struct {
	Score        int
	Total        int
	Delivered    int
	Failed       int
	DeliveryRate float64
}

// ChannelHealthReport is the read-API view of a channel's health.
type ChannelHealthReport struct {
	ChannelID         string                   `json:"channel_id"`
	Status            models.ChannelStatus     `json:"status"`
	HealthScore       int                      `json:"health_score"`
	MessagesSentToday int                      `json:"messages_sent_today"`
	DailyLimit        int                      `json:"daily_limit"`
	LastHealthCheckAt *time.Time               `json:"last_health_check_at,omitempty"`
	LastError         string                   `json:"last_error,omitempty"`
	History           []*models.HealthSnapshot `json:"history"`
}

type ComponentStatus string

const (
	ComponentUp   ComponentStatus = "up"
	ComponentDown ComponentStatus = "down"
)

type CircuitBreakerState string

const (
	CircuitClosed   CircuitBreakerState = "closed"
	CircuitHalfOpen CircuitBreakerState = "half_open"
	CircuitOpen     CircuitBreakerState = "open"
)

// ServiceHealthStatus reports the gateway's own operational state.
type ServiceHealthStatus struct {
	Status            string              `json:"status"`
	Database          ComponentStatus     `json:"database"`
	Redis             ComponentStatus     `json:"redis"`
	MonitorRunning    bool                `json:"monitor_running"`
	DispatcherRunning bool                `json:"dispatcher_running"`
	ResetRunning      bool                `json:"reset_running"`
	CircuitBreaker    CircuitBreakerState `json:"circuit_breaker"`
}
