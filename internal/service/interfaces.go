package service

import (
	"context"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

// ChannelService provisions and manages communication channels.
type ChannelService interface {
	Create(input CreateChannelInput) (*models.Channel, error)
	Get(id string) (*models.Channel, error)
	List(tenantID string, purpose *models.ChannelPurpose) ([]*models.Channel, error)

	// Deactivate soft-deletes a channel; the row stays, status becomes inactive.
	Deactivate(id string) error

	// Reactivate restores an inactive or auto-paused channel to active
	// and clears its stored error. This is the only way out of an
	// auto-pause.
	Reactivate(id string) error

	SetDefault(id, tenantID string, purpose models.ChannelPurpose) error
	GetAntiblockConfig(channelID string) (*models.AntiblockConfig, error)
	UpdateAntiblockConfig(channelID string, patch AntiblockConfigPatch) (*models.AntiblockConfig, error)
}

// AntiblockService is the send-permission gate.
type AntiblockService interface {
	// CanSend returns the yes/no permission decision with the first
	// matching deny reason. Refusals are values, not errors.
	CanSend(channelID string) (*models.SendDecision, error)

	// RecordSend atomically checks permission, increments the daily
	// counter, and appends a queued log entry; returns the entry id.
	RecordSend(channelID string, req SendRequest) (string, error)
}

// RotatorService selects the best eligible channel for a tenant and purpose.
type RotatorService interface {
	NextChannel(tenantID string, purpose models.ChannelPurpose) (*models.Channel, error)
}

// HealthService recomputes channel health scores.
type HealthService interface {
	RecomputeChannel(channelID string) (*models.HealthSnapshot, error)
	RecomputeAll(ctx context.Context) error
}

// AlertingService evaluates health metrics against alert thresholds.
type AlertingService interface {
	Evaluate(ch *models.Channel, metrics HealthMetrics)
	List(filter models.AlertFilter) ([]*models.Alert, error)
	Resolve(id, note string) error
}

// ResetService owns the daily counter reset and retention pruning.
type ResetService interface {
	Start() error
	Stop() error
	IsRunning() bool

	// ForceReset runs the reset steps synchronously.
	ForceReset() error
}

// MonitorService drives periodic health recomputation.
type MonitorService interface {
	Start() error
	Stop() error
	IsRunning() bool
	ForceHealthCheck(channelID string) (*models.HealthSnapshot, error)
}

// DispatcherService delivers queued log entries to provider endpoints and
// ingests delivery-status callbacks.
type DispatcherService interface {
	Start() error
	Stop() error
	IsRunning() bool
	DispatchQueued() error
	HandleDeliveryCallback(externalID string, status models.MessageStatus, errorMsg *string) error
	CircuitBreakerStatus() (state CircuitBreakerState, requests, failures uint32)
}

// StatsService serves operator read APIs.
type StatsService interface {
	ChannelHealth(channelID string) (*ChannelHealthReport, error)
	GlobalStats(tenantID string) (*models.GlobalStats, error)
	ServiceHealth() *ServiceHealthStatus
}
