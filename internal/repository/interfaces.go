package repository

import (
	"database/sql"
	"time"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// Channel returns the channel repository
	Channel() ChannelRepository

	// MessageLog returns the message log repository
	MessageLog() MessageLogRepository

	// HealthHistory returns the health snapshot repository
	HealthHistory() HealthHistoryRepository

	// Alert returns the alert repository
	Alert() AlertRepository

	// AntiblockConfig returns the antiblock config repository
	AntiblockConfig() AntiblockConfigRepository
}

// ChannelRepository defines operations on the channels table. The
// channel row (status, score, counters) is the primary shared mutable
// resource; every mutation goes through one of these narrow update paths.
type ChannelRepository interface {
	Create(ch *models.Channel) error
	GetByID(id string) (*models.Channel, error)
	ListByTenant(tenantID string, purpose *models.ChannelPurpose) ([]*models.Channel, error)
	ListByStatus(status models.ChannelStatus) ([]*models.Channel, error)
	UpdateStatus(id string, status models.ChannelStatus, lastError *string) error
	UpdateHealth(id string, score int, checkedAt time.Time) error

	// IncrementDailySent atomically bumps the daily counter and stamps
	// last_send_at, but only while the channel is active and under its
	// daily limit. Returns false when the guard did not pass.
	IncrementDailySent(id string, now time.Time) (bool, error)

	// DecrementDailySent compensates a granted increment whose send
	// could not be recorded, restoring the prior last_send_at.
	DecrementDailySent(id string, lastSendAt sql.NullTime) error

	ResetDailyCounters() (int64, error)
	SetDefault(id, tenantID string, purpose models.ChannelPurpose) error
	SetDailyLimit(id string, limit int) error
}

// MessageLogRepository defines operations on the append-only message log.
type MessageLogRepository interface {
	Append(e *models.MessageLogEntry) (string, error)
	GetByID(id string) (*models.MessageLogEntry, error)
	GetByExternalID(externalID string) (*models.MessageLogEntry, error)

	// UpdateStatus applies a delivery-lifecycle transition. Repeating
	// the current status is a silent no-op; transitions out of a
	// terminal state or backward return ErrInvalidTransition.
	UpdateStatus(id string, status models.MessageStatus, errorMsg *string) error

	// MarkSent transitions a queued entry to sent and records the
	// provider-assigned external id.
	MarkSent(id, externalID string) error

	GetQueued(limit int) ([]*models.MessageLogEntry, error)
	CountSince(channelID string, since time.Time) (int, error)

	// WindowStats aggregates total/delivered/failed for a channel since
	// the given instant in a single query.
	WindowStats(channelID string, since time.Time) (*models.DeliveryWindowStats, error)

	List(filter models.MessageLogFilter) ([]*models.MessageLogEntry, error)
}

// HealthHistoryRepository defines operations on health snapshots.
type HealthHistoryRepository interface {
	Append(s *models.HealthSnapshot) error
	ListByChannel(channelID string, since time.Time) ([]*models.HealthSnapshot, error)
	PruneBefore(cutoff time.Time) (int64, error)
}

// AlertRepository defines operations on operational alerts.
type AlertRepository interface {
	// CreateIfAbsent inserts the alert unless an unresolved alert of the
	// same (channel, type) already exists. Returns whether a row was
	// inserted.
	CreateIfAbsent(a *models.Alert) (bool, error)

	GetByID(id string) (*models.Alert, error)
	List(filter models.AlertFilter) ([]*models.Alert, error)
	Resolve(id, note string) error
	CountUnresolved(tenantID string) (int, error)
	PruneResolvedBefore(cutoff time.Time) (int64, error)
}

// AntiblockConfigRepository defines operations on per-channel policies.
type AntiblockConfigRepository interface {
	Get(channelID string) (*models.AntiblockConfig, error)
	Upsert(cfg *models.AntiblockConfig) error
}
