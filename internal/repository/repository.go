package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db              *sqlx.DB
	channel         ChannelRepository
	messageLog      MessageLogRepository
	healthHistory   HealthHistoryRepository
	alert           AlertRepository
	antiblockConfig AntiblockConfigRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:              db,
		channel:         NewChannelRepository(db),
		messageLog:      NewMessageLogRepository(db),
		healthHistory:   NewHealthHistoryRepository(db),
		alert:           NewAlertRepository(db),
		antiblockConfig: NewAntiblockConfigRepository(db),
	}
}

func (r *repositoryImpl) Channel() ChannelRepository {
	return r.channel
}

func (r *repositoryImpl) MessageLog() MessageLogRepository {
	return r.messageLog
}

func (r *repositoryImpl) HealthHistory() HealthHistoryRepository {
	return r.healthHistory
}

func (r *repositoryImpl) Alert() AlertRepository {
	return r.alert
}

func (r *repositoryImpl) AntiblockConfig() AntiblockConfigRepository {
	return r.antiblockConfig
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
