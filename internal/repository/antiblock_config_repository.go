package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
)

type antiblockConfigRepository struct {
	db *sqlx.DB
}

func NewAntiblockConfigRepository(db *sqlx.DB) AntiblockConfigRepository {
	return &antiblockConfigRepository{
		db: db,
	}
}

func (r *antiblockConfigRepository) Get(channelID string) (*models.AntiblockConfig, error) {
	query := `
		SELECT channel_id, daily_limit, hourly_limit, min_interval_seconds, auto_rotate, auto_pause_threshold, updated_at
		FROM antiblock_configs
		WHERE channel_id = $1
	`

	var cfg models.AntiblockConfig
	err := r.db.Get(&cfg, query, channelID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get antiblock config: %w", err)
	}

	return &cfg, nil
}

func (r *antiblockConfigRepository) Upsert(cfg *models.AntiblockConfig) error {
	query := `
		INSERT INTO antiblock_configs (channel_id, daily_limit, hourly_limit, min_interval_seconds, auto_rotate, auto_pause_threshold, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (channel_id) DO UPDATE
		SET daily_limit = EXCLUDED.daily_limit,
		    hourly_limit = EXCLUDED.hourly_limit,
		    min_interval_seconds = EXCLUDED.min_interval_seconds,
		    auto_rotate = EXCLUDED.auto_rotate,
		    auto_pause_threshold = EXCLUDED.auto_pause_threshold,
		    updated_at = EXCLUDED.updated_at
	`

	cfg.UpdatedAt = time.Now()

	_, err := r.db.Exec(query,
		cfg.ChannelID, cfg.DailyLimit, cfg.HourlyLimit, cfg.MinIntervalSeconds,
		cfg.AutoRotate, cfg.AutoPauseThreshold, cfg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert antiblock config: %w", err)
	}

	return nil
}
