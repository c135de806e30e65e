package repository

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
)

type healthHistoryRepository struct {
	db *sqlx.DB
}

func NewHealthHistoryRepository(db *sqlx.DB) HealthHistoryRepository {
	return &healthHistoryRepository{
		db: db,
	}
}

// Append records an immutable snapshot of a channel's computed health.
func (r *healthHistoryRepository) Append(s *models.HealthSnapshot) error {
	query := `
		INSERT INTO health_snapshots (channel_id, health_score, messages_last_hour, delivery_rate, error_count, checked_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(query,
		s.ChannelID, s.HealthScore, s.MessagesLastHour, s.DeliveryRate, s.ErrorCount, s.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to append health snapshot: %w", err)
	}

	return nil
}

func (r *healthHistoryRepository) ListByChannel(channelID string, since time.Time) ([]*models.HealthSnapshot, error) {
	query := `
		SELECT id, channel_id, health_score, messages_last_hour, delivery_rate, error_count, checked_at
		FROM health_snapshots
		WHERE channel_id = $1 AND checked_at >= $2
		ORDER BY checked_at DESC
	`

	var snapshots []*models.HealthSnapshot
	if err := r.db.Select(&snapshots, query, channelID, since); err != nil {
		return nil, fmt.Errorf("failed to list health snapshots: %w", err)
	}

	return snapshots, nil
}

func (r *healthHistoryRepository) PruneBefore(cutoff time.Time) (int64, error) {
	query := `DELETE FROM health_snapshots WHERE checked_at < $1`

	res, err := r.db.Exec(query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune health snapshots: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected, nil
}
