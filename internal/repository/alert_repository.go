package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
)

const alertColumns = `id, channel_id, tenant_id, alert_type, severity, message, metadata,
		resolved, resolution_note, resolved_at, created_at`

type alertRepository struct {
	db *sqlx.DB
}

func NewAlertRepository(db *sqlx.DB) AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateIfAbsent inserts the alert unless an unresolved alert of the same
// (channel, type) already exists. The INSERT ... WHERE NOT EXISTS and the
// partial unique index on unresolved rows together make the dedup check
// and the insert one atomic operation.
func (r *alertRepository) CreateIfAbsent(a *models.Alert) (bool, error) {
	query := `
		INSERT INTO alerts (id, channel_id, tenant_id, alert_type, severity, message, metadata, resolved, created_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, FALSE, $8
		WHERE NOT EXISTS (
			SELECT 1 FROM alerts
			WHERE channel_id = $2 AND alert_type = $4 AND NOT resolved
		)
	`

	a.CreatedAt = time.Now()

	res, err := r.db.Exec(query,
		a.ID, a.ChannelID, a.TenantID, a.Type, a.Severity, a.Message, a.Metadata, a.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// Lost the race against a concurrent insert; the alert is
			// already present.
			return false, nil
		}
		return false, fmt.Errorf("failed to create alert: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected == 1, nil
}

func (r *alertRepository) GetByID(id string) (*models.Alert, error) {
	query := fmt.Sprintf(`SELECT %s FROM alerts WHERE id = $1`, alertColumns)

	var a models.Alert
	err := r.db.Get(&a, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}

	return &a, nil
}

func (r *alertRepository) List(filter models.AlertFilter) ([]*models.Alert, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.TenantID != "" {
		args = append(args, filter.TenantID)
		conditions = append(conditions, fmt.Sprintf("tenant_id = $%d", len(args)))
	}
	if filter.ChannelID != "" {
		args = append(args, filter.ChannelID)
		conditions = append(conditions, fmt.Sprintf("channel_id = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("alert_type = $%d", len(args)))
	}
	if filter.Severity != "" {
		args = append(args, filter.Severity)
		conditions = append(conditions, fmt.Sprintf("severity = $%d", len(args)))
	}
	if filter.Resolved != nil {
		args = append(args, *filter.Resolved)
		conditions = append(conditions, fmt.Sprintf("resolved = $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT %s FROM alerts
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d
	`, alertColumns, strings.Join(conditions, " AND "), len(args))

	var alerts []*models.Alert
	if err := r.db.Select(&alerts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	return alerts, nil
}

// Resolve marks an alert resolved with an operator note. Resolving an
// already-resolved alert is a no-op at the row level.
func (r *alertRepository) Resolve(id, note string) error {
	query := `
		UPDATE alerts
		SET resolved = TRUE,
		    resolution_note = $2,
		    resolved_at = $3
		WHERE id = $1 AND NOT resolved
	`

	res, err := r.db.Exec(query, id, note, time.Now())
	if err != nil {
		return fmt.Errorf("failed to resolve alert: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		// Either missing or already resolved; distinguish for the caller.
		if _, getErr := r.GetByID(id); getErr != nil {
			return getErr
		}
	}

	return nil
}

func (r *alertRepository) CountUnresolved(tenantID string) (int, error) {
	query := `SELECT COUNT(*) FROM alerts WHERE tenant_id = $1 AND NOT resolved`

	var count int
	if err := r.db.Get(&count, query, tenantID); err != nil {
		return 0, fmt.Errorf("failed to count unresolved alerts: %w", err)
	}

	return count, nil
}

func (r *alertRepository) PruneResolvedBefore(cutoff time.Time) (int64, error) {
	query := `DELETE FROM alerts WHERE resolved AND resolved_at < $1`

	res, err := r.db.Exec(query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune resolved alerts: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected, nil
}
