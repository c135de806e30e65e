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

const messageLogColumns = `id, channel_id, tenant_id, patient_id, appointment_id, category,
		recipient, content, status, external_id, error, created_at, updated_at`

type messageLogRepository struct {
	db *sqlx.DB
}

func NewMessageLogRepository(db *sqlx.DB) MessageLogRepository {
	return &messageLogRepository{
		db: db,
	}
}

// Append records a new send attempt and returns its id.
func (r *messageLogRepository) Append(e *models.MessageLogEntry) (string, error) {
	query := `
		INSERT INTO message_log (id, channel_id, tenant_id, patient_id, appointment_id, category,
			recipient, content, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err := r.db.Exec(query,
		e.ID, e.ChannelID, e.TenantID, e.PatientID, e.AppointmentID, e.Category,
		e.Recipient, e.Content, e.Status, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return "", fmt.Errorf("failed to append message log entry: %w", err)
	}

	return e.ID, nil
}

func (r *messageLogRepository) GetByID(id string) (*models.MessageLogEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM message_log WHERE id = $1`, messageLogColumns)

	var e models.MessageLogEntry
	err := r.db.Get(&e, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message log entry: %w", err)
	}

	return &e, nil
}

func (r *messageLogRepository) GetByExternalID(externalID string) (*models.MessageLogEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM message_log WHERE external_id = $1`, messageLogColumns)

	var e models.MessageLogEntry
	err := r.db.Get(&e, query, externalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message log entry by external id: %w", err)
	}

	return &e, nil
}

// UpdateStatus applies a delivery-lifecycle transition. The WHERE clause
// restricts the update to valid predecessor states, so a racing callback
// can never move an entry backward or out of a terminal state.
func (r *messageLogRepository) UpdateStatus(id string, status models.MessageStatus, errorMsg *string) error {
	current, err := r.GetByID(id)
	if err != nil {
		return err
	}

	if current.Status == status {
		// Duplicate callback; already in the requested state.
		return nil
	}

	if !models.CanTransition(current.Status, status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}

	predecessors := models.AllowedPredecessors(status)
	states := make([]string, 0, len(predecessors))
	for _, p := range predecessors {
		states = append(states, string(p))
	}

	query := `
		UPDATE message_log
		SET status = $2,
		    error = $3,
		    updated_at = $4
		WHERE id = $1 AND status = ANY($5)
	`

	var errMsg sql.NullString
	if errorMsg != nil {
		errMsg = sql.NullString{String: *errorMsg, Valid: true}
	}

	res, err := r.db.Exec(query, id, status, errMsg, time.Now(), pq.Array(states))
	if err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		// The entry moved concurrently into a state this transition is
		// not valid from.
		return fmt.Errorf("%w: concurrent update on %s", ErrInvalidTransition, id)
	}

	return nil
}

// MarkSent transitions a queued entry to sent and stores the provider's
// external id in one statement.
func (r *messageLogRepository) MarkSent(id, externalID string) error {
	query := `
		UPDATE message_log
		SET status = $2,
		    external_id = $3,
		    updated_at = $4
		WHERE id = $1 AND status = $5
	`

	res, err := r.db.Exec(query, id, models.MessageStatusSent, externalID, time.Now(), models.MessageStatusQueued)
	if err != nil {
		return fmt.Errorf("failed to mark message sent: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: entry %s is not queued", ErrInvalidTransition, id)
	}

	return nil
}

func (r *messageLogRepository) GetQueued(limit int) ([]*models.MessageLogEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM message_log
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2
	`, messageLogColumns)

	var entries []*models.MessageLogEntry
	if err := r.db.Select(&entries, query, models.MessageStatusQueued, limit); err != nil {
		return nil, fmt.Errorf("failed to get queued entries: %w", err)
	}

	return entries, nil
}

func (r *messageLogRepository) CountSince(channelID string, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM message_log WHERE channel_id = $1 AND created_at >= $2`

	var count int
	if err := r.db.Get(&count, query, channelID, since); err != nil {
		return 0, fmt.Errorf("failed to count message log entries: %w", err)
	}

	return count, nil
}

// WindowStats aggregates delivery outcomes over a trailing window in a
// single query so the health score is computed from one consistent
// snapshot of the log.
func (r *messageLogRepository) WindowStats(channelID string, since time.Time) (*models.DeliveryWindowStats, error) {
	query := `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE status IN ('delivered', 'read')) AS delivered,
		       COUNT(*) FILTER (WHERE status = 'failed') AS failed
		FROM message_log
		WHERE channel_id = $1 AND created_at >= $2
	`

	var stats models.DeliveryWindowStats
	if err := r.db.Get(&stats, query, channelID, since); err != nil {
		return nil, fmt.Errorf("failed to get delivery window stats: %w", err)
	}

	return &stats, nil
}

func (r *messageLogRepository) List(filter models.MessageLogFilter) ([]*models.MessageLogEntry, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.ChannelID != "" {
		args = append(args, filter.ChannelID)
		conditions = append(conditions, fmt.Sprintf("channel_id = $%d", len(args)))
	}
	if filter.TenantID != "" {
		args = append(args, filter.TenantID)
		conditions = append(conditions, fmt.Sprintf("tenant_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if !filter.Since.IsZero() {
		args = append(args, filter.Since)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT %s FROM message_log
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d
	`, messageLogColumns, strings.Join(conditions, " AND "), len(args))

	var entries []*models.MessageLogEntry
	if err := r.db.Select(&entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list message log entries: %w", err)
	}

	return entries, nil
}
