package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
)

const channelColumns = `id, tenant_id, name, channel_type, purpose, status, health_score,
		daily_limit, messages_sent_today, is_default, endpoint_url, auth_key,
		last_send_at, last_health_check_at, last_error, created_at, updated_at`

type channelRepository struct {
	db *sqlx.DB
}

func NewChannelRepository(db *sqlx.DB) ChannelRepository {
	return &channelRepository{
		db: db,
	}
}

// Create inserts a newly provisioned channel.
func (r *channelRepository) Create(ch *models.Channel) error {
	query := `
		INSERT INTO channels (id, tenant_id, name, channel_type, purpose, status, health_score,
			daily_limit, messages_sent_today, is_default, endpoint_url, auth_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	now := time.Now()
	ch.CreatedAt = now
	ch.UpdatedAt = now

	_, err := r.db.Exec(query,
		ch.ID, ch.TenantID, ch.Name, ch.Type, ch.Purpose, ch.Status, ch.HealthScore,
		ch.DailyLimit, ch.MessagesSentToday, ch.IsDefault, ch.EndpointURL, ch.AuthKey,
		ch.CreatedAt, ch.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create channel: %w", err)
	}

	return nil
}

func (r *channelRepository) GetByID(id string) (*models.Channel, error) {
	query := fmt.Sprintf(`SELECT %s FROM channels WHERE id = $1`, channelColumns)

	var ch models.Channel
	err := r.db.Get(&ch, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	return &ch, nil
}

// ListByTenant returns a tenant's channels, optionally filtered by purpose.
func (r *channelRepository) ListByTenant(tenantID string, purpose *models.ChannelPurpose) ([]*models.Channel, error) {
	var channels []*models.Channel
	var err error

	if purpose != nil {
		query := fmt.Sprintf(`SELECT %s FROM channels WHERE tenant_id = $1 AND purpose = $2 ORDER BY created_at ASC`, channelColumns)
		err = r.db.Select(&channels, query, tenantID, *purpose)
	} else {
		query := fmt.Sprintf(`SELECT %s FROM channels WHERE tenant_id = $1 ORDER BY created_at ASC`, channelColumns)
		err = r.db.Select(&channels, query, tenantID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}

	return channels, nil
}

func (r *channelRepository) ListByStatus(status models.ChannelStatus) ([]*models.Channel, error) {
	query := fmt.Sprintf(`SELECT %s FROM channels WHERE status = $1 ORDER BY created_at ASC`, channelColumns)

	var channels []*models.Channel
	if err := r.db.Select(&channels, query, status); err != nil {
		return nil, fmt.Errorf("failed to list channels by status: %w", err)
	}

	return channels, nil
}

// UpdateStatus transitions a channel's status and stores or clears the
// last error message.
func (r *channelRepository) UpdateStatus(id string, status models.ChannelStatus, lastError *string) error {
	query := `
		UPDATE channels
		SET status = $2,
		    last_error = $3,
		    updated_at = $4
		WHERE id = $1
	`

	var errMsg sql.NullString
	if lastError != nil {
		errMsg = sql.NullString{String: *lastError, Valid: true}
	}

	res, err := r.db.Exec(query, id, status, errMsg, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update channel status: %w", err)
	}

	return requireRow(res)
}

func (r *channelRepository) UpdateHealth(id string, score int, checkedAt time.Time) error {
	query := `
		UPDATE channels
		SET health_score = $2,
		    last_health_check_at = $3,
		    updated_at = $3
		WHERE id = $1
	`

	res, err := r.db.Exec(query, id, score, checkedAt)
	if err != nil {
		return fmt.Errorf("failed to update channel health: %w", err)
	}

	return requireRow(res)
}

// IncrementDailySent is the single conditional update that closes the
// check-then-increment race: the counter only moves while the channel is
// active and still under its daily limit.
func (r *channelRepository) IncrementDailySent(id string, now time.Time) (bool, error) {
	query := `
		UPDATE channels
		SET messages_sent_today = messages_sent_today + 1,
		    last_send_at = $2,
		    updated_at = $2
		WHERE id = $1
		  AND status = 'active'
		  AND messages_sent_today < daily_limit
	`

	res, err := r.db.Exec(query, id, now)
	if err != nil {
		return false, fmt.Errorf("failed to increment daily counter: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected == 1, nil
}

// DecrementDailySent undoes a reservation made by IncrementDailySent,
// rolling last_send_at back to the value it held before the send.
func (r *channelRepository) DecrementDailySent(id string, lastSendAt sql.NullTime) error {
	query := `
		UPDATE channels
		SET messages_sent_today = GREATEST(messages_sent_today - 1, 0),
		    last_send_at = $2,
		    updated_at = $3
		WHERE id = $1
	`

	if _, err := r.db.Exec(query, id, lastSendAt, time.Now()); err != nil {
		return fmt.Errorf("failed to decrement daily counter: %w", err)
	}

	return nil
}

// ResetDailyCounters zeroes messages_sent_today for every channel and
// returns how many rows changed.
func (r *channelRepository) ResetDailyCounters() (int64, error) {
	query := `
		UPDATE channels
		SET messages_sent_today = 0,
		    updated_at = $1
		WHERE messages_sent_today <> 0
	`

	res, err := r.db.Exec(query, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to reset daily counters: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected, nil
}

// SetDefault promotes one channel to default for its (tenant, purpose)
// pair, demoting any current default in the same transaction.
func (r *channelRepository) SetDefault(id, tenantID string, purpose models.ChannelPurpose) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now()

	clearQuery := `
		UPDATE channels
		SET is_default = FALSE, updated_at = $3
		WHERE tenant_id = $1 AND purpose = $2 AND is_default
	`
	if _, err := tx.Exec(clearQuery, tenantID, purpose, now); err != nil {
		return fmt.Errorf("failed to clear default channel: %w", err)
	}

	setQuery := `
		UPDATE channels
		SET is_default = TRUE, updated_at = $4
		WHERE id = $1 AND tenant_id = $2 AND purpose = $3
	`
	res, err := tx.Exec(setQuery, id, tenantID, purpose, now)
	if err != nil {
		return fmt.Errorf("failed to set default channel: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// SetDailyLimit keeps the operative copy on the channel row in step with
// the antiblock config.
func (r *channelRepository) SetDailyLimit(id string, limit int) error {
	query := `
		UPDATE channels
		SET daily_limit = $2,
		    updated_at = $3
		WHERE id = $1
	`

	res, err := r.db.Exec(query, id, limit, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set daily limit: %w", err)
	}

	return requireRow(res)
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
