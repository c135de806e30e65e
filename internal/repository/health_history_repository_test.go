package repository_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
	"github.com/popeskul/clinic-channel-gateway/internal/repository"
)

func TestHealthHistoryRepository_Append(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewHealthHistoryRepository(db)

	now := time.Now()
	mock.ExpectExec("INSERT INTO health_snapshots").
		WithArgs("ch-1", 88, 12, 92.5, 1, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Append(&models.HealthSnapshot{
		ChannelID:        "ch-1",
		HealthScore:      88,
		MessagesLastHour: 12,
		DeliveryRate:     92.5,
		ErrorCount:       1,
		CheckedAt:        now,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthHistoryRepository_ListByChannel(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewHealthHistoryRepository(db)

	since := time.Now().Add(-24 * time.Hour)
	rows := sqlmock.NewRows([]string{"id", "channel_id", "health_score", "messages_last_hour", "delivery_rate", "error_count", "checked_at"}).
		AddRow(2, "ch-1", 88, 12, 92.5, 1, time.Now()).
		AddRow(1, "ch-1", 80, 9, 85.0, 3, time.Now().Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM health_snapshots").
		WithArgs("ch-1", since).
		WillReturnRows(rows)

	snapshots, err := repo.ListByChannel("ch-1", since)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, 88, snapshots[0].HealthScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthHistoryRepository_PruneBefore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewHealthHistoryRepository(db)

	cutoff := time.Now().Add(-90 * 24 * time.Hour)
	mock.ExpectExec("DELETE FROM health_snapshots").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 120))

	pruned, err := repo.PruneBefore(cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(120), pruned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAntiblockConfigRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewAntiblockConfigRepository(db)

	rows := sqlmock.NewRows([]string{"channel_id", "daily_limit", "hourly_limit", "min_interval_seconds", "auto_rotate", "auto_pause_threshold", "updated_at"}).
		AddRow("ch-1", 200, 30, 45, true, 20, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM antiblock_configs").
		WithArgs("ch-1").
		WillReturnRows(rows)

	cfg, err := repo.Get("ch-1")
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.DailyLimit)
	assert.True(t, cfg.AutoRotate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAntiblockConfigRepository_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewAntiblockConfigRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM antiblock_configs").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"channel_id"}))

	_, err := repo.Get("missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAntiblockConfigRepository_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewAntiblockConfigRepository(db)

	mock.ExpectExec("INSERT INTO antiblock_configs").
		WithArgs("ch-1", 100, 15, 60, true, 25, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(&models.AntiblockConfig{
		ChannelID:          "ch-1",
		DailyLimit:         100,
		HourlyLimit:        15,
		MinIntervalSeconds: 60,
		AutoRotate:         true,
		AutoPauseThreshold: 25,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
