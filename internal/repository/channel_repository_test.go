package repository_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
	"github.com/popeskul/clinic-channel-gateway/internal/repository"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = mockDB.Close()
	})

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestChannelRepository_IncrementDailySent_Granted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewChannelRepository(db)

	mock.ExpectExec("UPDATE channels").
		WithArgs("ch-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	granted, err := repo.IncrementDailySent("ch-1", time.Now())
	require.NoError(t, err)
	assert.True(t, granted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChannelRepository_IncrementDailySent_GuardRefuses(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewChannelRepository(db)

	// No row matches when the channel is paused or at its daily limit.
	mock.ExpectExec("UPDATE channels").
		WithArgs("ch-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	granted, err := repo.IncrementDailySent("ch-1", time.Now())
	require.NoError(t, err)
	assert.False(t, granted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChannelRepository_DecrementDailySent_RestoresLastSendAt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewChannelRepository(db)

	prior := sql.NullTime{Time: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC), Valid: true}

	mock.ExpectExec("UPDATE channels").
		WithArgs("ch-1", prior, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DecrementDailySent("ch-1", prior))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChannelRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewChannelRepository(db)

	mock.ExpectExec("UPDATE channels").
		WithArgs("missing", models.ChannelStatusInactive, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus("missing", models.ChannelStatusInactive, nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChannelRepository_ResetDailyCounters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewChannelRepository(db)

	mock.ExpectExec("UPDATE channels").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 7))

	affected, err := repo.ResetDailyCounters()
	require.NoError(t, err)
	assert.Equal(t, int64(7), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChannelRepository_SetDefault_ClearsThenSets(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewChannelRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE channels").
		WithArgs("tenant-1", models.PurposeReminders, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE channels").
		WithArgs("ch-1", "tenant-1", models.PurposeReminders, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SetDefault("ch-1", "tenant-1", models.PurposeReminders)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChannelRepository_SetDefault_MissingChannelRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewChannelRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE channels").
		WithArgs("tenant-1", models.PurposeReminders, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE channels").
		WithArgs("missing", "tenant-1", models.PurposeReminders, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.SetDefault("missing", "tenant-1", models.PurposeReminders)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChannelRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewChannelRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM channels").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID("missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
