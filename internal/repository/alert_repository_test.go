package repository_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
	"github.com/popeskul/clinic-channel-gateway/internal/repository"
)

func sampleAlert() *models.Alert {
	return &models.Alert{
		ID:        "alert-1",
		ChannelID: "ch-1",
		TenantID:  "tenant-1",
		Type:      models.AlertHealthLow,
		Severity:  models.SeverityWarning,
		Message:   "channel health is low: 42",
		Metadata:  []byte(`{"health_score":42}`),
	}
}

func TestAlertRepository_CreateIfAbsent_Inserts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewAlertRepository(db)

	mock.ExpectExec("INSERT INTO alerts").
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateIfAbsent(sampleAlert())
	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_CreateIfAbsent_DuplicateSuppressed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewAlertRepository(db)

	// An unresolved alert of the same (channel, type) exists already.
	mock.ExpectExec("INSERT INTO alerts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := repo.CreateIfAbsent(sampleAlert())
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_CreateIfAbsent_RaceLoserIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewAlertRepository(db)

	// Two writers pass the NOT EXISTS check together; the partial unique
	// index rejects the second insert.
	mock.ExpectExec("INSERT INTO alerts").
		WillReturnError(&pq.Error{Code: "23505"})

	created, err := repo.CreateIfAbsent(sampleAlert())
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_Resolve(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewAlertRepository(db)

	mock.ExpectExec("UPDATE alerts").
		WithArgs("alert-1", "provider outage resolved", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Resolve("alert-1", "provider outage resolved"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_Resolve_AlreadyResolvedIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewAlertRepository(db)

	now := time.Now()
	mock.ExpectExec("UPDATE alerts").
		WithArgs("alert-1", "note", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM alerts").
		WithArgs("alert-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "channel_id", "tenant_id", "alert_type", "severity", "message",
			"metadata", "resolved", "resolution_note", "resolved_at", "created_at",
		}).AddRow("alert-1", "ch-1", "tenant-1", models.AlertHealthLow, models.SeverityWarning,
			"msg", []byte("{}"), true, "earlier note", now, now))

	require.NoError(t, repo.Resolve("alert-1", "note"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_Resolve_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewAlertRepository(db)

	mock.ExpectExec("UPDATE alerts").
		WithArgs("missing", "note", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM alerts").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.Resolve("missing", "note")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_PruneResolvedBefore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewAlertRepository(db)

	mock.ExpectExec("DELETE FROM alerts").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 12))

	pruned, err := repo.PruneResolvedBefore(time.Now().Add(-30 * 24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(12), pruned)
	assert.NoError(t, mock.ExpectationsWereMet())
}
