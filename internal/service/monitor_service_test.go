package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/popeskul/clinic-channel-gateway/internal/config"
	"github.com/popeskul/clinic-channel-gateway/internal/models"
	"github.com/popeskul/clinic-channel-gateway/internal/service"
	servicemocks "github.com/popeskul/clinic-channel-gateway/internal/service/mocks"
)

func newMonitorService(t *testing.T) (*servicemocks.MockHealthService, service.MonitorService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	health := servicemocks.NewMockHealthService(ctrl)
	cfg := &config.Config{
		Scheduler: config.SchedulerConfig{HealthIntervalMinutes: 5},
	}

	return health, service.NewMonitorService(cfg, health, zap.NewNop())
}

func TestMonitorService_ForceHealthCheck(t *testing.T) {
	health, svc := newMonitorService(t)

	snapshot := &models.HealthSnapshot{ChannelID: "ch-1", HealthScore: 88}
	health.EXPECT().RecomputeChannel("ch-1").Return(snapshot, nil)

	got, err := svc.ForceHealthCheck("ch-1")
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
}

func TestMonitorService_ForceHealthCheck_NotFound(t *testing.T) {
	health, svc := newMonitorService(t)

	health.EXPECT().RecomputeChannel("missing").Return(nil, service.ErrChannelNotFound)

	_, err := svc.ForceHealthCheck("missing")
	assert.ErrorIs(t, err, service.ErrChannelNotFound)
}

func TestMonitorService_Lifecycle(t *testing.T) {
	health, svc := newMonitorService(t)

	done := make(chan struct{})
	health.EXPECT().RecomputeAll(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(done)
		return nil
	})

	assert.False(t, svc.IsRunning())
	require.NoError(t, svc.Start())
	assert.True(t, svc.IsRunning())

	// The first pass runs immediately on start.
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("health pass did not run")
	}

	require.NoError(t, svc.Stop())
	assert.False(t, svc.IsRunning())
}
