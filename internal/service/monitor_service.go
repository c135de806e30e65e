package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/clinic-channel-gateway/internal/config"
	"github.com/popeskul/clinic-channel-gateway/internal/models"
	"github.com/popeskul/clinic-channel-gateway/internal/scheduler"
)

type monitorService struct {
	sched  *scheduler.Scheduler
	health HealthService
	logger *zap.Logger
}

// NewMonitorService wraps the health calculator in a periodic scheduler.
func NewMonitorService(
	cfg *config.Config,
	health HealthService,
	logger *zap.Logger,
) MonitorService {
	interval := time.Duration(cfg.Scheduler.HealthIntervalMinutes) * time.Minute

	svc := &monitorService{
		health: health,
		logger: logger,
	}

	svc.sched = scheduler.NewScheduler(logger, "health-monitor", interval, svc.health.RecomputeAll)
	return svc
}

func (s *monitorService) Start() error {
	return s.sched.Start(context.Background())
}

func (s *monitorService) Stop() error {
	return s.sched.Stop()
}

func (s *monitorService) IsRunning() bool {
	return s.sched.IsRunning()
}

// ForceHealthCheck recomputes one channel on demand.
func (s *monitorService) ForceHealthCheck(channelID string) (*models.HealthSnapshot, error) {
	return s.health.RecomputeChannel(channelID)
}
