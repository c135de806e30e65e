package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/clinic-channel-gateway/internal/repository"
	"github.com/popeskul/clinic-channel-gateway/internal/scheduler"
)

const (
	alertRetention    = 30 * 24 * time.Hour
	snapshotRetention = 90 * 24 * time.Hour
)

type resetService struct {
	repo     repository.Repository
	sched    *scheduler.MidnightScheduler
	logger   *zap.Logger
}

// NewResetService builds the daily reset service. The reset runs at
// 00:00 in loc.
func NewResetService(
	repo repository.Repository,
	loc *time.Location,
	logger *zap.Logger,
) ResetService {
	svc := &resetService{
		repo:   repo,
		logger: logger,
	}

	svc.sched = scheduler.NewMidnightScheduler(logger, "daily-reset", loc, svc.runReset)
	return svc
}

func (s *resetService) Start() error {
	return s.sched.Start(context.Background())
}

func (s *resetService) Stop() error {
	return s.sched.Stop()
}

func (s *resetService) IsRunning() bool {
	return s.sched.IsRunning()
}

// ForceReset performs the three daily maintenance steps synchronously:
// zero the daily counters, drop resolved alerts past retention, drop
// health snapshots past retention.
func (s *resetService) ForceReset() error {
	return s.runReset(context.Background())
}

func (s *resetService) runReset(_ context.Context) error {
	now := time.Now()

	channels, err := s.repo.Channel().ResetDailyCounters()
	if err != nil {
		return fmt.Errorf("failed to reset daily counters: %w", err)
	}

	alerts, err := s.repo.Alert().PruneResolvedBefore(now.Add(-alertRetention))
	if err != nil {
		return fmt.Errorf("failed to prune resolved alerts: %w", err)
	}

	snapshots, err := s.repo.HealthHistory().PruneBefore(now.Add(-snapshotRetention))
	if err != nil {
		return fmt.Errorf("failed to prune health snapshots: %w", err)
	}

	s.logger.Info("Daily reset completed",
		zap.Int64("channels_reset", channels),
		zap.Int64("alerts_pruned", alerts),
		zap.Int64("snapshots_pruned", snapshots))

	return nil
}
