package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
	"github.com/popeskul/clinic-channel-gateway/internal/repository"
)

const statsCacheTTL = 30 * time.Second

type statsService struct {
	repo        repository.Repository
	redisClient *redis.Client
	monitor     MonitorService
	dispatcher  DispatcherService
	reset       ResetService
	logger      *zap.Logger
}

func NewStatsService(
	repo repository.Repository,
	redisClient *redis.Client,
	monitor MonitorService,
	dispatcher DispatcherService,
	reset ResetService,
	logger *zap.Logger,
) StatsService {
	return &statsService{
		repo:        repo,
		redisClient: redisClient,
		monitor:     monitor,
		dispatcher:  dispatcher,
		reset:       reset,
		logger:      logger,
	}
}

// ChannelHealth returns a channel's current score with its trailing 24h
// of snapshots.
func (s *statsService) ChannelHealth(channelID string) (*ChannelHealthReport, error) {
	ch, err := s.repo.Channel().GetByID(channelID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrChannelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load channel: %w", err)
	}

	history, err := s.repo.HealthHistory().ListByChannel(channelID, time.Now().Add(-24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to load health history: %w", err)
	}

	report := &ChannelHealthReport{
		ChannelID:         ch.ID,
		Status:            ch.Status,
		HealthScore:       ch.HealthScore,
		MessagesSentToday: ch.MessagesSentToday,
		DailyLimit:        ch.DailyLimit,
		History:           history,
	}
	if ch.LastHealthCheckAt.Valid {
		t := ch.LastHealthCheckAt.Time
		report.LastHealthCheckAt = &t
	}
	if ch.LastError.Valid {
		report.LastError = ch.LastError.String
	}

	return report, nil
}

// GlobalStats summarizes a tenant's fleet. Results are cached briefly in
// Redis since dashboards poll this.
func (s *statsService) GlobalStats(tenantID string) (*models.GlobalStats, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id is required", ErrInvalidConfig)
	}

	cacheKey := fmt.Sprintf("stats:global:%s", tenantID)

	ctx := context.Background()
	if cached, err := s.redisClient.Get(ctx, cacheKey).Bytes(); err == nil {
		var stats models.GlobalStats
		if unmarshalErr := json.Unmarshal(cached, &stats); unmarshalErr == nil {
			return &stats, nil
		}
	}

	channels, err := s.repo.Channel().ListByTenant(tenantID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}

	now := time.Now()
	stats := &models.GlobalStats{
		TenantID:    tenantID,
		GeneratedAt: now,
	}

	var total, delivered int
	for _, ch := range channels {
		stats.TotalChannels++
		switch ch.Status {
		case models.ChannelStatusActive:
			stats.ActiveChannels++
		case models.ChannelStatusError:
			stats.ErrorChannels++
		}
		stats.MessagesSentToday += ch.MessagesSentToday

		window, err := s.repo.MessageLog().WindowStats(ch.ID, now.Add(-24*time.Hour))
		if err != nil {
			s.logger.Warn("Failed to read delivery window for stats",
				zap.String("channel_id", ch.ID),
				zap.Error(err))
			continue
		}
		total += window.Total
		delivered += window.Delivered
	}

	if total > 0 {
		stats.DeliveryRate24h = float64(delivered) / float64(total) * 100
	} else {
		stats.DeliveryRate24h = 100
	}

	unresolved, err := s.repo.Alert().CountUnresolved(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unresolved alerts: %w", err)
	}
	stats.UnresolvedAlerts = unresolved

	if payload, err := json.Marshal(stats); err == nil {
		if cacheErr := s.redisClient.Set(ctx, cacheKey, payload, statsCacheTTL).Err(); cacheErr != nil {
			s.logger.Warn("Failed to cache global stats", zap.Error(cacheErr))
		}
	}

	return stats, nil
}

// ServiceHealth reports the gateway's own operational state.
func (s *statsService) ServiceHealth() *ServiceHealthStatus {
	status := &ServiceHealthStatus{
		Status:            "healthy",
		Database:          ComponentUp,
		Redis:             ComponentUp,
		MonitorRunning:    s.monitor.IsRunning(),
		DispatcherRunning: s.dispatcher.IsRunning(),
		ResetRunning:      s.reset.IsRunning(),
	}

	if err := s.repo.Ping(); err != nil {
		status.Database = ComponentDown
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		status.Redis = ComponentDown
	}

	state, _, _ := s.dispatcher.CircuitBreakerStatus()
	status.CircuitBreaker = state

	if status.Database == ComponentDown {
		status.Status = "unhealthy"
	} else if status.Redis == ComponentDown || state == CircuitOpen {
		status.Status = "degraded"
	}

	return status
}
