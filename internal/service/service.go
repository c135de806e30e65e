package service

import (
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/popeskul/clinic-channel-gateway/internal/config"
	"github.com/popeskul/clinic-channel-gateway/internal/repository"
)

// Service is the composition of all gateway services, built once at
// process start and passed by reference.
type Service struct {
	Channel    ChannelService
	Antiblock  AntiblockService
	Rotator    RotatorService
	Health     HealthService
	Alerting   AlertingService
	Reset      ResetService
	Monitor    MonitorService
	Dispatcher DispatcherService
	Stats      StatsService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	resetLocation *time.Location,
	logger *zap.Logger,
) *Service {
	channelService := NewChannelService(cfg, repo, logger)
	antiblockService := NewAntiblockService(repo, redisClient, logger)
	rotatorService := NewRotatorService(repo, antiblockService, logger)
	alertingService := NewAlertingService(repo, logger)
	healthService := NewHealthService(repo, alertingService, logger)
	resetService := NewResetService(repo, resetLocation, logger)
	monitorService := NewMonitorService(cfg, healthService, logger)
	dispatcherService := NewDispatcherService(cfg, repo, redisClient, logger)
	statsService := NewStatsService(repo, redisClient, monitorService, dispatcherService, resetService, logger)

	return &Service{
		Channel:    channelService,
		Antiblock:  antiblockService,
		Rotator:    rotatorService,
		Health:     healthService,
		Alerting:   alertingService,
		Reset:      resetService,
		Monitor:    monitorService,
		Dispatcher: dispatcherService,
		Stats:      statsService,
	}
}
