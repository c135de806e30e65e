package service

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
	"github.com/popeskul/clinic-channel-gateway/internal/repository"
)

const (
	healthCriticalThreshold = 20
	healthLowThreshold      = 50
	deliveryRateThreshold   = 70.0
	limitApproachingRatio   = 0.90
)

type alertingService struct {
	repo   repository.Repository
	logger *zap.Logger
}

func NewAlertingService(repo repository.Repository, logger *zap.Logger) AlertingService {
	return &alertingService{
		repo:   repo,
		logger: logger,
	}
}

// Evaluate checks a channel's metrics against every alert threshold
// independently; a channel can trigger several alert types in one pass.
// Alert failures are logged and never abort the caller's health cycle.
func (s *alertingService) Evaluate(ch *models.Channel, metrics HealthMetrics) {
	switch {
	case metrics.Score < healthCriticalThreshold:
		s.raise(ch, models.AlertHealthCritical, models.SeverityCritical,
			fmt.Sprintf("channel health is critical: %d", metrics.Score), metrics)
	case metrics.Score < healthLowThreshold:
		s.raise(ch, models.AlertHealthLow, models.SeverityWarning,
			fmt.Sprintf("channel health is low: %d", metrics.Score), metrics)
	}

	if threshold := s.pauseThreshold(ch.ID); metrics.Score < threshold {
		s.autoPause(ch, metrics.Score, threshold)
	}

	if metrics.Total > 0 && metrics.DeliveryRate < deliveryRateThreshold {
		s.raise(ch, models.AlertLowDeliveryRate, models.SeverityWarning,
			fmt.Sprintf("delivery rate dropped to %.1f%%", metrics.DeliveryRate), metrics)
	}

	if ch.DailyLimit > 0 && float64(ch.MessagesSentToday)/float64(ch.DailyLimit) > limitApproachingRatio {
		s.raise(ch, models.AlertLimitApproaching, models.SeverityWarning,
			fmt.Sprintf("daily usage at %d of %d", ch.MessagesSentToday, ch.DailyLimit), metrics)
	}
}

func (s *alertingService) raise(ch *models.Channel, alertType models.AlertType, severity models.AlertSeverity, message string, metrics HealthMetrics) {
	metadata, err := json.Marshal(map[string]interface{}{
		"health_score":  metrics.Score,
		"window_total":  metrics.Total,
		"delivered":     metrics.Delivered,
		"failed":        metrics.Failed,
		"delivery_rate": metrics.DeliveryRate,
		"sent_today":    ch.MessagesSentToday,
		"daily_limit":   ch.DailyLimit,
	})
	if err != nil {
		s.logger.Error("Failed to marshal alert metadata", zap.Error(err))
		metadata = []byte("{}")
	}

	created, err := s.repo.Alert().CreateIfAbsent(&models.Alert{
		ID:        uuid.New().String(),
		ChannelID: ch.ID,
		TenantID:  ch.TenantID,
		Type:      alertType,
		Severity:  severity,
		Message:   message,
		Metadata:  metadata,
	})
	if err != nil {
		s.logger.Error("Failed to create alert",
			zap.String("channel_id", ch.ID),
			zap.String("alert_type", string(alertType)),
			zap.Error(err))
		return
	}

	if created {
		s.logger.Warn("Alert raised",
			zap.String("channel_id", ch.ID),
			zap.String("alert_type", string(alertType)),
			zap.String("severity", string(severity)),
			zap.String("message", message))
	}
}

// pauseThreshold returns the channel's configured auto-pause score. A
// missing or unset config falls back to the critical default.
func (s *alertingService) pauseThreshold(channelID string) int {
	cfg, err := s.repo.AntiblockConfig().Get(channelID)
	if err != nil {
		s.logger.Warn("Failed to load antiblock config for auto-pause threshold",
			zap.String("channel_id", channelID),
			zap.Error(err))
		return healthCriticalThreshold
	}
	if cfg.AutoPauseThreshold <= 0 {
		return healthCriticalThreshold
	}
	return cfg.AutoPauseThreshold
}

// autoPause forces an unhealthy channel into error status. Only explicit
// operator reactivation brings it back; the alert pipeline never
// reverses this on its own.
func (s *alertingService) autoPause(ch *models.Channel, score, threshold int) {
	if ch.Status != models.ChannelStatusActive {
		return
	}

	msg := fmt.Sprintf("auto-paused: health score %d below pause threshold %d", score, threshold)
	if err := s.repo.Channel().UpdateStatus(ch.ID, models.ChannelStatusError, &msg); err != nil {
		s.logger.Error("Failed to auto-pause channel",
			zap.String("channel_id", ch.ID),
			zap.Error(err))
		return
	}

	ch.Status = models.ChannelStatusError
	s.logger.Warn("Channel auto-paused",
		zap.String("channel_id", ch.ID),
		zap.Int("health_score", score))
}

func (s *alertingService) List(filter models.AlertFilter) ([]*models.Alert, error) {
	alerts, err := s.repo.Alert().List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

// Resolve marks an alert resolved with an operator note.
func (s *alertingService) Resolve(id, note string) error {
	if err := s.repo.Alert().Resolve(id, note); err != nil {
		return err
	}

	s.logger.Info("Alert resolved",
		zap.String("alert_id", id),
		zap.String("note", note))
	return nil
}
