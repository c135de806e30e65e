package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
	"github.com/popeskul/clinic-channel-gateway/internal/repository"
)

const healthWindow = 24 * time.Hour

type healthService struct {
	repo     repository.Repository
	alerting AlertingService
	logger   *zap.Logger
}

func NewHealthService(
	repo repository.Repository,
	alerting AlertingService,
	logger *zap.Logger,
) HealthService {
	return &healthService{
		repo:     repo,
		alerting: alerting,
		logger:   logger,
	}
}

// computeScore derives a 0-100 health score from a trailing window of
// delivery outcomes. An empty window means no signal, which is treated
// as healthy.
func computeScore(stats *models.DeliveryWindowStats) (score int, deliveryRate float64) {
	if stats.Total == 0 {
		return 100, 100
	}

	deliveryRate = float64(stats.Delivered) / float64(stats.Total) * 100
	failureRate := float64(stats.Failed) / float64(stats.Total) * 100

	s := 100.0
	if deliveryRate < 90 {
		s -= (90 - deliveryRate) * 2
	}
	s -= failureRate * 3

	if s < 0 {
		s = 0
	}
	if s > 100 {
		s = 100
	}

	return int(math.Round(s)), deliveryRate
}

// RecomputeChannel scores a channel from the trailing 24h of its message
// log, persists the score, appends a history snapshot, and hands the
// metrics to alerting.
func (s *healthService) RecomputeChannel(channelID string) (*models.HealthSnapshot, error) {
	ch, err := s.repo.Channel().GetByID(channelID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrChannelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load channel: %w", err)
	}

	now := time.Now()

	// One aggregate query; the score never mixes two views of the log.
	stats, err := s.repo.MessageLog().WindowStats(channelID, now.Add(-healthWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to read delivery window: %w", err)
	}

	score, deliveryRate := computeScore(stats)

	lastHour, err := s.repo.MessageLog().CountSince(channelID, now.Add(-time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to count last hour: %w", err)
	}

	if err := s.repo.Channel().UpdateHealth(channelID, score, now); err != nil {
		return nil, fmt.Errorf("failed to persist health score: %w", err)
	}

	snapshot := &models.HealthSnapshot{
		ChannelID:        channelID,
		HealthScore:      score,
		MessagesLastHour: lastHour,
		DeliveryRate:     deliveryRate,
		ErrorCount:       stats.Failed,
		CheckedAt:        now,
	}

	if err := s.repo.HealthHistory().Append(snapshot); err != nil {
		return nil, fmt.Errorf("failed to append health snapshot: %w", err)
	}

	ch.HealthScore = score
	s.alerting.Evaluate(ch, HealthMetrics{
		Score:        score,
		Total:        stats.Total,
		Delivered:    stats.Delivered,
		Failed:       stats.Failed,
		DeliveryRate: deliveryRate,
	})

	s.logger.Debug("Channel health recomputed",
		zap.String("channel_id", channelID),
		zap.Int("score", score),
		zap.Int("window_total", stats.Total),
		zap.Float64("delivery_rate", deliveryRate))

	return snapshot, nil
}

// RecomputeAll scores every active channel. One channel's failure is
// logged and never blocks recomputation for the rest.
func (s *healthService) RecomputeAll(ctx context.Context) error {
	channels, err := s.repo.Channel().ListByStatus(models.ChannelStatusActive)
	if err != nil {
		return fmt.Errorf("failed to list active channels: %w", err)
	}

	for _, ch := range channels {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := s.RecomputeChannel(ch.ID); err != nil {
			s.logger.Error("Health recomputation failed for channel",
				zap.String("channel_id", ch.ID),
				zap.Error(err))
		}
	}

	return nil
}
