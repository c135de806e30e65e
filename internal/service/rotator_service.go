package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
	"github.com/popeskul/clinic-channel-gateway/internal/repository"
)

type rotatorService struct {
	repo      repository.Repository
	antiblock AntiblockService
	logger    *zap.Logger
}

func NewRotatorService(
	repo repository.Repository,
	antiblock AntiblockService,
	logger *zap.Logger,
) RotatorService {
	return &rotatorService{
		repo:      repo,
		antiblock: antiblock,
		logger:    logger,
	}
}

// NextChannel picks the best eligible channel for a tenant and purpose:
// active, permitted to send, highest health score, ties broken toward the
// least recently used channel to spread load. Nothing eligible is a
// normal outcome signalled by ErrNoChannelAvailable; this never blocks
// or retries.
func (s *rotatorService) NextChannel(tenantID string, purpose models.ChannelPurpose) (*models.Channel, error) {
	channels, err := s.repo.Channel().ListByTenant(tenantID, &purpose)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}

	var best *models.Channel
	for _, ch := range channels {
		if ch.Status != models.ChannelStatusActive {
			continue
		}
		if !s.rotatable(ch.ID) {
			continue
		}

		decision, err := s.antiblock.CanSend(ch.ID)
		if err != nil {
			s.logger.Warn("Skipping channel, permission check failed",
				zap.String("channel_id", ch.ID),
				zap.Error(err))
			continue
		}
		if !decision.Allowed {
			continue
		}

		if best == nil || betterCandidate(ch, best) {
			best = ch
		}
	}

	if best == nil {
		return nil, ErrNoChannelAvailable
	}

	return best, nil
}

// rotatable reports whether a channel opted in to rotation. A config
// read failure keeps the channel in the pool; rotation availability
// should not hinge on a transient storage error.
func (s *rotatorService) rotatable(channelID string) bool {
	cfg, err := s.repo.AntiblockConfig().Get(channelID)
	if err != nil {
		s.logger.Warn("Failed to load antiblock config for rotation",
			zap.String("channel_id", channelID),
			zap.Error(err))
		return true
	}
	return cfg.AutoRotate
}

func betterCandidate(candidate, current *models.Channel) bool {
	if candidate.HealthScore != current.HealthScore {
		return candidate.HealthScore > current.HealthScore
	}

	// Equal health: prefer the channel idle longest. A channel that has
	// never sent counts as idle forever.
	if !candidate.LastSendAt.Valid {
		return true
	}
	if !current.LastSendAt.Valid {
		return false
	}
	return candidate.LastSendAt.Time.Before(current.LastSendAt.Time)
}
