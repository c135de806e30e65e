package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
	"github.com/popeskul/clinic-channel-gateway/internal/repository"
)

const hourlyWindowTTL = 2 * time.Hour

type antiblockService struct {
	repo        repository.Repository
	redisClient *redis.Client
	locks       *keyedMutex
	logger      *zap.Logger
}

func NewAntiblockService(
	repo repository.Repository,
	redisClient *redis.Client,
	logger *zap.Logger,
) AntiblockService {
	return &antiblockService{
		repo:        repo,
		redisClient: redisClient,
		locks:       newKeyedMutex(),
		logger:      logger,
	}
}

// CanSend evaluates the send-permission decision chain for a channel.
// The first matching deny reason wins: inactive status, daily cap,
// hourly cap, minimum interval.
func (s *antiblockService) CanSend(channelID string) (*models.SendDecision, error) {
	ch, err := s.repo.Channel().GetByID(channelID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrChannelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load channel: %w", err)
	}

	cfg, err := s.repo.AntiblockConfig().Get(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load antiblock config: %w", err)
	}

	return s.evaluate(ch, cfg, time.Now()), nil
}

func (s *antiblockService) evaluate(ch *models.Channel, cfg *models.AntiblockConfig, now time.Time) *models.SendDecision {
	if ch.Status != models.ChannelStatusActive {
		return &models.SendDecision{Allowed: false, Reason: models.DenyChannelInactive}
	}

	if ch.MessagesSentToday >= ch.DailyLimit {
		return &models.SendDecision{Allowed: false, Reason: models.DenyDailyLimitExceeded}
	}

	if s.hourlySent(ch.ID, now) >= cfg.HourlyLimit {
		return &models.SendDecision{Allowed: false, Reason: models.DenyHourlyLimit}
	}

	if ch.LastSendAt.Valid && now.Sub(ch.LastSendAt.Time) < cfg.MinInterval() {
		return &models.SendDecision{Allowed: false, Reason: models.DenyIntervalTooShort}
	}

	return &models.SendDecision{Allowed: true}
}

// RecordSend grants permission, increments the daily counter, and appends
// a queued log entry as one unit. A per-channel lock serializes the
// sequence in-process; the daily cap itself is enforced by a conditional
// update at the storage layer, so concurrent processes cannot overshoot
// it either.
func (s *antiblockService) RecordSend(channelID string, req SendRequest) (string, error) {
	if !models.ValidMessageCategory(req.Category) {
		return "", fmt.Errorf("%w: unknown message category %q", ErrInvalidConfig, req.Category)
	}
	if req.Recipient == "" {
		return "", fmt.Errorf("%w: recipient is required", ErrInvalidConfig)
	}

	unlock := s.locks.Lock(channelID)
	defer unlock()

	ch, err := s.repo.Channel().GetByID(channelID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrChannelNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load channel: %w", err)
	}

	cfg, err := s.repo.AntiblockConfig().Get(channelID)
	if err != nil {
		return "", fmt.Errorf("failed to load antiblock config: %w", err)
	}

	now := time.Now()

	if decision := s.evaluate(ch, cfg, now); !decision.Allowed {
		if decision.Reason == models.DenyChannelInactive {
			return "", ErrChannelUnavailable
		}
		return "", &RateLimitError{Reason: decision.Reason}
	}

	// Reserve an hourly slot before touching the daily counter; the
	// window update runs as one MULTI/EXEC, so over-limit reservations
	// are handed back atomically across processes.
	slot, reserved := s.reserveHourlySlot(ch.ID, cfg.HourlyLimit, now)
	if !reserved {
		return "", &RateLimitError{Reason: models.DenyHourlyLimit}
	}

	granted, err := s.repo.Channel().IncrementDailySent(channelID, now)
	if err != nil {
		s.releaseHourlySlot(ch.ID, slot)
		return "", fmt.Errorf("failed to increment daily counter: %w", err)
	}
	if !granted {
		s.releaseHourlySlot(ch.ID, slot)
		// The guard refused: either another sender took the last slot or
		// the channel was paused since we read it.
		current, readErr := s.repo.Channel().GetByID(channelID)
		if readErr == nil && current.Status != models.ChannelStatusActive {
			return "", ErrChannelUnavailable
		}
		return "", &RateLimitError{Reason: models.DenyDailyLimitExceeded}
	}

	entry := &models.MessageLogEntry{
		ID:        uuid.New().String(),
		ChannelID: channelID,
		TenantID:  req.TenantID,
		Category:  req.Category,
		Recipient: req.Recipient,
		Content:   req.Content,
		Status:    models.MessageStatusQueued,
	}
	if req.PatientID != "" {
		entry.PatientID.String = req.PatientID
		entry.PatientID.Valid = true
	}
	if req.AppointmentID != "" {
		entry.AppointmentID.String = req.AppointmentID
		entry.AppointmentID.Valid = true
	}

	id, err := s.repo.MessageLog().Append(entry)
	if err != nil {
		// Hand both reservations back so a storage hiccup does not eat
		// send budget. ch still carries the pre-increment last_send_at,
		// so the next caller is not charged an interval wait for a send
		// that never happened.
		if decErr := s.repo.Channel().DecrementDailySent(channelID, ch.LastSendAt); decErr != nil {
			s.logger.Error("Failed to compensate daily counter",
				zap.String("channel_id", channelID),
				zap.Error(decErr))
		}
		s.releaseHourlySlot(ch.ID, slot)
		return "", fmt.Errorf("failed to append message log entry: %w", err)
	}

	s.logger.Info("Send recorded",
		zap.String("channel_id", channelID),
		zap.String("entry_id", id),
		zap.String("category", string(req.Category)))

	return id, nil
}

// The hourly window is a Redis sorted set per channel: one member per
// send, scored by send time in milliseconds. Trimming everything older
// than an hour before counting gives a trailing window, so a burst just
// before a clock-hour boundary cannot be followed by another full burst
// just after it.
func hourlyWindowKey(channelID string) string {
	return fmt.Sprintf("antiblock:hourly:%s", channelID)
}

func hourlyWindowCutoff(now time.Time) string {
	return strconv.FormatInt(now.Add(-time.Hour).UnixMilli(), 10)
}

// hourlySent counts sends in the trailing hour. When Redis is down the
// message log is counted instead; slower, but the decision stays correct.
func (s *antiblockService) hourlySent(channelID string, now time.Time) int {
	ctx := context.Background()
	key := hourlyWindowKey(channelID)

	pipe := s.redisClient.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", hourlyWindowCutoff(now))
	card := pipe.ZCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("Redis unavailable for hourly window, falling back to log count",
			zap.String("channel_id", channelID),
			zap.Error(err))
		count, dbErr := s.repo.MessageLog().CountSince(channelID, now.Add(-time.Hour))
		if dbErr != nil {
			s.logger.Error("Fallback hourly count failed",
				zap.String("channel_id", channelID),
				zap.Error(dbErr))
			return 0
		}
		return count
	}

	return int(card.Val())
}

// reserveHourlySlot adds a member to the channel's window and checks the
// resulting size in one MULTI/EXEC. Racing reservations at the cap each
// see an over-limit count and remove their own member, so the window
// never admits more than hourlyLimit sends.
func (s *antiblockService) reserveHourlySlot(channelID string, hourlyLimit int, now time.Time) (string, bool) {
	ctx := context.Background()
	key := hourlyWindowKey(channelID)
	member := uuid.New().String()

	pipe := s.redisClient.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", hourlyWindowCutoff(now))
	pipe.ZAdd(ctx, key, &redis.Z{Score: float64(now.UnixMilli()), Member: member})
	card := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, hourlyWindowTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		// Redis is down; the per-channel lock plus the log-count check in
		// evaluate already gated this send, so proceed without a
		// reservation.
		s.logger.Warn("Redis unavailable for hourly reservation",
			zap.String("channel_id", channelID),
			zap.Error(err))
		return "", true
	}

	if int(card.Val()) > hourlyLimit {
		s.releaseHourlySlot(channelID, member)
		return "", false
	}

	return member, true
}

func (s *antiblockService) releaseHourlySlot(channelID, member string) {
	if member == "" {
		return
	}
	if err := s.redisClient.ZRem(context.Background(), hourlyWindowKey(channelID), member).Err(); err != nil {
		s.logger.Warn("Failed to release hourly slot",
			zap.String("channel_id", channelID),
			zap.Error(err))
	}
}
