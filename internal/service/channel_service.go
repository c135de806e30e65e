package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/popeskul/clinic-channel-gateway/internal/config"
	"github.com/popeskul/clinic-channel-gateway/internal/models"
	"github.com/popeskul/clinic-channel-gateway/internal/repository"
)

type channelService struct {
	cfg    *config.Config
	repo   repository.Repository
	logger *zap.Logger
}

func NewChannelService(
	cfg *config.Config,
	repo repository.Repository,
	logger *zap.Logger,
) ChannelService {
	return &channelService{
		cfg:    cfg,
		repo:   repo,
		logger: logger,
	}
}

// Create provisions a channel with its antiblock policy. Missing policy
// values fall back to the configured defaults.
func (s *channelService) Create(input CreateChannelInput) (*models.Channel, error) {
	if input.TenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id is required", ErrInvalidConfig)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	if !models.ValidChannelType(input.Type) {
		return nil, fmt.Errorf("%w: unknown channel type %q", ErrInvalidConfig, input.Type)
	}
	if !models.ValidChannelPurpose(input.Purpose) {
		return nil, fmt.Errorf("%w: unknown purpose %q", ErrInvalidConfig, input.Purpose)
	}
	if input.EndpointURL == "" {
		return nil, fmt.Errorf("%w: endpoint_url is required", ErrInvalidConfig)
	}

	abcfg := &models.AntiblockConfig{
		DailyLimit:         s.cfg.Antiblock.DailyLimit,
		HourlyLimit:        s.cfg.Antiblock.HourlyLimit,
		MinIntervalSeconds: s.cfg.Antiblock.MinIntervalSeconds,
		AutoRotate:         true,
		AutoPauseThreshold: s.cfg.Antiblock.AutoPauseThreshold,
	}
	if input.DailyLimit != nil {
		abcfg.DailyLimit = *input.DailyLimit
	}
	if input.HourlyLimit != nil {
		abcfg.HourlyLimit = *input.HourlyLimit
	}
	if input.MinIntervalSeconds != nil {
		abcfg.MinIntervalSeconds = *input.MinIntervalSeconds
	}
	if input.AutoPauseThreshold != nil {
		abcfg.AutoPauseThreshold = *input.AutoPauseThreshold
	}

	if err := abcfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	ch := &models.Channel{
		ID:          uuid.New().String(),
		TenantID:    input.TenantID,
		Name:        input.Name,
		Type:        input.Type,
		Purpose:     input.Purpose,
		Status:      models.ChannelStatusConnecting,
		HealthScore: 100,
		DailyLimit:  abcfg.DailyLimit,
		EndpointURL: input.EndpointURL,
	}
	if input.AuthKey != "" {
		ch.AuthKey.String = input.AuthKey
		ch.AuthKey.Valid = true
	}

	if err := s.repo.Channel().Create(ch); err != nil {
		return nil, err
	}

	abcfg.ChannelID = ch.ID
	if err := s.repo.AntiblockConfig().Upsert(abcfg); err != nil {
		return nil, fmt.Errorf("channel created but policy write failed: %w", err)
	}

	if input.IsDefault {
		if err := s.repo.Channel().SetDefault(ch.ID, ch.TenantID, ch.Purpose); err != nil {
			return nil, fmt.Errorf("channel created but default promotion failed: %w", err)
		}
		ch.IsDefault = true
	}

	s.logger.Info("Channel provisioned",
		zap.String("channel_id", ch.ID),
		zap.String("tenant_id", ch.TenantID),
		zap.String("type", string(ch.Type)),
		zap.String("purpose", string(ch.Purpose)))

	return ch, nil
}

func (s *channelService) Get(id string) (*models.Channel, error) {
	ch, err := s.repo.Channel().GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrChannelNotFound
	}
	return ch, err
}

func (s *channelService) List(tenantID string, purpose *models.ChannelPurpose) ([]*models.Channel, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id is required", ErrInvalidConfig)
	}
	return s.repo.Channel().ListByTenant(tenantID, purpose)
}

// Deactivate is the soft delete: the row stays for the message log's
// referential history, only the status moves.
func (s *channelService) Deactivate(id string) error {
	err := s.repo.Channel().UpdateStatus(id, models.ChannelStatusInactive, nil)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrChannelNotFound
	}
	if err != nil {
		return err
	}

	s.logger.Info("Channel deactivated", zap.String("channel_id", id))
	return nil
}

// Reactivate restores a channel to active and clears its stored error.
// This is the only path out of an auto-pause.
func (s *channelService) Reactivate(id string) error {
	err := s.repo.Channel().UpdateStatus(id, models.ChannelStatusActive, nil)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrChannelNotFound
	}
	if err != nil {
		return err
	}

	s.logger.Info("Channel reactivated", zap.String("channel_id", id))
	return nil
}

func (s *channelService) SetDefault(id, tenantID string, purpose models.ChannelPurpose) error {
	if !models.ValidChannelPurpose(purpose) {
		return fmt.Errorf("%w: unknown purpose %q", ErrInvalidConfig, purpose)
	}

	err := s.repo.Channel().SetDefault(id, tenantID, purpose)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrChannelNotFound
	}
	return err
}

func (s *channelService) GetAntiblockConfig(channelID string) (*models.AntiblockConfig, error) {
	cfg, err := s.repo.AntiblockConfig().Get(channelID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrChannelNotFound
	}
	return cfg, err
}

// UpdateAntiblockConfig applies a partial policy update and keeps the
// channel row's operative daily limit in step.
func (s *channelService) UpdateAntiblockConfig(channelID string, patch AntiblockConfigPatch) (*models.AntiblockConfig, error) {
	cfg, err := s.GetAntiblockConfig(channelID)
	if err != nil {
		return nil, err
	}

	if patch.DailyLimit != nil {
		cfg.DailyLimit = *patch.DailyLimit
	}
	if patch.HourlyLimit != nil {
		cfg.HourlyLimit = *patch.HourlyLimit
	}
	if patch.MinIntervalSeconds != nil {
		cfg.MinIntervalSeconds = *patch.MinIntervalSeconds
	}
	if patch.AutoRotate != nil {
		cfg.AutoRotate = *patch.AutoRotate
	}
	if patch.AutoPauseThreshold != nil {
		cfg.AutoPauseThreshold = *patch.AutoPauseThreshold
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := s.repo.AntiblockConfig().Upsert(cfg); err != nil {
		return nil, err
	}

	if err := s.repo.Channel().SetDailyLimit(channelID, cfg.DailyLimit); err != nil {
		return nil, fmt.Errorf("policy updated but channel limit sync failed: %w", err)
	}

	s.logger.Info("Antiblock config updated",
		zap.String("channel_id", channelID),
		zap.Int("daily_limit", cfg.DailyLimit),
		zap.Int("hourly_limit", cfg.HourlyLimit),
		zap.Int("min_interval_seconds", cfg.MinIntervalSeconds))

	return cfg, nil
}
