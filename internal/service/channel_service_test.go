package service_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/popeskul/clinic-channel-gateway/internal/config"
	"github.com/popeskul/clinic-channel-gateway/internal/models"
	"github.com/popeskul/clinic-channel-gateway/internal/repository"
	"github.com/popeskul/clinic-channel-gateway/internal/repository/mocks"
	"github.com/popeskul/clinic-channel-gateway/internal/service"
)

type channelFixture struct {
	channels *mocks.MockChannelRepository
	configs  *mocks.MockAntiblockConfigRepository
	svc      service.ChannelService
}

func newChannelFixture(t *testing.T) *channelFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &channelFixture{
		channels: mocks.NewMockChannelRepository(ctrl),
		configs:  mocks.NewMockAntiblockConfigRepository(ctrl),
	}

	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().Channel().Return(f.channels).AnyTimes()
	repo.EXPECT().AntiblockConfig().Return(f.configs).AnyTimes()

	cfg := &config.Config{
		Antiblock: config.AntiblockConfig{
			DailyLimit:         200,
			HourlyLimit:        30,
			MinIntervalSeconds: 45,
			AutoPauseThreshold: 20,
		},
	}

	f.svc = service.NewChannelService(cfg, repo, zap.NewNop())
	return f
}

func validCreateInput() service.CreateChannelInput {
	return service.CreateChannelInput{
		TenantID:    "tenant-1",
		Name:        "Main WhatsApp",
		Type:        models.ChannelTypeWhatsApp,
		Purpose:     models.PurposeReminders,
		EndpointURL: "https://provider.example.com/send",
		AuthKey:     "secret-key",
	}
}

func TestChannelService_Create(t *testing.T) {
	f := newChannelFixture(t)

	var created *models.Channel
	f.channels.EXPECT().Create(gomock.Any()).DoAndReturn(func(ch *models.Channel) error {
		created = ch
		return nil
	})
	f.configs.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(cfg *models.AntiblockConfig) error {
		assert.Equal(t, created.ID, cfg.ChannelID)
		assert.Equal(t, 200, cfg.DailyLimit)
		assert.Equal(t, 30, cfg.HourlyLimit)
		assert.Equal(t, 45, cfg.MinIntervalSeconds)
		assert.True(t, cfg.AutoRotate)
		return nil
	})

	ch, err := f.svc.Create(validCreateInput())
	require.NoError(t, err)

	_, err = uuid.Parse(ch.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.ChannelStatusConnecting, ch.Status)
	assert.Equal(t, 100, ch.HealthScore)
	assert.Equal(t, 200, ch.DailyLimit)
	assert.True(t, ch.AuthKey.Valid)
	assert.False(t, ch.IsDefault)
}

func TestChannelService_Create_PolicyOverrides(t *testing.T) {
	f := newChannelFixture(t)

	daily := 50
	hourly := 10
	interval := 120

	f.channels.EXPECT().Create(gomock.Any()).Return(nil)
	f.configs.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(cfg *models.AntiblockConfig) error {
		assert.Equal(t, 50, cfg.DailyLimit)
		assert.Equal(t, 10, cfg.HourlyLimit)
		assert.Equal(t, 120, cfg.MinIntervalSeconds)
		return nil
	})

	input := validCreateInput()
	input.DailyLimit = &daily
	input.HourlyLimit = &hourly
	input.MinIntervalSeconds = &interval

	ch, err := f.svc.Create(input)
	require.NoError(t, err)
	assert.Equal(t, 50, ch.DailyLimit)
}

func TestChannelService_Create_AsDefault(t *testing.T) {
	f := newChannelFixture(t)

	f.channels.EXPECT().Create(gomock.Any()).Return(nil)
	f.configs.EXPECT().Upsert(gomock.Any()).Return(nil)
	f.channels.EXPECT().SetDefault(gomock.Any(), "tenant-1", models.PurposeReminders).Return(nil)

	input := validCreateInput()
	input.IsDefault = true

	ch, err := f.svc.Create(input)
	require.NoError(t, err)
	assert.True(t, ch.IsDefault)
}

func TestChannelService_Create_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*service.CreateChannelInput)
	}{
		{"missing tenant", func(in *service.CreateChannelInput) { in.TenantID = "" }},
		{"missing name", func(in *service.CreateChannelInput) { in.Name = "" }},
		{"unknown type", func(in *service.CreateChannelInput) { in.Type = "telegram" }},
		{"unknown purpose", func(in *service.CreateChannelInput) { in.Purpose = "marketing" }},
		{"missing endpoint", func(in *service.CreateChannelInput) { in.EndpointURL = "" }},
		{"zero daily limit", func(in *service.CreateChannelInput) {
			zero := 0
			in.DailyLimit = &zero
		}},
		{"hourly above daily", func(in *service.CreateChannelInput) {
			hourly := 500
			in.HourlyLimit = &hourly
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newChannelFixture(t)

			input := validCreateInput()
			tt.mutate(&input)

			_, err := f.svc.Create(input)
			assert.ErrorIs(t, err, service.ErrInvalidConfig)
		})
	}
}

func TestChannelService_Get_NotFound(t *testing.T) {
	f := newChannelFixture(t)

	f.channels.EXPECT().GetByID("missing").Return(nil, repository.ErrNotFound)

	_, err := f.svc.Get("missing")
	assert.ErrorIs(t, err, service.ErrChannelNotFound)
}

func TestChannelService_List_RequiresTenant(t *testing.T) {
	f := newChannelFixture(t)

	_, err := f.svc.List("", nil)
	assert.ErrorIs(t, err, service.ErrInvalidConfig)
}

func TestChannelService_DeactivateReactivate(t *testing.T) {
	f := newChannelFixture(t)

	f.channels.EXPECT().UpdateStatus("ch-1", models.ChannelStatusInactive, nil).Return(nil)
	require.NoError(t, f.svc.Deactivate("ch-1"))

	f.channels.EXPECT().UpdateStatus("ch-1", models.ChannelStatusActive, nil).Return(nil)
	require.NoError(t, f.svc.Reactivate("ch-1"))

	f.channels.EXPECT().UpdateStatus("missing", models.ChannelStatusInactive, nil).Return(repository.ErrNotFound)
	assert.ErrorIs(t, f.svc.Deactivate("missing"), service.ErrChannelNotFound)
}

func TestChannelService_SetDefault_InvalidPurpose(t *testing.T) {
	f := newChannelFixture(t)

	err := f.svc.SetDefault("ch-1", "tenant-1", "newsletter")
	assert.ErrorIs(t, err, service.ErrInvalidConfig)
}

func TestChannelService_UpdateAntiblockConfig(t *testing.T) {
	f := newChannelFixture(t)

	daily := 100

	f.configs.EXPECT().Get("ch-1").Return(defaultPolicy("ch-1"), nil)
	f.configs.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(cfg *models.AntiblockConfig) error {
		assert.Equal(t, 100, cfg.DailyLimit)
		assert.Equal(t, 30, cfg.HourlyLimit)
		return nil
	})
	f.channels.EXPECT().SetDailyLimit("ch-1", 100).Return(nil)

	cfg, err := f.svc.UpdateAntiblockConfig("ch-1", service.AntiblockConfigPatch{DailyLimit: &daily})
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.DailyLimit)
}

func TestChannelService_UpdateAntiblockConfig_InvalidPatch(t *testing.T) {
	f := newChannelFixture(t)

	hourly := 999

	f.configs.EXPECT().Get("ch-1").Return(defaultPolicy("ch-1"), nil)

	_, err := f.svc.UpdateAntiblockConfig("ch-1", service.AntiblockConfigPatch{HourlyLimit: &hourly})
	assert.ErrorIs(t, err, service.ErrInvalidConfig)
}

func TestChannelService_UpdateAntiblockConfig_LimitSyncFailure(t *testing.T) {
	f := newChannelFixture(t)

	daily := 100

	f.configs.EXPECT().Get("ch-1").Return(defaultPolicy("ch-1"), nil)
	f.configs.EXPECT().Upsert(gomock.Any()).Return(nil)
	f.channels.EXPECT().SetDailyLimit("ch-1", 100).Return(errors.New("db down"))

	_, err := f.svc.UpdateAntiblockConfig("ch-1", service.AntiblockConfigPatch{DailyLimit: &daily})
	assert.ErrorContains(t, err, "channel limit sync failed")
}
