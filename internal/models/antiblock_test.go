package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
)

func TestAntiblockConfigValidate(t *testing.T) {
	valid := models.AntiblockConfig{
		DailyLimit:         200,
		HourlyLimit:        30,
		MinIntervalSeconds: 45,
		AutoPauseThreshold: 20,
	}

	tests := []struct {
		name    string
		mutate  func(*models.AntiblockConfig)
		wantErr bool
	}{
		{"defaults are valid", func(c *models.AntiblockConfig) {}, false},
		{"zero daily limit", func(c *models.AntiblockConfig) { c.DailyLimit = 0 }, true},
		{"negative daily limit", func(c *models.AntiblockConfig) { c.DailyLimit = -1 }, true},
		{"zero hourly limit", func(c *models.AntiblockConfig) { c.HourlyLimit = 0 }, true},
		{"hourly above daily", func(c *models.AntiblockConfig) { c.HourlyLimit = 500 }, true},
		{"negative interval", func(c *models.AntiblockConfig) { c.MinIntervalSeconds = -5 }, true},
		{"zero interval is fine", func(c *models.AntiblockConfig) { c.MinIntervalSeconds = 0 }, false},
		{"threshold above 100", func(c *models.AntiblockConfig) { c.AutoPauseThreshold = 101 }, true},
		{"threshold zero disables pause", func(c *models.AntiblockConfig) { c.AutoPauseThreshold = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMinInterval(t *testing.T) {
	cfg := models.AntiblockConfig{MinIntervalSeconds: 45}
	assert.Equal(t, 45*time.Second, cfg.MinInterval())
}
