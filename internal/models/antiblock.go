package models

import (
	"fmt"
	"time"
)

// AntiblockConfig is the per-channel rate-limiting policy that keeps a
// messaging provider from classifying the channel as abusive.
type AntiblockConfig struct {
	ChannelID          string    `db:"channel_id" json:"channel_id"`
	DailyLimit         int       `db:"daily_limit" json:"daily_limit"`
	HourlyLimit        int       `db:"hourly_limit" json:"hourly_limit"`
	MinIntervalSeconds int       `db:"min_interval_seconds" json:"min_interval_seconds"`
	AutoRotate         bool      `db:"auto_rotate" json:"auto_rotate"`
	AutoPauseThreshold int       `db:"auto_pause_threshold" json:"auto_pause_threshold"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

func (c *AntiblockConfig) Validate() error {
	if c.DailyLimit <= 0 {
		return fmt.Errorf("daily_limit must be positive, got %d", c.DailyLimit)
	}
	if c.HourlyLimit <= 0 {
		return fmt.Errorf("hourly_limit must be positive, got %d", c.HourlyLimit)
	}
	if c.HourlyLimit > c.DailyLimit {
		return fmt.Errorf("hourly_limit %d exceeds daily_limit %d", c.HourlyLimit, c.DailyLimit)
	}
	if c.MinIntervalSeconds < 0 {
		return fmt.Errorf("min_interval_seconds must not be negative, got %d", c.MinIntervalSeconds)
	}
	if c.AutoPauseThreshold < 0 || c.AutoPauseThreshold > 100 {
		return fmt.Errorf("auto_pause_threshold must be within [0,100], got %d", c.AutoPauseThreshold)
	}
	return nil
}

// MinInterval returns the minimum spacing between sends as a duration.
func (c *AntiblockConfig) MinInterval() time.Duration {
	return time.Duration(c.MinIntervalSeconds) * time.Second
}

// DenyReason explains why a send permission was refused.
type DenyReason string

const (
	DenyChannelInactive    DenyReason = "channel_inactive"
	DenyDailyLimitExceeded DenyReason = "daily_limit_exceeded"
	DenyHourlyLimit        DenyReason = "hourly_limit_exceeded"
	DenyIntervalTooShort   DenyReason = "interval_too_short"
)

// SendDecision is the result of a canSend check. Reason is empty when
// Allowed is true.
type SendDecision struct {
	Allowed bool       `json:"allowed"`
	Reason  DenyReason `json:"reason,omitempty"`
}
