package models

import "time"

// HealthSnapshot is an immutable time-series point recorded after every
// health recomputation for a channel.
type HealthSnapshot struct {
	ID               int64     `db:"id" json:"id"`
	ChannelID        string    `db:"channel_id" json:"channel_id"`
	HealthScore      int       `db:"health_score" json:"health_score"`
	MessagesLastHour int       `db:"messages_last_hour" json:"messages_last_hour"`
	DeliveryRate     float64   `db:"delivery_rate" json:"delivery_rate"`
	ErrorCount       int       `db:"error_count" json:"error_count"`
	CheckedAt        time.Time `db:"checked_at" json:"checked_at"`
}
