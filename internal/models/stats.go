package models

import "time"

// GlobalStats summarizes a tenant's channel fleet for operator dashboards.
type GlobalStats struct {
	TenantID          string    `json:"tenant_id"`
	TotalChannels     int       `json:"total_channels"`
	ActiveChannels    int       `json:"active_channels"`
	ErrorChannels     int       `json:"error_channels"`
	MessagesSentToday int       `json:"messages_sent_today"`
	DeliveryRate24h   float64   `json:"delivery_rate_24h"`
	UnresolvedAlerts  int       `json:"unresolved_alerts"`
	GeneratedAt       time.Time `json:"generated_at"`
}
