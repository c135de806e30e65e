// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Provider   ProviderConfig   `mapstructure:"provider"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Antiblock  AntiblockConfig  `mapstructure:"antiblock"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ProviderConfig controls outbound calls to channel provider endpoints.
type ProviderConfig struct {
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

type SchedulerConfig struct {
	HealthIntervalMinutes   int    `mapstructure:"health_interval_minutes"`
	DispatchIntervalSeconds int    `mapstructure:"dispatch_interval_seconds"`
	DispatchBatchSize       int    `mapstructure:"dispatch_batch_size"`
	ResetTimezone           string `mapstructure:"reset_timezone"`
}

// AntiblockConfig holds the default rate-limiting policy applied to
// newly provisioned channels.
type AntiblockConfig struct {
	DailyLimit         int `mapstructure:"daily_limit"`
	HourlyLimit        int `mapstructure:"hourly_limit"`
	MinIntervalSeconds int `mapstructure:"min_interval_seconds"`
	AutoPauseThreshold int `mapstructure:"auto_pause_threshold"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("provider.timeout", 30)
	viper.SetDefault("provider.circuit_breaker.max_requests", 3)
	viper.SetDefault("provider.circuit_breaker.interval", 60)
	viper.SetDefault("provider.circuit_breaker.timeout", 60)
	viper.SetDefault("provider.circuit_breaker.failure_ratio", 0.6)
	viper.SetDefault("provider.circuit_breaker.consecutive_fails", 5)
	viper.SetDefault("scheduler.health_interval_minutes", 5)
	viper.SetDefault("scheduler.dispatch_interval_seconds", 30)
	viper.SetDefault("scheduler.dispatch_batch_size", 20)
	viper.SetDefault("scheduler.reset_timezone", "Local")
	viper.SetDefault("antiblock.daily_limit", 200)
	viper.SetDefault("antiblock.hourly_limit", 30)
	viper.SetDefault("antiblock.min_interval_seconds", 45)
	viper.SetDefault("antiblock.auto_pause_threshold", 20)
	viper.SetDefault("middleware.rate_limit", 100)
	viper.SetDefault("middleware.rate_limit_burst", 1000)
	viper.SetDefault("middleware.enable_cors", true)
	viper.SetDefault("middleware.allowed_origins", []string{"*"})

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// ResetLocation resolves the timezone the daily reset runs in. "Local"
// or an empty value means the process timezone.
func (s *SchedulerConfig) ResetLocation() (*time.Location, error) {
	if s.ResetTimezone == "" || s.ResetTimezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.ResetTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid reset_timezone %q: %w", s.ResetTimezone, err)
	}
	return loc, nil
}
