// Package config centralises configuration parsing for the check-in service.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

// OfficeConfig is the single office the geofence is centred on.
type OfficeConfig struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// Config captures runtime configuration values for every binary under cmd/.
type Config struct {
	Port               string
	AppEnv             string
	Database           DatabaseConfig
	RedisAddr          string
	KafkaBroker        string
	JWTSecret          string
	JWTTTL             time.Duration
	Office             OfficeConfig
	CooldownMinutes    int
	MaxPunchesPerDay   int
	Location           *time.Location
	ReportCacheTTL     time.Duration
	OutboxPollInterval time.Duration
}

// Load reads environment variables into Config. Call godotenv.Load first
// when a .env file should be honoured.
func Load() (Config, error) {
	cfg := Config{
		Port:   getEnv("PORT", "3000"),
		AppEnv: getEnv("APP_ENV", "development"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "checkin"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: strings.TrimSpace(os.Getenv("KAFKA_BROKER")),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      getDurationEnv("JWT_TTL", 12*time.Hour),
		Office: OfficeConfig{
			Latitude:     getFloatEnv("OFFICE_LATITUDE", -0.32550),
			Longitude:    getFloatEnv("OFFICE_LONGITUDE", -78.44028),
			RadiusMeters: getFloatEnv("OFFICE_RADIUS_METERS", 2000),
		},
		CooldownMinutes:    getIntEnv("CHECKIN_COOLDOWN_MINUTES", 15),
		MaxPunchesPerDay:   getIntEnv("CHECKIN_MAX_PER_DAY", 4),
		Location:           time.Local,
		ReportCacheTTL:     getDurationEnv("REPORT_CACHE_TTL", time.Minute),
		OutboxPollInterval: getDurationEnv("OUTBOX_POLL_INTERVAL", 3*time.Second),
	}

	if tz := strings.TrimSpace(os.Getenv("APP_TIMEZONE")); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return Config{}, fmt.Errorf("invalid APP_TIMEZONE %q: %w", tz, err)
		}
		cfg.Location = loc
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Office.Latitude < -90 || c.Office.Latitude > 90 {
		errs = append(errs, errors.New("OFFICE_LATITUDE must be within [-90, 90]"))
	}
	if c.Office.Longitude < -180 || c.Office.Longitude > 180 {
		errs = append(errs, errors.New("OFFICE_LONGITUDE must be within [-180, 180]"))
	}
	if c.Office.RadiusMeters <= 0 {
		errs = append(errs, errors.New("OFFICE_RADIUS_METERS must be positive"))
	}
	if c.CooldownMinutes < 0 {
		errs = append(errs, errors.New("CHECKIN_COOLDOWN_MINUTES cannot be negative"))
	}
	if c.MaxPunchesPerDay < 1 {
		errs = append(errs, errors.New("CHECKIN_MAX_PER_DAY must be at least 1"))
	}
	return errors.Join(errs...)
}

func (c Config) Cooldown() time.Duration {
	return time.Duration(c.CooldownMinutes) * time.Minute
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
