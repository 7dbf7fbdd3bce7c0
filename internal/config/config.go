package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database       DatabaseConfig
	JWT            JWTConfig
	App            AppConfig
	Reconciliation ReconciliationConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// ReconciliationConfig holds the tunables of the work-time
// reconciliation engine.
type ReconciliationConfig struct {
	MismatchThresholdMinutes   int
	ExcessWorkThresholdMinutes int
	MergeGapToleranceMinutes   int
	ScanWindowDays             int
	ScanInterval               time.Duration
	Timezone                   string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "workshop"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Reconciliation configuration
	mismatchThreshold, err := strconv.Atoi(getEnv("RECON_MISMATCH_THRESHOLD_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECON_MISMATCH_THRESHOLD_MINUTES: %w", err)
	}
	excessThreshold, err := strconv.Atoi(getEnv("RECON_EXCESS_WORK_THRESHOLD_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECON_EXCESS_WORK_THRESHOLD_MINUTES: %w", err)
	}
	mergeGap, err := strconv.Atoi(getEnv("RECON_MERGE_GAP_TOLERANCE_MINUTES", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECON_MERGE_GAP_TOLERANCE_MINUTES: %w", err)
	}
	scanWindow, err := strconv.Atoi(getEnv("RECON_SCAN_WINDOW_DAYS", "14"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECON_SCAN_WINDOW_DAYS: %w", err)
	}
	scanInterval, err := time.ParseDuration(getEnv("RECON_SCAN_INTERVAL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECON_SCAN_INTERVAL: %w", err)
	}

	config.Reconciliation = ReconciliationConfig{
		MismatchThresholdMinutes:   mismatchThreshold,
		ExcessWorkThresholdMinutes: excessThreshold,
		MergeGapToleranceMinutes:   mergeGap,
		ScanWindowDays:             scanWindow,
		ScanInterval:               scanInterval,
		Timezone:                   getEnv("RECON_TIMEZONE", "Asia/Tokyo"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Reconciliation.MismatchThresholdMinutes < 0 {
		return fmt.Errorf("RECON_MISMATCH_THRESHOLD_MINUTES must not be negative")
	}
	if c.Reconciliation.ExcessWorkThresholdMinutes < 0 {
		return fmt.Errorf("RECON_EXCESS_WORK_THRESHOLD_MINUTES must not be negative")
	}
	if c.Reconciliation.MergeGapToleranceMinutes < 0 {
		return fmt.Errorf("RECON_MERGE_GAP_TOLERANCE_MINUTES must not be negative")
	}
	if c.Reconciliation.ScanWindowDays < 1 {
		return fmt.Errorf("RECON_SCAN_WINDOW_DAYS must be at least 1")
	}
	if _, err := time.LoadLocation(c.Reconciliation.Timezone); err != nil {
		return fmt.Errorf("invalid RECON_TIMEZONE: %w", err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
