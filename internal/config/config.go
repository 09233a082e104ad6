package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Roster   RosterConfig
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
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// RosterConfig holds the scheduling constants of the roster engine.
type RosterConfig struct {
	// LegalMonthlyHours is the legal overtime threshold per employee per
	// month.
	LegalMonthlyHours float64
	// StandardShiftHours converts excess hours into required substitute
	// days.
	StandardShiftHours float64
	// SubstituteHourlyRate prices one hour of substitute labor for the
	// cost estimate.
	SubstituteHourlyRate float64
	// AutoGenerate enables the background job that pre-generates next
	// month's roster for every configured shift system.
	AutoGenerate         bool
	AutoGenerateInterval time.Duration
}

func Load() (*Config, error) {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

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
		Name:     getEnv("DB_NAME", "roster"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Roster engine configuration
	legalHours, err := strconv.ParseFloat(getEnv("ROSTER_LEGAL_MONTHLY_HOURS", "195"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ROSTER_LEGAL_MONTHLY_HOURS: %w", err)
	}
	shiftHours, err := strconv.ParseFloat(getEnv("ROSTER_STANDARD_SHIFT_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ROSTER_STANDARD_SHIFT_HOURS: %w", err)
	}
	hourlyRate, err := strconv.ParseFloat(getEnv("ROSTER_SUBSTITUTE_HOURLY_RATE", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ROSTER_SUBSTITUTE_HOURLY_RATE: %w", err)
	}
	autoGenInterval, err := time.ParseDuration(getEnv("ROSTER_AUTOGEN_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ROSTER_AUTOGEN_INTERVAL: %w", err)
	}

	config.Roster = RosterConfig{
		LegalMonthlyHours:    legalHours,
		StandardShiftHours:   shiftHours,
		SubstituteHourlyRate: hourlyRate,
		AutoGenerate:         getEnv("ROSTER_AUTOGEN_ENABLED", "false") == "true",
		AutoGenerateInterval: autoGenInterval,
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
	if c.Roster.LegalMonthlyHours <= 0 {
		return fmt.Errorf("ROSTER_LEGAL_MONTHLY_HOURS must be positive")
	}
	if c.Roster.StandardShiftHours <= 0 {
		return fmt.Errorf("ROSTER_STANDARD_SHIFT_HOURS must be positive")
	}
	if c.Roster.SubstituteHourlyRate < 0 {
		return fmt.Errorf("ROSTER_SUBSTITUTE_HOURLY_RATE must not be negative")
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
