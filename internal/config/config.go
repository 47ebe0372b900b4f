package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	CORS       CORSConfig
	Calculator CalculatorConfig
	Refresh    RefreshConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// CalculatorConfig holds the illustrative defaults surfaced by the
// calculation endpoints. The tax rate has no regulatory basis and is
// labeled as such in every response that uses it.
type CalculatorConfig struct {
	IllustrativeTaxRate float64 // applied to total boot, default 0.20
	QIFeePercent        float64 // qualified intermediary fee, % of property value
	EscrowFee           float64 // flat escrow/closing fee, USD
	TitleRatePercent    float64 // title insurance rate, % of property value
	RecordingFees       float64 // flat county recording fees, USD
}

// RefreshConfig controls the scheduled reference-data reseed.
type RefreshConfig struct {
	Schedule string // cron spec; empty disables the job
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/exchange_tools.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Calculator: CalculatorConfig{
			IllustrativeTaxRate: getEnvFloat("ILLUSTRATIVE_TAX_RATE", 0.20),
			QIFeePercent:        getEnvFloat("QI_FEE_PERCENT", 1.5),
			EscrowFee:           getEnvFloat("ESCROW_FEE", 1500),
			TitleRatePercent:    getEnvFloat("TITLE_RATE_PERCENT", 0.65),
			RecordingFees:       getEnvFloat("RECORDING_FEES", 75),
		},
		Refresh: RefreshConfig{
			Schedule: getEnv("REFERENCE_REFRESH_SCHEDULE", "0 4 * * *"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvFloat gets a numeric environment variable or returns a default value.
// Unparseable values fall back to the default rather than failing startup.
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
