package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Log       LogConfig
	Data      DataConfig
	CMS       CMSConfig
	Feed      FeedConfig
	Scheduler SchedulerConfig
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

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string
	Pretty bool
}

// DataConfig points at the static NAV and dividend files imported on start-up.
// Import is skipped when NavFile is empty.
type DataConfig struct {
	NavFile      string
	DividendFile string
	FundName     string
	FundIsin     string
	FundSymbol   string
	FundCurrency string

	FundNameAr        string
	FundDescription   string
	FundDescriptionAr string
	FundRiskLevel     string
	FundSharia        bool
}

// CMSConfig holds the headless CMS connection settings.
type CMSConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// FeedConfig holds the market data feed used to append new NAV observations
// and to quote the market overview. Quotes are cached for QuoteTTL.
type FeedConfig struct {
	BaseURL  string
	QuoteTTL time.Duration
}

// SchedulerConfig holds the cron schedules of background jobs.
type SchedulerConfig struct {
	Enabled         bool
	RefreshSchedule string
	ReloadSchedule  string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cmsToken, err := cmsToken(os.Getenv("CMS_TOKEN"), os.Getenv("CMS_TOKEN_KEY"))
	if err != nil {
		return nil, err
	}

	cmsTimeout, err := time.ParseDuration(getEnv("CMS_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CMS_TIMEOUT: %w", err)
	}

	quoteTTL, err := time.ParseDuration(getEnv("MARKET_QUOTE_TTL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid MARKET_QUOTE_TTL: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/growth_calculator.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Data: DataConfig{
			NavFile:      os.Getenv("SEED_NAV_FILE"),
			DividendFile: os.Getenv("SEED_DIVIDEND_FILE"),
			FundName:     getEnv("SEED_FUND_NAME", "Flagship Equity Fund"),
			FundIsin:     getEnv("SEED_FUND_ISIN", "SA0000000001"),
			FundSymbol:   os.Getenv("SEED_FUND_SYMBOL"),
			FundCurrency: getEnv("SEED_FUND_CURRENCY", "SAR"),

			FundNameAr:        os.Getenv("SEED_FUND_NAME_AR"),
			FundDescription:   os.Getenv("SEED_FUND_DESCRIPTION"),
			FundDescriptionAr: os.Getenv("SEED_FUND_DESCRIPTION_AR"),
			FundRiskLevel:     os.Getenv("SEED_FUND_RISK_LEVEL"),
			FundSharia:        getEnvBool("SEED_FUND_SHARIA_COMPLIANT", false),
		},
		CMS: CMSConfig{
			BaseURL: strings.TrimRight(getEnv("CMS_URL", "http://localhost:1337"), "/"),
			Token:   cmsToken,
			Timeout: cmsTimeout,
		},
		Feed: FeedConfig{
			BaseURL:  strings.TrimRight(getEnv("FEED_URL", "https://query1.finance.yahoo.com"), "/"),
			QuoteTTL: quoteTTL,
		},
		Scheduler: SchedulerConfig{
			Enabled:         getEnvBool("SCHEDULER_ENABLED", true),
			RefreshSchedule: getEnv("NAV_REFRESH_SCHEDULE", "0 30 18 * * MON-FRI"),
			ReloadSchedule:  getEnv("SNAPSHOT_RELOAD_SCHEDULE", "@every 15m"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// cmsToken returns the CMS API token. When a key is configured the token is
// expected to be a Fernet token and is decrypted with it.
func cmsToken(token, key string) (string, error) {
	if token == "" || key == "" {
		return token, nil
	}

	k, err := fernet.DecodeKey(key)
	if err != nil {
		return "", fmt.Errorf("invalid CMS_TOKEN_KEY: %w", err)
	}

	plain := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{k})
	if plain == nil {
		return "", fmt.Errorf("CMS_TOKEN could not be decrypted with CMS_TOKEN_KEY")
	}

	return string(plain), nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
