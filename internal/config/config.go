package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything the bot needs, loaded once at process
// start. No package holds configuration globals; the struct is passed
// into constructors.
type Config struct {
	Environment string
	LogDir      string

	Exchange struct {
		APIKey      string
		SecretKey   string
		BaseURL     string
		HTTPTimeout time.Duration
		MaxRetries  int
	}

	Convert struct {
		IgnoreAssets []string
		RunOffset    time.Duration
	}

	Monitoring struct {
		PrometheusPort int
		HealthPort     int
	}

	Notifications struct {
		TelegramToken  string
		TelegramChatID string
		TelegramHost   string
	}
}

func Load() *Config {
	cfg := &Config{
		Environment: getEnv("ENV", "development"),
		LogDir:      getEnv("LOG_DIR", "logs"),
	}

	cfg.Exchange.APIKey = getEnv("MEXC_API_KEY", "")
	cfg.Exchange.SecretKey = getEnv("MEXC_SECRET_KEY", "")
	cfg.Exchange.BaseURL = getEnv("MEXC_BASE_URL", "https://api.mexc.com")
	cfg.Exchange.HTTPTimeout = getEnvDuration("MEXC_HTTP_TIMEOUT", 15*time.Second)
	cfg.Exchange.MaxRetries = getEnvInt("MEXC_MAX_RETRIES", 3)

	cfg.Convert.IgnoreAssets = getEnvList("IGNORE_ASSETS", []string{"USDC"})
	cfg.Convert.RunOffset = getEnvDuration("RUN_OFFSET", 15*time.Second)

	cfg.Monitoring.PrometheusPort = getEnvInt("PROMETHEUS_PORT", 8080)
	cfg.Monitoring.HealthPort = getEnvInt("HEALTH_PORT", 8081)

	cfg.Notifications.TelegramToken = getEnv("TELEGRAM_TOKEN", "")
	cfg.Notifications.TelegramChatID = getEnv("TELEGRAM_CHAT_ID", "")
	cfg.Notifications.TelegramHost = getEnv("TELEGRAM_HOST", "https://api.telegram.org")

	return cfg
}

// Validate checks that required credentials are present.
func (c *Config) Validate() error {
	if c.Exchange.APIKey == "" {
		return fmt.Errorf("MEXC_API_KEY is required")
	}
	if c.Exchange.SecretKey == "" {
		return fmt.Errorf("MEXC_SECRET_KEY is required")
	}
	if c.Notifications.TelegramToken != "" && c.Notifications.TelegramChatID == "" {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, item := range strings.Split(val, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
