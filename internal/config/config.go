package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	// Storage
	StorePath        string
	AutosaveInterval time.Duration

	// Content catalogs
	ContentDir string

	// Leveling gates
	LevelingEnabled  bool
	MinMessageLength int
	MessageCooldown  time.Duration
	PrivateMode      bool
	Owners           []string // comma-separated user ids in env

	// Proxies whose X-Forwarded-For headers are trusted
	TrustedProxies []string

	// Discord bot (optional; bot is skipped when token is empty)
	DiscordToken string
	DiscordAppID string
	APIURL       string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", "realm-bot"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),

		StorePath:  getEnv("STORE_PATH", "data/users.json"),
		ContentDir: getEnv("CONTENT_DIR", "configs"),

		DiscordToken: getEnv("DISCORD_TOKEN", ""),
		DiscordAppID: getEnv("DISCORD_APP_ID", ""),
		APIURL:       getEnv("API_URL", "http://localhost:8080"),
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	autosaveSec, err := getEnvInt("AUTOSAVE_INTERVAL_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	cfg.AutosaveInterval = time.Duration(autosaveSec) * time.Second

	cfg.LevelingEnabled = getEnvBool("LEVELING_ENABLED", true)
	cfg.PrivateMode = getEnvBool("PRIVATE_MODE", false)

	minLen, err := getEnvInt("MIN_MESSAGE_LENGTH", 5)
	if err != nil {
		return nil, err
	}
	cfg.MinMessageLength = minLen

	cooldownMs, err := getEnvInt("MESSAGE_COOLDOWN_MS", 5000)
	if err != nil {
		return nil, err
	}
	cfg.MessageCooldown = time.Duration(cooldownMs) * time.Millisecond

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	if owners := getEnv("OWNERS", ""); owners != "" {
		for _, o := range strings.Split(owners, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.Owners = append(cfg.Owners, o)
			}
		}
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
