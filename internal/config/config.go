package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, loaded once at startup.
type Config struct {
	// Server settings
	Port          string
	DBFile        string
	UploadDir     string
	PublicBaseURL string
	RedisAddr     string

	// Secrets
	JWTSecret   string
	AdminSecret string
	CronSecret  string

	// Admin bootstrap credential
	AdminEmail    string
	AdminPassword string

	// Telegram bridge
	BotToken string

	// Catalog policy
	StrictBids       bool
	FreeLotQuota     int
	PremiumLotQuota  int
	ListDefaultLimit int
}

// Load reads configuration from the environment, after loading a .env file if
// one is present. Missing optional values fall back to defaults.
func Load() *Config {
	// In containers the .env file is usually absent and variables come from
	// the environment directly.
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBFile:        getEnv("DB_FILE", "market.db"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),

		JWTSecret:   getEnv("JWT_SECRET", "dev-secret"),
		AdminSecret: os.Getenv("ADMIN_SECRET"),
		CronSecret:  os.Getenv("CRON_SECRET"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@localhost"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),

		BotToken: os.Getenv("BOT_TOKEN"),

		StrictBids:       getEnvBool("STRICT_BIDS", false),
		FreeLotQuota:     getEnvInt("FREE_LOT_QUOTA", 5),
		PremiumLotQuota:  getEnvInt("PREMIUM_LOT_QUOTA", 20),
		ListDefaultLimit: getEnvInt("LIST_DEFAULT_LIMIT", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
