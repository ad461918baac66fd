package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort                   = "8080"
	DefaultAccessTokenExpiryMin   = 15
	DefaultRefreshTokenExpiryMin  = 480
	DefaultRecoveryTokenExpiryMin = 15
)

type Config struct {
	Env  string
	Port string

	DBURL string

	AccessTokenSecret   string
	RefreshTokenSecret  string
	RecoveryTokenSecret string
	AccessExpiryMin     int
	RefreshExpiryMin    int
	RecoveryExpiryMin   int

	AppBaseURL string

	SMTPAddr     string
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	LogLevel  string
	LogPretty bool
}

// Load reads config/.env.dev or config/.env.prod depending on ENV, then lets
// real environment variables override file values. Required keys abort startup.
func Load() *Config {
	env := getEnv("ENV", "development")

	envFile := "config/.env.dev"
	if env == "production" {
		envFile = "config/.env.prod"
	}
	if _, err := os.Stat(envFile); err == nil {
		// godotenv never overrides variables already present in the
		// environment, which gives env vars precedence over the file.
		if err := godotenv.Load(envFile); err != nil {
			log.Printf("Failed to load %s: %v", envFile, err)
		}
	}

	return &Config{
		Env:                 env,
		Port:                getEnv("PORT", DefaultPort),
		DBURL:               mustGetEnv("DB_URL"),
		AccessTokenSecret:   mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret:  mustGetEnv("REFRESH_TOKEN_SECRET"),
		RecoveryTokenSecret: mustGetEnv("RECOVERY_TOKEN_SECRET"),
		AccessExpiryMin:     getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin:    getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),
		RecoveryExpiryMin:   getEnvAsInt("RECOVERY_TOKEN_EXPIRY", DefaultRecoveryTokenExpiryMin),
		AppBaseURL:          getEnv("APP_BASE_URL", "http://localhost:"+getEnv("PORT", DefaultPort)),
		SMTPAddr:            getEnv("SMTP_ADDR", "localhost:25"),
		SMTPUser:            getEnv("SMTP_USER", ""),
		SMTPPassword:        getEnv("SMTP_PASSWORD", ""),
		MailFrom:            getEnv("MAIL_FROM", "no-reply@localhost"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogPretty:           getEnv("LOG_PRETTY", "") != "",
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, fallback int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, fallback)
		return fallback
	}
	return val
}
