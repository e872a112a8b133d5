package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port               string
	DatabasePath       string
	LogLevel           string
	CurrencyRatesPath  string
	MaxUploadSizeBytes int64

	JWTSecret         string
	AccessTokenExpiry time.Duration
	AdminPasswordHash string

	ReportCacheTTL     time.Duration
	ReportCacheCleanup time.Duration
	ReportHistoryLimit int

	EmailReportsEnabled  bool
	MailgunDomain        string
	MailgunPrivateAPIKey string
	SenderEmail          string
	ReportRecipient      string
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	jwtSecret := getEnv("JWT_SECRET", "insecure-development-jwt-secret-key-minimum-32-bytes!")
	if jwtSecret == "insecure-development-jwt-secret-key-minimum-32-bytes!" {
		log.Println("WARNING: Using default insecure JWT_SECRET. Set JWT_SECRET environment variable for production.")
	}

	accessTokenExpiryStr := getEnv("ACCESS_TOKEN_EXPIRY", "60m")
	accessTokenExpiry, err := time.ParseDuration(accessTokenExpiryStr)
	if err != nil {
		log.Printf("WARNING: Invalid ACCESS_TOKEN_EXPIRY format '%s'. Using default 60m. Error: %v", accessTokenExpiryStr, err)
		accessTokenExpiry = 60 * time.Minute
	}

	maxUploadSizeBytesStr := getEnv("MAX_UPLOAD_SIZE_BYTES", "10485760")
	maxUploadSizeBytes, err := strconv.ParseInt(maxUploadSizeBytesStr, 10, 64)
	if err != nil {
		log.Printf("WARNING: Invalid MAX_UPLOAD_SIZE_BYTES format '%s'. Using default 10MB. Error: %v", maxUploadSizeBytesStr, err)
		maxUploadSizeBytes = 10 * 1024 * 1024
	}

	emailReportsEnabled, err := strconv.ParseBool(getEnv("EMAIL_REPORTS_ENABLED", "false"))
	if err != nil {
		log.Printf("WARNING: Invalid EMAIL_REPORTS_ENABLED value. Defaulting to false. Error: %v", err)
		emailReportsEnabled = false
	}

	Cfg = &AppConfig{
		Port:               getEnv("PORT", "8080"),
		DatabasePath:       getEnv("DATABASE_PATH", "./brokercomm.db"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CurrencyRatesPath:  getEnv("CURRENCY_RATES_PATH", "data/currencyRates.json"),
		MaxUploadSizeBytes: maxUploadSizeBytes,

		JWTSecret:         jwtSecret,
		AccessTokenExpiry: accessTokenExpiry,
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		ReportCacheTTL:     getEnvAsDuration("REPORT_CACHE_TTL", 15*time.Minute),
		ReportCacheCleanup: getEnvAsDuration("REPORT_CACHE_CLEANUP", 30*time.Minute),
		ReportHistoryLimit: getEnvAsInt("REPORT_HISTORY_LIMIT", 50),

		EmailReportsEnabled:  emailReportsEnabled,
		MailgunDomain:        getEnv("MAILGUN_DOMAIN", ""),
		MailgunPrivateAPIKey: getEnv("MAILGUN_PRIVATE_API_KEY", ""),
		SenderEmail:          getEnv("SENDER_EMAIL", "reports@example.com"),
		ReportRecipient:      getEnv("REPORT_RECIPIENT", ""),
	}

	if Cfg.EmailReportsEnabled {
		if Cfg.MailgunDomain == "" {
			log.Fatalf("FATAL: MAILGUN_DOMAIN is required when EMAIL_REPORTS_ENABLED is true, but it's not set in environment or .env file.")
		}
		if Cfg.MailgunPrivateAPIKey == "" {
			log.Fatalf("FATAL: MAILGUN_PRIVATE_API_KEY is required when EMAIL_REPORTS_ENABLED is true, but it's not set in environment or .env file.")
		}
		if Cfg.ReportRecipient == "" {
			log.Fatalf("FATAL: REPORT_RECIPIENT must be configured when EMAIL_REPORTS_ENABLED is true.")
		}
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, DBPath=%s, EmailReports=%t",
		Cfg.Port, Cfg.LogLevel, Cfg.DatabasePath, Cfg.EmailReportsEnabled)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Integer value for %s not set or empty, using default: %d", key, fallback)
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Duration value for %s not set or empty, using default: %s", key, fallback.String())
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}
