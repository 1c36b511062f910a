package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Security SecurityConfig
	Site     SiteConfig
	Limits   LimitsConfig
	Otel     OtelConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	UploadDir          string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
	// StaffAlertEmail receives new-report alerts. Empty disables them.
	StaffAlertEmail string
}

type SecurityConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// SiteConfig is the admin branding shown by staff clients.
type SiteConfig struct {
	SiteHeader string `json:"site_header"`
	SiteTitle  string `json:"site_title"`
	IndexTitle string `json:"index_title"`
}

type LimitsConfig struct {
	ReportsPerWindow int
	ReportWindow     time.Duration
	MaxUploadBytes   int64
}

type OtelConfig struct {
	Enabled  bool
	Endpoint string
}

// DefaultSiteConfig is the branding used when no override is set.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		SiteHeader: "EveShield Administration",
		SiteTitle:  "EveShield Admin",
		IndexTitle: "Welcome to EveShield Admin Panel",
	}
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	site := DefaultSiteConfig()

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/eveshield.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			UploadDir:          getEnv("UPLOAD_DIR", "./uploads"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:            getEnv("SMTP_HOST", ""),
			Port:            getEnvAsInt("SMTP_PORT", 587),
			Email:           getEnv("SMTP_EMAIL", ""),
			Password:        getEnv("SMTP_PASSWORD", ""),
			SenderName:      getEnv("SMTP_SENDER_NAME", "EveShield"),
			StaffAlertEmail: getEnv("STAFF_ALERT_EMAIL", ""),
		},
		Security: SecurityConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  time.Duration(getEnvAsInt("JWT_TTL_HOURS", 24)) * time.Hour,
		},
		Site: SiteConfig{
			SiteHeader: getEnv("SITE_HEADER", site.SiteHeader),
			SiteTitle:  getEnv("SITE_TITLE", site.SiteTitle),
			IndexTitle: getEnv("INDEX_TITLE", site.IndexTitle),
		},
		Limits: LimitsConfig{
			ReportsPerWindow: getEnvAsInt("REPORT_RATE_LIMIT", 5),
			ReportWindow:     time.Duration(getEnvAsInt("REPORT_RATE_WINDOW_MINUTES", 60)) * time.Minute,
			MaxUploadBytes:   int64(getEnvAsInt("MAX_UPLOAD_MB", 10)) << 20,
		},
		Otel: OtelConfig{
			Enabled:  getEnvAsBool("OTEL_ENABLED", false),
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
