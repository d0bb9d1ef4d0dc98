package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Contact store selection values.
const (
	ContactStoreMemory   = "memory"
	ContactStorePostgres = "postgres"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Catalog  CatalogConfig
	Contact  ContactConfig
	Database DatabaseConfig
	Mail     MailConfig
	CORS     CORSConfig
	Log      LogConfig
}

// CatalogConfig points at the static course and teacher datasets.
type CatalogConfig struct {
	CoursesPath  string
	TeachersPath string
}

// ContactConfig selects the contact-form persistence strategy. Exactly one
// strategy is active per deployment.
type ContactConfig struct {
	Store string
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// MailConfig configures the contact-form notification mailer.
type MailConfig struct {
	Enabled     bool
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	SSLTLS      bool
	StartTLS    bool
	SendTimeout time.Duration
	MaxRetries  int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Catalog = CatalogConfig{
		CoursesPath:  v.GetString("CATALOG_COURSES_PATH"),
		TeachersPath: v.GetString("CATALOG_TEACHERS_PATH"),
	}

	cfg.Contact = ContactConfig{
		Store: strings.ToLower(v.GetString("CONTACT_STORE")),
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Mail = MailConfig{
		Enabled:     v.GetBool("MAIL_ENABLED"),
		Host:        v.GetString("MAIL_SERVER"),
		Port:        v.GetInt("MAIL_PORT"),
		Username:    v.GetString("MAIL_USERNAME"),
		Password:    v.GetString("MAIL_PASSWORD"),
		From:        v.GetString("MAIL_FROM"),
		SSLTLS:      v.GetBool("MAIL_SSL_TLS"),
		StartTLS:    v.GetBool("MAIL_STARTTLS"),
		SendTimeout: parseDuration(v.GetString("MAIL_SEND_TIMEOUT"), 15*time.Second),
		MaxRetries:  v.GetInt("MAIL_MAX_RETRIES"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 5000)
	v.SetDefault("API_PREFIX", "/api")

	v.SetDefault("CATALOG_COURSES_PATH", "./data/courses.json")
	v.SetDefault("CATALOG_TEACHERS_PATH", "./data/teachers.json")

	v.SetDefault("CONTACT_STORE", ContactStoreMemory)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "s2s_school")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("MAIL_ENABLED", false)
	v.SetDefault("MAIL_SERVER", "")
	v.SetDefault("MAIL_PORT", 465)
	v.SetDefault("MAIL_USERNAME", "")
	v.SetDefault("MAIL_PASSWORD", "")
	v.SetDefault("MAIL_FROM", "")
	v.SetDefault("MAIL_SSL_TLS", true)
	v.SetDefault("MAIL_STARTTLS", false)
	v.SetDefault("MAIL_SEND_TIMEOUT", "15s")
	v.SetDefault("MAIL_MAX_RETRIES", 3)

	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
