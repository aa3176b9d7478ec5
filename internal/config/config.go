package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Catalog sources.
const (
	CatalogSourceEmbedded = "embedded"
	CatalogSourceFile     = "file"
	CatalogSourceS3       = "s3"
	CatalogSourcePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	S3       S3Config
	Mail     MailConfig
	Cart     CartConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
	// AllowedOrigin defaults to "*", which keeps browsers from sending the
	// cart session cookie cross-origin. Set it for a SPA on another origin.
	AllowedOrigin string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// CatalogConfig selects where the product catalogue is loaded from.
type CatalogConfig struct {
	Source string
	Dir    string // section files for the file source, fallback for s3
}

// DatabaseConfig holds database-related configuration.
// Only used by the postgres catalogue source.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// S3Config holds AWS S3 configuration for catalogue archives.
type S3Config struct {
	Bucket string
	Region string
	Prefix string // Path prefix within bucket (e.g., "catalog/")
}

// MailConfig holds the transactional mail relay credentials.
type MailConfig struct {
	Endpoint       string
	ServiceID      string
	TemplateID     string
	PublicKey      string
	PrivateKey     string
	TimeoutSeconds int
}

// CartConfig holds session cart configuration.
type CartConfig struct {
	SessionTTLMinutes int
	CookieName        string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:          getEnv("SERVER_HOST", "0.0.0.0"),
			Port:          getEnvAsInt("SERVER_PORT", 8080),
			AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Catalog: CatalogConfig{
			Source: getEnv("CATALOG_SOURCE", CatalogSourceEmbedded),
			Dir:    getEnv("CATALOG_DIR", "data/catalog"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "aesthetic_cakes"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 5),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 1),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		S3: S3Config{
			Bucket: getEnv("S3_BUCKET", ""),
			Region: getEnv("S3_REGION", "us-east-1"),
			Prefix: getEnv("S3_PREFIX", "catalog/"),
		},
		Mail: MailConfig{
			Endpoint:       getEnv("MAIL_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send"),
			ServiceID:      getEnv("MAIL_SERVICE_ID", ""),
			TemplateID:     getEnv("MAIL_TEMPLATE_ID", ""),
			PublicKey:      getEnv("MAIL_PUBLIC_KEY", ""),
			PrivateKey:     getEnv("MAIL_PRIVATE_KEY", ""),
			TimeoutSeconds: getEnvAsInt("MAIL_TIMEOUT_SECONDS", 10),
		},
		Cart: CartConfig{
			SessionTTLMinutes: getEnvAsInt("CART_SESSION_TTL_MINUTES", 120),
			CookieName:        getEnv("CART_COOKIE_NAME", "cart_session"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	switch c.Catalog.Source {
	case CatalogSourceEmbedded:
	case CatalogSourceFile:
		if c.Catalog.Dir == "" {
			return fmt.Errorf("catalog directory is required for the file source")
		}
	case CatalogSourceS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required for the s3 source")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required for the s3 source")
		}
	case CatalogSourcePostgres:
		if err := c.Database.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid catalog source: %s (must be embedded, file, s3, or postgres)", c.Catalog.Source)
	}

	if c.Mail.ServiceID != "" {
		if c.Mail.Endpoint == "" {
			return fmt.Errorf("mail endpoint is required when a mail service is configured")
		}
		if c.Mail.TemplateID == "" {
			return fmt.Errorf("mail template ID is required when a mail service is configured")
		}
		if c.Mail.PublicKey == "" {
			return fmt.Errorf("mail public key is required when a mail service is configured")
		}
	}

	if c.Mail.TimeoutSeconds < 1 {
		return fmt.Errorf("mail timeout must be at least 1 second")
	}

	if c.Cart.SessionTTLMinutes < 1 {
		return fmt.Errorf("cart session TTL must be at least 1 minute")
	}

	if c.Cart.CookieName == "" {
		return fmt.Errorf("cart cookie name is required")
	}

	return nil
}

// Validate validates the database configuration.
func (c *DatabaseConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}

	if c.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.MinConnections > c.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Enabled reports whether a real relay is configured.
func (c *MailConfig) Enabled() bool {
	return c.ServiceID != ""
}

// Timeout returns the relay request timeout.
func (c *MailConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionTTL returns how long an idle cart is kept.
func (c *CartConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
