// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/manish-reddy7/Manish-Reddy-Portfolio/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Storage backends for contact submissions.
const (
	StorageSupabase = "supabase"
	StoragePostgres = "postgres"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
	// TrustedProxies is a list of CIDR ranges or IPs of trusted reverse proxies.
	// If empty, X-Forwarded-For headers are ignored entirely.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES" yaml:"trusted_proxies"`
	// StaticDir, when set, is served as the single-page portfolio site.
	StaticDir string `mapstructure:"STATIC_DIR" yaml:"static_dir"`
}

// DatabaseConfig holds PostgreSQL connection details for the postgres storage backend.
type DatabaseConfig struct {
	Host        string `mapstructure:"HOST" yaml:"host"`
	Port        int    `mapstructure:"PORT" yaml:"port"`
	User        string `mapstructure:"USER" yaml:"user"`
	Password    string `mapstructure:"PASSWORD" yaml:"password"`
	Name        string `mapstructure:"NAME" yaml:"name"`
	SSLMode     string `mapstructure:"SSL_MODE" yaml:"ssl_mode"`
	MaxConns    int    `mapstructure:"MAX_CONNS" yaml:"max_conns"`
	MinConns    int    `mapstructure:"MIN_CONNS" yaml:"min_conns"`
	ConnMaxLife string `mapstructure:"CONN_MAX_LIFE" yaml:"conn_max_life"`
	AutoMigrate bool   `mapstructure:"AUTO_MIGRATE" yaml:"auto_migrate"`
}

// URL returns a postgres:// connection URL suitable for pgx and golang-migrate.
func (c *DatabaseConfig) URL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
		sslmode,
	)
}

// RedisConfig holds Redis connection details. Redis only backs the contact rate limiter.
type RedisConfig struct {
	Address      string `mapstructure:"ADDRESS" yaml:"address"`
	Password     string `mapstructure:"PASSWORD" yaml:"password"`
	DB           int    `mapstructure:"DB" yaml:"db"`
	UseTLS       bool   `mapstructure:"USE_TLS" yaml:"use_tls"`
	PoolSize     int    `mapstructure:"POOL_SIZE" yaml:"pool_size"`
	MinIdleConns int    `mapstructure:"MIN_IDLE_CONNS" yaml:"min_idle_conns"`
}

// ExternalServices holds credentials for the Supabase project. The service
// key is the privileged credential used for every insert.
type ExternalServices struct {
	SupabaseURL        string `mapstructure:"SUPABASE_URL" yaml:"supabase_url"`
	SupabaseServiceKey string `mapstructure:"SUPABASE_SERVICE_KEY" yaml:"supabase_service_key"`
}

// EmailConfig holds configuration for the two contact emails.
type EmailConfig struct {
	ResendAPIKey string `mapstructure:"RESEND_API_KEY" yaml:"resend_api_key"`
	// FromAddress is the sending mailbox shared by both emails.
	FromAddress string `mapstructure:"FROM_ADDRESS" yaml:"from_address"`
	// NotificationFromName is the display name on mail sent to the owner.
	NotificationFromName string `mapstructure:"NOTIFICATION_FROM_NAME" yaml:"notification_from_name"`
	// ConfirmationFromName is the display name on mail sent to the submitter.
	ConfirmationFromName string `mapstructure:"CONFIRMATION_FROM_NAME" yaml:"confirmation_from_name"`
	// OwnerAddress receives every notification.
	OwnerAddress string `mapstructure:"OWNER_ADDRESS" yaml:"owner_address"`
}

// NotificationFrom returns the formatted from identity for owner notifications.
func (c *EmailConfig) NotificationFrom() string {
	return fmt.Sprintf("%s <%s>", c.NotificationFromName, c.FromAddress)
}

// ConfirmationFrom returns the formatted from identity for submitter confirmations.
func (c *EmailConfig) ConfirmationFrom() string {
	return fmt.Sprintf("%s <%s>", c.ConfirmationFromName, c.FromAddress)
}

// ProfileConfig is the signature block of the confirmation email.
type ProfileConfig struct {
	OwnerName   string `mapstructure:"OWNER_NAME" yaml:"owner_name"`
	Tagline     string `mapstructure:"TAGLINE" yaml:"tagline"`
	LinkedInURL string `mapstructure:"LINKEDIN_URL" yaml:"linkedin_url"`
	GitHubURL   string `mapstructure:"GITHUB_URL" yaml:"github_url"`
}

// StorageConfig selects where submissions are persisted.
type StorageConfig struct {
	Backend string `mapstructure:"BACKEND" yaml:"backend"`
}

// RateLimitConfig holds configuration for the contact endpoint rate limiter.
type RateLimitConfig struct {
	Enabled bool `mapstructure:"ENABLED" yaml:"enabled"`
	// Maximum contact submissions per client IP within one window
	ContactRequestsPerWindow int `mapstructure:"CONTACT_REQUESTS_PER_WINDOW" yaml:"contact_requests_per_window"`
	// Window duration in seconds
	WindowSeconds int `mapstructure:"WINDOW_SECONDS" yaml:"window_seconds"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server           ServerConfig     `mapstructure:"SERVER" yaml:"server"`
	Database         DatabaseConfig   `mapstructure:"DATABASE" yaml:"database"`
	Redis            RedisConfig      `mapstructure:"REDIS" yaml:"redis"`
	Email            EmailConfig      `mapstructure:"EMAIL" yaml:"email"`
	Profile          ProfileConfig    `mapstructure:"PROFILE" yaml:"profile"`
	Storage          StorageConfig    `mapstructure:"STORAGE" yaml:"storage"`
	ExternalServices ExternalServices `mapstructure:"EXTERNAL_SERVICES" yaml:"external_services"`
	RateLimit        RateLimitConfig  `mapstructure:"RATE_LIMIT" yaml:"rate_limit"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.TRUSTED_PROXIES", []string{})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("SERVER.STATIC_DIR", "")
	v.SetDefault("DATABASE.HOST", "localhost")
	v.SetDefault("DATABASE.PORT", 5432)
	v.SetDefault("DATABASE.USER", "postgres")
	v.SetDefault("DATABASE.PASSWORD", "")
	v.SetDefault("DATABASE.NAME", "portfolio")
	v.SetDefault("DATABASE.SSL_MODE", "disable")
	v.SetDefault("DATABASE.MAX_CONNS", 4)
	v.SetDefault("DATABASE.MIN_CONNS", 1)
	v.SetDefault("DATABASE.CONN_MAX_LIFE", "1h")
	v.SetDefault("DATABASE.AUTO_MIGRATE", true)
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.USE_TLS", false)
	v.SetDefault("REDIS.POOL_SIZE", 3)
	v.SetDefault("REDIS.MIN_IDLE_CONNS", 1)
	v.SetDefault("EMAIL.FROM_ADDRESS", "onboarding@resend.dev")
	v.SetDefault("EMAIL.NOTIFICATION_FROM_NAME", "Portfolio Contact")
	v.SetDefault("EMAIL.CONFIRMATION_FROM_NAME", "Manish Reddy")
	v.SetDefault("EMAIL.OWNER_ADDRESS", "kmanishreddy1215@gmail.com")
	v.SetDefault("PROFILE.OWNER_NAME", "Manish Reddy")
	v.SetDefault("PROFILE.TAGLINE", "AI/ML Engineer • Cloud Enthusiast • Tech Leader")
	v.SetDefault("PROFILE.LINKEDIN_URL", "https://linkedin.com/in/manishreddy1215")
	v.SetDefault("PROFILE.GITHUB_URL", "https://github.com/manishreddy1215")
	v.SetDefault("STORAGE.BACKEND", StorageSupabase)
	v.SetDefault("RATE_LIMIT.ENABLED", false)
	v.SetDefault("RATE_LIMIT.CONTACT_REQUESTS_PER_WINDOW", 5)
	v.SetDefault("RATE_LIMIT.WINDOW_SECONDS", 600)
}

// LoadConfig loads configuration from environment variables using Viper,
// applies defaults, unmarshals and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", logger.EnvironmentVar},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.TRUSTED_PROXIES", "TRUSTED_PROXIES"},
		{"SERVER.VERSION", "APP_VERSION"},
		{"SERVER.STATIC_DIR", "STATIC_DIR"},
		// Database config
		{"DATABASE.HOST", "DB_HOST"},
		{"DATABASE.PORT", "DB_PORT"},
		{"DATABASE.USER", "DB_USER"},
		{"DATABASE.PASSWORD", "DB_PASSWORD"},
		{"DATABASE.NAME", "DB_NAME"},
		{"DATABASE.SSL_MODE", "DB_SSL_MODE"},
		{"DATABASE.AUTO_MIGRATE", "DB_AUTO_MIGRATE"},
		// Redis config
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"REDIS.USE_TLS", "REDIS_USE_TLS"},
		// Supabase
		{"EXTERNAL_SERVICES.SUPABASE_URL", "SUPABASE_URL"},
		{"EXTERNAL_SERVICES.SUPABASE_SERVICE_KEY", "SUPABASE_SERVICE_ROLE_KEY"},
		// Email config
		{"EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
		{"EMAIL.FROM_ADDRESS", "EMAIL_FROM_ADDRESS"},
		{"EMAIL.NOTIFICATION_FROM_NAME", "EMAIL_NOTIFICATION_FROM_NAME"},
		{"EMAIL.CONFIRMATION_FROM_NAME", "EMAIL_CONFIRMATION_FROM_NAME"},
		{"EMAIL.OWNER_ADDRESS", "CONTACT_OWNER_EMAIL"},
		// Profile
		{"PROFILE.OWNER_NAME", "PROFILE_OWNER_NAME"},
		{"PROFILE.TAGLINE", "PROFILE_TAGLINE"},
		{"PROFILE.LINKEDIN_URL", "PROFILE_LINKEDIN_URL"},
		{"PROFILE.GITHUB_URL", "PROFILE_GITHUB_URL"},
		// Storage
		{"STORAGE.BACKEND", "STORAGE_BACKEND"},
		// Rate limit config
		{"RATE_LIMIT.ENABLED", "RATE_LIMIT_ENABLED"},
		{"RATE_LIMIT.CONTACT_REQUESTS_PER_WINDOW", "RATE_LIMIT_CONTACT_REQUESTS_PER_WINDOW"},
		{"RATE_LIMIT.WINDOW_SECONDS", "RATE_LIMIT_WINDOW_SECONDS"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"server_port", cfg.Server.Port,
		"allowed_origins", cfg.Server.AllowedOrigins,
		"storage_backend", cfg.Storage.Backend,
		"owner_address", logger.MaskEmail(cfg.Email.OwnerAddress),
		"resend_api_key", logger.MaskSensitiveString(cfg.Email.ResendAPIKey, 3, 3),
		"rate_limit_enabled", cfg.RateLimit.Enabled,
	)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Info("Configuration validated successfully")
	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if !containsWildcard(cfg.Server.AllowedOrigins) {
		for _, origin := range cfg.Server.AllowedOrigins {
			if _, err := url.ParseRequestURI(origin); err != nil {
				return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
			}
		}
	}

	if err := validateEmailConfig(&cfg.Email); err != nil {
		return err
	}

	switch cfg.Storage.Backend {
	case StorageSupabase:
		if err := validateExternalServices(&cfg.ExternalServices); err != nil {
			return err
		}
	case StoragePostgres:
		if cfg.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if cfg.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if cfg.Database.Name == "" {
			return fmt.Errorf("database name is required")
		}
		if cfg.Database.Password == "" {
			logger.GetLogger().Warn("Database password is not set. Ensure this is intended (e.g., using trusted auth).")
		}
	default:
		return fmt.Errorf("unknown storage backend %q (want %q or %q)", cfg.Storage.Backend, StorageSupabase, StoragePostgres)
	}

	if cfg.RateLimit.Enabled {
		if cfg.Redis.Address == "" {
			return fmt.Errorf("redis address is required when rate limiting is enabled")
		}
		if cfg.RateLimit.ContactRequestsPerWindow <= 0 {
			return fmt.Errorf("rate limit contact requests per window must be positive")
		}
		if cfg.RateLimit.WindowSeconds <= 0 {
			return fmt.Errorf("rate limit window seconds must be positive")
		}
	}

	return nil
}

func validateEmailConfig(cfg *EmailConfig) error {
	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("resend API key is required")
	}
	if _, err := mail.ParseAddress(cfg.FromAddress); err != nil {
		return fmt.Errorf("invalid email from address '%s': %w", cfg.FromAddress, err)
	}
	if _, err := mail.ParseAddress(cfg.OwnerAddress); err != nil {
		return fmt.Errorf("invalid owner address '%s': %w", cfg.OwnerAddress, err)
	}
	if cfg.NotificationFromName == "" || cfg.ConfirmationFromName == "" {
		return fmt.Errorf("email from names are required")
	}
	return nil
}

func validateExternalServices(services *ExternalServices) error {
	if services.SupabaseURL == "" {
		return fmt.Errorf("supabase URL is required")
	}
	if _, err := url.ParseRequestURI(services.SupabaseURL); err != nil {
		return fmt.Errorf("invalid supabase URL: %w", err)
	}
	if services.SupabaseServiceKey == "" {
		return fmt.Errorf("supabase service role key is required")
	}
	return nil
}

// containsWildcard checks if the list of allowed origins contains the wildcard "*".
func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
