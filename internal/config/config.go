package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvTest        = "test"

	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

type Config struct {
	AppEnv           string        `json:"app_env"`
	ServerPort       int           `json:"server_port"`
	JWTSecretKey     string        `json:"jwt_secret_key"`
	SessionTTL       time.Duration `json:"session_ttl"`
	DefaultRateLimit int           `json:"default_rate_limit"`
	GlobalRateLimit  int           `json:"global_rate_limit"`

	// Tenant resolution
	BaseDomain          string   `json:"base_domain"`
	DevHostSuffixes     []string `json:"dev_host_suffixes"`
	ReservedSubdomains  []string `json:"reserved_subdomains"`
	DevDefaultSubdomain string   `json:"dev_default_subdomain"`

	AllowRegistration bool   `json:"allow_registration"`
	StorageDriver     string `json:"storage_driver"`
	SessionStore      string `json:"session_store"`
	DBAutoMigrate     bool   `json:"db_auto_migrate"`

	ImageUploadTimeout  time.Duration `json:"image_upload_timeout"`
	ImageUploadAttempts int           `json:"image_upload_attempts"`
	ImageMaxBytes       int           `json:"image_max_bytes"`

	MetricsNamespace string `json:"metrics_namespace"`
}

func Load() (*Config, error) {
	return &Config{
		AppEnv:           normalizeEnv(getEnvWithDefault("APP_ENV", EnvProduction)),
		ServerPort:       getEnvIntWithDefault("SERVER_PORT", 10000),
		JWTSecretKey:     os.Getenv("JWT_SECRET_KEY"),
		SessionTTL:       getEnvDurationWithDefault("SESSION_TTL", 24*time.Hour),
		DefaultRateLimit: getEnvIntWithDefault("DEFAULT_RATE_LIMIT", 1000),  // per tenant per minute
		GlobalRateLimit:  getEnvIntWithDefault("GLOBAL_RATE_LIMIT", 10000), // per IP per minute

		BaseDomain:          getEnvWithDefault("BASE_DOMAIN", ""),
		DevHostSuffixes:     getEnvListWithDefault("DEV_HOST_SUFFIXES", []string{"replit.dev", "localhost"}),
		ReservedSubdomains:  getEnvListWithDefault("RESERVED_SUBDOMAINS", []string{"www"}),
		DevDefaultSubdomain: getEnvWithDefault("DEV_DEFAULT_SUBDOMAIN", "development"),

		AllowRegistration: getEnvBoolWithDefault("ALLOW_REGISTRATION", true),
		StorageDriver:     getEnvWithDefault("STORAGE_DRIVER", StorageDriverPostgres),
		SessionStore:      getEnvWithDefault("SESSION_STORE", SessionStoreRedis),
		DBAutoMigrate:     getEnvBoolWithDefault("DB_AUTO_MIGRATE", true),

		ImageUploadTimeout:  getEnvDurationWithDefault("IMAGE_UPLOAD_TIMEOUT", 15*time.Second),
		ImageUploadAttempts: getEnvIntWithDefault("IMAGE_UPLOAD_ATTEMPTS", 3),
		ImageMaxBytes:       getEnvIntWithDefault("IMAGE_MAX_BYTES", 5<<20),

		MetricsNamespace: getEnvWithDefault("METRICS_NAMESPACE", "digital_menu"),
	}, nil
}

// IsProduction is the only switch that disables the tenant header override.
// Anything other than a known non-production environment counts as production.
func (c *Config) IsProduction() bool {
	switch normalizeEnv(c.AppEnv) {
	case EnvDevelopment, EnvStaging, EnvTest:
		return false
	default:
		return true
	}
}

func (c *Config) IsDevelopment() bool {
	return normalizeEnv(c.AppEnv) == EnvDevelopment
}

func normalizeEnv(env string) string {
	return strings.ToLower(strings.TrimSpace(env))
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDurationWithDefault returns environment variable as duration or default if not set
func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvListWithDefault splits a comma separated variable, dropping empty items
func getEnvListWithDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
