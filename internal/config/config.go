package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int    `validate:"min=1,max=65535"`
	LogLevel       string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat      string `validate:"oneof=json text"`
	LogAddSource   bool
	Environment    string `validate:"required"`
	ServiceName    string `validate:"required"`
	Version        string `validate:"required"`
	StorageDriver  string `validate:"oneof=sqlite file memory"`
	StoragePath    string `validate:"required_unless=StorageDriver memory"`
	CatalogPath    string
	TimeMode       string        `validate:"oneof=demo real"`
	PollInterval   time.Duration `validate:"gt=0"`
	CacheSize      int
	CacheTTL       time.Duration `validate:"gte=0"`
	DeadLetterPath string
	APIKey         string // optional; empty leaves the API open to local callers
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:      getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:    getEnv(EnvServiceName, DefaultServiceName),
		Version:        getEnv(EnvVersion, DefaultVersion),
		StorageDriver:  getEnv(EnvStorageDriver, DefaultStorageDriver),
		StoragePath:    getEnv(EnvStoragePath, DefaultStoragePath),
		CatalogPath:    getEnv(EnvCatalogPath, ""),
		TimeMode:       getEnv(EnvTimeMode, DefaultTimeMode),
		DeadLetterPath: getEnv(EnvDeadLetterPath, DefaultDeadLetterPath),
		APIKey:         getEnv(EnvAPIKey, ""),
	}

	var err error
	if cfg.Port, err = getEnvAsInt(EnvPort, DefaultPort); err != nil {
		return nil, err
	}
	if cfg.CacheSize, err = getEnvAsInt(EnvCacheSize, DefaultCacheSize); err != nil {
		return nil, err
	}
	if cfg.PollInterval, err = getEnvAsDuration(EnvPollInterval, DefaultPollInterval); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getEnvAsDuration(EnvCacheTTL, DefaultCacheTTL); err != nil {
		return nil, err
	}
	if cfg.LogAddSource, err = getEnvAsBool(EnvLogAddSource, false); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidInt, key, raw, err)
	}
	return v, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf(ErrMsgInvalidBool, key, raw, err)
	}
	return v, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidDuration, key, raw, err)
	}
	return v, nil
}
