package config

import "time"

// Environment variable names
const (
	EnvPort           = "PORT"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvLogAddSource   = "LOG_ADD_SOURCE"
	EnvEnvironment    = "ENVIRONMENT"
	EnvServiceName    = "SERVICE_NAME"
	EnvVersion        = "VERSION"
	EnvStorageDriver  = "STORAGE_DRIVER"
	EnvStoragePath    = "STORAGE_PATH"
	EnvCatalogPath    = "CATALOG_PATH"
	EnvTimeMode       = "TIME_MODE"
	EnvPollInterval   = "POLL_INTERVAL"
	EnvCacheSize      = "CACHE_SIZE"
	EnvCacheTTL       = "CACHE_TTL"
	EnvDeadLetterPath = "DEAD_LETTER_PATH"
	EnvAPIKey         = "API_KEY"
)

// Defaults
const (
	DefaultPort           = 8080
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultServiceName    = "toktok-farm"
	DefaultVersion        = "dev"
	DefaultStorageDriver  = "sqlite"
	DefaultStoragePath    = "data/farm.db"
	DefaultTimeMode       = "demo"
	DefaultPollInterval   = 500 * time.Millisecond
	DefaultCacheSize      = 16
	DefaultCacheTTL       = time.Minute
	DefaultDeadLetterPath = "data/deadletter.jsonl"
)

// Error messages
const (
	ErrMsgInvalidInt      = "invalid %s value %q: %w"
	ErrMsgInvalidBool     = "invalid %s value %q: %w"
	ErrMsgInvalidDuration = "invalid %s value %q: %w"
	ErrMsgInvalidField    = "invalid %s value %q (must satisfy %s)"
	ErrMsgInvalidConfig   = "invalid configuration: %w"
)

// Warning messages
const (
	WarnMsgMemoryStorage = "STORAGE_DRIVER=memory keeps no progress across restarts"
	WarnMsgDemoInProd    = "TIME_MODE=demo in a prod environment accelerates growth 360x"
)
