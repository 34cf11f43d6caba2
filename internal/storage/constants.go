package storage

import "time"

// Storage drivers
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// Cache defaults
const (
	DefaultCacheSize = 16
	DefaultCacheTTL  = 5 * time.Minute
)

// CorruptFileSuffix is appended to a storage file that could not be parsed
const CorruptFileSuffix = ".corrupt"

const (
	filePermissions = 0o644
	dirPermissions  = 0o755
)

// Error messages
const (
	ErrMsgUnknownDriver   = "unknown storage driver %q"
	ErrMsgStoreClosed     = "storage is closed"
	ErrMsgFailedToRead    = "failed to read storage file"
	ErrMsgFailedToWrite   = "failed to write storage file"
	ErrMsgFailedToOpenDir = "failed to create storage directory"
)

// Log messages
const (
	LogMsgCorruptFile     = "Storage file is corrupt, starting empty"
	LogMsgCorruptFileKept = "Could not move corrupt storage file aside"
)
