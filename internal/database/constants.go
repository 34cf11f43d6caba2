package database

import "time"

// SQLite connection settings
const (
	// DriverName is the database/sql driver registered by modernc.org/sqlite
	DriverName = "sqlite"

	// MaxOpenConnections keeps a single writer on the local file
	MaxOpenConnections = 1

	// BusyTimeout is how long SQLite waits on a locked database file
	BusyTimeout = 5 * time.Second

	// DirPermissions is the mode used when creating the database directory
	DirPermissions = 0o755
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToCreateDir     = "failed to create database directory"
	ErrMsgFailedToOpenDatabase  = "failed to open sqlite database"
	ErrMsgFailedToPingDatabase  = "failed to ping database"
	ErrMsgFailedToConfigure     = "failed to configure sqlite"
	ErrMsgFailedToMigrate       = "failed to apply migrations"
	ErrMsgFailedToInitMigration = "failed to initialise migration provider"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
