package bootstrap

// =============================================================================
// Log files
// =============================================================================

const (
	DirPermission     = 0o755
	LogFilePermission = 0o644

	// Log files are named londontravel_<timestamp>.log so a lexical sort is
	// also a chronological one
	LogFilePrefix          = "londontravel_"
	LogFileExtension       = ".log"
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFilesKept counts the file about to be opened
	LogFilesKept = 10
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting London Travel"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgLogPruneFailed      = "Failed to prune old log file"
	ErrMsgCreateLogsDir       = "failed to create logs directory"
	ErrMsgOpenLogFile         = "failed to open log file"
)

// =============================================================================
// Services
// =============================================================================

// TelemetryBufferSize is the number of linking events queued before new ones are dropped
const TelemetryBufferSize = 256

const (
	ErrMsgInvalidSessionKey = "failed to create session codec"
)

// =============================================================================
// Shutdown
// =============================================================================

const (
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgShuttingDownTelemetry = "Flushing telemetry..."
	LogMsgServerStopped         = "Server stopped"
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgClosingDatabase       = "Closing database pool"
	LogMsgComponentShutdown     = "Component shutdown failed"

	ComponentNameTelemetry = "telemetry"
)
