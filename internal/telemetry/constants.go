package telemetry

// DefaultBufferSize is the number of events queued before new ones are dropped
const DefaultBufferSize = 256

// Event names
const (
	EventLinkCreated     = "AlexaLinkCreated"
	EventLinkRegenerated = "AlexaLinkRegenerated"
	EventLinkFailure     = "AlexaLinkFailure"
)

// Log Messages
const (
	LogMsgEventRecorded   = "Telemetry event recorded"
	LogMsgEventDropped    = "Telemetry queue full, event dropped"
	LogMsgEventPanicked   = "Telemetry event handler panicked"
	LogMsgSinkStopped     = "Telemetry sink stopped"
	LogMsgShutdownTimeout = "Telemetry sink shutdown timed out"
)
