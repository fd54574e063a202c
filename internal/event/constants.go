package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)

// Log message constants
const (
	LogMsgPublishFailed     = "Failed to publish event, initiating async retry"
	LogMsgRetrySucceeded    = "Successfully published event after retry"
	LogMsgRetryFailed       = "Retry failed"
	LogMsgDeadLetterOpen    = "Failed to open dead letter file"
	LogMsgDeadLetterWrite   = "Failed to write to dead letter file"
	LogMsgDeadLetterWritten = "Event written to dead letter queue"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
