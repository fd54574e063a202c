package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Default pool sizing for background jobs
const (
	DefaultWorkerCount = 2
	DefaultQueueSize   = 16
)

// Log messages for the maintenance worker
const (
	LogMsgMaintenanceStandby   = "Maintenance worker in standby"
	LogMsgMaintenanceApproach  = "Maintenance rollover scheduled"
	LogMsgMaintenanceStarting  = "Scheduled maintenance sweep starting"
	LogMsgMaintenanceCompleted = "Scheduled maintenance sweep completed"
	LogMsgMaintenanceSkipped   = "Scheduled maintenance sweep skipped"
	LogMsgMaintenanceFailed    = "Scheduled maintenance sweep failed"
	LogMsgMaintenanceNoSlot    = "No character yet, maintenance sweep idle"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
