package worker

import "time"

// Log messages for the worker pool
const (
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgWorkerJobCompleted = "Worker job completed"
	LogMsgWorkerQueueFull    = "Worker queue full, dropping job"
	LogMsgWorkerPoolStopped  = "Worker pool stopped"
)

// Pool defaults
const (
	DefaultWorkers    = 1
	DefaultQueueSize  = 8
	DefaultJobTimeout = time.Minute
)
