package worker

// Pool and lifecycle log messages
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerStopping    = "Stopping worker"
	LogMsgWorkerStopped     = "Worker stopped"
	LogMsgWorkerStopTimeout = "Worker shutdown timed out"
)

// Log messages for the idle session reaper
const (
	LogMsgReaperStarted     = "Idle session reaper started"
	LogMsgReaperDisabled    = "Idle session reaper disabled"
	LogMsgReaperSweep       = "Idle session sweep"
	LogMsgSessionEvicted    = "Evicted idle session"
	LogMsgEvictionFailed    = "Failed to evict idle session"
	LogMsgEvictionQueueFull = "Eviction queue full, retrying next sweep"
	ReaperWorkerName        = "idle session reaper"
	DefaultReaperWorkers    = 2
	DefaultReaperQueueSize  = 64
)
