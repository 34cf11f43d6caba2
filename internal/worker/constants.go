package worker

// Log messages
const (
	LogMsgJobFailed   = "Worker job failed"
	LogMsgJobPanicked = "Worker job panicked"
)

// ErrMsgJobPanicked wraps a recovered panic value
const ErrMsgJobPanicked = "job panicked: %v"

// unnamedJob labels jobs that do not implement Named
const unnamedJob = "anonymous"
