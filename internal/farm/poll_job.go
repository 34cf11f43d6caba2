package farm

import (
	"context"
	"fmt"
)

// PollJob is the worker job the scheduler runs on every driver tick
type PollJob struct {
	svc  Service
	mode *ModeSwitch
}

// NewPollJob creates a poll job reading the time scale from mode
func NewPollJob(svc Service, mode *ModeSwitch) *PollJob {
	return &PollJob{svc: svc, mode: mode}
}

// Process runs one poll at the current time scale
func (j *PollJob) Process(ctx context.Context) error {
	if _, err := j.svc.Poll(ctx, j.mode.Scale()); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgPollFailed, err)
	}
	return nil
}

// Name labels the job in worker logs
func (j *PollJob) Name() string { return PollJobName }
