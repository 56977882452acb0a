package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	integrityAuditJob *IntegrityAuditJob
}

func NewJobManager(integrityAuditJob *IntegrityAuditJob) *JobManager {
	return &JobManager{
		integrityAuditJob: integrityAuditJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.integrityAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start integrity audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.integrityAuditJob.Stop()
}
