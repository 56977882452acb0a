package jobs

import (
	"context"
	"log/slog"

	"orderintegrity/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultAuditSchedule runs the audit at the top of every minute.
const DefaultAuditSchedule = "0 * * * * *"

type InconsistentOrdersFinder interface {
	Handle(ctx context.Context, query queries.GetInconsistentOrdersQuery) ([]queries.GetInconsistentOrdersQueryResponse, error)
}

// InconsistentOrdersRecorder receives the size of the last audit result.
type InconsistentOrdersRecorder interface {
	SetInconsistentOrders(n int)
}

// IntegrityAuditJob periodically looks for stored orders whose status is not assigned
// to their state. Such rows can only appear when orders are written around the save hook
// or when the registry is edited underneath them.
type IntegrityAuditJob struct {
	finder   InconsistentOrdersFinder
	recorder InconsistentOrdersRecorder
	schedule string
	limit    int
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewIntegrityAuditJob creates the audit job. schedule is a six-field cron expression;
// an empty one means DefaultAuditSchedule. A zero limit means the query default.
func NewIntegrityAuditJob(
	finder InconsistentOrdersFinder,
	recorder InconsistentOrdersRecorder,
	schedule string,
	limit int,
	logger *slog.Logger,
) *IntegrityAuditJob {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}
	return &IntegrityAuditJob{
		finder:   finder,
		recorder: recorder,
		schedule: schedule,
		limit:    limit,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "integrity_audit_job"),
	}
}

// Start schedules the audit.
func (j *IntegrityAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Integrity audit job started", "schedule", j.schedule)
	return nil
}

// Run performs one audit pass.
func (j *IntegrityAuditJob) Run(ctx context.Context) {
	query, err := queries.NewGetInconsistentOrdersQuery(j.limit)
	if err != nil {
		j.logger.ErrorContext(ctx, "Integrity audit misconfigured", "error", err)
		return
	}

	orders, err := j.finder.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Integrity audit failed", "error", err)
		return
	}

	j.recorder.SetInconsistentOrders(len(orders))

	for _, o := range orders {
		j.logger.WarnContext(ctx, "Order status is not assigned to its state",
			"order_id", o.ID.String(),
			"state", o.State.String(),
			"status", o.Status.String(),
		)
	}
	if len(orders) == query.Limit() {
		j.logger.WarnContext(ctx, "Integrity audit hit its limit, more orders may be affected", "limit", query.Limit())
	}
}

// Stop stops the audit job and waits for a running pass to finish.
func (j *IntegrityAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Integrity audit job stopped")
}
