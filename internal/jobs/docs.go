// Package jobs provides scheduled background tasks for the order integrity service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with seconds).
//
// # Available Jobs
//
// IntegrityAuditJob - scans stored orders for state/status pairs missing from the
// registry, logs each offender and publishes the count as a gauge.
//
// # Usage
//
//	audit := jobs.NewIntegrityAuditJob(inconsistentOrdersHandler, metrics, "0 */5 * * * *", 0, logger)
//	jobManager := jobs.NewJobManager(audit)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed audit pass is logged and leaves the gauge at its previous value.
package jobs
