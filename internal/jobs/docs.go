// Package jobs provides scheduled background tasks for the fulfillment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PaymentConfirmationJob - Runs every second to apply recorded payment
// confirmations, moving PENDING orders to CONFIRMED.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(applyConfirmationsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The confirmation job treats an empty confirmation queue as idle time, not
// an error. Anything else is logged: a failing sweep means paid orders are
// not being confirmed.
package jobs
