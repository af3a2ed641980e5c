// Package jobs provides scheduled background tasks for the food court system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to drive the polling dashboards of the food court service.
//
// # Available Jobs
//
// 1. RestaurantBoardJob - Polls a restaurant's order list every five seconds and logs newly placed orders
// 2. CourierBoardJob - Polls a courier's assignment list every five seconds and logs newly assigned orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required query handlers
//	jobManager := jobs.NewJobManager(restaurantID, courierID, restaurantOrdersHandler, courierOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use the cron expression "*/5 * * * * *" which means they run every
// five seconds. Each run replaces the job's local snapshot of seen order
// identifiers and reports only the rows that were not present before.
//
// # Error Handling
//
// Poll failures are logged and the previous snapshot is kept, so a transient
// database error never floods the log with repeated "new order" lines.
package jobs
