package jobs

import (
	"fmt"
	"log/slog"

	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	restaurantBoardJob *RestaurantBoardJob
	courierBoardJob    *CourierBoardJob
}

// NewJobManager creates a job manager with both polling boards wired to their
// query handlers.
func NewJobManager(
	restaurantID kernel.UUID,
	courierID kernel.UUID,
	restaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler,
	courierOrdersHandler queries.GetCourierOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		restaurantBoardJob: NewRestaurantBoardJob(restaurantID, restaurantOrdersHandler, logger),
		courierBoardJob:    NewCourierBoardJob(courierID, courierOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.restaurantBoardJob.Start(); err != nil {
		return fmt.Errorf("failed to start restaurant board job: %w", err)
	}

	if err := jm.courierBoardJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.restaurantBoardJob.Stop()
		return fmt.Errorf("failed to start courier board job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.restaurantBoardJob.Stop()
	jm.courierBoardJob.Stop()
}
