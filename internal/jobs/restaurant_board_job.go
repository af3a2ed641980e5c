package jobs

import (
	"context"
	"log/slog"

	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// restaurantOrdersLister is the query dependency of the restaurant board.
type restaurantOrdersLister interface {
	Handle(ctx context.Context, query queries.GetRestaurantOrdersQuery) ([]queries.OrderResponse, error)
}

// RestaurantBoardJob polls one restaurant's order list every five seconds and
// logs orders that appeared since the previous poll. It replaces the kitchen
// dashboard's refresh loop.
type RestaurantBoardJob struct {
	restaurantID kernel.UUID
	handler      restaurantOrdersLister
	cron         *cron.Cron
	logger       *slog.Logger

	seen   map[string]bool
	primed bool
}

// NewRestaurantBoardJob creates a polling job for the given restaurant.
func NewRestaurantBoardJob(
	restaurantID kernel.UUID,
	handler restaurantOrdersLister,
	logger *slog.Logger,
) *RestaurantBoardJob {
	return &RestaurantBoardJob{
		restaurantID: restaurantID,
		handler:      handler,
		// A poll slower than the interval must not overlap with the next one:
		// the snapshot is unsynchronized state owned by a single running poll.
		cron: cron.New(cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger.With("component", "restaurant_board_job"),
		seen:   make(map[string]bool),
	}
}

// Start begins polling every five seconds.
func (j *RestaurantBoardJob) Start() error {
	query, err := queries.NewGetRestaurantOrdersQuery(j.restaurantID)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc("*/5 * * * * *", func() {
		j.poll(context.Background(), query)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Restaurant board job started (polling every 5 seconds)",
		"restaurant_id", j.restaurantID.String())
	return nil
}

// poll re-issues the order list query, replaces the snapshot of seen order
// ids, and logs the ids that were not present before.
func (j *RestaurantBoardJob) poll(ctx context.Context, query queries.GetRestaurantOrdersQuery) {
	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		// Keep the previous snapshot so a transient failure does not
		// re-announce every order on the next successful poll.
		j.logger.ErrorContext(ctx, "Restaurant board poll failed", "error", err)
		return
	}

	next := make(map[string]bool, len(orders))
	for _, order := range orders {
		id := order.ID.String()
		next[id] = true
		// The first poll only seeds the snapshot; announcing the whole
		// backlog on startup would be noise, not news.
		if j.primed && !j.seen[id] {
			j.logger.InfoContext(ctx, "New order placed",
				"order_id", id,
				"status", order.Status,
				"total", order.Total.String(),
			)
		}
	}
	j.seen = next
	j.primed = true
}

// Stop stops the polling job.
func (j *RestaurantBoardJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Restaurant board job stopped")
}
