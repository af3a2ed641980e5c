package jobs

import (
	"context"
	"log/slog"

	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// courierOrdersLister is the query dependency of the courier board.
type courierOrdersLister interface {
	Handle(ctx context.Context, query queries.GetCourierOrdersQuery) ([]queries.OrderResponse, error)
}

// CourierBoardJob polls one courier's assignment list every five seconds and
// logs orders newly assigned to them.
type CourierBoardJob struct {
	courierID kernel.UUID
	handler   courierOrdersLister
	cron      *cron.Cron
	logger    *slog.Logger

	seen   map[string]bool
	primed bool
}

// NewCourierBoardJob creates a polling job for the given courier.
func NewCourierBoardJob(
	courierID kernel.UUID,
	handler courierOrdersLister,
	logger *slog.Logger,
) *CourierBoardJob {
	return &CourierBoardJob{
		courierID: courierID,
		handler:   handler,
		// Overlapping runs would race on the snapshot; skip instead.
		cron: cron.New(cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger.With("component", "courier_board_job"),
		seen:   make(map[string]bool),
	}
}

// Start begins polling every five seconds.
func (j *CourierBoardJob) Start() error {
	query, err := queries.NewGetCourierOrdersQuery(j.courierID)
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
	j.logger.InfoContext(context.Background(), "Courier board job started (polling every 5 seconds)",
		"courier_id", j.courierID.String())
	return nil
}

// poll re-issues the assignment list query, replaces the snapshot of seen
// order ids, and logs the ids that were not present before.
func (j *CourierBoardJob) poll(ctx context.Context, query queries.GetCourierOrdersQuery) {
	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Courier board poll failed", "error", err)
		return
	}

	next := make(map[string]bool, len(orders))
	for _, order := range orders {
		id := order.ID.String()
		next[id] = true
		if j.primed && !j.seen[id] {
			j.logger.InfoContext(ctx, "New delivery assigned",
				"order_id", id,
				"delivery_address", order.DeliveryAddress,
			)
		}
	}
	j.seen = next
	j.primed = true
}

// Stop stops the polling job.
func (j *CourierBoardJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier board job stopped")
}
