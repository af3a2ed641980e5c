// Package ports defines repository and unit-of-work interfaces for the core.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/courier"
	"foodcourt/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
//
// MarkBusy is the concurrency-critical operation: it must be an atomic
// compare-and-set on the availability column so that, given N concurrent
// assignment attempts against one Available courier, exactly one succeeds and
// the rest fail with errs.ErrCourierUnavailable.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllAvailable retrieves all couriers currently Available,
	// in a stable listing order.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)

	// MarkBusy atomically flips the courier from Available to Busy.
	// Fails with errs.ErrCourierUnavailable if the courier is unknown, already
	// Busy, or a concurrent MarkBusy won the compare-and-set.
	MarkBusy(ctx context.Context, id kernel.UUID) error

	// Release marks the courier Available again.
	Release(ctx context.Context, id kernel.UUID) error
}
