// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the food ordering system.
// It implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CourierDispatcher: A domain service for selecting and binding couriers to orders
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
