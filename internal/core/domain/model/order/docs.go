// Package order provides domain entities and business logic for order
// management in the food ordering system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns line items and manages the fulfillment lifecycle
//   - Item: An immutable order line with snapshot name and unit price
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have valid identifiers, a non-empty address, and at least one item
//   - The total is a creation-time price snapshot, immune to later catalog changes
//   - Status follows the workflow Pending -> Confirmed -> Preparing ->
//     ReadyForPickup -> OutForDelivery -> Delivered, with Cancelled reachable
//     from every non-terminal status except OutForDelivery
//   - A courier is bound to the order exactly when delivery starts
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
