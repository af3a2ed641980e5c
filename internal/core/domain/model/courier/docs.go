// Package courier provides domain entities and business logic for courier
// management in the food ordering system. It implements the Courier aggregate
// root with availability handling.
//
// The package includes:
//   - Courier: The aggregate root that manages courier identity and availability
//   - Status: The Available/Busy availability state
//
// Key business rules:
//   - Couriers must have a valid unique identifier, name, and contact phone
//   - A courier is Busy if and only if bound to one active order
//   - Assignment requires Available status; release restores it
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package courier
