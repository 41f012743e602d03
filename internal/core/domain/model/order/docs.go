// Package order provides domain entities and business logic for order
// management in the print-on-demand marketplace. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root holding the buyer reference, line items,
//     frozen total price, and lifecycle status
//   - Item: An order line with quantity and prices frozen at creation
//   - Status: A state machine that enforces valid order status transitions
//   - HistoryEntry: An append-only audit record of accepted transitions
//
// Key business rules:
//   - Orders are created in PENDING status with at least one item
//   - Item membership and all monetary amounts are immutable after creation
//   - Status follows the fixed transition table; CANCELLED and REFUNDED are
//     terminal, and a same-status update is always accepted as a no-op
//   - Every accepted transition produces one history entry
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
