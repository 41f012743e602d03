package order

import (
	"errors"
	"fmt"

	"printshop/internal/pkg/errs"
)

var (
	// ErrInvalidStatusTransition is the sentinel wrapped by every rejected
	// status transition. Use errors.Is to classify, and the returned error's
	// message to surface both states to the caller.
	ErrInvalidStatusTransition = errors.New("order status transition is not allowed")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed allowed-transition table so that
// orders follow the correct payment and fulfillment workflow.
//
// State transitions:
//
//	PENDING ──> PENDING_PAYMENT ──> PAYMENT_RECEIVED ──> IN_PRODUCTION ──> SHIPPED ──> DELIVERED
//	                 │    ▲                │                    │              │            │
//	                 ▼    │                │                    │              └──> REFUNDED <┘
//	          PAYMENT_FAILED               └────> REFUNDED <────┘
//
// CANCELLED is reachable from every non-terminal state except SHIPPED and
// DELIVERED; CANCELLED and REFUNDED are terminal. A same-status "transition"
// is always permitted and treated as a no-op by the state machine.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at order creation.
	Pending

	// PendingPayment indicates the buyer has been asked to pay.
	PendingPayment

	// PaymentReceived indicates payment completed successfully.
	PaymentReceived

	// PaymentFailed indicates the payment attempt was rejected; the buyer
	// may retry, moving the order back to PendingPayment.
	PaymentFailed

	// InProduction indicates the items are being printed.
	InProduction

	// Shipped indicates the parcel has left production.
	Shipped

	// Delivered indicates the parcel reached the buyer.
	Delivered

	// Cancelled is a terminal state with no further transitions allowed.
	Cancelled

	// Refunded is a terminal state with no further transitions allowed.
	Refunded
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		Pending:         "PENDING",
		PendingPayment:  "PENDING_PAYMENT",
		PaymentReceived: "PAYMENT_RECEIVED",
		PaymentFailed:   "PAYMENT_FAILED",
		InProduction:    "IN_PRODUCTION",
		Shipped:         "SHIPPED",
		Delivered:       "DELIVERED",
		Cancelled:       "CANCELLED",
		Refunded:        "REFUNDED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "PENDING",
		PendingPayment:  "PENDING_PAYMENT",
		PaymentReceived: "PAYMENT_RECEIVED",
		PaymentFailed:   "PAYMENT_FAILED",
		InProduction:    "IN_PRODUCTION",
		Shipped:         "SHIPPED",
		Delivered:       "DELIVERED",
		Cancelled:       "CANCELLED",
		Refunded:        "REFUNDED",
	}
}

// allowedTransitions returns the fixed adjacency table of the order state
// machine. Terminal states map to an empty set. The same-status case is
// handled by CanTransitionTo, not by the table.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:         {PendingPayment, Cancelled},
		PendingPayment:  {PaymentReceived, PaymentFailed, Cancelled},
		PaymentReceived: {InProduction, Cancelled, Refunded},
		PaymentFailed:   {PendingPayment, Cancelled},
		InProduction:    {Shipped, Cancelled, Refunded},
		Shipped:         {Delivered, Refunded},
		Delivered:       {Refunded},
		Cancelled:       {},
		Refunded:        {},
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are the nine lifecycle states; Unknown (0) and any other
// values are invalid. This method is used to ensure Status values from
// external sources (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the uppercase wire name of the status, e.g. "PENDING_PAYMENT".
// Invalid values render as "UNKNOWN". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a status from its wire representation.
// Used when reconstructing orders from persistence or API input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether the status admits no further transitions.
// Only Cancelled and Refunded are terminal.
func (s Status) IsTerminal() bool {
	next, ok := allowedTransitions()[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the state machine permits moving from the
// receiver to the requested status.
//
// Rules:
//   - A same-status transition is always permitted (no-op)
//   - Otherwise the requested status must appear in the receiver's
//     allowed-next set; unknown states have no entry and permit nothing
//
// This is a pure function with no side effects, safe to check before
// attempting the actual transition.
func (s Status) CanTransitionTo(requested Status) bool {
	if s == requested {
		return true
	}

	for _, allowed := range allowedTransitions()[s] {
		if allowed == requested {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs the transition to the requested status.
//
// Returns:
//   - (requested, nil) when the transition is permitted
//   - (0, error wrapping ErrInvalidStatusTransition) naming both states
//     when the transition is not permitted
//   - (0, validation error) when the requested status itself is invalid
//
// This method is used by Order.ChangeStatus to enforce the state machine.
func (s Status) TransitionTo(requested Status) (Status, error) {
	if err := requested.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(requested) {
		return 0, fmt.Errorf("%w: cannot update order from %s to %s", ErrInvalidStatusTransition, s, requested)
	}

	return requested, nil
}
