package order

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
)

var (
	// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry instance
	// was not created through its factory methods.
	ErrHistoryEntryIsNotConstructed = errors.New(
		"HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry",
	)
)

// HistoryEntry is one record of the append-only order status audit trail.
// An entry is written for every accepted transition, including the no-op
// same-status case. Entries are never updated or deleted.
//
// The updatedBy reference is nil for transitions performed by the system
// itself (background jobs, payment callbacks); readers render such entries
// with the literal actor name "System".
type HistoryEntry struct {
	// id is the unique identifier for the entry
	id kernel.UUID

	// orderID references the order the entry belongs to
	orderID kernel.UUID

	// status is the status the order transitioned into
	status Status

	// notes is optional free text supplied with the transition
	notes string

	// updatedBy references the acting user, nil meaning "system"
	updatedBy *kernel.UUID

	// createdAt is when the transition was accepted
	createdAt time.Time

	// isConstructed ensures the entry was created via a factory method
	isConstructed bool
}

// NewHistoryEntry creates a history entry for a just-accepted transition,
// stamped with the current time.
func NewHistoryEntry(id, orderID kernel.UUID, status Status, notes string, updatedBy *kernel.UUID) (HistoryEntry, error) {
	return RestoreHistoryEntry(id, orderID, status, notes, updatedBy, time.Now().UTC())
}

// RestoreHistoryEntry reconstructs a history entry from persistence with its
// original timestamp.
func RestoreHistoryEntry(
	id, orderID kernel.UUID,
	status Status,
	notes string,
	updatedBy *kernel.UUID,
	createdAt time.Time,
) (HistoryEntry, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
		validateOptionalActor(updatedBy),
	); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		id:            id,
		orderID:       orderID,
		status:        status,
		notes:         notes,
		updatedBy:     updatedBy,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func validateOptionalActor(updatedBy *kernel.UUID) error {
	if updatedBy == nil {
		return nil
	}
	return updatedBy.Validate()
}

// Validate ensures the HistoryEntry was properly constructed.
func (h HistoryEntry) Validate() error {
	if !h.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (h HistoryEntry) ID() kernel.UUID {
	return h.id
}

// OrderID returns the identifier of the order the entry belongs to.
func (h HistoryEntry) OrderID() kernel.UUID {
	return h.orderID
}

// Status returns the status the order transitioned into.
func (h HistoryEntry) Status() Status {
	return h.status
}

// Notes returns the optional free text supplied with the transition.
func (h HistoryEntry) Notes() string {
	return h.notes
}

// UpdatedBy returns the acting user's identifier, or nil for system actions.
func (h HistoryEntry) UpdatedBy() *kernel.UUID {
	return h.updatedBy
}

// CreatedAt returns when the transition was accepted.
func (h HistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}
