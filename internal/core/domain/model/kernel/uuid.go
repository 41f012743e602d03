package kernel

import (
	"fmt"

	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for the zero value.
// Every identifier in the system must come from one of the constructors below.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies aggregates and entities throughout the domain: orders,
// items, history entries, users, products, and variants all carry one.
//
// It wraps github.com/google/uuid behind a value object so the rest of the
// domain never touches the library type directly, and so the zero value is
// detectably invalid: a UUID that did not pass through NewUUID,
// UUIDFromString, or UUIDFromBytes fails Validate.
//
// UUID is immutable and safe to copy and compare.
//
// Example:
//
//	orderID := kernel.NewUUID()
//
//	buyerID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return err
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version 4 UUID.
// Handlers call this to mint identifiers for new orders, items, and
// history entries.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the textual form of a UUID, as received in URL
// path segments, request bodies, and the X-Actor-ID header. Accepts the
// formats google/uuid accepts (plain, braced, urn:uuid:).
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from its 16-byte binary form.
// Repositories and query handlers use it when reading uuid columns back
// from the database. The all-zero value is rejected, since it would
// bypass the constructed-value guarantee.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String renders the canonical lowercase hex-and-dashes form.
// The zero value renders as all zeros. Used for JSON payloads, Kafka
// message keys, Redis hash fields, and log attributes.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the wrapped uuid.UUID for persistence DTOs, which store
// identifiers in native uuid columns. Slice the result (`u.Bytes()[:]`)
// when raw bytes are needed. Outside the adapters this accessor should
// not be used.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the zero value with ErrUUIDIsNotConstructed.
// Aggregate and command constructors call this on every identifier they
// receive, so an uninitialized UUID cannot leak into persistence.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
