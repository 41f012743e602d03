// Package guard provides the ConstructorGuard defensive programming pattern
// for application-layer objects such as commands and queries. It mirrors the
// guard used by the domain kernel so that use case inputs can also enforce
// construction through their factory functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures commands and queries are only created through their
// designated constructor functions. A zero-value guard fails validation, which
// lets handlers reject inputs that were assembled by direct struct literal.
//
// Example usage:
//
//	type CreateOrderCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCreateOrderCommand(orderID kernel.UUID) (CreateOrderCommand, error) {
//	    return CreateOrderCommand{
//	        orderID: orderID,
//	        guard:   guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c CreateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns validationError for zero-value guards, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
