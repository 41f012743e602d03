// Package services provides domain services that orchestrate business logic
// across multiple aggregates in the printshop marketplace.
//
// The package includes:
//   - PricingService: derives order line prices and partner royalties from
//     the product catalog and the designer's account
//
// Domain services coordinate between aggregates, implementing business logic
// that doesn't naturally belong to a single aggregate root, following
// Domain-Driven Design principles.
package services
