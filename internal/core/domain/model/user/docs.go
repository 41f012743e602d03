// Package user provides the User aggregate for marketplace accounts.
//
// The package includes:
//   - User: the aggregate root holding identity, contact details, and role
//   - Role: a value object over {CLIENT, PARTNER, ADMIN}
//
// Key business rules:
//   - Only partners carry a commission rate; CommissionRateOrZero collapses
//     the role distinction for royalty calculations
//   - Commission rates are percentages within [0, 100]
package user
