package user

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Role represents the kind of account a user holds in the marketplace.
// It determines whether the user earns design royalties: only partners
// carry a commission rate, clients and admins never do.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Client is a regular buyer account.
	Client

	// Partner is a design creator who earns a commission (royalty) on
	// orders containing their designs.
	Partner

	// Admin is a back-office operator account.
	Admin
)

// getRoleStrings returns a map of Role values to their string representations.
// All roles are included for string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "UNKNOWN",
		Client:      "CLIENT",
		Partner:     "PARTNER",
		Admin:       "ADMIN",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
// Only valid roles are included to support validation.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Client:  "CLIENT",
		Partner: "PARTNER",
		Admin:   "ADMIN",
	}
}

// Validate checks if the Role value is valid.
// Valid roles are Client, Partner, and Admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the uppercase name of the role as stored and exchanged
// over the wire: "CLIENT", "PARTNER", or "ADMIN". Invalid values render
// as "UNKNOWN".
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// RoleFromString parses a role from its string representation.
// Used when reconstructing users from persistence or API input.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}
