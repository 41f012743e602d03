package user

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser factory method.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User represents an account in the marketplace: a buying client, a design
// partner, or an admin. The commission rate is only meaningful for partners;
// for every other role CommissionRateOrZero reports zero regardless of the
// stored value, so royalty math never needs to branch on role again.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - First name, last name, and email must be non-empty
//   - Role must be one of Client, Partner, Admin
//   - Commission rate is a percentage within [0, 100]
//   - Can only be created through NewUser constructor
type User struct {
	// id is the unique identifier for the user
	id kernel.UUID

	firstName string
	lastName  string
	email     string

	// role determines the account kind and royalty eligibility
	role Role

	// commissionRate is the royalty percentage earned by partners
	commissionRate float64

	// isConstructed ensures the user was created via NewUser
	isConstructed bool
}

// NewUser creates a new User instance with validation. This is the only way
// to create a valid User, ensuring all business invariants are maintained.
func NewUser(
	id kernel.UUID,
	firstName string,
	lastName string,
	email string,
	role Role,
	commissionRate float64,
) (*User, error) {
	user := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setName(firstName, lastName),
		user.setEmail(email),
		user.setRole(role),
		user.setCommissionRate(commissionRate),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate ensures the User instance was properly constructed through NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// FullName returns the user's display name, "FirstName LastName".
func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Role returns the account role.
func (u *User) Role() Role {
	return u.role
}

// IsPartner reports whether the user is a design partner.
func (u *User) IsPartner() bool {
	return u.role == Partner
}

// CommissionRate returns the stored royalty percentage regardless of role.
// Persistence uses this; royalty calculations use CommissionRateOrZero.
func (u *User) CommissionRate() float64 {
	return u.commissionRate
}

// CommissionRateOrZero returns the royalty percentage for partners and
// exactly 0 for every other role. Callers computing royalties should use
// this accessor instead of inspecting the role themselves.
func (u *User) CommissionRateOrZero() float64 {
	if u.role == Partner {
		return u.commissionRate
	}
	return 0
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	u.firstName = firstName
	u.lastName = lastName
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setCommissionRate(rate float64) error {
	if rate < 0 || rate > 100 {
		return errs.NewValueIsOutOfRangeError("commissionRate", rate, 0, 100)
	}
	u.commissionRate = rate
	return nil
}
