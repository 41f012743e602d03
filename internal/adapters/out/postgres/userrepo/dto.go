// Package userrepo provides data transfer objects and mapping functions for
// user persistence: buyers, partner designers, and administrators.
package userrepo

import (
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// Role is stored as its string name.
type UserDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName      string
	LastName       string
	Email          string `gorm:"uniqueIndex"`
	Role           string `gorm:"type:varchar(16)"`
	CommissionRate float64
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:             aggregate.ID().Bytes(),
		FirstName:      aggregate.FirstName(),
		LastName:       aggregate.LastName(),
		Email:          aggregate.Email(),
		Role:           aggregate.Role().String(),
		CommissionRate: aggregate.CommissionRate(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(id, dto.FirstName, dto.LastName, dto.Email, role, dto.CommissionRate)
}
