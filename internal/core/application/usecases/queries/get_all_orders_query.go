package queries

import (
	"errors"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves a page of all orders in the system, newest
// first. Back-office listing; not scoped to a buyer or partner.
type GetAllOrdersQuery struct {
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a paged query over all orders.
// Page numbering starts at 0; page size must be between 1 and 100.
func NewGetAllOrdersQuery(page, pageSize int) (GetAllOrdersQuery, error) {
	if page < 0 {
		return GetAllOrdersQuery{}, errs.NewValueIsInvalidError("page")
	}

	if pageSize < minPageSize || pageSize > maxPageSize {
		return GetAllOrdersQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, minPageSize, maxPageSize)
	}

	return GetAllOrdersQuery{page: page, pageSize: pageSize, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Page returns the zero-based page number.
func (q GetAllOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of orders per page.
func (q GetAllOrdersQuery) PageSize() int {
	return q.pageSize
}
