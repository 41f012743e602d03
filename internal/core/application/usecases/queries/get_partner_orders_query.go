package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrGetPartnerOrdersQueryIsNotConstructed = errors.New(
	"GetPartnerOrdersQuery must be created via NewGetPartnerOrdersQuery constructor",
)

const (
	minPageSize = 1
	maxPageSize = 100
)

// GetPartnerOrdersQuery retrieves a page of orders containing at least one
// item based on one of the partner's designs.
//
// Example:
//
//	query, err := NewGetPartnerOrdersQuery(partnerID, 0, 20)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetPartnerOrdersQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("page %d of %d orders\n", page.Page, page.Total)
type GetPartnerOrdersQuery struct {
	partnerID kernel.UUID
	page      int
	pageSize  int

	guard guard.ConstructorGuard
}

// NewGetPartnerOrdersQuery creates a paged query for a partner's orders.
// Page numbering starts at 0; page size must be between 1 and 100.
func NewGetPartnerOrdersQuery(partnerID kernel.UUID, page, pageSize int) (GetPartnerOrdersQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetPartnerOrdersQuery{}, err
	}

	if page < 0 {
		return GetPartnerOrdersQuery{}, errs.NewValueIsInvalidError("page")
	}

	if pageSize < minPageSize || pageSize > maxPageSize {
		return GetPartnerOrdersQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, minPageSize, maxPageSize)
	}

	return GetPartnerOrdersQuery{
		partnerID: partnerID,
		page:      page,
		pageSize:  pageSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPartnerOrdersQueryIsNotConstructed if validation fails.
func (q GetPartnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerOrdersQueryIsNotConstructed)
}

// PartnerID returns the identifier of the partner designer.
func (q GetPartnerOrdersQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

// Page returns the zero-based page number.
func (q GetPartnerOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of orders per page.
func (q GetPartnerOrdersQuery) PageSize() int {
	return q.pageSize
}

// PagedOrdersResponse represents one page of an order listing together with
// the total number of matching orders.
type PagedOrdersResponse struct {
	Orders   []OrderSummaryResponse
	Total    int64
	Page     int
	PageSize int
}
