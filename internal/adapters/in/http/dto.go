package http

import (
	"time"

	"printshop/internal/core/application/usecases/queries"
)

type createOrderRequest struct {
	BuyerID string                   `json:"buyerId"`
	Items   []createOrderItemRequest `json:"items"`
}

type createOrderItemRequest struct {
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

type orderCreatedResponse struct {
	OrderID string `json:"orderId"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type orderItemResponse struct {
	ID            string  `json:"id"`
	VariantID     string  `json:"variantId"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	RoyaltyAmount float64 `json:"royaltyAmount"`
}

type orderResponse struct {
	ID         string              `json:"id"`
	BuyerID    string              `json:"buyerId"`
	TotalPrice float64             `json:"totalPrice"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
	Items      []orderItemResponse `json:"items"`
}

type orderSummaryResponse struct {
	ID         string    `json:"id"`
	BuyerID    string    `json:"buyerId"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type pagedOrdersResponse struct {
	Orders   []orderSummaryResponse `json:"orders"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"pageSize"`
}

type statusHistoryEntryResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	UpdatedBy string    `json:"updatedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type containsDesignResponse struct {
	Contains bool `json:"contains"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toOrderResponse(source queries.GetOrderQueryResponse) orderResponse {
	items := make([]orderItemResponse, len(source.Items))
	for i, item := range source.Items {
		items[i] = orderItemResponse{
			ID:            item.ID.String(),
			VariantID:     item.VariantID.String(),
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			RoyaltyAmount: item.RoyaltyAmount,
		}
	}

	return orderResponse{
		ID:         source.ID.String(),
		BuyerID:    source.BuyerID.String(),
		TotalPrice: source.TotalPrice,
		Status:     source.Status,
		CreatedAt:  source.CreatedAt,
		UpdatedAt:  source.UpdatedAt,
		Items:      items,
	}
}

func toOrderSummaryResponse(source queries.OrderSummaryResponse) orderSummaryResponse {
	return orderSummaryResponse{
		ID:         source.ID.String(),
		BuyerID:    source.BuyerID.String(),
		TotalPrice: source.TotalPrice,
		Status:     source.Status,
		CreatedAt:  source.CreatedAt,
		UpdatedAt:  source.UpdatedAt,
	}
}

func toPagedOrdersResponse(source queries.PagedOrdersResponse) pagedOrdersResponse {
	orders := make([]orderSummaryResponse, len(source.Orders))
	for i, summary := range source.Orders {
		orders[i] = toOrderSummaryResponse(summary)
	}

	return pagedOrdersResponse{
		Orders:   orders,
		Total:    source.Total,
		Page:     source.Page,
		PageSize: source.PageSize,
	}
}
