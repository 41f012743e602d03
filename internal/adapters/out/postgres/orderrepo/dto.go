// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its string name so the table stays readable and the
// enum can grow without renumbering.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID    uuid.UUID `gorm:"type:uuid;index"`
	TotalPrice float64
	Status     string         `gorm:"type:varchar(32);index"`
	CreatedAt  time.Time      `gorm:"index"`
	UpdatedAt  time.Time      `gorm:"index"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line with its pricing frozen at
// creation time.
type OrderItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	VariantID     uuid.UUID `gorm:"type:uuid;index"`
	Quantity      int
	UnitPrice     float64
	RoyaltyAmount float64
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderStatusHistoryDTO represents one append-only audit trail record.
// UpdatedBy is null for system-initiated changes.
type OrderStatusHistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    string    `gorm:"type:varchar(32)"`
	Notes     string
	UpdatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time  `gorm:"index"`
}

// TableName specifies the database table name for status history records.
func (OrderStatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order domain aggregate to its database representation,
// including all of its items.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:            item.ID().Bytes(),
			OrderID:       aggregate.ID().Bytes(),
			VariantID:     item.VariantID().Bytes(),
			Quantity:      item.Quantity(),
			UnitPrice:     item.UnitPrice(),
			RoyaltyAmount: item.RoyaltyAmount(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		BuyerID:    aggregate.BuyerID().Bytes(),
		TotalPrice: aggregate.TotalPrice(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
		Items:      items,
	}
}

// historyFromDomain converts a history entry to its database representation.
func historyFromDomain(entry order.HistoryEntry) OrderStatusHistoryDTO {
	var updatedBy *uuid.UUID
	if actor := entry.UpdatedBy(); actor != nil {
		raw := actor.Bytes()
		updatedBy = &raw
	}

	return OrderStatusHistoryDTO{
		ID:        entry.ID().Bytes(),
		OrderID:   entry.OrderID().Bytes(),
		Status:    entry.Status().String(),
		Notes:     entry.Notes(),
		UpdatedBy: updatedBy,
		CreatedAt: entry.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, buyerID, items, dto.TotalPrice, status, dto.CreatedAt, dto.UpdatedAt)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	variantID, err := kernel.UUIDFromBytes(dto.VariantID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(id, variantID, dto.Quantity, dto.UnitPrice, dto.RoyaltyAmount)
}
