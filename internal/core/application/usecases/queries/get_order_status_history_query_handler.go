package queries

import (
	"context"
	"database/sql"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderStatusHistoryQueryHandler retrieves an order's audit trail from
// the database, resolving actor names at read time.
type GetOrderStatusHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusHistoryQueryHandler creates a handler for status history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatusHistoryQueryHandler(db *gorm.DB) GetOrderStatusHistoryQueryHandler {
	return GetOrderStatusHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve the order's status history.
// Returns errs.ObjectNotFoundError when the order does not exist. Entries
// whose actor is unset render the actor as SystemActorName; entries are
// sorted newest first.
func (h GetOrderStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusHistoryQuery,
) ([]StatusHistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists bool
	err := h.db.WithContext(ctx).Raw(`
		SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)
	`, query.OrderID().String()).Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	entries := make([]StatusHistoryEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			h.id,
			h.status,
			h.notes,
			u.first_name,
			u.last_name,
			h.created_at
		FROM order_status_history h
		LEFT JOIN users u ON u.id = h.updated_by
		WHERE h.order_id = ?
		ORDER BY h.created_at DESC
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry StatusHistoryEntryResponse
		var entryID uuid.UUID
		var firstName, lastName sql.NullString

		err = rows.Scan(
			&entryID,
			&entry.Status,
			&entry.Notes,
			&firstName,
			&lastName,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(entryID[:]); err != nil {
			return nil, err
		}

		if firstName.Valid {
			entry.UpdatedBy = firstName.String + " " + lastName.String
		} else {
			entry.UpdatedBy = SystemActorName
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
