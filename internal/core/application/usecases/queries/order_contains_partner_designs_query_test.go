package queries_test

import (
	"testing"

	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderContainsPartnerDesignsQuery_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	partnerID := kernel.NewUUID()
	query, err := queries.NewOrderContainsPartnerDesignsQuery(orderID, partnerID)
	require.NoError(t, err)
	assert.Equal(t, orderID, query.OrderID())
	assert.Equal(t, partnerID, query.PartnerID())
}

func TestNewOrderContainsPartnerDesignsQuery_InvalidIDs(t *testing.T) {
	_, err := queries.NewOrderContainsPartnerDesignsQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewOrderContainsPartnerDesignsQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestOrderContainsPartnerDesignsQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.OrderContainsPartnerDesignsQuery
	require.ErrorIs(t, query.Validate(), queries.ErrOrderContainsPartnerDesignsQueryIsNotConstructed)
}
