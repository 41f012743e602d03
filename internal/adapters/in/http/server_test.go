package http_test

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "printshop/internal/adapters/in/http"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(_ context.Context, _ *order.Order) error    { return nil }
func (m *MockOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) AddHistoryEntry(_ context.Context, _ order.HistoryEntry) error {
	return nil
}
func (m *MockOrderRepository) GetAllInStatusOlderThan(
	_ context.Context, _ order.Status, _ time.Time,
) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderUoW struct {
	mock.Mock
	repo *MockOrderRepository
}

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.repo
}

type uowFactory struct{ uow commands.OrderUoW }

func (f uowFactory) Create() commands.OrderUoW { return f.uow }

type stubNotifier struct{}

func (stubNotifier) NotifyOrderCreated(_ context.Context, _ *order.Order) error { return nil }
func (stubNotifier) NotifyStatusChanged(
	_ context.Context, _ *order.Order, _ order.Status, _ *kernel.UUID,
) error {
	return nil
}

// statusUpdateServer wires a real UpdateOrderStatusCommandHandler over a
// mocked repository into the HTTP server; query handlers stay zero values
// since the routes under test never reach them.
func statusUpdateServer(repo *MockOrderRepository, uow *MockOrderUoW) *httpin.Server {
	uow.repo = repo

	updateHandler := commands.NewUpdateOrderStatusCommandHandler(
		uowFactory{uow: uow}, stubNotifier{}, slog.New(slog.DiscardHandler))

	return httpin.NewServer(
		commands.CreateOrderCommandHandler{},
		updateHandler,
		queries.GetOrderQueryHandler{},
		queries.GetBuyerOrdersQueryHandler{},
		queries.GetPartnerOrdersQueryHandler{},
		queries.GetAllOrdersQueryHandler{},
		queries.GetOrderStatusHistoryQueryHandler{},
		queries.OrderContainsPartnerDesignsQueryHandler{},
	)
}

func patchStatus(server *httpin.Server, orderID, body string) *httptest.ResponseRecorder {
	e := echo.New()
	server.RegisterRoutes(e)

	req := httptest.NewRequest(nethttp.MethodPatch,
		"/api/v1/orders/"+orderID+"/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, 34.99, 0)
	require.NoError(t, err)
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{item})
	require.NoError(t, err)
	return aggregate
}

func TestServer_UpdateOrderStatus_InvalidTransitionIsBadRequest(t *testing.T) {
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	aggregate := newPendingOrder(t)

	uow.On("Begin", mock.Anything).Return(nil).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	server := statusUpdateServer(repo, uow)
	rec := patchStatus(server, aggregate.ID().String(), `{"status":"DELIVERED"}`)

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "PENDING")
	require.Contains(t, rec.Body.String(), "DELIVERED")
	require.Equal(t, order.Pending, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestServer_UpdateOrderStatus_UnknownOrderIsNotFound(t *testing.T) {
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	orderID := kernel.NewUUID()

	uow.On("Begin", mock.Anything).Return(nil).Once()
	repo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	server := statusUpdateServer(repo, uow)
	rec := patchStatus(server, orderID.String(), `{"status":"PENDING_PAYMENT"}`)

	require.Equal(t, nethttp.StatusNotFound, rec.Code)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestServer_UpdateOrderStatus_UnknownStatusIsBadRequest(t *testing.T) {
	server := statusUpdateServer(new(MockOrderRepository), new(MockOrderUoW))
	rec := patchStatus(server, kernel.NewUUID().String(), `{"status":"LOST_IN_TRANSIT"}`)

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestServer_PartnerOrders_RejectsNegativePaging(t *testing.T) {
	server := statusUpdateServer(new(MockOrderRepository), new(MockOrderUoW))
	e := echo.New()
	server.RegisterRoutes(e)

	for _, query := range []string{"page=-1", "pageSize=0", "pageSize=-5", "page=abc"} {
		req := httptest.NewRequest(nethttp.MethodGet,
			"/api/v1/partners/"+kernel.NewUUID().String()+"/orders?"+query, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, nethttp.StatusBadRequest, rec.Code, "query %q must be rejected", query)
	}
}
