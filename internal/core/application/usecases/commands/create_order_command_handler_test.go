package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/catalog"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/user"
	"printshop/internal/core/domain/services"
	"printshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }
func (m *MockOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) AddHistoryEntry(ctx context.Context, entry order.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockOrderRepository) GetAllInStatusOlderThan(
	_ context.Context, _ order.Status, _ time.Time,
) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(_ context.Context, _ *user.User) error { return nil }
func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) AddProduct(_ context.Context, _ *catalog.Product) error { return nil }
func (m *MockCatalogRepository) AddVariant(_ context.Context, _ *catalog.Variant) error { return nil }
func (m *MockCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}
func (m *MockCatalogRepository) GetVariant(ctx context.Context, id kernel.UUID) (*catalog.Variant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Variant), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}
func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderNotifier struct{ mock.Mock }

func (m *MockOrderNotifier) NotifyOrderCreated(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderNotifier) NotifyStatusChanged(
	ctx context.Context, o *order.Order, previous order.Status, actor *kernel.UUID,
) error {
	args := m.Called(ctx, o, previous, actor)
	return args.Error(0)
}

type MockInteractionTracker struct{ mock.Mock }

func (m *MockInteractionTracker) TrackPurchase(ctx context.Context, buyerID kernel.UUID, variantIDs []kernel.UUID) error {
	args := m.Called(ctx, buyerID, variantIDs)
	return args.Error(0)
}

type createOrderFixture struct {
	buyerID   kernel.UUID
	orderID   kernel.UUID
	buyer     *user.User
	designer  *user.User
	product   *catalog.Product
	variant   *catalog.Variant
	cmd       commands.CreateOrderCommand
	orderRepo *MockOrderRepository
	userRepo  *MockUserRepository
	catalog   *MockCatalogRepository
	uow       *MockUoW
	factory   *MockUoWFactory
	notifier  *MockOrderNotifier
	tracker   *MockInteractionTracker
}

func newCreateOrderFixture(t *testing.T) *createOrderFixture {
	t.Helper()

	f := &createOrderFixture{
		buyerID:   kernel.NewUUID(),
		orderID:   kernel.NewUUID(),
		orderRepo: new(MockOrderRepository),
		userRepo:  new(MockUserRepository),
		catalog:   new(MockCatalogRepository),
		uow:       new(MockUoW),
		factory:   new(MockUoWFactory),
		notifier:  new(MockOrderNotifier),
		tracker:   new(MockInteractionTracker),
	}

	var err error
	f.buyer, err = user.NewUser(f.buyerID, "Bob", "Buyer", "bob@example.com", user.Client, 0)
	require.NoError(t, err)

	designerID := kernel.NewUUID()
	f.designer, err = user.NewUser(designerID, "Dana", "Designer", "dana@example.com", user.Partner, 10)
	require.NoError(t, err)

	productID := kernel.NewUUID()
	f.product, err = catalog.NewProduct(productID, "Classic Tee", 29.99, designerID)
	require.NoError(t, err)

	f.variant, err = catalog.NewVariant(kernel.NewUUID(), productID, "M", "black", 5.00)
	require.NoError(t, err)

	f.cmd, err = commands.NewCreateOrderCommand(f.orderID, f.buyerID,
		[]commands.OrderLine{{VariantID: f.variant.ID(), Quantity: 2}})
	require.NoError(t, err)

	return f
}

func (f *createOrderFixture) handler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		f.factory, services.NewPricingService(), f.notifier, f.tracker,
		slog.New(slog.DiscardHandler))
}

func (f *createOrderFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.orderRepo.AssertExpectations(t)
	f.userRepo.AssertExpectations(t)
	f.catalog.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
	f.tracker.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.uow.On("UserRepository").Return(f.userRepo).Once(),
		f.uow.On("CatalogRepository").Return(f.catalog).Once(),
		f.userRepo.On("Get", mock.Anything, f.buyerID).Return(f.buyer, nil).Once(),
		f.catalog.On("GetVariant", mock.Anything, f.variant.ID()).Return(f.variant, nil).Once(),
		f.catalog.On("GetProduct", mock.Anything, f.product.ID()).Return(f.product, nil).Once(),
		f.userRepo.On("Get", mock.Anything, f.designer.ID()).Return(f.designer, nil).Once(),
		f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.notifier.On("NotifyOrderCreated", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.tracker.On("TrackPurchase", mock.Anything, f.buyerID, []kernel.UUID{f.variant.ID()}).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := f.handler()
	err := h.Handle(ctx, f.cmd)
	require.NoError(t, err)

	addedOrder := f.orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	require.InDelta(t, 69.98, addedOrder.TotalPrice(), 1e-9)
	require.Equal(t, order.Pending, addedOrder.Status())

	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_WritesNoHistoryEntry(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.orderRepo).Once()
	f.uow.On("UserRepository").Return(f.userRepo).Once()
	f.uow.On("CatalogRepository").Return(f.catalog).Once()
	f.userRepo.On("Get", mock.Anything, f.buyerID).Return(f.buyer, nil).Once()
	f.catalog.On("GetVariant", mock.Anything, f.variant.ID()).Return(f.variant, nil).Once()
	f.catalog.On("GetProduct", mock.Anything, f.product.ID()).Return(f.product, nil).Once()
	f.userRepo.On("Get", mock.Anything, f.designer.ID()).Return(f.designer, nil).Once()
	f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.notifier.On("NotifyOrderCreated", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.tracker.On("TrackPurchase", mock.Anything, f.buyerID, mock.Anything).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := f.handler()
	err := h.Handle(ctx, f.cmd)
	require.NoError(t, err)

	// The audit trail records status transitions only; a fresh order has none.
	f.orderRepo.AssertNotCalled(t, "AddHistoryEntry", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)

	h := f.handler()
	err := h.Handle(ctx, commands.CreateOrderCommand{}) // not constructed properly
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_BuyerNotFound(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)
	notFound := errors.New("buyer not found")

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.uow.On("UserRepository").Return(f.userRepo).Once(),
		f.uow.On("CatalogRepository").Return(f.catalog).Once(),
		f.userRepo.On("Get", mock.Anything, f.buyerID).Return(nil, notFound).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := f.handler()
	err := h.Handle(ctx, f.cmd)
	require.ErrorIs(t, err, notFound)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.uow.On("UserRepository").Return(f.userRepo).Once(),
		f.uow.On("CatalogRepository").Return(f.catalog).Once(),
		f.userRepo.On("Get", mock.Anything, f.buyerID).Return(f.buyer, nil).Once(),
		f.catalog.On("GetVariant", mock.Anything, f.variant.ID()).Return(f.variant, nil).Once(),
		f.catalog.On("GetProduct", mock.Anything, f.product.ID()).Return(f.product, nil).Once(),
		f.userRepo.On("Get", mock.Anything, f.designer.ID()).Return(f.designer, nil).Once(),
		f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("add error")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := f.handler()
	err := h.Handle(ctx, f.cmd)
	require.Error(t, err)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotificationFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.uow.On("UserRepository").Return(f.userRepo).Once(),
		f.uow.On("CatalogRepository").Return(f.catalog).Once(),
		f.userRepo.On("Get", mock.Anything, f.buyerID).Return(f.buyer, nil).Once(),
		f.catalog.On("GetVariant", mock.Anything, f.variant.ID()).Return(f.variant, nil).Once(),
		f.catalog.On("GetProduct", mock.Anything, f.product.ID()).Return(f.product, nil).Once(),
		f.userRepo.On("Get", mock.Anything, f.designer.ID()).Return(f.designer, nil).Once(),
		f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.notifier.On("NotifyOrderCreated", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("broker down")).Once(),
		f.tracker.On("TrackPurchase", mock.Anything, f.buyerID, []kernel.UUID{f.variant.ID()}).
			Return(errors.New("redis down")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := f.handler()
	err := h.Handle(ctx, f.cmd)
	require.NoError(t, err)
	f.assertExpectations(t)
}
