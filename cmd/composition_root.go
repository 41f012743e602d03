package cmd

import (
	"log/slog"

	"printshop/internal/adapters/out/postgres"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/services"
	"printshop/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.OrderNotifier
	tracker    ports.InteractionTracker
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	notifier ports.OrderNotifier,
	tracker ports.InteractionTracker,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		tracker:    tracker,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewPricingService(), c.notifier, c.tracker, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCancelStalePaymentsCommandHandler() commands.CancelStalePaymentsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStalePaymentsCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBuyerOrdersQueryHandler() queries.GetBuyerOrdersQueryHandler {
	return queries.NewGetBuyerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerOrdersQueryHandler() queries.GetPartnerOrdersQueryHandler {
	return queries.NewGetPartnerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusHistoryQueryHandler() queries.GetOrderStatusHistoryQueryHandler {
	return queries.NewGetOrderStatusHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderContainsPartnerDesignsQueryHandler() queries.OrderContainsPartnerDesignsQueryHandler {
	return queries.NewOrderContainsPartnerDesignsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
