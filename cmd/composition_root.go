package cmd

import (
	"log/slog"

	"trattoria/internal/adapters/in/ws"
	"trattoria/internal/adapters/out/postgres"
	"trattoria/internal/core/application/usecases/commands"
	"trattoria/internal/core/application/usecases/queries"
	"trattoria/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	wsRegistry  *ws.Registry
	broadcaster *ws.Broadcaster
	logger      *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	registry := ws.NewRegistry()

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		wsRegistry:  registry,
		broadcaster: ws.NewBroadcaster(registry, logger),
		logger:      logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.broadcaster)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.broadcaster)
}

func (c *CompositionRoot) CreateCreateReservationCommandHandler() commands.CreateReservationCommandHandler {
	return commands.NewCreateReservationCommandHandler(c.reservationUoWFactory())
}

func (c *CompositionRoot) CreateUpdateReservationStatusCommandHandler() commands.UpdateReservationStatusCommandHandler {
	return commands.NewUpdateReservationStatusCommandHandler(c.reservationUoWFactory())
}

func (c *CompositionRoot) CreateCompleteStaleReservationsCommandHandler() commands.CompleteStaleReservationsCommandHandler {
	return commands.NewCompleteStaleReservationsCommandHandler(c.reservationUoWFactory())
}

func (c *CompositionRoot) CreateCreateTestimonialCommandHandler() commands.CreateTestimonialCommandHandler {
	return commands.NewCreateTestimonialCommandHandler(c.testimonialUoWFactory())
}

func (c *CompositionRoot) CreateApproveTestimonialCommandHandler() commands.ApproveTestimonialCommandHandler {
	return commands.NewApproveTestimonialCommandHandler(c.testimonialUoWFactory())
}

func (c *CompositionRoot) CreateGetMenuItemsQueryHandler() queries.GetMenuItemsQueryHandler {
	return queries.NewGetMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByNumberQueryHandler() queries.GetOrderByNumberQueryHandler {
	return queries.NewGetOrderByNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllReservationsQueryHandler() queries.GetAllReservationsQueryHandler {
	return queries.NewGetAllReservationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTestimonialsQueryHandler() queries.GetTestimonialsQueryHandler {
	return queries.NewGetTestimonialsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTimelineQueryHandler() queries.GetTimelineQueryHandler {
	return queries.NewGetTimelineQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAwardsQueryHandler() queries.GetAwardsQueryHandler {
	return queries.NewGetAwardsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateWebsocketHandler() *ws.Handler {
	return ws.NewHandler(c.wsRegistry, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCompleteStaleReservationsCommandHandler(), c.logger)
}

func (c *CompositionRoot) reservationUoWFactory() commands.ReservationUoWFactory {
	return FuncReservationUoWFactory(func() commands.ReservationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) testimonialUoWFactory() commands.TestimonialUoWFactory {
	return FuncTestimonialUoWFactory(func() commands.TestimonialUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReservationUoWFactory func() commands.ReservationUoW

func (f FuncReservationUoWFactory) Create() commands.ReservationUoW {
	return f()
}

type FuncTestimonialUoWFactory func() commands.TestimonialUoW

func (f FuncTestimonialUoWFactory) Create() commands.TestimonialUoW {
	return f()
}
