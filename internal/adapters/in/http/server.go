package http

import (
	"errors"
	"net/http"

	"trattoria/internal/core/application/usecases/commands"
	"trattoria/internal/core/application/usecases/queries"
	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/core/domain/model/order"
	"trattoria/internal/core/domain/model/reservation"
	"trattoria/internal/generated/servers"
	"trattoria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler             commands.CreateOrderCommandHandler
	updateOrderStatusHandler       commands.UpdateOrderStatusCommandHandler
	createReservationHandler       commands.CreateReservationCommandHandler
	updateReservationStatusHandler commands.UpdateReservationStatusCommandHandler
	createTestimonialHandler       commands.CreateTestimonialCommandHandler
	approveTestimonialHandler      commands.ApproveTestimonialCommandHandler

	// Query handlers
	getMenuItemsHandler       queries.GetMenuItemsQueryHandler
	getAllOrdersHandler       queries.GetAllOrdersQueryHandler
	getOrderByNumberHandler   queries.GetOrderByNumberQueryHandler
	getAllReservationsHandler queries.GetAllReservationsQueryHandler
	getTestimonialsHandler    queries.GetTestimonialsQueryHandler
	getTimelineHandler        queries.GetTimelineQueryHandler
	getAwardsHandler          queries.GetAwardsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	createReservationHandler commands.CreateReservationCommandHandler,
	updateReservationStatusHandler commands.UpdateReservationStatusCommandHandler,
	createTestimonialHandler commands.CreateTestimonialCommandHandler,
	approveTestimonialHandler commands.ApproveTestimonialCommandHandler,
	getMenuItemsHandler queries.GetMenuItemsQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderByNumberHandler queries.GetOrderByNumberQueryHandler,
	getAllReservationsHandler queries.GetAllReservationsQueryHandler,
	getTestimonialsHandler queries.GetTestimonialsQueryHandler,
	getTimelineHandler queries.GetTimelineQueryHandler,
	getAwardsHandler queries.GetAwardsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:             createOrderHandler,
		updateOrderStatusHandler:       updateOrderStatusHandler,
		createReservationHandler:       createReservationHandler,
		updateReservationStatusHandler: updateReservationStatusHandler,
		createTestimonialHandler:       createTestimonialHandler,
		approveTestimonialHandler:      approveTestimonialHandler,
		getMenuItemsHandler:            getMenuItemsHandler,
		getAllOrdersHandler:            getAllOrdersHandler,
		getOrderByNumberHandler:        getOrderByNumberHandler,
		getAllReservationsHandler:      getAllReservationsHandler,
		getTestimonialsHandler:         getTestimonialsHandler,
		getTimelineHandler:             getTimelineHandler,
		getAwardsHandler:               getAwardsHandler,
	}
}

// GetMenu handles GET /api/menu - retrieves all available menu items.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.getMenuItemsHandler.Handle(ctx.Request().Context(), queries.NewGetMenuItemsQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve menu")
	}

	return ctx.JSON(http.StatusOK, menuItemsToResponse(items))
}

// GetMenuByCategory handles GET /api/menu/{category} - retrieves available
// menu items for one category.
func (s *Server) GetMenuByCategory(ctx echo.Context, category string) error {
	query, err := queries.NewGetMenuItemsByCategoryQuery(category)
	if err != nil {
		return writeError(ctx, err, "Invalid category")
	}

	items, err := s.getMenuItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve menu")
	}

	return ctx.JSON(http.StatusOK, menuItemsToResponse(items))
}

// CreateOrder handles POST /api/orders - places a new delivery order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request servers.CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := buildCreateOrderCommand(request)
	if err != nil {
		return writeError(ctx, err, "Invalid order data")
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, orderAggregateToResponse(created))
}

// GetOrders handles GET /api/orders - retrieves all orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = orderReadModelToResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByNumber handles GET /api/orders/{orderNumber} - looks up one
// order for the customer tracking page.
func (s *Server) GetOrderByNumber(ctx echo.Context, orderNumber string) error {
	number, err := order.NewNumber(orderNumber)
	if err != nil {
		return writeError(ctx, err, "Invalid order number")
	}

	query, err := queries.NewGetOrderByNumberQuery(number)
	if err != nil {
		return writeError(ctx, err, "Invalid order number")
	}

	found, err := s.getOrderByNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, orderReadModelToResponse(found))
}

// UpdateOrderStatus handles PATCH /api/orders/{id}/status - advances an
// order one step through its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id openapi_types.UUID) error {
	var update servers.StatusUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(update.Status)
	if err != nil {
		return writeError(ctx, err, "Invalid status")
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return writeError(ctx, err, "Invalid order id")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return writeError(ctx, err, "Invalid status update")
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to update order status")
	}

	return ctx.JSON(http.StatusOK, orderAggregateToResponse(updated))
}

// CreateReservation handles POST /api/reservations - books a table.
func (s *Server) CreateReservation(ctx echo.Context) error {
	var request servers.NewReservation
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	notes := ""
	if request.Notes != nil {
		notes = *request.Notes
	}

	cmd, err := commands.NewCreateReservationCommand(
		kernel.NewUUID(),
		request.Name,
		request.Email,
		request.Phone,
		request.Date,
		request.TimeSlot,
		request.Guests,
		notes,
	)
	if err != nil {
		return writeError(ctx, err, "Invalid reservation data")
	}

	created, err := s.createReservationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to create reservation")
	}

	return ctx.JSON(http.StatusCreated, reservationAggregateToResponse(created))
}

// GetReservations handles GET /api/reservations - retrieves all
// reservations for the staff dashboard, newest first.
func (s *Server) GetReservations(ctx echo.Context) error {
	reservations, err := s.getAllReservationsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllReservationsQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve reservations")
	}

	response := make([]servers.Reservation, len(reservations))
	for i, r := range reservations {
		response[i] = reservationReadModelToResponse(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateReservationStatus handles PATCH /api/reservations/{id}/status.
func (s *Server) UpdateReservationStatus(ctx echo.Context, id openapi_types.UUID) error {
	var update servers.StatusUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := reservation.StatusFromString(update.Status)
	if err != nil {
		return writeError(ctx, err, "Invalid status")
	}

	reservationID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return writeError(ctx, err, "Invalid reservation id")
	}

	cmd, err := commands.NewUpdateReservationStatusCommand(reservationID, status)
	if err != nil {
		return writeError(ctx, err, "Invalid status update")
	}

	updated, err := s.updateReservationStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to update reservation status")
	}

	return ctx.JSON(http.StatusOK, reservationAggregateToResponse(updated))
}

// CreateTestimonial handles POST /api/testimonials - submits a review,
// which stays hidden until approved.
func (s *Server) CreateTestimonial(ctx echo.Context) error {
	var request servers.NewTestimonial
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateTestimonialCommand(
		kernel.NewUUID(),
		request.CustomerName,
		request.Rating,
		request.Comment,
	)
	if err != nil {
		return writeError(ctx, err, "Invalid testimonial data")
	}

	created, err := s.createTestimonialHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to create testimonial")
	}

	return ctx.JSON(http.StatusCreated, servers.Testimonial{
		Id:           created.ID().Bytes(),
		CustomerName: created.CustomerName(),
		Rating:       created.Rating(),
		Comment:      created.Comment(),
		Approved:     created.Approved(),
		CreatedAt:    created.CreatedAt(),
	})
}

// GetTestimonials handles GET /api/testimonials - retrieves approved
// reviews for the public site.
func (s *Server) GetTestimonials(ctx echo.Context) error {
	return s.listTestimonials(ctx, true)
}

// GetAllTestimonials handles GET /api/testimonials/all - retrieves every
// review, including ones awaiting moderation.
func (s *Server) GetAllTestimonials(ctx echo.Context) error {
	return s.listTestimonials(ctx, false)
}

func (s *Server) listTestimonials(ctx echo.Context, approvedOnly bool) error {
	testimonials, err := s.getTestimonialsHandler.Handle(
		ctx.Request().Context(), queries.NewGetTestimonialsQuery(approvedOnly))
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve testimonials")
	}

	response := make([]servers.Testimonial, len(testimonials))
	for i, t := range testimonials {
		response[i] = servers.Testimonial{
			Id:           t.ID.Bytes(),
			CustomerName: t.CustomerName,
			Rating:       t.Rating,
			Comment:      t.Comment,
			Approved:     t.Approved,
			CreatedAt:    t.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ApproveTestimonial handles PATCH /api/testimonials/{id}/approve.
func (s *Server) ApproveTestimonial(ctx echo.Context, id openapi_types.UUID) error {
	var update servers.ApprovalUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	testimonialID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return writeError(ctx, err, "Invalid testimonial id")
	}

	cmd, err := commands.NewApproveTestimonialCommand(testimonialID, update.Approved)
	if err != nil {
		return writeError(ctx, err, "Invalid approval update")
	}

	updated, err := s.approveTestimonialHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to update testimonial")
	}

	return ctx.JSON(http.StatusOK, servers.Testimonial{
		Id:           updated.ID().Bytes(),
		CustomerName: updated.CustomerName(),
		Rating:       updated.Rating(),
		Comment:      updated.Comment(),
		Approved:     updated.Approved(),
		CreatedAt:    updated.CreatedAt(),
	})
}

// GetTimeline handles GET /api/timeline - retrieves the restaurant's
// history milestones in display order.
func (s *Server) GetTimeline(ctx echo.Context) error {
	entries, err := s.getTimelineHandler.Handle(ctx.Request().Context(), queries.NewGetTimelineQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve timeline")
	}

	response := make([]servers.TimelineEntry, len(entries))
	for i, entry := range entries {
		response[i] = servers.TimelineEntry{
			Id:          entry.ID.Bytes(),
			Year:        entry.Year,
			Title:       entry.Title,
			Description: entry.Description,
			Position:    entry.Position,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAwards handles GET /api/awards - retrieves awards in display order.
func (s *Server) GetAwards(ctx echo.Context) error {
	awards, err := s.getAwardsHandler.Handle(ctx.Request().Context(), queries.NewGetAwardsQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve awards")
	}

	response := make([]servers.Award, len(awards))
	for i, award := range awards {
		response[i] = servers.Award{
			Id:           award.ID.Bytes(),
			Title:        award.Title,
			Organization: award.Organization,
			Year:         award.Year,
			Position:     award.Position,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// writeError translates application and domain errors to HTTP responses.
// Not-found lookups become 404, validation failures 400, everything else 500.
func writeError(ctx echo.Context, err error, message string) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message + ": " + err.Error(),
	})
}

func buildCreateOrderCommand(request servers.CreateOrderRequest) (commands.CreateOrderCommand, error) {
	customer, err := order.NewCustomer(
		request.Order.CustomerName,
		request.Order.CustomerEmail,
		request.Order.CustomerPhone,
	)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	instructions := ""
	if request.Order.Instructions != nil {
		instructions = *request.Order.Instructions
	}

	address, err := order.NewAddress(
		request.Order.Street,
		request.Order.City,
		request.Order.PostalCode,
		instructions,
	)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	subtotal, err := kernel.NewMoneyFromString(request.Order.Subtotal)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	deliveryFee, err := kernel.NewMoneyFromString(request.Order.DeliveryFee)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	total, err := kernel.NewMoneyFromString(request.Order.Total)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	paymentMethod, err := order.PaymentMethodFromString(string(request.Order.PaymentMethod))
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	items := make([]commands.ItemSpec, len(request.Items))
	for i, item := range request.Items {
		price, priceErr := kernel.NewMoneyFromString(item.Price)
		if priceErr != nil {
			return commands.CreateOrderCommand{}, priceErr
		}
		items[i] = commands.ItemSpec{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    price,
		}
	}

	// Checkout generates the order number client-side so the tracking page
	// can subscribe before the creation request completes. Fall back to a
	// server-generated number for clients that omit it.
	number := order.GenerateNumber()
	if request.Order.Number != nil && *request.Order.Number != "" {
		number, err = order.NewNumber(*request.Order.Number)
		if err != nil {
			return commands.CreateOrderCommand{}, err
		}
	}

	return commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		number,
		customer,
		address,
		subtotal,
		deliveryFee,
		total,
		paymentMethod,
		items,
	)
}

func menuItemsToResponse(items []queries.MenuItemResponse) []servers.MenuItem {
	response := make([]servers.MenuItem, len(items))
	for i, item := range items {
		menuItem := servers.MenuItem{
			Id:          item.ID.Bytes(),
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Category:    item.Category,
			Available:   item.Available,
		}
		if item.ImageURL != "" {
			imageURL := item.ImageURL
			menuItem.ImageUrl = &imageURL
		}
		response[i] = menuItem
	}

	return response
}

func orderAggregateToResponse(o *order.Order) servers.Order {
	items := make([]servers.OrderItem, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = servers.OrderItem{
			Id:       item.ID().Bytes(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price().String(),
		}
	}

	response := servers.Order{
		Id:            o.ID().Bytes(),
		Number:        o.Number().String(),
		CustomerName:  o.Customer().Name(),
		CustomerEmail: o.Customer().Email(),
		CustomerPhone: o.Customer().Phone(),
		Street:        o.Address().Street(),
		City:          o.Address().City(),
		PostalCode:    o.Address().PostalCode(),
		Subtotal:      o.Subtotal().String(),
		DeliveryFee:   o.DeliveryFee().String(),
		Total:         o.Total().String(),
		PaymentMethod: o.PaymentMethod().String(),
		Status:        servers.OrderStatus(o.Status().String()),
		Items:         items,
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
	if instructions := o.Address().Instructions(); instructions != "" {
		response.Instructions = &instructions
	}

	return response
}

func orderReadModelToResponse(o queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderItem{
			Id:       item.ID.Bytes(),
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	response := servers.Order{
		Id:            o.ID.Bytes(),
		Number:        o.Number,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		Street:        o.Street,
		City:          o.City,
		PostalCode:    o.PostalCode,
		Subtotal:      o.Subtotal,
		DeliveryFee:   o.DeliveryFee,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		Status:        servers.OrderStatus(o.Status),
		Items:         items,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.Instructions != "" {
		instructions := o.Instructions
		response.Instructions = &instructions
	}

	return response
}

func reservationAggregateToResponse(r *reservation.Reservation) servers.Reservation {
	response := servers.Reservation{
		Id:        r.ID().Bytes(),
		Name:      r.Name(),
		Email:     r.Email(),
		Phone:     r.Phone(),
		Date:      r.Date(),
		TimeSlot:  r.TimeSlot(),
		Guests:    r.Guests(),
		Status:    servers.ReservationStatus(r.Status().String()),
		CreatedAt: r.CreatedAt(),
	}
	if notes := r.Notes(); notes != "" {
		response.Notes = &notes
	}

	return response
}

func reservationReadModelToResponse(r queries.ReservationResponse) servers.Reservation {
	response := servers.Reservation{
		Id:        r.ID.Bytes(),
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Date:      r.Date,
		TimeSlot:  r.TimeSlot,
		Guests:    r.Guests,
		Status:    servers.ReservationStatus(r.Status),
		CreatedAt: r.CreatedAt,
	}
	if r.Notes != "" {
		notes := r.Notes
		response.Notes = &notes
	}

	return response
}
