package booking

import (
	"context"
	"net/http"
	"reservo/infras/otel"
	"reservo/internal/domains/booking/model"
	"reservo/internal/domains/booking/model/dto"
	"reservo/internal/domains/booking/service"
	"reservo/internal/domains/reservation"
	"reservo/shared"
	"reservo/shared/constant"
	"reservo/shared/failure"
	"reservo/shared/validator"
	"reservo/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/{id:[0-9]+}", handler.GetBookingByID)
		routerGroup.Patch("/{id:[0-9]+}/approve", handler.ApproveBooking)
		routerGroup.Patch("/{id:[0-9]+}/decline", handler.DeclineBooking)
	})
}

// GetBookings lists bookings.
// @Summary List bookings
// @Description Filtered, paginated bookings ordered by date, time and id.
// @Tags Booking
// @Produce json
// @Param status query integer false "0 pending, 1 accepted, 2 declined"
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param date_from query string false "Start of date range (YYYY-MM-DD)"
// @Param date_to query string false "End of date range (YYYY-MM-DD)"
// @Param reservation_type query string false "dining, drinks or both"
// @Param page query integer false "Page number" default(1)
// @Param per_page query integer false "Page size (1-100)" default(15)
// @Success 200 {object} response.Envelope{data=[]dto.BookingResponse}
// @Failure 422 {object} response.Envelope
// @Router /api/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	query, err := reservation.ParseListQuery(r, model.Kind)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetAll(ctx, query)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithPage(w, bookings.Bookings, bookings.Meta)
}

// CreateBooking stores a new pending booking.
// @Summary Create a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} response.Envelope{data=dto.BookingResponse}
// @Failure 400 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Debug().Err(err).Msg("rejected booking request")
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created")

	response.WithJSON(w, http.StatusCreated, model.Kind.CreatedMessage(), booking)
}

// GetBookingByID returns one booking.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param id path integer true "Booking ID"
// @Success 200 {object} response.Envelope{data=dto.BookingResponse}
// @Failure 404 {object} response.Envelope
// @Router /api/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.NotFound(model.Kind.NotFoundMessage()))

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, "", booking)
}

// ApproveBooking moves a pending booking to accepted.
// @Summary Approve a booking
// @Tags Booking
// @Produce json
// @Param id path integer true "Booking ID"
// @Success 200 {object} response.Envelope{data=dto.BookingResponse}
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Already processed"
// @Failure 503 {object} response.Envelope "Record busy"
// @Router /api/bookings/{id}/approve [patch]
func (handler *Handler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, reservation.StatusAccepted, handler.service.Approve)
}

// DeclineBooking moves a pending booking to declined.
// @Summary Decline a booking
// @Tags Booking
// @Produce json
// @Param id path integer true "Booking ID"
// @Success 200 {object} response.Envelope{data=dto.BookingResponse}
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Already processed"
// @Failure 503 {object} response.Envelope "Record busy"
// @Router /api/bookings/{id}/decline [patch]
func (handler *Handler) DeclineBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, reservation.StatusDeclined, handler.service.Decline)
}

type transitionFunc func(ctx context.Context, id int64) (dto.BookingResponse, error)

func (handler *Handler) transition(w http.ResponseWriter, r *http.Request, target reservation.Status, apply transitionFunc) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TransitionBooking")
	defer scope.End()

	scope.SetAttribute("reservation.target_status", target.String())

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.NotFound(model.Kind.NotFoundMessage()))

		return
	}

	booking, err := apply(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, model.Kind.TransitionMessage(target), booking)
}
