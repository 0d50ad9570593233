package privatereservation

import (
	"context"
	"net/http"
	"reservo/infras/otel"
	"reservo/internal/domains/privatereservation/model"
	"reservo/internal/domains/privatereservation/model/dto"
	"reservo/internal/domains/privatereservation/service"
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
	service service.PrivateReservation
	otel    otel.Otel
}

func New(service service.PrivateReservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/private-reservations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPrivateReservations)
		routerGroup.Post("/", handler.CreatePrivateReservation)
		routerGroup.Get("/{id:[0-9]+}", handler.GetPrivateReservationByID)
		routerGroup.Patch("/{id:[0-9]+}/approve", handler.ApprovePrivateReservation)
		routerGroup.Patch("/{id:[0-9]+}/decline", handler.DeclinePrivateReservation)
	})
}

// GetPrivateReservations lists private reservations.
// @Summary List private reservations
// @Description Filtered, paginated private reservations ordered by date, creation time and id.
// @Tags PrivateReservation
// @Produce json
// @Param status query integer false "0 pending, 1 accepted, 2 declined"
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param date_from query string false "Start of date range (YYYY-MM-DD)"
// @Param date_to query string false "End of date range (YYYY-MM-DD)"
// @Param event_type query string false "birthday, anniversary, corporate, wedding or other"
// @Param page query integer false "Page number" default(1)
// @Param per_page query integer false "Page size (1-100)" default(15)
// @Success 200 {object} response.Envelope{data=[]dto.PrivateReservationResponse}
// @Failure 422 {object} response.Envelope
// @Router /api/private-reservations [get]
func (handler *Handler) GetPrivateReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPrivateReservations")
	defer scope.End()

	query, err := reservation.ParseListQuery(r, model.Kind)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	reservations, err := handler.service.GetAll(ctx, query)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithPage(w, reservations.PrivateReservations, reservations.Meta)
}

// CreatePrivateReservation stores a new pending private event inquiry.
// @Summary Create a private reservation
// @Tags PrivateReservation
// @Accept json
// @Produce json
// @Param request body dto.CreatePrivateReservationRequest true "Private reservation"
// @Success 201 {object} response.Envelope{data=dto.PrivateReservationResponse}
// @Failure 400 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /api/private-reservations [post]
func (handler *Handler) CreatePrivateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePrivateReservation")
	defer scope.End()

	var req dto.CreatePrivateReservationRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Debug().Err(err).Msg("rejected private reservation request")
		response.WithError(w, err)

		return
	}

	record, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	scope.AddEvent("Private reservation created")

	response.WithJSON(w, http.StatusCreated, model.Kind.CreatedMessage(), record)
}

// GetPrivateReservationByID returns one private reservation.
// @Summary Get a private reservation
// @Tags PrivateReservation
// @Produce json
// @Param id path integer true "Private reservation ID"
// @Success 200 {object} response.Envelope{data=dto.PrivateReservationResponse}
// @Failure 404 {object} response.Envelope
// @Router /api/private-reservations/{id} [get]
func (handler *Handler) GetPrivateReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPrivateReservationByID")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.NotFound(model.Kind.NotFoundMessage()))

		return
	}

	record, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, "", record)
}

// ApprovePrivateReservation moves a pending private reservation to accepted.
// @Summary Approve a private reservation
// @Tags PrivateReservation
// @Produce json
// @Param id path integer true "Private reservation ID"
// @Success 200 {object} response.Envelope{data=dto.PrivateReservationResponse}
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Already processed"
// @Failure 503 {object} response.Envelope "Record busy"
// @Router /api/private-reservations/{id}/approve [patch]
func (handler *Handler) ApprovePrivateReservation(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, reservation.StatusAccepted, handler.service.Approve)
}

// DeclinePrivateReservation moves a pending private reservation to declined.
// @Summary Decline a private reservation
// @Tags PrivateReservation
// @Produce json
// @Param id path integer true "Private reservation ID"
// @Success 200 {object} response.Envelope{data=dto.PrivateReservationResponse}
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Already processed"
// @Failure 503 {object} response.Envelope "Record busy"
// @Router /api/private-reservations/{id}/decline [patch]
func (handler *Handler) DeclinePrivateReservation(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, reservation.StatusDeclined, handler.service.Decline)
}

type transitionFunc func(ctx context.Context, id int64) (dto.PrivateReservationResponse, error)

func (handler *Handler) transition(w http.ResponseWriter, r *http.Request, target reservation.Status, apply transitionFunc) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TransitionPrivateReservation")
	defer scope.End()

	scope.SetAttribute("reservation.target_status", target.String())

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.NotFound(model.Kind.NotFoundMessage()))

		return
	}

	record, err := apply(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, model.Kind.TransitionMessage(target), record)
}
