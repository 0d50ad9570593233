package auth

import (
	"net/http"
	"reservo/infras/otel"
	"reservo/internal/domains/auth/model/dto"
	"reservo/internal/domains/auth/service"
	"reservo/shared/constant"
	"reservo/shared/validator"
	"reservo/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const messageLoginSuccessful = "Login successful."

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/login", handler.Login)
	})
}

// Login checks the staff credential.
// @Summary Staff login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /api/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	var req dto.LoginRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Login(ctx, req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, messageLoginSuccessful)
}
