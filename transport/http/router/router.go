package router

import (
	"net/http"
	"reservo/internal/handlers/auth"
	"reservo/internal/handlers/booking"
	"reservo/internal/handlers/privatereservation"
	"reservo/internal/handlers/stats"
	"reservo/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth               auth.Handler
	Booking            booking.Handler
	PrivateReservation privatereservation.Handler
	Stats              stats.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.PrivateReservation.Router(routerGroup)
		r.DomainHandlers.Stats.Router(routerGroup)
	})

	// Registered last so chi copies them into every mounted sub-router.
	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithNotFound(w)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithMethodNotAllowed(w)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
