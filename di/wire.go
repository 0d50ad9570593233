//go:build wireinject
// +build wireinject

package di

import (
	"reservo/config"
	"reservo/infras/otel"
	"reservo/infras/postgres"
	"reservo/infras/redis"
	"reservo/shared/cache"
	"reservo/transport/http"
	"reservo/transport/http/middleware"
	"reservo/transport/http/router"

	"github.com/google/wire"

	authService "reservo/internal/domains/auth/service"
	bookingRepository "reservo/internal/domains/booking/repository"
	bookingService "reservo/internal/domains/booking/service"
	privateReservationRepository "reservo/internal/domains/privatereservation/repository"
	privateReservationService "reservo/internal/domains/privatereservation/service"
	statsRepository "reservo/internal/domains/stats/repository"
	statsService "reservo/internal/domains/stats/service"
	authHandler "reservo/internal/handlers/auth"
	bookingHandler "reservo/internal/handlers/booking"
	privateReservationHandler "reservo/internal/handlers/privatereservation"
	statsHandler "reservo/internal/handlers/stats"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	wire.Bind(new(http.Database), new(*postgres.Connection)),
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var privateReservationDomain = wire.NewSet(
	privateReservationRepository.New,
	privateReservationService.New,
)

var statsDomain = wire.NewSet(
	statsRepository.New,
	statsService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	privateReservationDomain,
	statsDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	privateReservationHandler.New,
	statsHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
