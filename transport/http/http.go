package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"reservo/config"
	"reservo/infras/otel"
	"reservo/shared/constant"
	"reservo/transport/http/middleware"
	"reservo/transport/http/response"
	"reservo/transport/http/router"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const (
	readHeaderTimeout  = 5 * time.Second
	healthCheckTimeout = 2 * time.Second
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

// Database is the store the server health-checks and releases on shutdown.
type Database interface {
	Ping(ctx context.Context) error
	Close()
}

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	DB         Database
	Otel       otel.Otel

	state   atomic.Int32
	once    sync.Once
	handler chi.Router
	server  *http.Server
}

func New(cfg *config.Config, r router.Router, mw middleware.AppMiddleware, db Database, ot otel.Otel) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: mw,
		DB:         db,
		Otel:       ot,
	}
}

// Serve blocks until the server has shut down.
func (h *HTTP) Serve() {
	h.setupGracefulShutdown()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	h.cleanup()
}

// Handler builds the routing tree once. It backs both Serve and the serverless entry.
func (h *HTTP) Handler() http.Handler {
	h.once.Do(h.setup)

	return h.handler
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

func (h *HTTP) setup() {
	h.handler = chi.NewRouter()

	h.handler.Use(
		chiMiddleware.Recoverer,
		h.Middleware.RequestID,
		h.Middleware.Tracing,
		h.Middleware.CORS(),
		h.rejectInCleanup,
	)

	h.handler.Get("/health", h.health)

	h.handler.Group(func(limited chi.Router) {
		limited.Use(h.Middleware.RateLimit())
		h.Router.SetupRoutes(limited)
	})

	h.setState(ServerStateReady)
}

// health fails as soon as shutdown starts so load balancers drain this instance.
func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("health check failed")
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) rejectInCleanup(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.State() == ServerStateInCleanupPeriod {
			response.WithPreparingShutdown(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		h.shutdown(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

		return
	}

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.setState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	h.shutdown(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)
}

// shutdown lets in-flight requests, and so any open transition transaction, finish
// within timeout.
func (h *HTTP) shutdown(timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), max(timeout, time.Second))
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server gracefully")
	}
}

func (h *HTTP) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()

	h.DB.Close()

	if err := otel.Shutdown(ctx, h.Otel); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
