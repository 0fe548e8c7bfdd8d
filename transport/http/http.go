package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitstudio/config"
	"fitstudio/infras/kafka"
	"fitstudio/infras/otel"
	"fitstudio/infras/postgres"
	"fitstudio/shared/constant"
	"fitstudio/shared/state"
	"fitstudio/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type HTTP struct {
	Config    *config.Config
	Router    router.Router
	State     *state.Server
	DB        *postgres.Connection
	Publisher kafka.Client
	Otel      otel.Otel
	server    *http.Server
}

func New(
	cfg *config.Config,
	r router.Router,
	serverState *state.Server,
	db *postgres.Connection,
	publisher kafka.Client,
	ot otel.Otel,
) *HTTP {
	return &HTTP{
		Config:    cfg,
		Router:    r,
		State:     serverState,
		DB:        db,
		Publisher: publisher,
		Otel:      ot,
	}
}

// Serve blocks until the process receives SIGINT or SIGTERM and the server
// has drained.
func (h *HTTP) Serve() {
	h.setup()

	errCh := make(chan error, 1)

	go func() {
		log.Info().Str("address", h.server.Addr).Msg("Starting up HTTP server.")

		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	case <-signalCh:
		h.respondToSigterm()
	}
}

// Handler exposes the routed handler without binding a port.
func (h *HTTP) Handler() http.Handler {
	mux := chi.NewRouter()
	h.Router.SetupRoutes(mux)

	return mux
}

// Adaptor returns a ready handler for hosts that own the listener.
func (h *HTTP) Adaptor() http.Handler {
	h.State.Set(state.ServerStateReady)

	return h.Handler()
}

func (h *HTTP) setup() {
	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	h.State.Set(state.ServerStateReady)
}

func (h *HTTP) respondToSigterm() {
	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
	} else {
		log.Info().Msg("Received SIGTERM.")
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

		// health turns 503 so the load balancer stops routing here
		h.State.Set(state.ServerStateInGracePeriod)

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
	}

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State.Set(state.ServerStateInCleanupPeriod)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout+time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to drain HTTP server")
	}

	h.cleanup(ctx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) cleanup(ctx context.Context) {
	if err := h.Publisher.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close kafka writer")
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	if err := h.DB.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database")
	}
}
