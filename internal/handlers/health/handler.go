package health

import (
	"context"
	"net/http"
	"time"

	"fitstudio/infras/postgres"
	"fitstudio/shared/constant"
	"fitstudio/shared/state"
	"fitstudio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

type Handler struct {
	db     *postgres.Connection
	server *state.Server
}

func New(db *postgres.Connection, server *state.Server) Handler {
	return Handler{
		db:     db,
		server: server,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports whether the server can take traffic.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message "Shutting down or database unreachable"
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	if !handler.server.IsReady() {
		response.WithPreparingShutdown(writer)

		return
	}

	ctx, cancel := context.WithTimeout(request.Context(), pingTimeout)
	defer cancel()

	if err := handler.db.Write.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("health check failed to reach database")
		response.WithUnhealthy(writer)

		return
	}

	response.WithMessage(writer, http.StatusOK, constant.ResponseHealthy)
}
