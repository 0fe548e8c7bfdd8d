package class

import (
	"net/http"

	"fitstudio/infras/otel"
	"fitstudio/internal/domains/class/service"
	"fitstudio/shared/constant"
	"fitstudio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Class
	otel    otel.Otel
}

func New(service service.Class, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/classes", handler.ListClasses)
}

// ListClasses lists the classes that have not started yet.
// @Summary List upcoming classes
// @Description Classes starting after now, earliest first. Times are given in IST (+05:30) and UTC.
// @Tags Class
// @Produce json
// @Success 200 {array} dto.ClassResponse
// @Failure 500 {object} response.Error
// @Router /classes [get]
func (handler *Handler) ListClasses(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListClasses")
	defer scope.End()

	res, err := handler.service.ListUpcoming(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list upcoming classes")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
