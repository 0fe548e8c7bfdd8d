package router

import (
	"net/http"

	"fitstudio/internal/handlers/booking"
	"fitstudio/internal/handlers/class"
	"fitstudio/internal/handlers/health"
	"fitstudio/shared/failure"
	"fitstudio/transport/http/middleware"
	"fitstudio/transport/http/response"

	// registers the generated OpenAPI document
	_ "fitstudio/docs"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

var (
	errRouteNotFound    = &failure.Failure{Code: http.StatusNotFound, Message: "route not found"}
	errMethodNotAllowed = &failure.Failure{Code: http.StatusMethodNotAllowed, Message: "method not allowed"}
)

type DomainHandlers struct {
	Class   class.Handler
	Booking booking.Handler
	Health  health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

// SetupRoutes mounts the API at the root. The health endpoint and the docs
// bypass the rate limiter.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		r.Middleware.RequestLogger,
		r.Middleware.RequestID,
		r.Middleware.Recoverer,
		r.Middleware.Tracing,
		r.Middleware.CORS(),
	)

	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		response.WithError(writer, errRouteNotFound)
	})
	router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		response.WithError(writer, errMethodNotAllowed)
	})

	r.DomainHandlers.Health.Router(router)
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.RateLimit())

		r.DomainHandlers.Class.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, middleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
	}
}
