//go:build wireinject
// +build wireinject

package di

import (
	"fitstudio/config"
	"fitstudio/infras/kafka"
	"fitstudio/infras/otel"
	"fitstudio/infras/postgres"
	"fitstudio/infras/redis"
	"fitstudio/shared/cache"
	"fitstudio/shared/clock"
	"fitstudio/shared/state"
	"fitstudio/transport/http"
	"fitstudio/transport/http/middleware"
	"fitstudio/transport/http/router"

	bookingRepository "fitstudio/internal/domains/booking/repository"
	bookingService "fitstudio/internal/domains/booking/service"
	classRepository "fitstudio/internal/domains/class/repository"
	classService "fitstudio/internal/domains/class/service"
	bookingHandler "fitstudio/internal/handlers/booking"
	classHandler "fitstudio/internal/handlers/class"
	healthHandler "fitstudio/internal/handlers/health"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.NewRealClock,
	state.New,
)

var classDomain = wire.NewSet(
	classRepository.New,
	classService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	classDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	classHandler.New,
	bookingHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeApplication() *Application {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(Application), "*"),
	)

	return &Application{}
}

func InitializeSeeder() classService.Class {
	wire.Build(
		configurations,
		postgres.New,
		postgres.NewTransactor,
		otel.New,
		clock.NewRealClock,
		classDomain,
	)

	return nil
}
