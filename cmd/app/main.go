package main

//go:generate go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go -d ../../ -o ../../docs --parseInternal

import (
	"context"
	"time"

	"fitstudio/config"
	"fitstudio/di"
	"fitstudio/helper"
	"fitstudio/shared/logger"
	"fitstudio/shared/timezone"

	"github.com/rs/zerolog/log"
)

const seedTimeout = 30 * time.Second

// @title						Fitstudio Booking API
// @version					1.0
// @description				Browse upcoming fitness classes and book a slot.
// @BasePath					/
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	loc, err := timezone.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("Invalid display timezone")
	}

	timezone.SetLocation(loc)

	if err := helper.AutoMigrate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	app := di.InitializeApplication()

	if cfg.App.SeedOnBoot {
		seed(app)
	}

	app.Server.Serve()
}

func seed(app *di.Application) {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	inserted, err := app.Classes.SeedSampleClasses(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed sample classes")
	}

	log.Info().Int("inserted", inserted).Msg("Sample classes seeded")
}
