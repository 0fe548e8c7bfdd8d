package main

import (
	"context"
	"os"
	"time"

	"fitstudio/config"
	"fitstudio/di"
	"fitstudio/helper"
	"fitstudio/shared/logger"
	"fitstudio/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	argLength   = 2
	actionSeed  = "seed"
	seedTimeout = 30 * time.Second
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, drop, step-up, step-down or seed")
	}

	action := os.Args[1]

	if action == actionSeed {
		seed(cfg)

		return
	}

	if err := helper.Runner(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("Migration failed")
	}
}

func seed(cfg *config.Config) {
	loc, err := timezone.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("Invalid display timezone")
	}

	timezone.SetLocation(loc)

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	inserted, err := di.InitializeSeeder().SeedSampleClasses(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed sample classes")
	}

	log.Info().Int("inserted", inserted).Msg("Sample classes seeded")
}
