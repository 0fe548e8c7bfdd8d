package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"fitstudio/config"
	"fitstudio/di"
	"fitstudio/shared/logger"
	"fitstudio/shared/timezone"

	"github.com/rs/zerolog/log"
)

const seedTimeout = 10 * time.Second

var (
	once    sync.Once
	handler http.Handler
)

// Handler is the serverless entrypoint. The application is wired on the
// first invocation and reused by warm instances.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		if loc, err := timezone.LoadLocation(cfg.App.Timezone); err != nil {
			log.Error().Err(err).Str("timezone", cfg.App.Timezone).Msg("Invalid display timezone, keeping default")
		} else {
			timezone.SetLocation(loc)
		}

		app := di.InitializeApplication()

		if cfg.App.SeedOnBoot {
			ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
			if _, err := app.Classes.SeedSampleClasses(ctx); err != nil {
				log.Error().Err(err).Msg("Failed to seed sample classes")
			}

			cancel()
		}

		handler = app.Server.Adaptor()
	})

	handler.ServeHTTP(w, r)
}
