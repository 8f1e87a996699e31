package main

import (
	"context"
	"flag"

	"guarashopp-storefront/internal/config"
	"guarashopp-storefront/internal/db"
	"guarashopp-storefront/internal/logger"
	"guarashopp-storefront/internal/migrate"
)

func main() {
	down := flag.Bool("down", false, "Roll back the client-state migrations instead of applying them")
	flag.Parse()

	cfg := config.FromEnv()
	log := logger.New(logger.Config{Env: cfg.AppEnv, Level: cfg.LogLevel}).With("migrate")
	if cfg.DBConnString == "" {
		log.Fatal().Msg("DB_DSN is required")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBOptions())
	if err != nil {
		log.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	if *down {
		if err := migrate.Rollback(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("roll back migrations")
		}
		log.Info().Msg("migrations rolled back")
		return
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}
	log.Info().Msg("migrations applied")
}
