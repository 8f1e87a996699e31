package main

import (
	"context"
	"flag"
	"os"

	"guarashopp-storefront/internal/config"
	"guarashopp-storefront/internal/logger"
	"guarashopp-storefront/internal/seed"
	"guarashopp-storefront/internal/workspace"
)

func main() {
	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "Admin account used for seeding")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "Admin password")
	flag.Parse()

	cfg := config.FromEnv()
	log := logger.New(logger.Config{Env: cfg.AppEnv, Level: cfg.LogLevel}).With("seed")
	if *email == "" || *password == "" {
		log.Fatal().Msg("admin credentials are required (-email/-password or ADMIN_EMAIL/ADMIN_PASSWORD)")
	}

	ctx := context.Background()
	ws, err := workspace.LoginAdmin(ctx, workspace.Deps{
		APIBaseURL: cfg.APIBaseURL,
		APITimeout: cfg.APITimeout,
		Logger:     log,
	}, *email, *password)
	if err != nil {
		log.Fatal().Err(err).Msg("admin login")
	}
	defer ws.Close()

	created, err := seed.Apply(ctx, ws.Categories, ws.Products)
	if err != nil {
		log.Fatal().Err(err).Msg("seed apply")
	}
	log.Info().Int("created", created).Msg("seed applied")
}
