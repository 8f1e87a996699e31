package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guarashopp-storefront/internal/config"
	"guarashopp-storefront/internal/db"
	"guarashopp-storefront/internal/httpserver"
	"guarashopp-storefront/internal/logger"
	"guarashopp-storefront/internal/repository/storage"
	anonymoussvc "guarashopp-storefront/internal/service/anonymous"
	"guarashopp-storefront/internal/workspace"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(logger.Config{Env: cfg.AppEnv, Level: cfg.LogLevel}).With("api")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var (
		store  storage.Repository
		pinger httpserver.Pinger
	)
	if cfg.DBConnString != "" {
		pool, err := db.Connect(ctx, cfg.DBOptions())
		if err != nil {
			log.Fatal().Err(err).Msg("connect to db")
		}
		defer pool.Close()
		store = storage.NewPostgres(pool)
		pinger = pool
	} else {
		log.Warn().Msg("DB_DSN not set, client state is kept in memory")
		store = storage.NewMemory()
	}

	visitors := anonymoussvc.New(func(ctx context.Context, visitorID string) *workspace.Workspace {
		return workspace.New(ctx, workspace.Deps{
			APIBaseURL:    cfg.APIBaseURL,
			APITimeout:    cfg.APITimeout,
			AlertDuration: cfg.AlertDuration,
			Store:         store,
			Logger:        log.With("workspace"),
		}, visitorID)
	}, store, cfg.VisitorIdleTTL, cfg.SessionMaxAge, log.With("visitors"))
	go visitors.Run(ctx, time.Minute)

	srv, err := httpserver.New(cfg.HTTPAddr, log.With("http"), httpserver.Deps{
		Visitors:      visitors,
		DB:            pinger,
		SessionSecret: cfg.SessionSecret,
		SessionCookie: cfg.SessionCookie,
		SessionMaxAge: cfg.SessionMaxAge,
		SecureCookie:  !cfg.Development(),
		CORSOrigins:   cfg.CORSOrigins,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("backend", cfg.APIBaseURL).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		log.Error().Err(err).Msg("server error")
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		log.Info().Msg("server stopped")
	}
}
