package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"guarashopp-storefront/internal/config"
	"guarashopp-storefront/internal/importer"
	"guarashopp-storefront/internal/logger"
	"guarashopp-storefront/internal/workspace"
)

func main() {
	var (
		filePath string
		email    string
		password string
	)
	flag.StringVar(&filePath, "file", "", "Path to the product CSV (nome,descricao,preco,estoque,categoria,imagem,ativo)")
	flag.StringVar(&email, "email", os.Getenv("ADMIN_EMAIL"), "Admin account used for the import")
	flag.StringVar(&password, "password", os.Getenv("ADMIN_PASSWORD"), "Admin password")
	flag.Parse()

	if filePath == "" || email == "" || password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	log := logger.New(logger.Config{Env: cfg.AppEnv, Level: cfg.LogLevel}).With("importer")
	ctx := context.Background()

	ws, err := workspace.LoginAdmin(ctx, workspace.Deps{
		APIBaseURL: cfg.APIBaseURL,
		APITimeout: cfg.APITimeout,
		Logger:     log,
	}, email, password)
	if err != nil {
		log.Fatal().Err(err).Msg("admin login")
	}
	defer ws.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatal().Err(err).Msg("open file")
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, ws.Products, ws.Categories, log)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Int("imported", count).Msg("import failed")
	}

	fmt.Printf("Imported %d products into %s in %s\n", count, cfg.APIBaseURL, time.Since(start).Truncate(time.Millisecond))
}
