package main

import (
	"context"
	"net/http"

	"github.com/Mammoth1930/FinanceTracker/src/api"
	"github.com/Mammoth1930/FinanceTracker/src/cache"
	"github.com/Mammoth1930/FinanceTracker/src/config"
	"github.com/Mammoth1930/FinanceTracker/src/logger"
	"github.com/Mammoth1930/FinanceTracker/src/secrets"
	"github.com/Mammoth1930/FinanceTracker/src/store"
	"github.com/Mammoth1930/FinanceTracker/src/sync"
	"github.com/Mammoth1930/FinanceTracker/src/upbank"
)

func main() {
	log := logger.New()
	cfg := config.Load()
	ctx := context.Background()

	sec, err := secrets.Load(cfg.SecretsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading secrets")
	}
	token, err := sec.Get("up", "token")
	if err != nil {
		log.Fatal().Err(err).Msg("loading secrets")
	}

	// Connect to database
	st, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to database")
	}
	defer st.Close()

	if err := st.InitSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("initializing schema")
	}

	c, err := cache.New()
	if err != nil {
		log.Fatal().Err(err).Msg("initializing cache")
	}

	bank := upbank.NewClient(token)
	syncer := sync.NewSyncer(st, bank, c, log, cfg.SyncLookback)
	go syncer.Start(ctx, cfg.SyncInterval)

	// Router
	router := api.NewRouter(st, c, syncer, log)

	log.Info().Str("port", cfg.Port).Msg("dashboard API running")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
