package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	server "cairo_tours/internal/adapters/http_server"
	"cairo_tours/internal/adapters/observability"
	redisad "cairo_tours/internal/adapters/redis"
	"cairo_tours/internal/adapters/session"
	"cairo_tours/internal/adapters/tablestore"
	"cairo_tours/internal/app"
	"cairo_tours/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	store, err := tablestore.New(cfg.StoreBase, cfg.StoreKey, cfg.StoreRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("table store client init failed")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	catalog := app.NewCatalog(store, cache, cfg.CacheTTL)
	catalog.WarmStart(context.Background())

	// first refresh runs in the background; snapshots (when present)
	// serve stale data until it lands
	go func() {
		if err := catalog.RefreshAll(context.Background()); err != nil {
			log.Warn().Err(err).Msg("initial catalog refresh incomplete")
			return
		}
		log.Info().Msg("catalog refreshed")
	}()

	sessions := session.New(cfg.AuthBase, cfg.StoreKey, []byte(cfg.JWTSecret), cache)

	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Catalog: catalog, Sessions: sessions})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}
