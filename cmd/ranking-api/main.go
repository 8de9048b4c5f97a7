package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Llamao/llamao-rewards/internal/api"
	"github.com/Llamao/llamao-rewards/internal/cache"
	"github.com/Llamao/llamao-rewards/internal/config"
	"github.com/Llamao/llamao-rewards/internal/scoring"
	"github.com/Llamao/llamao-rewards/internal/source"
)

func main() {
	cfg := config.LoadAPI()
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var src source.Source
	if cfg.PgDSN != "" {
		pg, err := source.NewPostgres(ctx, cfg.PgDSN)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer pg.Close()
		src = pg
	} else {
		src = source.NewFile(cfg.HoldingsPath)
	}

	h := &api.Handler{Source: src, Scoring: scoring.DefaultConfig()}
	if cfg.RedisAddr != "" {
		rds := cache.NewRedis(cfg.RedisAddr, cfg.RedisDB, cfg.CacheTTL)
		defer rds.Close()
		h.Cache = rds
	}

	mux := http.NewServeMux()
	h.Routes(mux)

	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	log.Printf("ranking api listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
