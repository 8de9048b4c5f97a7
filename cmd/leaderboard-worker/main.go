package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/Llamao/llamao-rewards/internal/cache"
	"github.com/Llamao/llamao-rewards/internal/config"
	"github.com/Llamao/llamao-rewards/internal/scoring"
	"github.com/Llamao/llamao-rewards/internal/source"
	"github.com/Llamao/llamao-rewards/internal/worker"
)

func main() {
	cfg := config.LoadWorker()
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

	r := &worker.Refresher{
		Source:     src,
		Scoring:    scoring.DefaultConfig(),
		OutputPath: cfg.OutputPath,
		Interval:   cfg.RefreshInterval,
	}
	if cfg.RedisAddr != "" {
		rds := cache.NewRedis(cfg.RedisAddr, cfg.RedisDB, cfg.CacheTTL)
		defer rds.Close()
		r.Cache = rds
	}

	if err := r.Run(ctx); err != nil && err != context.Canceled {
		log.Printf("worker stopped: %v", err)
	}
	// Give logs time to flush in some environments
	time.Sleep(100 * time.Millisecond)
}
