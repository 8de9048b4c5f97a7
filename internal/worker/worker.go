package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Llamao/llamao-rewards/internal/cache"
	"github.com/Llamao/llamao-rewards/internal/models"
	"github.com/Llamao/llamao-rewards/internal/scoring"
	"github.com/Llamao/llamao-rewards/internal/source"
)

// Refresher periodically recomputes the leaderboard from a fresh
// holdings snapshot and pushes it to the cache, and optionally rewrites
// the participants file artifact. Each tick is a full recompute; a
// failed tick is logged and the next tick starts over.
type Refresher struct {
	Source  source.Source
	Scoring scoring.Config
	Cache   cache.Cache

	// OutputPath, when set, is rewritten with the participants JSON on
	// every successful refresh.
	OutputPath string
	Interval   time.Duration
}

func (r *Refresher) Run(ctx context.Context) error {
	log.Printf("refresher starting: interval=%s output=%q", r.Interval, r.OutputPath)
	if err := r.RefreshOnce(ctx); err != nil {
		log.Printf("refresh error: %v", err)
	}
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.RefreshOnce(ctx); err != nil {
				log.Printf("refresh error: %v", err)
			}
		}
	}
}

// RefreshOnce loads, computes and publishes a single complete snapshot.
func (r *Refresher) RefreshOnce(ctx context.Context) error {
	t0 := time.Now()
	txs, err := r.Source.Holdings(ctx)
	if err != nil {
		return fmt.Errorf("load holdings: %w", err)
	}
	items, err := scoring.ComputeLeaderboard(r.Scoring, txs)
	if err != nil {
		return fmt.Errorf("compute leaderboard: %w", err)
	}
	if r.Cache != nil {
		if err := r.Cache.SetLeaderboard(ctx, time.Now().UTC(), items); err != nil {
			return fmt.Errorf("cache leaderboard: %w", err)
		}
	}
	if r.OutputPath != "" {
		if err := WriteParticipantsFile(r.OutputPath, items); err != nil {
			return err
		}
	}
	log.Printf("refreshed: txs=%d participants=%d in %dms", len(txs), len(items), time.Since(t0).Milliseconds())
	return nil
}

// WriteParticipantsFile writes the leaderboard as pretty-printed JSON,
// the format the gallery and rewards pages consume as static data. The
// file is fully replaced on every write.
func WriteParticipantsFile(path string, items []models.Participant) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode participants: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write participants: %w", err)
	}
	return nil
}
