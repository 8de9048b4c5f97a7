package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/Llamao/llamao-rewards/internal/config"
	"github.com/Llamao/llamao-rewards/internal/models"
	"github.com/Llamao/llamao-rewards/internal/scoring"
	"github.com/Llamao/llamao-rewards/internal/source"
	"github.com/Llamao/llamao-rewards/internal/worker"
)

func main() {
	cfg := config.LoadBatch()
	ctx := context.Background()

	var src source.Source
	if cfg.PgDSN != "" {
		pg, err := source.NewPostgres(ctx, cfg.PgDSN)
		if err != nil {
			log.Printf("postgres: %v", err)
			return
		}
		defer pg.Close()
		src = pg
	} else {
		src = source.NewFile(cfg.HoldingsPath)
	}

	txs, err := src.Holdings(ctx)
	if err != nil {
		log.Printf("error generating participants: %v", err)
		return
	}
	items, err := scoring.ComputeLeaderboard(scoring.DefaultConfig(), txs)
	if err != nil {
		log.Printf("error generating participants: %v", err)
		return
	}
	if err := worker.WriteParticipantsFile(cfg.OutputPath, items); err != nil {
		log.Printf("error generating participants: %v", err)
		return
	}

	fmt.Printf("Successfully wrote %d participants to %s\n", len(items), cfg.OutputPath)
	if err := printSummary(items, cfg.SummaryTop); err != nil {
		log.Printf("summary: %v", err)
	}
}

// printSummary renders the top accounts to stdout for a quick sanity
// check after a regeneration.
func printSummary(items []models.Participant, top int) error {
	if len(items) == 0 {
		return nil
	}
	if top > 0 && top < len(items) {
		items = items[:top]
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Rank", "Account", "Points"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, it := range items {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			it.AccountAddress,
			strconv.FormatFloat(it.TotalPoints, 'f', 2, 64),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
