package scoring

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Llamao/llamao-rewards/internal/models"
)

// NullAddress marks mint-style transfers, which earn a flat bonus.
const NullAddress = "0x0000000000000000000000000000000000000000"

// Config holds the reward-window bounds and point rates. Values are
// passed in explicitly so the computation stays pure and testable.
type Config struct {
	NullAddress string
	// WindowStart clamps holding starts; nothing accrues before it.
	WindowStart time.Time
	// WindowEnd is the snapshot cutoff used for still-open holdings.
	WindowEnd    time.Time
	PointsPerDay float64
	BonusPoints  float64
}

// DefaultConfig returns the reward-campaign constants.
func DefaultConfig() Config {
	return Config{
		NullAddress:  NullAddress,
		WindowStart:  time.Date(2025, 12, 2, 7, 59, 59, 0, time.UTC),
		WindowEnd:    time.Date(2025, 12, 5, 3, 0, 0, 0, time.UTC),
		PointsPerDay: 10,
		BonusPoints:  50,
	}
}

const msPerDay = 24 * 60 * 60 * 1000

// ComputeLeaderboard scores every holding transaction and returns one
// entry per distinct account, sorted by points descending. Ties keep the
// order accounts were first seen in the input, so the output is stable
// across runs. Any malformed record fails the whole batch; no partial
// leaderboard is ever returned.
func ComputeLeaderboard(cfg Config, txs []models.HoldingTransaction) ([]models.Participant, error) {
	totals := make(map[string]float64, len(txs))
	order := make([]string, 0, len(txs))

	for i, tx := range txs {
		if tx.AccountAddress == "" {
			return nil, fmt.Errorf("transaction %d: missing accountAddress", i)
		}
		score, err := scoreTransaction(cfg, tx)
		if err != nil {
			return nil, fmt.Errorf("transaction %d (account %s): %w", i, tx.AccountAddress, err)
		}
		if _, ok := totals[tx.AccountAddress]; !ok {
			order = append(order, tx.AccountAddress)
		}
		totals[tx.AccountAddress] += score
	}

	out := make([]models.Participant, 0, len(order))
	for _, addr := range order {
		out = append(out, models.Participant{
			AccountAddress: addr,
			TotalPoints:    round2(totals[addr]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalPoints > out[j].TotalPoints })
	return out, nil
}

// scoreTransaction computes a single transaction's contribution: a flat
// bonus for mint-origin transfers plus duration points for full days
// held inside the clamped reward window.
func scoreTransaction(cfg Config, tx models.HoldingTransaction) (float64, error) {
	var score float64
	if tx.FromAccountAddress == cfg.NullAddress {
		score += cfg.BonusPoints
	}

	start, err := parseTimestamp(tx.FromTimestamp)
	if err != nil {
		return 0, fmt.Errorf("fromTimestamp: %w", err)
	}
	effectiveStart := start
	if effectiveStart.Before(cfg.WindowStart) {
		effectiveStart = cfg.WindowStart
	}

	effectiveEnd := cfg.WindowEnd
	if tx.ToTimestamp != nil && *tx.ToTimestamp != "" {
		effectiveEnd, err = parseTimestamp(*tx.ToTimestamp)
		if err != nil {
			return 0, fmt.Errorf("toTimestamp: %w", err)
		}
	}

	// end <= start scores zero duration: covers holdings that closed
	// before the window opened, and inverted ranges. Not an error.
	if effectiveEnd.After(effectiveStart) {
		durationMs := effectiveEnd.Sub(effectiveStart).Milliseconds()
		durationDays := durationMs / msPerDay
		score += float64(durationDays) * cfg.PointsPerDay
	}
	return score, nil
}

// parseTimestamp accepts RFC3339 with or without fractional seconds,
// matching the ISO-8601 strings in the holdings export. An unparsable
// value is an error; it must never coerce to a zero time.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return t.UTC(), nil
}

// round2 rounds half away from zero to two decimals. All contributions
// are integral with the default rates; this only matters if the rates
// are ever made fractional.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
