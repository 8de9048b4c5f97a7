package source

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Llamao/llamao-rewards/internal/models"
)

// Postgres loads holdings from the holdings table, for deployments that
// import the mongo export into PG instead of shipping the JSON file.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Close() { p.pool.Close() }

func (p *Postgres) Holdings(ctx context.Context) ([]models.HoldingTransaction, error) {
	rows, err := p.pool.Query(ctx, `
        SELECT id, from_account_address, account_address, token_id,
               from_block_tx_hash, to_block_tx_hash, from_timestamp, to_timestamp
        FROM holdings
        ORDER BY from_timestamp ASC, token_id ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.HoldingTransaction
	for rows.Next() {
		var (
			tx     models.HoldingTransaction
			toHash *string
			fromTS time.Time
			toTS   *time.Time
		)
		if err := rows.Scan(&tx.ID.OID, &tx.FromAccountAddress, &tx.AccountAddress, &tx.TokenID,
			&tx.FromBlockTxHash, &toHash, &fromTS, &toTS); err != nil {
			return nil, err
		}
		tx.ToBlockTxHash = toHash
		// render timestamps the same way the JSON export does, so both
		// sources go through the same validation in scoring
		tx.FromTimestamp = fromTS.UTC().Format(time.RFC3339)
		if toTS != nil {
			s := toTS.UTC().Format(time.RFC3339)
			tx.ToTimestamp = &s
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}
