package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Llamao/llamao-rewards/internal/models"
)

type Redis struct {
	cli *redis.Client
	ttl time.Duration
}

func NewRedis(addr string, db int, ttl time.Duration) *Redis {
	cli := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	return &Redis{cli: cli, ttl: ttl}
}

func (r *Redis) Close() error { return r.cli.Close() }

const (
	lbKey    = "rewards:leaderboard"
	lbGenKey = "rewards:leaderboard:generated_at"
)

// GetLeaderboard reads the cached leaderboard. A limit <= 0 returns all
// entries. Any redis trouble is reported as a miss, not an error, so the
// caller falls through to a fresh compute.
func (r *Redis) GetLeaderboard(ctx context.Context, limit int) (time.Time, []models.Participant, bool, error) {
	genStr, err := r.cli.Get(ctx, lbGenKey).Result()
	if err != nil {
		return time.Time{}, nil, false, nil
	}
	genUnix, _ := strconv.ParseInt(genStr, 10, 64)
	generatedAt := time.Unix(genUnix, 0).UTC()

	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}
	z, err := r.cli.ZRevRangeWithScores(ctx, lbKey, 0, stop).Result()
	if err != nil || len(z) == 0 {
		return time.Time{}, nil, false, nil
	}
	items := make([]models.Participant, 0, len(z))
	for _, m := range z {
		addr, _ := m.Member.(string)
		items = append(items, models.Participant{AccountAddress: addr, TotalPoints: m.Score})
	}
	return generatedAt, items, true, nil
}

func (r *Redis) SetLeaderboard(ctx context.Context, generatedAt time.Time, items []models.Participant) error {
	pipe := r.cli.TxPipeline()
	pipe.Del(ctx, lbKey)
	if len(items) > 0 {
		zs := make([]redis.Z, 0, len(items))
		for _, it := range items {
			zs = append(zs, redis.Z{Member: it.AccountAddress, Score: it.TotalPoints})
		}
		pipe.ZAdd(ctx, lbKey, zs...)
	}
	pipe.Set(ctx, lbGenKey, strconv.FormatInt(generatedAt.Unix(), 10), 0)
	pipe.Expire(ctx, lbKey, r.ttl)
	pipe.Expire(ctx, lbGenKey, r.ttl)
	_, err := pipe.Exec(ctx)
	return err
}
