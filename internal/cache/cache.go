package cache

import (
	"context"
	"time"

	"github.com/Llamao/llamao-rewards/internal/models"
)

type Cache interface {
	GetLeaderboard(ctx context.Context, limit int) (generatedAt time.Time, items []models.Participant, ok bool, err error)
	SetLeaderboard(ctx context.Context, generatedAt time.Time, items []models.Participant) error
}
