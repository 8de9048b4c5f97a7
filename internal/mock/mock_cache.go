package mock

import (
	"context"
	"time"

	"github.com/Llamao/llamao-rewards/internal/models"
)

type MockCache struct {
	GeneratedAt time.Time
	Items       []models.Participant
	Set         bool
	SetCalls    int
}

func (m *MockCache) GetLeaderboard(ctx context.Context, limit int) (time.Time, []models.Participant, bool, error) {
	if !m.Set || len(m.Items) == 0 {
		return time.Time{}, nil, false, nil
	}
	items := m.Items
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return m.GeneratedAt, items, true, nil
}

func (m *MockCache) SetLeaderboard(ctx context.Context, generatedAt time.Time, items []models.Participant) error {
	m.GeneratedAt, m.Items, m.Set = generatedAt, items, true
	m.SetCalls++
	return nil
}
