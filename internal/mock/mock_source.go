package mock

import (
	"context"

	"github.com/Llamao/llamao-rewards/internal/models"
)

// MockSource serves a fixed transaction list, or a fixed error.
type MockSource struct {
	Txs   []models.HoldingTransaction
	Err   error
	Loads int
}

func (m *MockSource) Holdings(ctx context.Context) ([]models.HoldingTransaction, error) {
	m.Loads++
	if m.Err != nil {
		return nil, m.Err
	}
	// copy so callers can't mutate the fixture
	out := make([]models.HoldingTransaction, len(m.Txs))
	copy(out, m.Txs)
	return out, nil
}
