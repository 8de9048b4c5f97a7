package source

import (
	"context"

	"github.com/Llamao/llamao-rewards/internal/models"
)

// Source loads the full holdings snapshot. Every call reads fresh;
// implementations must not cache across invocations.
type Source interface {
	Holdings(ctx context.Context) ([]models.HoldingTransaction, error)
}
