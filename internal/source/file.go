package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Llamao/llamao-rewards/internal/models"
)

// File reads holdings from a JSON array on disk (the llamao.holdings.json
// export). The file is re-read on every call so each invocation sees the
// current snapshot.
type File struct {
	Path string
}

func NewFile(path string) *File { return &File{Path: path} }

func (f *File) Holdings(ctx context.Context) ([]models.HoldingTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read holdings: %w", err)
	}
	var txs []models.HoldingTransaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("parse holdings %s: %w", f.Path, err)
	}
	return txs, nil
}
