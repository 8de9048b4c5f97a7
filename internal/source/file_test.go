package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHoldings = `[
  {
    "_id": {"$oid": "6750a1b2c3d4e5f60718293a"},
    "fromAccountAddress": "0x0000000000000000000000000000000000000000",
    "accountAddress": "0xaaa",
    "tokenId": 42,
    "fromBlockTxHash": "0xdeadbeef",
    "toBlockTxHash": null,
    "fromTimestamp": "2025-12-01T00:00:00.000Z",
    "toTimestamp": null
  },
  {
    "_id": {"$oid": "6750a1b2c3d4e5f60718293b"},
    "fromAccountAddress": "0xabc",
    "accountAddress": "0xbbb",
    "tokenId": 7,
    "fromBlockTxHash": "0xfeedface",
    "toBlockTxHash": "0xcafebabe",
    "fromTimestamp": "2025-12-03T00:00:00.000Z",
    "toTimestamp": "2025-12-04T00:00:00.000Z"
  }
]`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holdings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileHoldings(t *testing.T) {
	f := NewFile(writeTemp(t, sampleHoldings))
	txs, err := f.Holdings(context.Background())
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "6750a1b2c3d4e5f60718293a", txs[0].ID.OID)
	assert.Equal(t, "0xaaa", txs[0].AccountAddress)
	assert.Equal(t, int64(42), txs[0].TokenID)
	assert.Nil(t, txs[0].ToTimestamp)

	require.NotNil(t, txs[1].ToTimestamp)
	assert.Equal(t, "2025-12-04T00:00:00.000Z", *txs[1].ToTimestamp)
	require.NotNil(t, txs[1].ToBlockTxHash)
	assert.Equal(t, "0xcafebabe", *txs[1].ToBlockTxHash)
}

func TestFileHoldingsMissingFile(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nope.json"))
	_, err := f.Holdings(context.Background())
	assert.Error(t, err)
}

func TestFileHoldingsMalformedJSON(t *testing.T) {
	f := NewFile(writeTemp(t, `{"not": "an array"}`))
	_, err := f.Holdings(context.Background())
	assert.Error(t, err)
}

func TestFileHoldingsEmptyArray(t *testing.T) {
	f := NewFile(writeTemp(t, `[]`))
	txs, err := f.Holdings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, txs)
}
