package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nft-metadata.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVerifyOK(t *testing.T) {
	path := writeTemp(t, `{
      "rarityRanks": {"1": 3, "2": 1, "3": 2},
      "rarityScores": {"1": 10.5, "2": 42.0, "3": 17.25}
    }`)
	rep, err := Verify(path)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.RankCount)
	assert.Equal(t, 3, rep.ScoreCount)
	assert.True(t, rep.Consistent())
}

func TestVerifyMismatchedTokenSets(t *testing.T) {
	path := writeTemp(t, `{
      "rarityRanks": {"1": 1, "2": 2},
      "rarityScores": {"2": 5.0, "3": 7.0}
    }`)
	rep, err := Verify(path)
	require.NoError(t, err)
	assert.False(t, rep.Consistent())
	assert.Equal(t, []string{"1"}, rep.OnlyRanks)
	assert.Equal(t, []string{"3"}, rep.OnlyScores)
}

func TestVerifyMissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no rarityRanks", `{"rarityScores": {"1": 1.0}}`},
		{"no rarityScores", `{"rarityRanks": {"1": 1}}`},
		{"empty object", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Verify(writeTemp(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestVerifyMissingFile(t *testing.T) {
	_, err := Verify(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestVerifyMalformedJSON(t *testing.T) {
	_, err := Verify(writeTemp(t, `{"rarityRanks": [1,2,3]}`))
	assert.Error(t, err)
}
