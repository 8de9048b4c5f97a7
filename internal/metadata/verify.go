package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Document is the slice of nft-metadata.json the rewards pages rely on.
// The full file carries per-token traits as well; only the rarity maps
// are contract here.
type Document struct {
	RarityRanks  map[string]int     `json:"rarityRanks"`
	RarityScores map[string]float64 `json:"rarityScores"`
}

// Report summarizes a verification pass over the metadata artifact.
type Report struct {
	RankCount  int
	ScoreCount int
	// token ids present in one rarity map but not the other
	OnlyRanks  []string
	OnlyScores []string
}

func (r Report) Consistent() bool {
	return len(r.OnlyRanks) == 0 && len(r.OnlyScores) == 0
}

// Verify checks that the generated metadata file carries both rarity
// maps and that they cover the same token ids.
func Verify(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("read metadata: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Report{}, fmt.Errorf("parse metadata %s: %w", path, err)
	}
	if doc.RarityRanks == nil {
		return Report{}, fmt.Errorf("metadata %s: rarityRanks missing", path)
	}
	if doc.RarityScores == nil {
		return Report{}, fmt.Errorf("metadata %s: rarityScores missing", path)
	}

	rep := Report{RankCount: len(doc.RarityRanks), ScoreCount: len(doc.RarityScores)}
	for id := range doc.RarityRanks {
		if _, ok := doc.RarityScores[id]; !ok {
			rep.OnlyRanks = append(rep.OnlyRanks, id)
		}
	}
	for id := range doc.RarityScores {
		if _, ok := doc.RarityRanks[id]; !ok {
			rep.OnlyScores = append(rep.OnlyScores, id)
		}
	}
	sort.Strings(rep.OnlyRanks)
	sort.Strings(rep.OnlyScores)
	return rep, nil
}
