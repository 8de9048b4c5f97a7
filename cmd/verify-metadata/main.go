package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Llamao/llamao-rewards/internal/metadata"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	path := getenv("METADATA_PATH", "data/nft-metadata.json")

	rep, err := metadata.Verify(path)
	if err != nil {
		log.Fatalf("verification failed: %v", err)
	}

	fmt.Printf("rarityRanks count: %d\n", rep.RankCount)
	fmt.Printf("rarityScores count: %d\n", rep.ScoreCount)
	if rep.Consistent() {
		fmt.Println("verification success: rarity maps cover the same token ids")
		return
	}
	if len(rep.OnlyRanks) > 0 {
		fmt.Printf("tokens with rank but no score: %v\n", rep.OnlyRanks)
	}
	if len(rep.OnlyScores) > 0 {
		fmt.Printf("tokens with score but no rank: %v\n", rep.OnlyScores)
	}
	os.Exit(1)
}
