package models

// ObjectID mirrors the {"$oid": "..."} wrapper in the mongo export.
type ObjectID struct {
	OID string `json:"$oid"`
}

// HoldingTransaction is one continuous holding period of a token by an
// account, as exported from the holdings collection. Timestamps stay raw
// strings here; scoring parses and validates them.
type HoldingTransaction struct {
	ID                 ObjectID `json:"_id"`
	FromAccountAddress string   `json:"fromAccountAddress"`
	AccountAddress     string   `json:"accountAddress"`
	TokenID            int64    `json:"tokenId"`
	FromBlockTxHash    string   `json:"fromBlockTxHash"`
	ToBlockTxHash      *string  `json:"toBlockTxHash"`
	FromTimestamp      string   `json:"fromTimestamp"`
	// nil or empty means the holding is still open at snapshot time
	ToTimestamp *string `json:"toTimestamp"`
}

// Participant is one leaderboard row.
type Participant struct {
	AccountAddress string  `json:"accountAddress"`
	TotalPoints    float64 `json:"totalPoints"`
}
