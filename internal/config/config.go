package config

import (
	"os"
	"strconv"
	"time"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvDur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

type Common struct {
	// HoldingsPath is the JSON export read when PgDSN is empty.
	HoldingsPath string
	// PgDSN selects the postgres holdings source when set.
	PgDSN     string
	RedisAddr string
	RedisDB   int
	CacheTTL  time.Duration
}

func LoadCommon() Common {
	return Common{
		HoldingsPath: getenv("HOLDINGS_PATH", "llamao.holdings.json"),
		PgDSN:        getenv("PG_DSN", ""),
		RedisAddr:    getenv("REDIS_ADDR", ""),
		RedisDB:      getenvInt("REDIS_DB", 0),
		CacheTTL:     getenvDur("CACHE_TTL", 10*time.Minute),
	}
}

type API struct {
	Common
	Addr string
}

func LoadAPI() API {
	return API{
		Common: LoadCommon(),
		Addr:   getenv("API_ADDR", ":8080"),
	}
}

type Worker struct {
	Common
	RefreshInterval time.Duration
	OutputPath      string
}

func LoadWorker() Worker {
	return Worker{
		Common:          LoadCommon(),
		RefreshInterval: getenvDur("REFRESH_INTERVAL", 60*time.Second),
		OutputPath:      getenv("PARTICIPANTS_PATH", ""),
	}
}

type Batch struct {
	Common
	OutputPath string
	SummaryTop int
}

func LoadBatch() Batch {
	return Batch{
		Common:     LoadCommon(),
		OutputPath: getenv("PARTICIPANTS_PATH", "public/participants.json"),
		SummaryTop: getenvInt("SUMMARY_TOP", 10),
	}
}
