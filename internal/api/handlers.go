package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Llamao/llamao-rewards/internal/cache"
	"github.com/Llamao/llamao-rewards/internal/scoring"
	"github.com/Llamao/llamao-rewards/internal/source"
)

type Handler struct {
	Source  source.Source
	Scoring scoring.Config
	// optional; nil means every request computes from a fresh snapshot
	Cache cache.Cache
}

func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("/ranking", h.Ranking)
}

// GET /ranking
func (h *Handler) Ranking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := parseLimit(r, 0)

	if h.Cache != nil {
		if _, items, ok, err := h.Cache.GetLeaderboard(ctx, limit); err == nil && ok {
			writeJSON(w, http.StatusOK, items)
			return
		}
	}

	txs, err := h.Source.Holdings(ctx)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}
	items, err := scoring.ComputeLeaderboard(h.Scoring, txs)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}
	if h.Cache != nil {
		_ = h.Cache.SetLeaderboard(ctx, time.Now().UTC(), items)
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	writeJSON(w, http.StatusOK, items)
}

// parseLimit reads the limit query param; 0 means no limit.
func parseLimit(r *http.Request, def int) int {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	if n > 10000 {
		n = 10000
	}
	return n
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON error: %v", err)
	}
}

func httpError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
