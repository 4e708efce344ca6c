package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"NiftyPulse/internal/collector"
	"NiftyPulse/internal/strategy"
)

type handlers struct {
	collector *collector.Collector
	maxAge    int // seconds, for Cache-Control
}

func registerHandlers(mux *http.ServeMux, col *collector.Collector, cacheMaxAge time.Duration) {
	h := &handlers{collector: col, maxAge: int(cacheMaxAge.Seconds())}
	mux.HandleFunc("GET /api/health", h.handleHealth)
	mux.HandleFunc("GET /api/candles", h.handleCandles)
	mux.HandleFunc("GET /api/indicators", h.handleIndicators)
	mux.HandleFunc("GET /api/analysis", h.handleAnalysis)
}

func (h *handlers) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", h.maxAge))
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func (h *handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (h *handlers) handleCandles(w http.ResponseWriter, r *http.Request) {
	candles, err := h.collector.Candles()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 && limit < len(candles) {
			candles = candles[len(candles)-limit:]
		}
	}
	h.writeJSON(w, candles)
}

func (h *handlers) handleIndicators(w http.ResponseWriter, _ *http.Request) {
	points, _, err := h.collector.Snapshot()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, points)
}

func (h *handlers) handleAnalysis(w http.ResponseWriter, _ *http.Request) {
	_, record, err := h.collector.Snapshot()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, record)
}

func (h *handlers) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, strategy.ErrNoData) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusBadGateway)
}
