package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mvilela/lumo/internal/errors"
	"github.com/mvilela/lumo/internal/models"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.ProgressService.Stats(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	txns, err := s.ProgressService.RecentTransactions(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if txns == nil {
		txns = []models.XPTransaction{}
	}
	respondJSON(w, http.StatusOK, txns)
}

func (s *Server) handleRecordActivity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type  models.ActivityType `json:"type"`
		Count int                 `json:"count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}
	if req.Type == "" {
		handleError(w, r, errors.NewValidationError("type", "must not be empty"))
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}

	if err := s.ActivityService.Record(r.Context(), req.Type, req.Count); err != nil {
		handleError(w, r, err)
		return
	}

	stats, err := s.ProgressService.Stats(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleDailyActivity(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	history, err := s.ActivityService.DailyHistory(r.Context(), days)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if history == nil {
		history = []models.DailyActivity{}
	}
	respondJSON(w, http.StatusOK, history)
}
