package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mvilela/lumo/internal/errors"
	"github.com/mvilela/lumo/internal/models"
)

func (s *Server) handleListBadges(w http.ResponseWriter, r *http.Request) {
	badges, err := s.BadgeService.List(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if badges == nil {
		badges = []models.Badge{}
	}
	respondJSON(w, http.StatusOK, badges)
}

func (s *Server) handleBadgeProgress(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Progress int `json:"progress"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	badge, err := s.BadgeService.UpdateProgress(r.Context(), id, req.Progress)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if badge == nil {
		handleError(w, r, errors.NewNotFoundError("badge", id))
		return
	}
	respondJSON(w, http.StatusOK, badge)
}

func (s *Server) handleAwardBadge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	badge, err := s.BadgeService.Award(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if badge == nil {
		handleError(w, r, errors.NewNotFoundError("badge", id))
		return
	}
	respondJSON(w, http.StatusOK, badge)
}
