package api

import (
	"net/http"

	"github.com/mvilela/lumo/internal/errors"
	"github.com/mvilela/lumo/internal/models"
)

func (s *Server) handleTodaysChallenges(w http.ResponseWriter, r *http.Request) {
	challenges, err := s.ChallengeService.EnsureTodaysChallenges(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if challenges == nil {
		challenges = []models.DailyChallenge{}
	}
	respondJSON(w, http.StatusOK, challenges)
}

func (s *Server) handleCompleteChallenge(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	ch, err := s.ChallengeService.CompleteChallenge(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if ch == nil {
		handleError(w, r, errors.NewNotFoundError("challenge", id))
		return
	}
	respondJSON(w, http.StatusOK, ch)
}
