package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mvilela/lumo/internal/errors"
	"github.com/mvilela/lumo/internal/logger"
	"github.com/mvilela/lumo/internal/models"
)

func idParam(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid id")
	}
	return id, nil
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content     string `json:"content"`
		ContentType string `json:"content_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	item, err := s.ReviewService.CreateItem(r.Context(), req.Content, req.ContentType)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	filter := models.ItemFilter{
		Status:      models.ItemStatus(q.Get("status")),
		ContentType: q.Get("content_type"),
		Limit:       limit,
		Offset:      offset,
	}

	items, err := s.ReviewService.ListItems(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if items == nil {
		items = []models.LearningItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleDueItems(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := s.ReviewService.DueItems(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if items == nil {
		items = []models.LearningItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleReviewItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req struct {
		Quality int `json:"quality"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	item, err := s.ReviewService.RecordReview(r.Context(), id, req.Quality)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if item == nil {
		handleError(w, r, errors.NewNotFoundError("item", id))
		return
	}

	log.Info("item reviewed: id=%d, quality=%d", id, req.Quality)
	respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := s.ReviewService.DeleteItem(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
