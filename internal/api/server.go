package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mvilela/lumo/internal/services"
	"github.com/mvilela/lumo/internal/worker"
)

// Server wires the engine services into the HTTP surface.
type Server struct {
	ReviewService    services.ReviewService
	ProgressService  services.ProgressService
	StreakService    services.StreakService
	BadgeService     services.BadgeService
	ChallengeService services.ChallengeService
	ActivityService  services.ActivityService
	MaintenancePool  *worker.Pool
	MaintenanceJobs  []worker.Job
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/api/health", s.handleHealth)

	r.Route("/api/items", func(r chi.Router) {
		r.Get("/", s.handleListItems)
		r.Post("/", s.handleCreateItem)
		r.Get("/due", s.handleDueItems)
		r.Post("/{id}/review", s.handleReviewItem)
		r.Delete("/{id}", s.handleDeleteItem)
	})

	r.Get("/api/stats", s.handleStats)
	r.Get("/api/stats/transactions", s.handleTransactions)

	r.Post("/api/activity", s.handleRecordActivity)
	r.Get("/api/activity/daily", s.handleDailyActivity)

	r.Route("/api/badges", func(r chi.Router) {
		r.Get("/", s.handleListBadges)
		r.Post("/{id}/progress", s.handleBadgeProgress)
		r.Post("/{id}/award", s.handleAwardBadge)
	})

	r.Route("/api/challenges", func(r chi.Router) {
		r.Get("/today", s.handleTodaysChallenges)
		r.Post("/{id}/complete", s.handleCompleteChallenge)
	})

	r.Post("/api/maintenance/run", s.handleRunMaintenance)

	return r
}
