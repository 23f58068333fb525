package api

import (
	"net/http"

	"github.com/mvilela/lumo/internal/errors"
	"github.com/mvilela/lumo/internal/logger"
)

// handleRunMaintenance queues the maintenance jobs for immediate execution.
// The scheduler runs the same jobs overnight; this endpoint exists for manual
// triggering after config changes or long downtime.
func (s *Server) handleRunMaintenance(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context()).WithPrefix("maintenance")

	if s.MaintenancePool == nil || len(s.MaintenanceJobs) == 0 {
		handleError(w, r, errors.NewBadRequestError("no maintenance jobs configured"))
		return
	}

	for _, job := range s.MaintenanceJobs {
		log.Info("queueing maintenance job: %s", job.Name())
		s.MaintenancePool.Submit(job)
	}

	respondJSON(w, http.StatusAccepted, map[string]any{
		"queued":  len(s.MaintenanceJobs),
		"pending": s.MaintenancePool.QueueSize(),
	})
}
