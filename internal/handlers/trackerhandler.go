package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtracker/internal/services"
	"jobtracker/internal/store"
)

// TrackerHandler exposes the "Run Now" action and the run history. Tracker
// is nil when no database is configured — the pipeline only runs against a
// persistent store, so without one we answer with a no-op stub.
type TrackerHandler struct {
	Tracker *services.TrackerService
	Store   store.JobStore
}

func NewTrackerHandler(tracker *services.TrackerService, st store.JobStore) *TrackerHandler {
	return &TrackerHandler{Tracker: tracker, Store: st}
}

// RunTracker is POST /api/tracker/run
func (h *TrackerHandler) RunTracker(c *gin.Context) {
	if h.Tracker == nil {
		c.JSON(http.StatusOK, services.RunReport{
			Logs: []string{"No database configured"},
		})
		return
	}

	report, err := h.Tracker.Run(c.Request.Context())
	if errors.Is(err, services.ErrRunInProgress) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// ListRuns is GET /api/tracker/runs — the 20 most recent runs, newest first.
func (h *TrackerHandler) ListRuns(c *gin.Context) {
	runs, err := h.Store.ListRuns(c.Request.Context(), 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, runs)
}
