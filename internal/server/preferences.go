package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"voluntaura/internal/notify"
	"voluntaura/internal/prefs"
)

const (
	minGoalHours = 1
	maxGoalHours = 50
)

// filtersPayload pairs the filters with the badge count and indicator.
func filtersPayload(f prefs.Filters) gin.H {
	return gin.H{"filters": f, "activeFilters": f.ActiveCount(), "hasActiveFilters": f.HasActive()}
}

type hoursRequest struct {
	Hours float64 `json:"hours"`
}

func (s *Server) handleUpdateFilters(c *gin.Context) {
	var patch prefs.FiltersPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := patch.Validate(); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	respondSuccess(c, http.StatusOK, filtersPayload(s.prefs.UpdateFilters(c.Request.Context(), patch).Filters))
}

func (s *Server) handleClearFilters(c *gin.Context) {
	respondSuccess(c, http.StatusOK, filtersPayload(s.prefs.ClearFilters(c.Request.Context()).Filters))
}

func (s *Server) handleProgress(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"progress": s.prefs.Snapshot().Progress()})
}

func (s *Server) handleSetGoal(c *gin.Context) {
	var req hoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Hours < minGoalHours || req.Hours > maxGoalHours {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("goal must be between %d and %d hours", minGoalHours, maxGoalHours))
		return
	}

	st := s.prefs.SetGoalHours(c.Request.Context(), req.Hours)
	respondSuccess(c, http.StatusOK, gin.H{"progress": st.Progress(), "toast": notify.GoalUpdated()})
}

func (s *Server) handleAddHours(c *gin.Context) {
	var req hoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Hours <= 0 {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("hours must be positive"))
		return
	}

	st := s.prefs.AddScheduledHours(c.Request.Context(), req.Hours)
	respondSuccess(c, http.StatusOK, gin.H{"progress": st.Progress()})
}
