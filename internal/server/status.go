package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voluntaura/internal/filter"
	"voluntaura/internal/models"
	"voluntaura/internal/notify"
)

func (s *Server) handleGetState(c *gin.Context) {
	st := s.prefs.Snapshot()
	respondSuccess(c, http.StatusOK, gin.H{
		"state":    st,
		"progress": st.Progress(),
		"degraded": s.prefs.Degraded(),
	})
}

// handleListStatus returns the opportunities in one status set, in catalog order.
func (s *Server) handleListStatus(c *gin.Context) {
	kind, ok := s.parseKind(c)
	if !ok {
		return
	}
	ids := s.prefs.Snapshot().Status(kind)
	opps := filter.ByIDs(s.catalog.All(), ids)
	respondSuccess(c, http.StatusOK, gin.H{"kind": kind, "opportunities": present(opps)})
}

func (s *Server) handleAddStatus(c *gin.Context) {
	kind, ok := s.parseKind(c)
	if !ok {
		return
	}
	opp, ok := s.lookup(c)
	if !ok {
		return
	}

	st := s.prefs.AddToStatusSet(c.Request.Context(), kind, opp.ID)
	toast := notify.ForStatusAdd(kind, opp)
	s.logger.Debug("status added", zap.String("kind", string(kind)), zap.String("opportunity", opp.ID), zap.String("toast", toast.Title))
	respondSuccess(c, http.StatusOK, gin.H{"ids": st.Status(kind), "toast": toast})
}

// handleRemoveStatus accepts ids no longer in the catalog so stale entries can be cleaned up.
func (s *Server) handleRemoveStatus(c *gin.Context) {
	kind, ok := s.parseKind(c)
	if !ok {
		return
	}
	id := c.Param("id")
	opp, err := s.catalog.Get(id)
	if err != nil {
		opp = models.Opportunity{ID: id, Title: id}
	}

	st := s.prefs.RemoveFromStatusSet(c.Request.Context(), kind, id)
	toast := notify.ForStatusRemove(kind, opp)
	s.logger.Debug("status removed", zap.String("kind", string(kind)), zap.String("opportunity", id), zap.String("toast", toast.Title))
	respondSuccess(c, http.StatusOK, gin.H{"ids": st.Status(kind), "toast": toast})
}

// handleAdvanceStatus is the list-page primary action: saved and matched
// opportunities are applied to, applied ones are marked completed.
func (s *Server) handleAdvanceStatus(c *gin.Context) {
	kind, ok := s.parseKind(c)
	if !ok {
		return
	}
	opp, ok := s.lookup(c)
	if !ok {
		return
	}

	var next models.StatusKind
	switch kind {
	case models.StatusSaved, models.StatusMatched:
		next = models.StatusApplied
	case models.StatusApplied:
		next = models.StatusCompleted
	default:
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("no action for %s opportunities", kind))
		return
	}

	st := s.prefs.AddToStatusSet(c.Request.Context(), next, opp.ID)
	respondSuccess(c, http.StatusOK, gin.H{
		"kind":  next,
		"ids":   st.Status(next),
		"toast": notify.ForStatusAdd(next, opp),
	})
}
