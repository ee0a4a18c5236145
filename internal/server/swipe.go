package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voluntaura/internal/models"
	"voluntaura/internal/notify"
	"voluntaura/internal/swipe"
)

// errSwipeSuspended answers swipe actions while the questionnaire is open.
var errSwipeSuspended = errors.New("swipe is suspended while the questionnaire is open")

type releaseRequest struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

type dragFeedback struct {
	Rotation     float64 `json:"rotation"`
	CardOpacity  float64 `json:"cardOpacity"`
	StampOpacity float64 `json:"stampOpacity"`
}

type swipeView struct {
	SessionID   string               `json:"sessionId"`
	State       swipe.State          `json:"state"`
	Window      []models.Opportunity `json:"window"`
	Remaining   int                  `json:"remaining"`
	Cursor      int                  `json:"cursor"`
	Celebration *models.Opportunity  `json:"celebration"`
}

func (s *Server) swipeView() swipeView {
	v := swipeView{
		SessionID: s.session.ID(),
		State:     s.session.State(),
		Window:    present(s.session.Window()),
		Remaining: s.session.Remaining(),
		Cursor:    s.session.Cursor(),
	}
	if opp, ok := s.celebration.Current(); ok {
		v.Celebration = &opp
	}
	return v
}

func (s *Server) handleSwipe(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"swipe": s.swipeView()})
}

func (s *Server) handleSwipeLeft(c *gin.Context) {
	s.resolveSwipe(c, swipe.DecisionLeft.String(), s.session.SwipeLeft, nil, nil)
}

func (s *Server) handleSwipeRight(c *gin.Context) {
	s.resolveSwipe(c, swipe.DecisionRight.String(), s.session.SwipeRight, nil, nil)
}

func (s *Server) handleSwipeSave(c *gin.Context) {
	s.resolveSwipe(c, "save", s.session.Save, notify.SwipeSaved, nil)
}

// handleSwipeRelease replays a finished drag of dx/dy pixels from the card's
// rest position. Past the threshold it resolves like the matching button;
// otherwise the card snaps back and nothing changes.
func (s *Server) handleSwipeRelease(c *gin.Context) {
	var req releaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	if s.suspended(c) {
		return
	}

	var drag swipe.Drag
	drag.Start(0, 0)
	drag.Move(req.DX, req.DY)
	feedback := dragFeedback{
		Rotation:     drag.Rotation(),
		CardOpacity:  drag.CardOpacity(),
		StampOpacity: drag.StampOpacity(),
	}
	decision := drag.Release()
	extra := gin.H{"decision": decision.String(), "feedback": feedback}

	switch decision {
	case swipe.DecisionLeft:
		s.resolveSwipe(c, decision.String(), s.session.SwipeLeft, nil, extra)
	case swipe.DecisionRight:
		s.resolveSwipe(c, decision.String(), s.session.SwipeRight, nil, extra)
	default:
		extra["swipe"] = s.swipeView()
		respondSuccess(c, http.StatusOK, extra)
	}
}

// resolveSwipe applies one swipe action to the head card. An exhausted feed
// or an open questionnaire answers 409 with the current view so the client
// can render the right screen.
func (s *Server) resolveSwipe(c *gin.Context, direction string, action func(context.Context) (models.Opportunity, error), toast func(models.Opportunity) notify.Toast, extra gin.H) {
	if s.suspended(c) {
		return
	}

	opp, err := action(c.Request.Context())
	if errors.Is(err, swipe.ErrExhausted) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "swipe": s.swipeView()})
		return
	}
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	s.metrics.Swiped(direction)

	payload := gin.H{"opportunity": present([]models.Opportunity{opp})[0], "swipe": s.swipeView()}
	for k, v := range extra {
		payload[k] = v
	}
	if toast != nil {
		payload["toast"] = toast(opp)
	}
	respondSuccess(c, http.StatusOK, payload)
}

// suspended answers 409 while the questionnaire is open.
func (s *Server) suspended(c *gin.Context) bool {
	if s.wizard == nil || !s.wizard.Open() {
		return false
	}
	s.logger.Debug("request rejected", zap.String("path", c.FullPath()), zap.Error(errSwipeSuspended))
	c.JSON(http.StatusConflict, gin.H{"error": errSwipeSuspended.Error(), "swipe": s.swipeView()})
	return true
}

func (s *Server) handleSwipeReset(c *gin.Context) {
	s.session.Reset()
	respondSuccess(c, http.StatusOK, gin.H{"swipe": s.swipeView()})
}

func (s *Server) handleDismissCelebration(c *gin.Context) {
	s.celebration.Dismiss()
	respondSuccess(c, http.StatusOK, gin.H{"swipe": s.swipeView()})
}
