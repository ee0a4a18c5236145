package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voluntaura/internal/models"
	"voluntaura/internal/prefs"
	"voluntaura/internal/wizard"
)

type textAnswer struct {
	Value string `json:"value" binding:"required"`
}

type numberAnswer struct {
	Value *int `json:"value" binding:"required"`
}

func (s *Server) wizardPayload(v wizard.View) gin.H {
	return gin.H{
		"wizard":                 v,
		"questionnaireCompleted": s.prefs.Snapshot().QuestionnaireCompleted,
	}
}

func (s *Server) handleWizard(c *gin.Context) {
	respondSuccess(c, http.StatusOK, s.wizardPayload(s.wizard.View()))
}

// handleWizardStart opens the questionnaire, also used to retake it.
func (s *Server) handleWizardStart(c *gin.Context) {
	respondSuccess(c, http.StatusOK, s.wizardPayload(s.wizard.Start()))
}

func (s *Server) handleWizardNext(c *gin.Context) {
	v, err := s.wizard.Next(c.Request.Context())
	s.respondWizard(c, v, err)
}

func (s *Server) handleWizardBack(c *gin.Context) {
	v, err := s.wizard.Back()
	s.respondWizard(c, v, err)
}

func (s *Server) respondWizard(c *gin.Context, v wizard.View, err error) {
	switch {
	case errors.Is(err, wizard.ErrStepIncomplete):
		payload := s.wizardPayload(v)
		payload["error"] = err.Error()
		c.JSON(http.StatusUnprocessableEntity, payload)
	case errors.Is(err, wizard.ErrClosed):
		s.respondError(c, http.StatusConflict, err)
	case err != nil:
		s.respondError(c, http.StatusInternalServerError, err)
	default:
		respondSuccess(c, http.StatusOK, s.wizardPayload(v))
	}
}

// handleUpdateAnswers merges several answers at once. Out-of-range numbers are clamped.
func (s *Server) handleUpdateAnswers(c *gin.Context) {
	var patch prefs.AnswersPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	a, err := s.wizard.Update(c.Request.Context(), patch)
	s.respondAnswers(c, a, err)
}

func (s *Server) handleSetExperience(c *gin.Context) {
	s.withText(c, func(v string) (prefs.Answers, error) {
		return s.wizard.SetExperience(c.Request.Context(), models.ExperienceLevel(v))
	})
}

func (s *Server) handleToggleCause(c *gin.Context) {
	s.withText(c, func(v string) (prefs.Answers, error) {
		return s.wizard.ToggleCause(c.Request.Context(), models.Cause(v))
	})
}

func (s *Server) handleToggleDay(c *gin.Context) {
	s.withText(c, func(v string) (prefs.Answers, error) {
		return s.wizard.ToggleDay(c.Request.Context(), v)
	})
}

func (s *Server) handleSetLocation(c *gin.Context) {
	s.withText(c, func(v string) (prefs.Answers, error) {
		return s.wizard.SetLocation(c.Request.Context(), models.LocationPreference(v))
	})
}

func (s *Server) handleToggleComfort(c *gin.Context) {
	s.withText(c, func(v string) (prefs.Answers, error) {
		return s.wizard.ToggleComfort(c.Request.Context(), v)
	})
}

// handleSetHoursPerWeek moves the hours slider. The value is clamped.
func (s *Server) handleSetHoursPerWeek(c *gin.Context) {
	s.withNumber(c, func(v int) prefs.Answers {
		return s.wizard.SetHoursPerWeek(c.Request.Context(), v)
	})
}

// handleSetMaxDistance moves the distance slider. The value is clamped.
func (s *Server) handleSetMaxDistance(c *gin.Context) {
	s.withNumber(c, func(v int) prefs.Answers {
		return s.wizard.SetMaxDistance(c.Request.Context(), v)
	})
}

func (s *Server) withText(c *gin.Context, write func(string) (prefs.Answers, error)) {
	var req textAnswer
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	a, err := write(req.Value)
	s.respondAnswers(c, a, err)
}

func (s *Server) withNumber(c *gin.Context, write func(int) prefs.Answers) {
	var req numberAnswer
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	s.respondAnswers(c, write(*req.Value), nil)
}

// respondAnswers returns the written answers with the wizard view, so the
// client can refresh the next button in the same round trip.
func (s *Server) respondAnswers(c *gin.Context, a prefs.Answers, err error) {
	switch {
	case errors.Is(err, wizard.ErrInvalidAnswer):
		s.respondError(c, http.StatusBadRequest, err)
	case err != nil:
		s.respondError(c, http.StatusInternalServerError, err)
	default:
		payload := s.wizardPayload(s.wizard.View())
		payload["answers"] = a
		respondSuccess(c, http.StatusOK, payload)
	}
}
