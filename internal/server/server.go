package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voluntaura/internal/catalog"
	"voluntaura/internal/metrics"
	"voluntaura/internal/models"
	"voluntaura/internal/prefs"
	"voluntaura/internal/swipe"
	"voluntaura/internal/wizard"
)

// Deps are the collaborators the HTTP layer reads and mutates.
type Deps struct {
	Catalog     *catalog.Catalog
	Prefs       *prefs.Container
	Session     *swipe.Session
	Celebration *swipe.Celebration
	Wizard      *wizard.Wizard
	Metrics     *metrics.Metrics
	Logger      *zap.Logger
	StaticDir   string
	CORSOrigins []string
}

// Server provides HTTP handlers for the matching backend and serves the SPA.
type Server struct {
	engine      *gin.Engine
	catalog     *catalog.Catalog
	prefs       *prefs.Container
	session     *swipe.Session
	celebration *swipe.Celebration
	wizard      *wizard.Wizard
	metrics     *metrics.Metrics
	logger      *zap.Logger
	staticDir   string
}

// New constructs the HTTP server with routes and middleware configured.
func New(d Deps) *Server {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	m := d.Metrics
	if m == nil {
		m = metrics.New(nil)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(m.Middleware())
	if len(d.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: d.CORSOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
			AllowHeaders: []string{"Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	srv := &Server{
		engine:      router,
		catalog:     d.Catalog,
		prefs:       d.Prefs,
		session:     d.Session,
		celebration: d.Celebration,
		wizard:      d.Wizard,
		metrics:     m,
		logger:      logger,
		staticDir:   d.StaticDir,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API and static handlers together.
func (s *Server) registerRoutes() {
	s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)

		opps := api.Group("/opportunities")
		{
			opps.GET("", s.handleListOpportunities)
			opps.GET(":id", s.handleGetOpportunity)
			opps.GET(":id/similar", s.handleSimilar)
			opps.POST(":id/share", s.handleShare)
		}

		api.GET("/state", s.handleGetState)

		status := api.Group("/status")
		{
			status.GET(":kind", s.handleListStatus)
			status.PUT(":kind/:id", s.handleAddStatus)
			status.DELETE(":kind/:id", s.handleRemoveStatus)
			status.POST(":kind/:id/advance", s.handleAdvanceStatus)
		}

		api.PATCH("/filters", s.handleUpdateFilters)
		api.DELETE("/filters", s.handleClearFilters)
		api.PATCH("/questionnaire", s.handleUpdateAnswers)

		wiz := api.Group("/wizard")
		{
			wiz.GET("", s.handleWizard)
			wiz.POST("/start", s.handleWizardStart)
			wiz.POST("/next", s.handleWizardNext)
			wiz.POST("/back", s.handleWizardBack)

			answers := wiz.Group("/answers")
			{
				answers.PUT("/experience", s.handleSetExperience)
				answers.POST("/causes/toggle", s.handleToggleCause)
				answers.POST("/days/toggle", s.handleToggleDay)
				answers.PUT("/hours", s.handleSetHoursPerWeek)
				answers.PUT("/location", s.handleSetLocation)
				answers.PUT("/distance", s.handleSetMaxDistance)
				answers.POST("/comfort/toggle", s.handleToggleComfort)
			}
		}

		sw := api.Group("/swipe")
		{
			sw.GET("", s.handleSwipe)
			sw.POST("/left", s.handleSwipeLeft)
			sw.POST("/right", s.handleSwipeRight)
			sw.POST("/save", s.handleSwipeSave)
			sw.POST("/release", s.handleSwipeRelease)
			sw.POST("/reset", s.handleSwipeReset)
			sw.POST("/celebration/dismiss", s.handleDismissCelebration)
		}

		progress := api.Group("/progress")
		{
			progress.GET("", s.handleProgress)
			progress.PUT("/goal", s.handleSetGoal)
			progress.POST("/hours", s.handleAddHours)
		}
	}

	s.mountStatic()
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "persistent": !s.prefs.Degraded()})
}

// lookup resolves the :id path parameter against the catalog.
func (s *Server) lookup(c *gin.Context) (models.Opportunity, bool) {
	opp, err := s.catalog.Get(c.Param("id"))
	if err != nil {
		s.respondError(c, http.StatusNotFound, err)
		return models.Opportunity{}, false
	}
	return opp, true
}

// parseKind validates the :kind path parameter.
func (s *Server) parseKind(c *gin.Context) (models.StatusKind, bool) {
	kind, err := models.ParseStatusKind(c.Param("kind"))
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return "", false
	}
	return kind, true
}

// respondError logs the error and returns a JSON payload.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	if err == nil {
		err = errors.New(http.StatusText(status))
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		s.logger.Debug("request rejected", zap.String("path", c.FullPath()), zap.Int("status", status), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondSuccess wraps a payload in a JSON envelope for consistency.
func respondSuccess(c *gin.Context, status int, payload any) {
	if payload == nil {
		c.Status(status)
		return
	}
	c.JSON(status, payload)
}

// requestLogger logs API calls through zap in place of gin's text logger.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		logger.Debug("request", fields...)
	}
}
