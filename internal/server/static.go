package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// clientRoutes are the paths the single-page client renders itself.
var clientRoutes = []string{"/", "/discover", "/swipe", "/list", "/reference"}

// mountStatic serves the compiled frontend from the configured directory.
// Unknown paths get index.html with a 404 so the client shows its not-found page.
func (s *Server) mountStatic() {
	indexPath := s.indexPath()

	s.engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
			return
		}
		if indexPath == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		page, err := os.ReadFile(indexPath)
		if err != nil {
			s.respondError(c, http.StatusInternalServerError, err)
			return
		}
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", page)
	})

	if indexPath == "" {
		return
	}

	for _, route := range clientRoutes {
		s.engine.GET(route, func(c *gin.Context) {
			c.File(indexPath)
		})
	}

	assetsDir := filepath.Join(s.staticDir, "assets")
	if _, err := os.Stat(assetsDir); err == nil {
		s.engine.StaticFS("/assets", gin.Dir(assetsDir, false))
	}

	favicon := filepath.Join(s.staticDir, "favicon.ico")
	if _, err := os.Stat(favicon); err == nil {
		s.engine.StaticFile("/favicon.ico", favicon)
	}
}

// indexPath returns the SPA entry point, or "" in API only mode.
func (s *Server) indexPath() string {
	if s.staticDir == "" {
		s.logger.Warn("static directory not configured; API only mode")
		return ""
	}

	info, err := os.Stat(s.staticDir)
	if err != nil || !info.IsDir() {
		s.logger.Warn("static directory missing", zap.String("path", s.staticDir), zap.Error(err))
		return ""
	}

	indexPath := filepath.Join(s.staticDir, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		s.logger.Warn("index.html not found", zap.String("path", indexPath), zap.Error(err))
		return ""
	}
	return indexPath
}
