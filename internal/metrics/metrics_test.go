package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(nil)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/opportunities/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range []string{"/api/opportunities/1", "/api/opportunities/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/opportunities/:id", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
}

func TestSwipedAndPersistFailed(t *testing.T) {
	m := New(nil)
	m.Swiped("left")
	m.Swiped("right")
	m.Swiped("right")
	m.PersistFailed(errors.New("disk full"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.swipes.WithLabelValues("left")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.swipes.WithLabelValues("right")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.persistFailures))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New(nil)
	m.Swiped("save")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `voluntaura_swipes_total{direction="save"} 1`)
}
