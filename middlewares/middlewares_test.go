package middlewares

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(m *Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(), m.Middleware())
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/api/prayers/:prayer_id/comments", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})
	return router
}

func TestMetricsMiddlewareUsesRoutePattern(t *testing.T) {
	m := NewMetrics()
	router := setupRouter(m)

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/prayers/"+id+"/comments", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/nowhere", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, float64(2), testutil.ToFloat64(
		m.requests.WithLabelValues("GET", "/api/prayers/:prayer_id/comments", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.requests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.inFlight))
}

func TestMetricsHandlerExposesCounters(t *testing.T) {
	m := NewMetrics()
	router := setupRouter(m)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/prayers/x/comments", nil)
	router.ServeHTTP(w, req)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "prayer_wall_http_requests_total")
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestRequestLoggerLogsAPIRequests(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	router := setupRouter(NewMetrics())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/prayers/x/comments", nil)
	router.ServeHTTP(w, req)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(w, req)

	out := buf.String()
	assert.Contains(t, out, "path=/api/prayers/x/comments")
	assert.Contains(t, out, "status=200")
	assert.False(t, strings.Contains(out, "path=/metrics"))
}
