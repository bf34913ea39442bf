package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"smarttodos/pkg/trace"
)

func traceTestEngine(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		*captured = trace.FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func TestTraceMiddlewareGeneratesID(t *testing.T) {
	var got string
	r := traceTestEngine(&got)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, got)
	assert.Equal(t, got, w.Header().Get(trace.HeaderName))
}

func TestTraceMiddlewarePropagatesSuppliedID(t *testing.T) {
	var got string
	r := traceTestEngine(&got)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(trace.HeaderName, "abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc123", got)
	assert.Equal(t, "abc123", w.Header().Get(trace.HeaderName))
}

func TestRouterTaskUpdateRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(nil, nil, nil, nil, nil, "secret", nil, nil, zap.NewNop())

	// PATCH is registered; the request stops at the auth guard.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/tasks/1", nil)
	router.Engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// PUT is not a route.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/tasks/1", nil)
	router.Engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
