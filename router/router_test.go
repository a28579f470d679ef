package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"consulta/config"
	dbpkg "consulta/db"
	"consulta/db/dbtest"
	"consulta/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database := dbtest.Open(t)
	dbtest.Seed(t, database)

	r := gin.New()
	r.Use(dbpkg.Middleware(database))
	Initialize(r, config.Configuration{PageSize: 10})
	return r
}

func do(r http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(newRouter(t), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestRoutesWired(t *testing.T) {
	r := newRouter(t)

	for _, target := range []string{
		"/",
		"/requerimentos/1",
		"/requerimentos/1/editar",
		"/api/requerimentos",
		"/api/requerimentos/1",
		"/api/requerimentos/exportar?formato=txt",
		"/api/situacoes",
	} {
		w := do(r, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusOK, w.Code, target)
	}
}

func TestRequestID(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, w.Header().Get(middleware.HEADER_REQUEST_ID))

	w = do(r, http.MethodGet, "/health", http.Header{middleware.HEADER_REQUEST_ID: {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get(middleware.HEADER_REQUEST_ID))
}

func TestCORSPreflight(t *testing.T) {
	w := do(newRouter(t), http.MethodOptions, "/api/requerimentos", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Total-Count")
}

func TestMetrics(t *testing.T) {
	r := newRouter(t)
	do(r, http.MethodGet, "/api/requerimentos", nil)

	w := do(r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `consulta_http_status{route="/api/requerimentos",status="200"}`)
	assert.Contains(t, body, `consulta_requerimentos_total{resultado="ok"}`)
}

func TestMetricsContaPanicComo500(t *testing.T) {
	r := newRouter(t)
	r.GET("/falha", func(c *gin.Context) {
		panic("falha no handler")
	})

	w := do(r, http.MethodGet, "/falha", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	w = do(r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `consulta_http_status{route="/falha",status="500"}`)
}
