package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/starwars-blog/api/internal/middleware"
	"github.com/starwars-blog/api/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSetupRouterRegistersRoutes(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	router := SetupRouter(testhelpers.TestConfig(""), db, nil)

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"GET /",
		"GET /health",
		"GET /metrics",
		"GET /user",
		"GET /user/:id",
		"GET /planet",
		"GET /planet/:id",
		"GET /starship",
		"GET /starship/:id",
		"GET /character",
		"GET /character/:id",
		"GET /user/:id/favorites",
		"POST /user/:id/favorites/:kind/:entity_id",
		"DELETE /user/:id/favorites/:kind/:entity_id",
	} {
		assert.True(t, registered[route], route)
	}
}

func TestSetupRouterMiddleware(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	cfg := testhelpers.TestConfig("")
	cfg.CORSOrigins = []string{"http://localhost:5173"}
	router := SetupRouter(cfg, db, nil)

	req := httptest.NewRequest(http.MethodOptions, "/planet", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/planet", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"planets":[]}`, w.Body.String())
}
