package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starwars-blog/api/internal/middleware"
	"github.com/starwars-blog/api/internal/testhelpers"
)

func TestNew(t *testing.T) {
	db := testhelpers.SetupSeededSQLite(t)
	cfg := testhelpers.TestConfig("")

	server := New(cfg, db, nil)
	require.NotNil(t, server)

	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = httptest.NewRecorder()
	server.Router().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/user/1/favorites/starship/1", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestNewWithRateLimit(t *testing.T) {
	db := testhelpers.SetupSeededSQLite(t)
	client := testhelpers.SetupRedis(t)
	cfg := testhelpers.TestConfig("")
	cfg.FavoritesRateLimit = 1

	server := New(cfg, db, client)

	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/user/2/favorites/planet/1", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))

	w = httptest.NewRecorder()
	server.Router().ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/user/2/favorites/planet/1", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Reads are not limited
	w = httptest.NewRecorder()
	server.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/2/favorites", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStartAndShutdown(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	cfg := testhelpers.TestConfig("")
	cfg.ServerPort = "0"

	server := New(cfg, db, nil)

	done := make(chan error, 1)
	go func() { done <- server.Start() }()

	// Give the listener a moment before shutting it down
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
