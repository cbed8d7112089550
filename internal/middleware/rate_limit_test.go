package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starwars-blog/api/internal/testhelpers"
)

func rateLimitedRouter(rl *RateLimiter) *gin.Engine {
	router := gin.New()
	router.POST("/user/:id/favorites", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router
}

func post(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
	return w
}

func TestRateLimiter(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	rl := NewRateLimiter(client, RateLimitConfig{
		Window:    time.Hour,
		Limit:     2,
		KeyPrefix: "test:" + uuid.NewString(),
	})
	router := rateLimitedRouter(rl)

	w := post(router, "/user/1/favorites")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w = post(router, "/user/1/favorites")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = post(router, "/user/1/favorites")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate limit of 2 requests")

	// Other users have their own budget
	w = post(router, "/user/2/favorites")
	assert.Equal(t, http.StatusCreated, w.Code)

	remaining, reset, err := rl.Remaining(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
	assert.True(t, reset.After(time.Now()))

	remaining, _, err = rl.Remaining(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)
}

func TestRateLimiterFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	router := rateLimitedRouter(NewFavoritesRateLimiter(client, 1))

	for i := 0; i < 3; i++ {
		w := post(router, "/user/1/favorites")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
	}
}
