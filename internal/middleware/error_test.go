package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starwars-blog/api/internal/models"
	"github.com/starwars-blog/api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()

	router := gin.New()
	router.Use(Recovery(), ErrorHandler())
	router.GET("/", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		bind    bool
		status  int
		message string
	}{
		{
			name:    "api error keeps its status",
			err:     NewAPIError(http.StatusTeapot, "short and stout"),
			status:  http.StatusTeapot,
			message: "short and stout",
		},
		{
			name:    "not found",
			err:     &service.NotFoundError{Resource: "planet", ID: 42},
			status:  http.StatusNotFound,
			message: "planet 42 not found",
		},
		{
			name:    "wrapped not found",
			err:     fmt.Errorf("lookup: %w", &service.NotFoundError{Resource: "user", ID: 7}),
			status:  http.StatusNotFound,
			message: "lookup: user 7 not found",
		},
		{
			name:    "unknown kind",
			err:     fmt.Errorf("%w: %q", service.ErrUnknownKind, "vehicle"),
			status:  http.StatusNotFound,
			message: `unknown favorite kind: "vehicle"`,
		},
		{
			name:    "conflict",
			err:     &service.ConflictError{Kind: models.KindPlanet, UserID: 1, EntityID: 5},
			status:  http.StatusConflict,
			message: "planet 5 is already a favorite of user 1",
		},
		{
			name:    "bind error",
			err:     errors.New("bad id"),
			bind:    true,
			status:  http.StatusBadRequest,
			message: "invalid request: bad id",
		},
		{
			name:    "internal errors are not leaked",
			err:     errors.New("connection refused"),
			status:  http.StatusInternalServerError,
			message: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serveError(t, func(c *gin.Context) {
				ginErr := c.Error(tt.err)
				if tt.bind {
					ginErr.SetType(gin.ErrorTypeBind)
				}
			})
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestErrorHandlerLeavesWrittenResponses(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/", func(c *gin.Context) {
		_ = c.Error(errors.New("logged only"))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestRecovery(t *testing.T) {
	w, body := serveError(t, func(c *gin.Context) {
		panic("boom")
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", body.Message)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:5173"}))
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
