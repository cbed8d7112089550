package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starwars-blog/api/internal/logging"
	"github.com/starwars-blog/api/internal/service"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// APIError carries the status code to answer with
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates an APIError
func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// ErrorHandler renders the last error attached to the context as JSON
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		status, message := classify(last)
		if status >= http.StatusInternalServerError {
			logging.Ctx(c.Request.Context()).Error().
				Err(last.Err).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("request failed")
		}
		c.JSON(status, ErrorResponse{Message: message})
	}
}

func classify(e *gin.Error) (int, string) {
	var apiErr *APIError
	switch {
	case errors.As(e.Err, &apiErr):
		return apiErr.Status, apiErr.Message
	case e.IsType(gin.ErrorTypeBind):
		return http.StatusBadRequest, "invalid request: " + e.Err.Error()
	case errors.Is(e.Err, service.ErrNotFound), errors.Is(e.Err, service.ErrUnknownKind):
		return http.StatusNotFound, e.Err.Error()
	case errors.Is(e.Err, service.ErrConflict):
		return http.StatusConflict, e.Err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// Recovery turns a panic into a JSON 500
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.Ctx(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
	})
}
