package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/mealcraft/backend/internal/models"
	"github.com/pageza/mealcraft/backend/internal/spoonacular"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error      string `json:"error"`
	Field      string `json:"field,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	Body       string `json:"body,omitempty"`
}

// StatusFor maps an error to the HTTP status reported for it.
func StatusFor(err error) int {
	var apiErr *spoonacular.APIError
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	case errors.Is(err, spoonacular.ErrMalformedResponse),
		errors.Is(err, spoonacular.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the JSON body for err.
func NewErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{Error: err.Error()}

	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		resp.Field = vErr.Field
	}
	var apiErr *spoonacular.APIError
	if errors.As(err, &apiErr) {
		resp.StatusCode = apiErr.StatusCode
		resp.Body = apiErr.Body
	}
	return resp
}

// ErrorHandler turns the last error attached with c.Error into a JSON
// response when the handler has not written one, and converts panics into a
// 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered", "panic", rec, "request_id", GetRequestID(c))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		c.JSON(StatusFor(err), NewErrorResponse(err))
	}
}
