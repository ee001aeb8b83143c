package middleware

import (
	"errors"
	"net/http"

	"testimonial-wall-backend/internal/delivery/http/response"
	"testimonial-wall-backend/pkg/apperror"
	"testimonial-wall-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors collected on the context into the standard
// response envelope. Internal detail is logged server-side only; clients get
// the AppError message or a generic fallback, never raw downstream payloads.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("Request failed", "path", c.FullPath(), "code", appErr.Code, "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("Unhandled error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
