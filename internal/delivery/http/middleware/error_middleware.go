package middleware

import (
	"errors"
	"net/http"

	"go-autoresponder-backend/internal/delivery/http/response"
	"go-autoresponder-backend/pkg/apperror"
	"go-autoresponder-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors collected on the gin context to the webhook wire
// format: 4xx responses carry only the error message, 5xx responses also
// carry the underlying provider message in "details" for diagnostics.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID, _ := c.Get("RequestID")

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed",
					"error", appErr.Message,
					"details", appErr.Details(),
					"request_id", requestID,
				)
				response.ErrorWithDetails(c, appErr.Code, appErr.Message, appErr.Details())
				return
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// Unclassified errors never leak internals to the caller.
		logger.Log.Error("Unexpected error", "error", err.Error(), "request_id", requestID)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	}
}
