package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ack is the success body of the form webhook. The field names are part of
// the external contract consumed by the form host; do not rename them.
type Ack struct {
	Message     string `json:"message"`
	EmailSentTo string `json:"emailSentTo"`
}

// ErrorBody is the failure body of the form webhook.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// OK sends the webhook success response.
func OK(c *gin.Context, message, emailSentTo string) {
	c.JSON(http.StatusOK, Ack{
		Message:     message,
		EmailSentTo: emailSentTo,
	})
}

// Error sends a failure response with just an error message.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// ErrorWithDetails sends a failure response carrying the underlying cause,
// used for delivery failures where the provider message aids diagnostics.
func ErrorWithDetails(c *gin.Context, code int, message, details string) {
	c.JSON(code, ErrorBody{Error: message, Details: details})
}
