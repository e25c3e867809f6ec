package v1

import (
	"go-autoresponder-backend/internal/delivery/http/response"
	"go-autoresponder-backend/internal/domain"
	"go-autoresponder-backend/pkg/apperror"
	"go-autoresponder-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	autoResponderUC domain.AutoResponderUsecase
}

// NewWebhookHandler registers the form webhook route (public, no auth required)
func NewWebhookHandler(r *gin.RouterGroup, autoResponderUC domain.AutoResponderUsecase) {
	handler := &WebhookHandler{
		autoResponderUC: autoResponderUC,
	}

	r.POST("/form-webhook", handler.HandleFormSubmission)
}

// HandleFormSubmission godoc
// @Summary      Receive Form Submission Webhook
// @Description  Accepts a contact-form submission from the website builder and sends a thank-you acknowledgment email to the submitter.
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        submission  body      object  true  "Form submission payload (email required; firstName, lastName, subject, message optional)"
// @Success      200  {object}  response.Ack
// @Failure      400  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /form-webhook [post]
func (h *WebhookHandler) HandleFormSubmission(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest("Invalid JSON payload"))
		return
	}

	logger.Log.Info("Received form submission", "payload", payload)

	ack, err := h.autoResponderUC.HandleSubmission(c.Request.Context(), payload)
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, "Auto-response sent successfully", ack.EmailSentTo)
}
