package usecase

import (
	"context"
	"strings"
	"time"

	"go-autoresponder-backend/internal/domain"
	"go-autoresponder-backend/pkg/apperror"
	"go-autoresponder-backend/pkg/logger"
)

// acknowledgmentSubject is fixed; the submitted subject only appears inside
// the email body summary.
const acknowledgmentSubject = "Thank you for contacting Choosing Justice Initiative"

type autoResponderUsecase struct {
	dispatcher domain.EmailDispatcher
	sender     domain.Party
}

// NewAutoResponderUsecase creates the auto-responder usecase. The sender
// identity is process-wide configuration and is never derived from requests.
func NewAutoResponderUsecase(dispatcher domain.EmailDispatcher, sender domain.Party) domain.AutoResponderUsecase {
	return &autoResponderUsecase{
		dispatcher: dispatcher,
		sender:     sender,
	}
}

// HandleSubmission normalizes the raw webhook payload, renders the
// acknowledgment email and dispatches it exactly once.
func (uc *autoResponderUsecase) HandleSubmission(ctx context.Context, payload map[string]any) (*domain.Acknowledgment, error) {
	sub, err := normalizeSubmission(payload)
	if err != nil {
		logger.Log.Warn("Rejected form submission", "reason", err.Error())
		return nil, err
	}

	htmlBody, err := RenderAcknowledgment(sub, time.Now())
	if err != nil {
		return nil, apperror.Internal("Failed to send auto-response", err)
	}

	msg := domain.EmailMessage{
		Sender: uc.sender,
		Recipient: domain.Party{
			Address: sub.Email,
			Name:    sub.DisplayName(),
		},
		Subject:  acknowledgmentSubject,
		HTMLBody: htmlBody,
	}

	result, err := uc.dispatcher.Send(ctx, msg)
	if err != nil {
		return nil, apperror.Internal("Failed to send auto-response", err)
	}

	logger.Log.Info("Auto-response sent",
		"emailSentTo", sub.Email,
		"messageId", result.MessageID,
	)

	return &domain.Acknowledgment{
		EmailSentTo: sub.Email,
		MessageID:   result.MessageID,
	}, nil
}

// normalizeSubmission extracts the known fields from an arbitrary JSON object.
// Email is the only mandatory field; every optional field normalizes to an
// empty string so downstream templating never checks for absence vs null.
func normalizeSubmission(payload map[string]any) (domain.FormSubmission, error) {
	email, _ := payload["email"].(string)
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.FormSubmission{}, apperror.BadRequest("Email is required")
	}

	return domain.FormSubmission{
		Email:     email,
		FirstName: optionalString(payload, "firstName"),
		LastName:  optionalString(payload, "lastName"),
		Subject:   optionalString(payload, "subject"),
		Message:   optionalString(payload, "message"),
	}, nil
}

// optionalString reads a string field, treating missing or non-string values
// as empty. Unrecognized payload fields are simply never read.
func optionalString(payload map[string]any, key string) string {
	value, _ := payload[key].(string)
	return value
}
