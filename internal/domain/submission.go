package domain

import (
	"context"
	"strings"
)

// FormSubmission is a normalized contact-form payload. Optional fields are
// always plain strings (never absent) so templating needs no nil checks.
type FormSubmission struct {
	Email     string
	FirstName string
	LastName  string
	Subject   string
	Message   string
}

// DisplayName derives the recipient display name from the submitted name
// fields, falling back to "Friend" when both are empty.
func (s FormSubmission) DisplayName() string {
	name := strings.TrimSpace(s.FirstName + " " + s.LastName)
	if name == "" {
		return "Friend"
	}
	return name
}

// Party is one side of an email envelope.
type Party struct {
	Address string
	Name    string
}

// EmailMessage is the outbound message envelope handed to the dispatcher.
// The sender always comes from process configuration, never from the request.
type EmailMessage struct {
	Sender    Party
	Recipient Party
	Subject   string
	HTMLBody  string
}

// DeliveryResult carries the provider-assigned identifier of a sent message.
type DeliveryResult struct {
	MessageID string
}

// Acknowledgment reports a completed auto-response for the HTTP reply.
type Acknowledgment struct {
	EmailSentTo string
	MessageID   string
}

// EmailDispatcher sends a single transactional email. A failed send is
// terminal; implementations must not retry or queue.
type EmailDispatcher interface {
	Send(ctx context.Context, msg EmailMessage) (DeliveryResult, error)
}

// AutoResponderUsecase turns a raw webhook payload into a dispatched
// acknowledgment email.
type AutoResponderUsecase interface {
	// HandleSubmission normalizes the payload, renders the acknowledgment
	// email and dispatches it. Errors are *apperror.AppError values carrying
	// the HTTP status to respond with.
	HandleSubmission(ctx context.Context, payload map[string]any) (*Acknowledgment, error)
}
