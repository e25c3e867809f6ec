package usecase

import (
	"context"

	"go-autoresponder-backend/internal/domain"
	"go-autoresponder-backend/pkg/brevo"
)

// brevoDispatcher adapts the Brevo API client to the domain dispatcher
// interface so the usecase stays testable with a fake.
type brevoDispatcher struct {
	client *brevo.Client
}

// NewBrevoDispatcher wraps a Brevo client as an EmailDispatcher.
func NewBrevoDispatcher(client *brevo.Client) domain.EmailDispatcher {
	return &brevoDispatcher{client: client}
}

func (d *brevoDispatcher) Send(ctx context.Context, msg domain.EmailMessage) (domain.DeliveryResult, error) {
	messageID, err := d.client.SendTransactionalEmail(ctx, brevo.SendEmailRequest{
		Sender: brevo.Contact{Email: msg.Sender.Address, Name: msg.Sender.Name},
		To: []brevo.Contact{
			{Email: msg.Recipient.Address, Name: msg.Recipient.Name},
		},
		Subject:     msg.Subject,
		HTMLContent: msg.HTMLBody,
	})
	if err != nil {
		return domain.DeliveryResult{}, err
	}
	return domain.DeliveryResult{MessageID: messageID}, nil
}
