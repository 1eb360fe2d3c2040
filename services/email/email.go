// Package email sends transactional notifications around the submission
// lifecycle. Delivery is best-effort: a failed notification never fails
// the operation that triggered it.
package email

import (
	"context"
	"fmt"

	"github.com/towoju5/bridge-verification-system-sub001/config"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

var notificationConf = config.NotificationConfig()

// EmailService wraps the configured delivery provider.
type EmailService struct {
	provider *SendGridProvider
}

// NewEmailService creates the email service over SendGrid.
func NewEmailService() *EmailService {
	return &EmailService{provider: NewSendGridProvider(notificationConf)}
}

// SendEmail delivers one email through the configured provider.
func (s *EmailService) SendEmail(_ context.Context, payload types.SendEmailPayload) (types.SendEmailResponse, error) {
	if !notificationConf.EmailEnabled {
		return types.SendEmailResponse{}, nil
	}
	if payload.FromAddress == "" {
		payload.FromAddress = notificationConf.EmailFromAddress
	}
	return s.provider.SendEmail(payload)
}

// SendSubmissionReceivedEmail confirms to the applicant that their
// verification submission was received and forwarded for review.
func (s *EmailService) SendSubmissionReceivedEmail(ctx context.Context, toAddress, displayName, submissionID string) (types.SendEmailResponse, error) {
	if displayName == "" {
		displayName = "there"
	}
	body := fmt.Sprintf(
		"Hi %s,\n\nWe have received your verification submission (reference %s). "+
			"Our compliance partners are reviewing it and we will notify you once a decision is made.\n\n"+
			"No further action is needed from you at this time.",
		displayName, submissionID,
	)
	htmlBody := fmt.Sprintf(
		"<p>Hi %s,</p><p>We have received your verification submission (reference <strong>%s</strong>). "+
			"Our compliance partners are reviewing it and we will notify you once a decision is made.</p>"+
			"<p>No further action is needed from you at this time.</p>",
		displayName, submissionID,
	)

	return s.SendEmail(ctx, types.SendEmailPayload{
		ToAddress: toAddress,
		Subject:   "We received your verification submission",
		Body:      body,
		HTMLBody:  htmlBody,
	})
}
