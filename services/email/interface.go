package email

import (
	"context"

	"github.com/towoju5/bridge-verification-system-sub001/types"
)

// EmailServiceInterface provides the interface for the email service
type EmailServiceInterface interface {
	SendEmail(ctx context.Context, payload types.SendEmailPayload) (types.SendEmailResponse, error)
	SendSubmissionReceivedEmail(ctx context.Context, toAddress, displayName, submissionID string) (types.SendEmailResponse, error)
}
