package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/towoju5/bridge-verification-system-sub001/config"
	"github.com/towoju5/bridge-verification-system-sub001/types"
	"github.com/towoju5/bridge-verification-system-sub001/utils/logger"
)

// SendGridProvider delivers notification emails via SendGrid.
type SendGridProvider struct {
	config *config.NotificationConfiguration
}

// NewSendGridProvider creates a new SendGrid provider
func NewSendGridProvider(config *config.NotificationConfiguration) *SendGridProvider {
	return &SendGridProvider{
		config: config,
	}
}

// SendEmail sends an email via SendGrid
func (s *SendGridProvider) SendEmail(payload types.SendEmailPayload) (types.SendEmailResponse, error) {
	from := mail.NewEmail("Verification", payload.FromAddress)
	to := mail.NewEmail("", payload.ToAddress)
	body := mail.NewContent("text/plain", payload.Body)
	htmlBody := mail.NewContent("text/html", payload.HTMLBody)

	m := mail.NewV3Mail()
	m.Subject = payload.Subject
	m.SetFrom(from)
	m.AddContent(body)
	m.AddContent(htmlBody)

	p := mail.NewPersonalization()
	p.AddTos(to)
	m.AddPersonalizations(p)

	request := sendgrid.GetRequest(s.config.EmailAPIKey, "/v3/mail/send", fmt.Sprintf("https://%s", s.config.EmailDomain))
	request.Method = "POST"
	request.Body = mail.GetRequestBody(m)
	response, err := sendgrid.API(request)
	if err != nil || response.StatusCode >= 400 {
		logger.Errorf("Failed to send email via SendGrid: %v", err)
		return types.SendEmailResponse{}, fmt.Errorf("sendgrid send error: %w", err)
	}

	messageID := ""
	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		messageID = ids[0]
	}
	return types.SendEmailResponse{
		Id:       messageID,
		Response: messageID,
	}, nil
}
