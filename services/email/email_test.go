package email

import (
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/towoju5/bridge-verification-system-sub001/config"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

func testProvider() *SendGridProvider {
	return NewSendGridProvider(&config.NotificationConfiguration{
		EmailDomain:      "api.sendgrid.com",
		EmailAPIKey:      "test-key",
		EmailFromAddress: "no-reply@example.com",
		EmailEnabled:     true,
	})
}

func TestSendGridProviderSendEmail(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", "https://api.sendgrid.com/v3/mail/send",
		func(r *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			resp := httpmock.NewBytesResponse(202, nil)
			resp.Header.Set("X-Message-Id", "msg_1")
			return resp, nil
		},
	)

	res, err := testProvider().SendEmail(types.SendEmailPayload{
		FromAddress: "no-reply@example.com",
		ToAddress:   "ada@example.com",
		Subject:     "We received your verification submission",
		Body:        "plain",
		HTMLBody:    "<p>html</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg_1", res.Id)
}

func TestSendGridProviderSendEmailFailure(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", "https://api.sendgrid.com/v3/mail/send",
		func(r *http.Request) (*http.Response, error) {
			return httpmock.NewBytesResponse(500, []byte(`{"error":"upstream"}`)), nil
		},
	)

	_, err := testProvider().SendEmail(types.SendEmailPayload{
		ToAddress: "ada@example.com",
		Subject:   "x",
	})
	assert.Error(t, err)
}
