package providers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	fastshot "github.com/opus-domini/fast-shot"
	"github.com/towoju5/bridge-verification-system-sub001/types"
	u "github.com/towoju5/bridge-verification-system-sub001/utils"
)

// AveniaProvider submits completed records to the Avenia KYC API.
type AveniaProvider struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

// NewAveniaProvider creates an Avenia client.
func NewAveniaProvider(baseURL, apiKey string, timeout time.Duration) *AveniaProvider {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AveniaProvider{baseURL: baseURL, apiKey: apiKey, timeout: timeout}
}

// Name identifies the provider in forwarding records.
func (a *AveniaProvider) Name() string {
	return "avenia"
}

// Submit opens a KYC attempt at Avenia and returns the attempt id.
func (a *AveniaProvider) Submit(_ context.Context, snapshot *types.SubmissionSnapshot) (string, error) {
	payload := map[string]interface{}{
		"subjectType": snapshot.Kind,
		"externalRef": snapshot.SubmissionID.String(),
		"attributes":  snapshot.Fields,
		"documents":   snapshot.Documents,
		"identities":  snapshot.IdentifyingInformation,
	}

	res, err := fastshot.NewClient(a.baseURL).
		Config().SetTimeout(a.timeout).
		Auth().BearerToken(a.apiKey).
		Build().POST("/v2/kyc/attempts").
		Body().AsJSON(payload).
		Send()
	if err != nil {
		return "", fmt.Errorf("failed to reach avenia: %w", err)
	}

	data, err := u.ParseJSONResponse(res.RawResponse)
	if err != nil || res.RawResponse.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("avenia returned status %d", res.RawResponse.StatusCode)
	}

	id, ok := data["attemptId"].(string)
	if !ok {
		return "", fmt.Errorf("avenia response missing attempt id")
	}
	return id, nil
}
