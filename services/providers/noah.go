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

// NoahProvider submits completed records to the Noah onboarding API.
type NoahProvider struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

// NewNoahProvider creates a Noah client.
func NewNoahProvider(baseURL, apiKey string, timeout time.Duration) *NoahProvider {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &NoahProvider{baseURL: baseURL, apiKey: apiKey, timeout: timeout}
}

// Name identifies the provider in forwarding records.
func (n *NoahProvider) Name() string {
	return "noah"
}

// Submit onboards the record at Noah and returns the customer id.
func (n *NoahProvider) Submit(_ context.Context, snapshot *types.SubmissionSnapshot) (string, error) {
	payload := map[string]interface{}{
		"CustomerType": snapshot.Kind,
		"ExternalID":   snapshot.SubmissionID.String(),
		"Attributes":   snapshot.Fields,
		"Documents":    snapshot.Documents,
		"Identities":   snapshot.IdentifyingInformation,
	}

	res, err := fastshot.NewClient(n.baseURL).
		Config().SetTimeout(n.timeout).
		Header().Add("Api-Key", n.apiKey).
		Build().PUT("/v1/customers").
		Body().AsJSON(payload).
		Send()
	if err != nil {
		return "", fmt.Errorf("failed to reach noah: %w", err)
	}

	data, err := u.ParseJSONResponse(res.RawResponse)
	if err != nil || res.RawResponse.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("noah returned status %d", res.RawResponse.StatusCode)
	}

	id, ok := data["CustomerID"].(string)
	if !ok {
		return "", fmt.Errorf("noah response missing customer id")
	}
	return id, nil
}
