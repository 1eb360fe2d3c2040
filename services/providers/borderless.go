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

// BorderlessProvider submits completed records to the Borderless
// compliance API.
type BorderlessProvider struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

// NewBorderlessProvider creates a Borderless client.
func NewBorderlessProvider(baseURL, apiKey string, timeout time.Duration) *BorderlessProvider {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &BorderlessProvider{baseURL: baseURL, apiKey: apiKey, timeout: timeout}
}

// Name identifies the provider in forwarding records.
func (b *BorderlessProvider) Name() string {
	return "borderless"
}

// Submit registers the record with Borderless and returns its identity id.
func (b *BorderlessProvider) Submit(_ context.Context, snapshot *types.SubmissionSnapshot) (string, error) {
	payload := map[string]interface{}{
		"kind":         snapshot.Kind,
		"reference":    snapshot.SubmissionID.String(),
		"profile":      snapshot.Fields,
		"documents":    snapshot.Documents,
		"identityDocs": snapshot.IdentifyingInformation,
	}

	res, err := fastshot.NewClient(b.baseURL).
		Config().SetTimeout(b.timeout).
		Header().Add("X-Api-Key", b.apiKey).
		Build().POST("/v1/identities").
		Body().AsJSON(payload).
		Send()
	if err != nil {
		return "", fmt.Errorf("failed to reach borderless: %w", err)
	}

	data, err := u.ParseJSONResponse(res.RawResponse)
	if err != nil || res.RawResponse.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("borderless returned status %d", res.RawResponse.StatusCode)
	}

	id, ok := data["identityId"].(string)
	if !ok {
		return "", fmt.Errorf("borderless response missing identity id")
	}
	return id, nil
}
