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

// YellowCardProvider submits completed records to the Yellow Card
// compliance API.
type YellowCardProvider struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

// NewYellowCardProvider creates a Yellow Card client.
func NewYellowCardProvider(baseURL, apiKey string, timeout time.Duration) *YellowCardProvider {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &YellowCardProvider{baseURL: baseURL, apiKey: apiKey, timeout: timeout}
}

// Name identifies the provider in forwarding records.
func (y *YellowCardProvider) Name() string {
	return "yellowcard"
}

// Submit files the record with Yellow Card and returns the case id.
func (y *YellowCardProvider) Submit(_ context.Context, snapshot *types.SubmissionSnapshot) (string, error) {
	payload := map[string]interface{}{
		"accountKind": snapshot.Kind,
		"externalId":  snapshot.SubmissionID.String(),
		"kycData":     snapshot.Fields,
		"documents":   snapshot.Documents,
		"idDocuments": snapshot.IdentifyingInformation,
	}

	res, err := fastshot.NewClient(y.baseURL).
		Config().SetTimeout(y.timeout).
		Auth().BearerToken(y.apiKey).
		Build().POST("/business/compliance/cases").
		Body().AsJSON(payload).
		Send()
	if err != nil {
		return "", fmt.Errorf("failed to reach yellowcard: %w", err)
	}

	data, err := u.ParseJSONResponse(res.RawResponse)
	if err != nil || res.RawResponse.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("yellowcard returned status %d", res.RawResponse.StatusCode)
	}

	id, ok := data["caseId"].(string)
	if !ok {
		return "", fmt.Errorf("yellowcard response missing case id")
	}
	return id, nil
}
