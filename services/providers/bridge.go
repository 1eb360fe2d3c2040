package providers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	fastshot "github.com/opus-domini/fast-shot"
	"github.com/towoju5/bridge-verification-system-sub001/types"
	u "github.com/towoju5/bridge-verification-system-sub001/utils"
	"github.com/towoju5/bridge-verification-system-sub001/utils/logger"
)

// BridgeProvider submits completed records to the Bridge customers API.
type BridgeProvider struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

// NewBridgeProvider creates a Bridge client.
func NewBridgeProvider(baseURL, apiKey string, timeout time.Duration) *BridgeProvider {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &BridgeProvider{baseURL: baseURL, apiKey: apiKey, timeout: timeout}
}

// Name identifies the provider in forwarding records.
func (b *BridgeProvider) Name() string {
	return "bridge"
}

// Submit creates a customer record at Bridge and returns its id.
func (b *BridgeProvider) Submit(_ context.Context, snapshot *types.SubmissionSnapshot) (string, error) {
	payload := map[string]interface{}{
		"type":                    snapshot.Kind,
		"external_id":             snapshot.SubmissionID.String(),
		"fields":                  snapshot.Fields,
		"documents":               snapshot.Documents,
		"identifying_information": snapshot.IdentifyingInformation,
		"submitted_at":            snapshot.SubmittedAt.Format(time.RFC3339),
	}

	res, err := fastshot.NewClient(b.baseURL).
		Config().SetTimeout(b.timeout).
		Auth().BearerToken(b.apiKey).
		Header().AddAll(map[string]string{
			"Accept":          "application/json",
			"Idempotency-Key": snapshot.SubmissionID.String(),
		}).
		Build().POST("/v0/customers").
		Body().AsJSON(payload).
		Send()
	if err != nil {
		return "", fmt.Errorf("failed to reach bridge: %w", err)
	}

	data, err := u.ParseJSONResponse(res.RawResponse)
	if err != nil {
		logger.WithFields(logger.Fields{
			"Error":        fmt.Sprintf("%v", err),
			"SubmissionID": snapshot.SubmissionID,
			"Status":       res.RawResponse.StatusCode,
		}).Errorf("Bridge rejected submission forward")
		return "", fmt.Errorf("bridge returned status %d", res.RawResponse.StatusCode)
	}
	if res.RawResponse.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("bridge returned status %d", res.RawResponse.StatusCode)
	}

	id, ok := data["id"].(string)
	if !ok {
		return "", fmt.Errorf("bridge response missing customer id")
	}
	return id, nil
}
