package providers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

func testSnapshot() *types.SubmissionSnapshot {
	return &types.SubmissionSnapshot{
		SubmissionID: uuid.New(),
		Kind:         types.KindIndividual,
		Fields: map[string]interface{}{
			"first_name": "Ada",
			"last_name":  "Okafor",
		},
		IdentifyingInformation: []types.IdentifyingInformation{
			{Type: "passport", IssuingCountry: "NG", Number: "A1234567"},
		},
		SubmittedAt: time.Now(),
	}
}

func TestBridgeProviderSubmit(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", "https://api.bridge.example/v0/customers",
		func(r *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))
			return httpmock.NewJsonResponse(201, map[string]interface{}{
				"id": "cust_123",
			})
		},
	)

	provider := NewBridgeProvider("https://api.bridge.example", "test-key", 5*time.Second)
	id, err := provider.Submit(context.Background(), testSnapshot())
	require.NoError(t, err)
	assert.Equal(t, "cust_123", id)
}

func TestBridgeProviderSubmitUpstreamError(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", "https://api.bridge.example/v0/customers",
		func(r *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(422, map[string]interface{}{
				"error": "invalid customer",
			})
		},
	)

	provider := NewBridgeProvider("https://api.bridge.example", "test-key", 5*time.Second)
	_, err := provider.Submit(context.Background(), testSnapshot())
	assert.Error(t, err)
}

func TestAveniaProviderSubmit(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", "https://api.avenia.example/v2/kyc/attempts",
		func(r *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"attemptId": "att_77",
			})
		},
	)

	provider := NewAveniaProvider("https://api.avenia.example", "test-key", 5*time.Second)
	id, err := provider.Submit(context.Background(), testSnapshot())
	require.NoError(t, err)
	assert.Equal(t, "att_77", id)
}

func TestYellowCardProviderSubmit(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", "https://api.yellowcard.example/business/compliance/cases",
		func(r *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"caseId": "case_9",
			})
		},
	)

	provider := NewYellowCardProvider("https://api.yellowcard.example", "test-key", 5*time.Second)
	id, err := provider.Submit(context.Background(), testSnapshot())
	require.NoError(t, err)
	assert.Equal(t, "case_9", id)
}

func TestBuildSnapshot(t *testing.T) {
	record := &types.Submission{
		ID:     uuid.New(),
		Kind:   types.KindIndividual,
		Status: types.StatusInProgress,
		Fields: map[string]interface{}{"first_name": "Ada"},
		IdentifyingInformation: []types.IdentifyingInformation{
			{Type: "passport", IssuingCountry: "NG", Number: "A1"},
		},
	}

	snapshot, err := BuildSnapshot(record, time.Now())
	require.NoError(t, err)
	assert.Equal(t, record.ID, snapshot.SubmissionID)

	// A snapshot whose identity entries lack required attributes is refused.
	record.IdentifyingInformation = []types.IdentifyingInformation{{Type: "passport"}}
	_, err = BuildSnapshot(record, time.Now())
	assert.Error(t, err)
}
