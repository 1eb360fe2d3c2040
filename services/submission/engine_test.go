package submission

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/towoju5/bridge-verification-system-sub001/services/form"
	"github.com/towoju5/bridge-verification-system-sub001/services/providers"
	"github.com/towoju5/bridge-verification-system-sub001/services/refdata"
	serrors "github.com/towoju5/bridge-verification-system-sub001/services/submission/errors"
	"github.com/towoju5/bridge-verification-system-sub001/services/transliterate"
	"github.com/towoju5/bridge-verification-system-sub001/services/upload"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

type fakeProvider struct {
	name    string
	calls   int
	failing bool
}

func (f *fakeProvider) Name() string {
	return f.name
}

func (f *fakeProvider) Submit(_ context.Context, _ *types.SubmissionSnapshot) (string, error) {
	f.calls++
	if f.failing {
		return "", fmt.Errorf("upstream rejected the request")
	}
	return f.name + "_ref", nil
}

func newTestEngine(t *testing.T, providerSet []providers.VerificationProvider) (*Engine, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	backend, err := upload.NewLocalBackend(t.TempDir())
	require.NoError(t, err)

	engine := NewEngine(
		store,
		form.NewValidator(refdata.NewStaticProvider()),
		form.NewMapper(transliterate.NewLatinFolder()),
		upload.NewResolver(backend, 5*time.Second),
		providerSet,
		nil,
	)
	return engine, store
}

func testUpload(name string) *types.FileUpload {
	return &types.FileUpload{
		Name:        name,
		Size:        16,
		ContentType: "image/png",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("file-bytes")), nil
		},
	}
}

func individualStepPayload(step int) map[string]interface{} {
	switch step {
	case 1:
		return map[string]interface{}{
			"first_name": "José",
			"last_name":  "Nuñez",
			"email":      "jose@example.com",
			"phone":      "+5215512345678",
			"birth_date": "1990-04-12",
		}
	case 2:
		// Dotted encoding, as a browser form would send it.
		return map[string]interface{}{
			"residential_address.street_line_1": "12 Reforma",
			"residential_address.city":          "Mexico City",
			"residential_address.country":       "MX",
		}
	case 3:
		// Indexed-array encoding.
		return map[string]interface{}{
			"identifying_information_0_type":            "passport",
			"identifying_information_0_issuing_country": "MX",
			"identifying_information_0_number":          "G01234567",
			"identifying_information_0_image_front":     testUpload("front.png"),
		}
	case 4:
		return map[string]interface{}{
			"occupation":      "engineer",
			"purpose":         "savings",
			"source_of_funds": "salary",
		}
	case 5:
		return map[string]interface{}{
			"documents_0_file":        testUpload("statement.pdf"),
			"documents_0_description": "bank statement",
			"attestation":             true,
		}
	}
	return nil
}

func completeIndividual(t *testing.T, engine *Engine) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	record, err := engine.Start(ctx, "individual")
	require.NoError(t, err)

	for step := 1; step <= 5; step++ {
		_, err := engine.SaveStep(ctx, record.ID, step, individualStepPayload(step))
		require.NoError(t, err, "step %d", step)
	}
	return record.ID
}

func TestEngineFullIndividualFlow(t *testing.T) {
	provider := &fakeProvider{name: "bridge"}
	engine, store := newTestEngine(t, []providers.VerificationProvider{provider})
	ctx := context.Background()

	record, err := engine.Start(ctx, "individual")
	require.NoError(t, err)
	assert.Equal(t, 1, record.CurrentStep)
	assert.Equal(t, types.StatusInProgress, record.Status)

	for step := 1; step <= 5; step++ {
		res, err := engine.SaveStep(ctx, record.ID, step, individualStepPayload(step))
		require.NoError(t, err, "step %d", step)
		if step < 5 {
			require.NotNil(t, res.NextStep)
			assert.Equal(t, step+1, *res.NextStep)
			assert.False(t, res.IsComplete)
		} else {
			assert.Nil(t, res.NextStep)
			assert.True(t, res.IsComplete)
		}
	}

	// All step fields accumulated on the one record.
	stored, err := store.GetSubmission(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "José", stored.Fields["first_name"])
	assert.Equal(t, "Jose", stored.Fields["transliterated_first_name"])
	addr := stored.Fields["residential_address"].(map[string]interface{})
	assert.Equal(t, "Mexico City", addr["city"])
	assert.Equal(t, "savings", stored.Fields["purpose"])
	require.Len(t, stored.IdentifyingInformation, 1)
	assert.True(t, strings.HasPrefix(stored.IdentifyingInformation[0].ImageFrontRef, "identity_documents/"))
	require.Len(t, stored.Documents, 1)

	// Uploads produced audit records.
	docs, err := store.ListStoredDocuments(ctx, record.ID)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	res, err := engine.MarkSubmitted(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"bridge"}, res.ForwardedProviders)
	assert.Equal(t, 1, provider.calls)

	stored, err = store.GetSubmission(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusSubmitted, stored.Status)
}

func TestEngineRejectsOutOfOrderSteps(t *testing.T) {
	engine, _ := newTestEngine(t, nil)
	ctx := context.Background()

	record, err := engine.Start(ctx, "individual")
	require.NoError(t, err)

	// Skipping ahead.
	_, err = engine.SaveStep(ctx, record.ID, 3, individualStepPayload(3))
	var stateErr serrors.ErrState
	require.ErrorAs(t, err, &stateErr)

	// Regressing after an advance.
	_, err = engine.SaveStep(ctx, record.ID, 1, individualStepPayload(1))
	require.NoError(t, err)
	_, err = engine.SaveStep(ctx, record.ID, 1, individualStepPayload(1))
	require.ErrorAs(t, err, &stateErr)
}

func TestEngineValidationFailureLeavesRecordUntouched(t *testing.T) {
	engine, store := newTestEngine(t, nil)
	ctx := context.Background()

	record, err := engine.Start(ctx, "individual")
	require.NoError(t, err)

	_, err = engine.SaveStep(ctx, record.ID, 1, map[string]interface{}{
		"first_name": "Ada",
		"last_name":  "Okafor",
		"email":      "not-an-email",
		"phone":      "+2348012345678",
		"birth_date": "1990-04-12",
	})
	var validationErr serrors.ErrValidation
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "email", validationErr.Errors[0].Field)

	stored, err := store.GetSubmission(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CurrentStep)
	assert.Empty(t, stored.Fields, "a rejected save must not write any field")
}

func TestEngineUnknownSubmission(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	var sessionErr serrors.ErrSession
	_, err := engine.GetStepView(context.Background(), uuid.New())
	require.ErrorAs(t, err, &sessionErr)

	_, err = engine.SaveStep(context.Background(), uuid.New(), 1, map[string]interface{}{})
	require.ErrorAs(t, err, &sessionErr)
}

func TestEngineSubmitRequiresCompletion(t *testing.T) {
	engine, _ := newTestEngine(t, nil)
	ctx := context.Background()

	record, err := engine.Start(ctx, "individual")
	require.NoError(t, err)

	_, err = engine.SaveStep(ctx, record.ID, 1, individualStepPayload(1))
	require.NoError(t, err)

	var stateErr serrors.ErrState
	_, err = engine.MarkSubmitted(ctx, record.ID)
	require.ErrorAs(t, err, &stateErr)
}

func TestEngineSubmittedIsTerminal(t *testing.T) {
	engine, _ := newTestEngine(t, nil)
	ctx := context.Background()

	id := completeIndividual(t, engine)
	_, err := engine.MarkSubmitted(ctx, id)
	require.NoError(t, err)

	var stateErr serrors.ErrState
	_, err = engine.SaveStep(ctx, id, 5, individualStepPayload(5))
	require.ErrorAs(t, err, &stateErr)

	_, err = engine.MarkSubmitted(ctx, id)
	require.ErrorAs(t, err, &stateErr)
}

func TestEngineCompletedRecordRejectsFurtherSaves(t *testing.T) {
	engine, store := newTestEngine(t, nil)
	ctx := context.Background()

	id := completeIndividual(t, engine)

	before, err := store.GetSubmission(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, types.StatusInProgress, before.Status)

	// Completion closes the record even before it is forwarded.
	payload := individualStepPayload(5)
	payload["documents_0_description"] = "edited after completion"
	var stateErr serrors.ErrState
	_, err = engine.SaveStep(ctx, id, 5, payload)
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "submission is closed", stateErr.Message)

	after, err := store.GetSubmission(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, before.Fields, after.Fields)
	require.Len(t, after.Documents, 1)
	assert.Equal(t, "bank statement", after.Documents[0].Description)
}

func TestEngineForwardingPartialFailureIsRetryable(t *testing.T) {
	healthy := &fakeProvider{name: "bridge"}
	broken := &fakeProvider{name: "avenia", failing: true}
	engine, store := newTestEngine(t, []providers.VerificationProvider{healthy, broken})
	ctx := context.Background()

	id := completeIndividual(t, engine)

	var upstreamErr serrors.ErrUpstreamProvider
	_, err := engine.MarkSubmitted(ctx, id)
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "avenia", upstreamErr.Provider)

	// The record closes anyway and remembers who already accepted it.
	stored, err := store.GetSubmission(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, types.StatusSubmitted, stored.Status)
	assert.Equal(t, []string{"bridge"}, stored.ForwardedProviders)

	// The retry only replays the failed provider.
	broken.failing = false
	require.NoError(t, engine.RetryForwarding(ctx, id))
	stored, err = store.GetSubmission(ctx, id)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"bridge", "avenia"}, stored.ForwardedProviders)
	assert.Equal(t, 1, healthy.calls)
	assert.Equal(t, 2, broken.calls)

	// A fully forwarded record is a no-op to retry.
	require.NoError(t, engine.RetryForwarding(ctx, id))
	assert.Equal(t, 1, healthy.calls)
	assert.Equal(t, 2, broken.calls)
}

func TestEngineStartRejectsUnknownKind(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	var validationErr serrors.ErrValidation
	_, err := engine.Start(context.Background(), "charity")
	require.ErrorAs(t, err, &validationErr)
}

func TestEngineBusinessFlow(t *testing.T) {
	engine, store := newTestEngine(t, nil)
	ctx := context.Background()

	record, err := engine.Start(ctx, "business")
	require.NoError(t, err)

	steps := []map[string]interface{}{
		{
			"business_name":       "Müller GmbH",
			"email":               "ops@mueller.example",
			"phone":               "+4915112345678",
			"tax_id":              "DE123456789",
			"registration_number": "HRB 12345",
			"entity_type":         "llc",
		},
		{
			"registered_address.street_line_1": "Hauptstrasse 1",
			"registered_address.city":          "Berlin",
			"registered_address.country":       "DE",
		},
		{
			"identifying_information_0_type":            "national_id",
			"identifying_information_0_issuing_country": "DE",
			"identifying_information_0_number":          "L01X00T47",
			"identifying_information_0_image_front":     testUpload("reg.png"),
		},
		{
			"beneficial_owners_0_full_name":            "Jürgen Müller",
			"beneficial_owners_0_birth_date":           "1975-03-09",
			"beneficial_owners_0_ownership_percentage": "100",
			"beneficial_owners_0_residential_address": map[string]interface{}{
				"street_line_1": "Hauptstrasse 1",
				"city":          "Berlin",
				"country":       "DE",
			},
			"beneficial_owners_0_government_issued_id": testUpload("id.png"),
		},
		{
			"purpose":         "business_payments",
			"source_of_funds": "business_income",
		},
		{
			"attestation": true,
		},
	}

	for i, payload := range steps {
		_, err := engine.SaveStep(ctx, record.ID, i+1, payload)
		require.NoError(t, err, "business step %d", i+1)
	}

	stored, err := store.GetSubmission(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Müller GmbH", stored.Fields["business_name"])
	assert.Equal(t, "Muller GmbH", stored.Fields["transliterated_business_name"])

	owners := stored.Fields["beneficial_owners"].([]interface{})
	require.Len(t, owners, 1)
	owner := owners[0].(map[string]interface{})
	assert.Equal(t, "1975-03-09", owner["birth_date"])
	assert.True(t, strings.HasPrefix(owner["government_issued_id"].(string), "beneficial_owner_ids/"))

	res, err := engine.MarkSubmitted(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, res.Success)
}
