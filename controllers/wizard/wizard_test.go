package wizard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/towoju5/bridge-verification-system-sub001/services/form"
	"github.com/towoju5/bridge-verification-system-sub001/services/refdata"
	"github.com/towoju5/bridge-verification-system-sub001/services/submission"
	"github.com/towoju5/bridge-verification-system-sub001/services/transliterate"
	"github.com/towoju5/bridge-verification-system-sub001/services/upload"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := submission.NewMemoryStore()
	backend, err := upload.NewLocalBackend(t.TempDir())
	require.NoError(t, err)

	refdataProvider := refdata.NewStaticProvider()
	engine := submission.NewEngine(
		store,
		form.NewValidator(refdataProvider),
		form.NewMapper(transliterate.NewLatinFolder()),
		upload.NewResolver(backend, 5*time.Second),
		nil,
		nil,
	)

	ctrl := NewWizardController(engine, refdataProvider)
	router := gin.New()
	router.POST("/v1/submissions", ctrl.CreateSubmission)
	router.GET("/v1/submissions/:id/step", ctrl.GetStep)
	router.POST("/v1/submissions/:id/steps/:step", ctrl.SaveStep)
	router.POST("/v1/submissions/:id/submit", ctrl.Submit)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload interface{}) (*httptest.ResponseRecorder, types.Response) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	var envelope types.Response
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &envelope))
	return res, envelope
}

func createSubmission(t *testing.T, router *gin.Engine, kind string) string {
	t.Helper()
	res, envelope := doJSON(t, router, "POST", "/v1/submissions", map[string]string{"kind": kind})
	require.Equal(t, http.StatusCreated, res.Code)

	data := envelope.Data.(map[string]interface{})
	require.NotEmpty(t, data["token"])
	return data["submissionId"].(string)
}

func TestCreateSubmission(t *testing.T) {
	router := newTestRouter(t)

	res, envelope := doJSON(t, router, "POST", "/v1/submissions", map[string]string{"kind": "individual"})
	assert.Equal(t, http.StatusCreated, res.Code)
	assert.Equal(t, "success", envelope.Status)

	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["currentStep"])
	assert.Equal(t, float64(5), data["maxSteps"])
	assert.NotEmpty(t, data["token"])
}

func TestCreateSubmissionRejectsUnknownKind(t *testing.T) {
	router := newTestRouter(t)

	res, envelope := doJSON(t, router, "POST", "/v1/submissions", map[string]string{"kind": "charity"})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "error", envelope.Status)
}

func TestGetStepView(t *testing.T) {
	router := newTestRouter(t)
	id := createSubmission(t, router, "individual")

	res, envelope := doJSON(t, router, "GET", fmt.Sprintf("/v1/submissions/%s/step", id), nil)
	require.Equal(t, http.StatusOK, res.Code)

	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["currentStep"])
	assert.Equal(t, "in_progress", data["status"])
}

func TestGetStepViewUnknownSubmission(t *testing.T) {
	router := newTestRouter(t)

	res, _ := doJSON(t, router, "GET", "/v1/submissions/6b9a6454-44f1-4b0a-bb6c-2c0f0e63b2a1/step", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)

	res, _ = doJSON(t, router, "GET", "/v1/submissions/not-a-uuid/step", nil)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestSaveStepJSON(t *testing.T) {
	router := newTestRouter(t)
	id := createSubmission(t, router, "individual")

	res, envelope := doJSON(t, router, "POST", fmt.Sprintf("/v1/submissions/%s/steps/1", id), map[string]interface{}{
		"first_name": "Ada",
		"last_name":  "Okafor",
		"email":      "ada@example.com",
		"phone":      "+2348012345678",
		"birth_date": "1990-04-12",
	})
	require.Equal(t, http.StatusOK, res.Code)

	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, float64(2), data["nextStep"])
	assert.Equal(t, false, data["isComplete"])
}

func TestSaveStepValidationFailure(t *testing.T) {
	router := newTestRouter(t)
	id := createSubmission(t, router, "individual")

	res, envelope := doJSON(t, router, "POST", fmt.Sprintf("/v1/submissions/%s/steps/1", id), map[string]interface{}{
		"first_name": "Ada",
	})
	require.Equal(t, http.StatusBadRequest, res.Code)

	fieldErrors := envelope.Data.([]interface{})
	assert.NotEmpty(t, fieldErrors)
	first := fieldErrors[0].(map[string]interface{})
	assert.NotEmpty(t, first["field"])
	assert.NotEmpty(t, first["kind"])
}

func TestSaveStepOutOfOrder(t *testing.T) {
	router := newTestRouter(t)
	id := createSubmission(t, router, "individual")

	res, _ := doJSON(t, router, "POST", fmt.Sprintf("/v1/submissions/%s/steps/3", id), map[string]interface{}{})
	assert.Equal(t, http.StatusConflict, res.Code)
}

func TestSaveStepMultipartUpload(t *testing.T) {
	router := newTestRouter(t)
	id := createSubmission(t, router, "individual")

	// Advance to the identity-documents step.
	res, _ := doJSON(t, router, "POST", fmt.Sprintf("/v1/submissions/%s/steps/1", id), map[string]interface{}{
		"first_name": "Ada",
		"last_name":  "Okafor",
		"email":      "ada@example.com",
		"phone":      "+2348012345678",
		"birth_date": "1990-04-12",
	})
	require.Equal(t, http.StatusOK, res.Code)
	res, _ = doJSON(t, router, "POST", fmt.Sprintf("/v1/submissions/%s/steps/2", id), map[string]interface{}{
		"residential_address.street_line_1": "12 Marina Road",
		"residential_address.city":          "Lagos",
		"residential_address.country":       "NG",
	})
	require.Equal(t, http.StatusOK, res.Code)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("identifying_information_0_type", "nin"))
	require.NoError(t, writer.WriteField("identifying_information_0_issuing_country", "NG"))
	require.NoError(t, writer.WriteField("identifying_information_0_number", "12345678901"))
	part, err := writer.CreateFormFile("identifying_information_0_image_front", "front.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", fmt.Sprintf("/v1/submissions/%s/steps/3", id), &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope types.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	data := envelope.Data.(map[string]interface{})
	record := data["record"].(map[string]interface{})
	identifying := record["identifying_information"].([]interface{})
	require.Len(t, identifying, 1)
	entry := identifying[0].(map[string]interface{})
	assert.Contains(t, entry["image_front_ref"], "identity_documents/")
}

func TestSubmitIncomplete(t *testing.T) {
	router := newTestRouter(t)
	id := createSubmission(t, router, "individual")

	res, _ := doJSON(t, router, "POST", fmt.Sprintf("/v1/submissions/%s/submit", id), nil)
	assert.Equal(t, http.StatusConflict, res.Code)
}

func TestGetStepReferenceData(t *testing.T) {
	router := newTestRouter(t)
	id := createSubmission(t, router, "business")

	res, envelope := doJSON(t, router, "GET", fmt.Sprintf("/v1/submissions/%s/step", id), nil)
	require.Equal(t, http.StatusOK, res.Code)

	// Business step 1 validates entity_type against its reference list.
	data := envelope.Data.(map[string]interface{})
	refData := data["referenceData"].(map[string]interface{})
	assert.Contains(t, refData, "entity_types")
}
