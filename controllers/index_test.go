package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/towoju5/bridge-verification-system-sub001/services/refdata"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewController(refdata.NewStaticProvider())
	router := gin.New()
	router.GET("/v1/reference/:list", ctrl.GetReferenceList)
	return router
}

func TestGetReferenceList(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/v1/reference/countries", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code)

	var envelope types.Response
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)
	assert.NotEmpty(t, envelope.Data)
}

func TestGetReferenceListPerCountry(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/v1/reference/id_types_NG", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code)

	var envelope types.Response
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &envelope))
	items := envelope.Data.([]interface{})
	codes := make([]string, 0, len(items))
	for _, item := range items {
		codes = append(codes, item.(map[string]interface{})["code"].(string))
	}
	assert.Contains(t, codes, "nin")
}

func TestGetReferenceListUnknown(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/v1/reference/star_signs", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusNotFound, res.Code)
}
