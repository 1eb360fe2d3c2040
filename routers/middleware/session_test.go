package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/towoju5/bridge-verification-system-sub001/utils/token"
)

func sessionTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/v1/submissions/:id/step", SessionMiddleware(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"submission_id": ctx.GetString("submission_id")})
	})
	return router
}

func TestSessionMiddleware(t *testing.T) {
	router := sessionTestRouter()
	submissionID := uuid.New()

	sessionToken, err := token.GenerateSessionToken(submissionID)
	require.NoError(t, err)

	t.Run("valid token for own submission", func(t *testing.T) {
		req := httptest.NewRequest("GET", fmt.Sprintf("/v1/submissions/%s/step", submissionID), nil)
		req.Header.Set("Authorization", "Bearer "+sessionToken)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)
		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest("GET", fmt.Sprintf("/v1/submissions/%s/step", submissionID), nil)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", fmt.Sprintf("/v1/submissions/%s/step", submissionID), nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("token scoped to another submission", func(t *testing.T) {
		req := httptest.NewRequest("GET", fmt.Sprintf("/v1/submissions/%s/step", uuid.New()), nil)
		req.Header.Set("Authorization", "Bearer "+sessionToken)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)
		assert.Equal(t, http.StatusForbidden, res.Code)
	})
}
