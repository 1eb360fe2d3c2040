package upload

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

func testUpload(name, content string) *types.FileUpload {
	return &types.FileUpload{
		Name:        name,
		Size:        int64(len(content)),
		ContentType: "image/png",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func newTestResolver(t *testing.T) (*Resolver, string) {
	t.Helper()
	dir := t.TempDir()
	backend, err := NewLocalBackend(dir)
	require.NoError(t, err)
	return NewResolver(backend, 5*time.Second), dir
}

func TestResolveDocumentsIdentityStep(t *testing.T) {
	resolver, dir := newTestResolver(t)
	submissionID := uuid.New()

	payload := map[string]interface{}{
		"identifying_information": []interface{}{
			map[string]interface{}{
				"type":            "passport",
				"issuing_country": "NG",
				"number":          "A1234567",
				"image_front":     testUpload("front.png", "front-bytes"),
				"image_back":      testUpload("back.png", "back-bytes"),
			},
		},
	}

	stored, err := resolver.ResolveDocuments(context.Background(), submissionID, types.KindIndividual, 3, payload)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	entry := payload["identifying_information"].([]interface{})[0].(map[string]interface{})
	frontRef, ok := entry["image_front"].(string)
	require.True(t, ok, "upload must be replaced by its reference")
	assert.True(t, strings.HasPrefix(frontRef, "identity_documents/"))

	byField := map[string]types.StoredDocument{}
	for _, doc := range stored {
		byField[doc.SourceFieldReference] = doc
	}

	front := byField["identifying_information.0.image_front"]
	assert.Equal(t, submissionID, front.SubmissionID)
	assert.Equal(t, "front", front.Side)
	assert.Equal(t, "NG", front.IssuingCountry)
	assert.Equal(t, "front.png", front.OriginalName)
	assert.Equal(t, types.DocumentUploaded, front.Status)
	assert.Equal(t, frontRef, front.StoragePath)

	back := byField["identifying_information.0.image_back"]
	assert.Equal(t, "back", back.Side)

	// The bytes landed on disk under the category directory.
	parts := strings.SplitN(frontRef, "/", 2)
	data, err := os.ReadFile(filepath.Join(dir, parts[0], parts[1]))
	require.NoError(t, err)
	assert.Equal(t, "front-bytes", string(data))
}

func TestResolveDocumentsIdempotent(t *testing.T) {
	resolver, _ := newTestResolver(t)

	payload := map[string]interface{}{
		"identifying_information": []interface{}{
			map[string]interface{}{
				"type":            "passport",
				"issuing_country": "DE",
				"number":          "C01X00T47",
				"image_front":     "identity_documents/already-stored.png",
			},
		},
	}

	stored, err := resolver.ResolveDocuments(context.Background(), uuid.New(), types.KindIndividual, 3, payload)
	require.NoError(t, err)
	assert.Empty(t, stored, "existing references must not be re-stored")

	entry := payload["identifying_information"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "identity_documents/already-stored.png", entry["image_front"])
}

func TestResolveDocumentsNestedAddressProof(t *testing.T) {
	resolver, _ := newTestResolver(t)

	payload := map[string]interface{}{
		"residential_address": map[string]interface{}{
			"street_line_1":    "12 Marina Road",
			"city":             "Lagos",
			"country":          "NG",
			"proof_of_address": testUpload("bill.pdf", "pdf-bytes"),
		},
	}

	stored, err := resolver.ResolveDocuments(context.Background(), uuid.New(), types.KindIndividual, 2, payload)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	assert.Equal(t, "proof_of_address", stored[0].Category)
	assert.Equal(t, "residential_address.proof_of_address", stored[0].SourceFieldReference)

	addr := payload["residential_address"].(map[string]interface{})
	_, ok := addr["proof_of_address"].(string)
	assert.True(t, ok)
}

func TestResolveDocumentsSupportingDocuments(t *testing.T) {
	resolver, _ := newTestResolver(t)

	payload := map[string]interface{}{
		"documents": []interface{}{
			map[string]interface{}{
				"file":         testUpload("statement.pdf", "doc-bytes"),
				"purpose_tags": []interface{}{"proof_of_funds"},
			},
			map[string]interface{}{
				"file": "supporting_documents/existing.pdf",
			},
		},
		"attestation": true,
	}

	stored, err := resolver.ResolveDocuments(context.Background(), uuid.New(), types.KindIndividual, 5, payload)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "supporting_documents", stored[0].Category)
	assert.Equal(t, "documents.0.file", stored[0].SourceFieldReference)
}

func TestLocalBackendExists(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewLocalBackend(dir)
	require.NoError(t, err)

	ref, err := backend.Store(context.Background(), "proof_of_address", "bill.pdf", strings.NewReader("x"), 1, "application/pdf")
	require.NoError(t, err)

	ok, err := backend.Exists(context.Background(), ref)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = backend.Exists(context.Background(), "proof_of_address/missing.pdf")
	require.NoError(t, err)
	assert.False(t, ok)
}
