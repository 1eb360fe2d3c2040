package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSubmissionCloneIsIndependent(t *testing.T) {
	original := &Submission{
		ID:   uuid.New(),
		Kind: KindIndividual,
		Fields: map[string]interface{}{
			"residential_address": map[string]interface{}{"city": "Lagos"},
			"endorsements":        []interface{}{"base"},
		},
		Documents: []DocumentRef{{
			PurposeTags:      []string{"proof_of_address"},
			StorageReference: "supporting_documents/abc.pdf",
		}},
		ForwardedProviders: []string{"bridge"},
	}

	clone := original.Clone()
	clone.Fields["residential_address"].(map[string]interface{})["city"] = "Abuja"
	clone.Fields["endorsements"].([]interface{})[0] = "sepa"
	clone.Documents[0].PurposeTags[0] = "identity"
	clone.ForwardedProviders[0] = "avenia"

	assert.Equal(t, "Lagos", original.Fields["residential_address"].(map[string]interface{})["city"])
	assert.Equal(t, "base", original.Fields["endorsements"].([]interface{})[0])
	assert.Equal(t, "proof_of_address", original.Documents[0].PurposeTags[0])
	assert.Equal(t, "bridge", original.ForwardedProviders[0])
}

func TestSubmissionCloneNil(t *testing.T) {
	var s *Submission
	assert.Nil(t, s.Clone())
}
