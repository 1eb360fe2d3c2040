package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/towoju5/bridge-verification-system-sub001/services/transliterate"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

func newTestMapper() *Mapper {
	return NewMapper(transliterate.NewLatinFolder())
}

func TestMapPersonalInfo(t *testing.T) {
	m := newTestMapper()

	mapped, err := m.Map(types.KindIndividual, 1, map[string]interface{}{
		"first_name": "José",
		"last_name":  "Nuñez",
		"email":      "jose@example.com",
		"phone":      "+5215512345678",
		"birth_date": time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "José", mapped.Fields["first_name"])
	assert.Equal(t, "Jose", mapped.Fields["transliterated_first_name"])
	assert.Equal(t, "Nuñez", mapped.Fields["last_name"])
	assert.Equal(t, "Nunez", mapped.Fields["transliterated_last_name"])
	assert.Equal(t, "1990-04-12", mapped.Fields["birth_date"])
	assert.False(t, mapped.SetDocuments)
	assert.False(t, mapped.SetIdentifying)
}

func TestMapAddressProofRename(t *testing.T) {
	m := newTestMapper()

	mapped, err := m.Map(types.KindIndividual, 2, map[string]interface{}{
		"residential_address": map[string]interface{}{
			"street_line_1":    "12 Marina Road",
			"city":             "Lagos",
			"country":          "NG",
			"proof_of_address": "proof_of_address/9f2c.pdf",
		},
	})
	require.NoError(t, err)

	addr := mapped.Fields["residential_address"].(map[string]interface{})
	assert.Equal(t, "proof_of_address/9f2c.pdf", addr["proof_of_address_ref"])
	_, present := addr["proof_of_address"]
	assert.False(t, present)
}

func TestMapIdentifyingInformation(t *testing.T) {
	m := newTestMapper()

	mapped, err := m.Map(types.KindIndividual, 3, map[string]interface{}{
		"identifying_information": []interface{}{
			map[string]interface{}{
				"type":            "passport",
				"issuing_country": "DE",
				"number":          "C01X00T47",
				"expiration":      time.Date(2030, 1, 31, 0, 0, 0, 0, time.UTC),
				"image_front":     "identity_documents/front.png",
				"image_back":      "identity_documents/back.png",
			},
		},
	})
	require.NoError(t, err)

	require.True(t, mapped.SetIdentifying)
	require.Len(t, mapped.IdentifyingInformation, 1)
	info := mapped.IdentifyingInformation[0]
	assert.Equal(t, "passport", info.Type)
	assert.Equal(t, "2030-01-31", info.Expiration)
	assert.Equal(t, "identity_documents/front.png", info.ImageFrontRef)
	assert.Equal(t, "identity_documents/back.png", info.ImageBackRef)
}

func TestMapDocuments(t *testing.T) {
	m := newTestMapper()

	mapped, err := m.Map(types.KindIndividual, 5, map[string]interface{}{
		"documents": []interface{}{
			map[string]interface{}{
				"file":         "supporting_documents/a.pdf",
				"purpose_tags": []interface{}{"proof_of_funds"},
				"description":  "bank statement",
			},
			map[string]interface{}{
				"file": "supporting_documents/b.pdf",
			},
		},
		"attestation": true,
	})
	require.NoError(t, err)

	require.True(t, mapped.SetDocuments)
	require.Len(t, mapped.Documents, 2)
	assert.Equal(t, "supporting_documents/a.pdf", mapped.Documents[0].StorageReference)
	assert.Equal(t, []string{"proof_of_funds"}, mapped.Documents[0].PurposeTags)
	assert.Equal(t, "bank statement", mapped.Documents[0].Description)
	assert.Equal(t, true, mapped.Fields["attestation"])
}

func TestMapClearSentinel(t *testing.T) {
	m := newTestMapper()

	mapped, err := m.Map(types.KindIndividual, 1, map[string]interface{}{
		"first_name":  "Ada",
		"middle_name": types.ClearSentinel,
	})
	require.NoError(t, err)

	assert.Contains(t, mapped.Cleared, "middle_name")
	_, present := mapped.Fields["middle_name"]
	assert.False(t, present)
}

func TestMapBeneficialOwners(t *testing.T) {
	m := newTestMapper()

	mapped, err := m.Map(types.KindBusiness, 4, map[string]interface{}{
		"beneficial_owners": []interface{}{
			map[string]interface{}{
				"full_name":            "Grace Mensah",
				"birth_date":           time.Date(1985, 7, 1, 0, 0, 0, 0, time.UTC),
				"ownership_percentage": "51.5",
				"government_issued_id": "beneficial_owner_ids/x.png",
			},
		},
	})
	require.NoError(t, err)

	owners := mapped.Fields["beneficial_owners"].([]interface{})
	require.Len(t, owners, 1)
	owner := owners[0].(map[string]interface{})
	assert.Equal(t, "1985-07-01", owner["birth_date"])
	assert.Equal(t, "51.5", owner["ownership_percentage"])
}

func TestMapUnknownStep(t *testing.T) {
	m := newTestMapper()
	_, err := m.Map(types.KindIndividual, 0, map[string]interface{}{})
	assert.Error(t, err)
}
