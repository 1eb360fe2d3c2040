package form

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/towoju5/bridge-verification-system-sub001/services/refdata"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

func newTestValidator() *Validator {
	return NewValidator(refdata.NewStaticProvider())
}

func testUpload(name string) *types.FileUpload {
	return &types.FileUpload{
		Name:        name,
		Size:        64,
		ContentType: "image/png",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("png-bytes")), nil
		},
	}
}

func rejectionFor(rejections []types.ErrorData, field string) *types.ErrorData {
	for i := range rejections {
		if rejections[i].Field == field {
			return &rejections[i]
		}
	}
	return nil
}

func TestValidateStepPersonalInfo(t *testing.T) {
	v := newTestValidator()

	validated, rejections, err := v.ValidateStep(context.Background(), types.KindIndividual, 1, map[string]interface{}{
		"first_name": "Ada",
		"last_name":  "Okafor",
		"email":      "Ada.Okafor@Example.com",
		"phone":      "+2348012345678",
		"birth_date": "1990-04-12",
	})
	require.NoError(t, err)
	require.Empty(t, rejections)

	assert.Equal(t, "ada.okafor@example.com", validated["email"])
	birthDate, ok := validated["birth_date"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 1990, birthDate.Year())
	_, present := validated["middle_name"]
	assert.False(t, present, "omitted optional field must not be written")
}

func TestValidateStepMissingRequired(t *testing.T) {
	v := newTestValidator()

	_, rejections, err := v.ValidateStep(context.Background(), types.KindIndividual, 1, map[string]interface{}{
		"first_name": "Ada",
	})
	require.NoError(t, err)
	require.NotEmpty(t, rejections)

	entry := rejectionFor(rejections, "last_name")
	require.NotNil(t, entry)
	assert.Equal(t, RejectionMissing, entry.Kind)

	// Empty strings count as omitted for required fields.
	_, rejections, err = v.ValidateStep(context.Background(), types.KindIndividual, 1, map[string]interface{}{
		"first_name": "   ",
	})
	require.NoError(t, err)
	entry = rejectionFor(rejections, "first_name")
	require.NotNil(t, entry)
	assert.Equal(t, RejectionMissing, entry.Kind)
}

func TestValidateStepMalformedValues(t *testing.T) {
	v := newTestValidator()

	_, rejections, err := v.ValidateStep(context.Background(), types.KindIndividual, 1, map[string]interface{}{
		"first_name": "Ada",
		"last_name":  "Okafor",
		"email":      "not-an-email",
		"phone":      "0801 234 5678",
		"birth_date": "12/04/1990",
	})
	require.NoError(t, err)

	for _, field := range []string{"email", "phone", "birth_date"} {
		entry := rejectionFor(rejections, field)
		require.NotNil(t, entry, field)
		assert.Equal(t, RejectionMalformed, entry.Kind, field)
	}
}

func TestValidateStepEnumMembership(t *testing.T) {
	v := newTestValidator()

	_, rejections, err := v.ValidateStep(context.Background(), types.KindIndividual, 4, map[string]interface{}{
		"occupation":      "astronaut",
		"purpose":         "savings",
		"source_of_funds": "salary",
	})
	require.NoError(t, err)

	entry := rejectionFor(rejections, "occupation")
	require.NotNil(t, entry)
	assert.Equal(t, RejectionOutOfDomain, entry.Kind)
}

func TestValidateStepPurposeOtherConditional(t *testing.T) {
	v := newTestValidator()
	base := map[string]interface{}{
		"occupation":      "engineer",
		"source_of_funds": "salary",
	}

	t.Run("purpose other requires the detail field", func(t *testing.T) {
		payload := map[string]interface{}{"purpose": "other"}
		for k, v := range base {
			payload[k] = v
		}
		_, rejections, err := v.ValidateStep(context.Background(), types.KindIndividual, 4, payload)
		require.NoError(t, err)

		entry := rejectionFor(rejections, "purpose_other")
		require.NotNil(t, entry)
		assert.Equal(t, RejectionMissing, entry.Kind)
	})

	t.Run("other purposes leave the detail field optional", func(t *testing.T) {
		payload := map[string]interface{}{"purpose": "savings"}
		for k, v := range base {
			payload[k] = v
		}
		validated, rejections, err := v.ValidateStep(context.Background(), types.KindIndividual, 4, payload)
		require.NoError(t, err)
		assert.Empty(t, rejections)
		assert.Equal(t, "savings", validated["purpose"])
	})
}

func TestValidateStepAttestation(t *testing.T) {
	v := newTestValidator()

	_, rejections, err := v.ValidateStep(context.Background(), types.KindIndividual, 5, map[string]interface{}{
		"attestation": false,
	})
	require.NoError(t, err)

	entry := rejectionFor(rejections, "attestation")
	require.NotNil(t, entry)
	assert.Equal(t, RejectionConditionalUnsatisfied, entry.Kind)

	validated, rejections, err := v.ValidateStep(context.Background(), types.KindIndividual, 5, map[string]interface{}{
		"attestation": "true",
	})
	require.NoError(t, err)
	assert.Empty(t, rejections)
	assert.Equal(t, true, validated["attestation"])
}

func TestValidateStepIdentifyingInformation(t *testing.T) {
	v := newTestValidator()

	entry := func(idType, country string) map[string]interface{} {
		return map[string]interface{}{
			"type":            idType,
			"issuing_country": country,
			"number":          "A1234567",
			"image_front":     testUpload("front.png"),
		}
	}

	t.Run("id type scoped to issuing country", func(t *testing.T) {
		validated, rejections, err := v.ValidateStep(context.Background(), types.KindIndividual, 3, map[string]interface{}{
			"identifying_information": []interface{}{entry("nin", "NG")},
		})
		require.NoError(t, err)
		require.Empty(t, rejections)

		items := validated["identifying_information"].([]interface{})
		require.Len(t, items, 1)
		assert.Equal(t, "NG", items[0].(map[string]interface{})["issuing_country"])
	})

	t.Run("id type outside the country set", func(t *testing.T) {
		_, rejections, err := v.ValidateStep(context.Background(), types.KindIndividual, 3, map[string]interface{}{
			"identifying_information": []interface{}{entry("nin", "US")},
		})
		require.NoError(t, err)

		rej := rejectionFor(rejections, "identifying_information.0.type")
		require.NotNil(t, rej)
		assert.Equal(t, RejectionOutOfDomain, rej.Kind)
	})

	t.Run("empty required array", func(t *testing.T) {
		_, rejections, err := v.ValidateStep(context.Background(), types.KindIndividual, 3, map[string]interface{}{
			"identifying_information": []interface{}{},
		})
		require.NoError(t, err)

		rej := rejectionFor(rejections, "identifying_information")
		require.NotNil(t, rej)
		assert.Equal(t, RejectionMissing, rej.Kind)
	})

	t.Run("missing front image inside an entry", func(t *testing.T) {
		broken := entry("passport", "DE")
		delete(broken, "image_front")
		_, rejections, err := v.ValidateStep(context.Background(), types.KindIndividual, 3, map[string]interface{}{
			"identifying_information": []interface{}{broken},
		})
		require.NoError(t, err)

		rej := rejectionFor(rejections, "identifying_information.0.image_front")
		require.NotNil(t, rej)
		assert.Equal(t, RejectionMissing, rej.Kind)
	})
}

func TestValidateStepAddress(t *testing.T) {
	v := newTestValidator()

	validated, rejections, err := v.ValidateStep(context.Background(), types.KindIndividual, 2, map[string]interface{}{
		"residential_address": map[string]interface{}{
			"street_line_1":    "12 Marina Road",
			"city":             "Lagos",
			"country":          "ng",
			"proof_of_address": "proof_of_address/abc123.pdf",
		},
	})
	require.NoError(t, err)
	require.Empty(t, rejections)

	addr := validated["residential_address"].(map[string]interface{})
	assert.Equal(t, "NG", addr["country"], "country codes are uppercased")

	_, rejections, err = v.ValidateStep(context.Background(), types.KindIndividual, 2, map[string]interface{}{
		"residential_address": map[string]interface{}{
			"street_line_1": "1 Main St",
			"city":          "Atlantis",
			"country":       "XX",
		},
	})
	require.NoError(t, err)
	rej := rejectionFor(rejections, "residential_address.country")
	require.NotNil(t, rej)
	assert.Equal(t, RejectionOutOfDomain, rej.Kind)
}

func TestValidateStepClearSentinel(t *testing.T) {
	v := newTestValidator()

	validated, rejections, err := v.ValidateStep(context.Background(), types.KindIndividual, 1, map[string]interface{}{
		"first_name":  "Ada",
		"last_name":   "Okafor",
		"email":       "ada@example.com",
		"phone":       "+2348012345678",
		"birth_date":  "1990-04-12",
		"middle_name": types.ClearSentinel,
	})
	require.NoError(t, err)
	require.Empty(t, rejections)
	assert.Equal(t, types.ClearSentinel, validated["middle_name"])

	// Required fields cannot be cleared.
	_, rejections, err = v.ValidateStep(context.Background(), types.KindIndividual, 1, map[string]interface{}{
		"first_name": types.ClearSentinel,
	})
	require.NoError(t, err)
	rej := rejectionFor(rejections, "first_name")
	require.NotNil(t, rej)
	assert.Equal(t, RejectionMalformed, rej.Kind)
}

func TestValidateStepBusinessOwners(t *testing.T) {
	v := newTestValidator()

	validated, rejections, err := v.ValidateStep(context.Background(), types.KindBusiness, 4, map[string]interface{}{
		"beneficial_owners": []interface{}{
			map[string]interface{}{
				"full_name":            "Grace Mensah",
				"birth_date":           "1985-07-01",
				"ownership_percentage": "51.5",
				"residential_address": map[string]interface{}{
					"street_line_1": "4 Ring Road",
					"city":          "Accra",
					"country":       "GH",
				},
				"government_issued_id": testUpload("id.png"),
			},
		},
	})
	require.NoError(t, err)
	require.Empty(t, rejections)

	owner := validated["beneficial_owners"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "51.5", owner["ownership_percentage"])

	_, rejections, err = v.ValidateStep(context.Background(), types.KindBusiness, 4, map[string]interface{}{
		"beneficial_owners": []interface{}{
			map[string]interface{}{
				"full_name":            "Grace Mensah",
				"birth_date":           "1985-07-01",
				"ownership_percentage": "-3",
				"residential_address": map[string]interface{}{
					"street_line_1": "4 Ring Road",
					"city":          "Accra",
					"country":       "GH",
				},
				"government_issued_id": testUpload("id.png"),
			},
		},
	})
	require.NoError(t, err)
	rej := rejectionFor(rejections, "beneficial_owners.0.ownership_percentage")
	require.NotNil(t, rej)
	assert.Equal(t, RejectionMalformed, rej.Kind)
}

func TestValidateStepUnknownStep(t *testing.T) {
	v := newTestValidator()
	_, _, err := v.ValidateStep(context.Background(), types.KindIndividual, 9, map[string]interface{}{})
	assert.Error(t, err)
}
