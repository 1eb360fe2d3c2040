package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEncodingsAgree(t *testing.T) {
	// The same logical fields in each of the three encodings must produce
	// identical nested output when only one encoding is present.
	dotted := map[string]interface{}{
		"residential_address.city":    "Lagos",
		"residential_address.country": "NG",
	}
	underscored := map[string]interface{}{
		"residential_address_city":    "Lagos",
		"residential_address_country": "NG",
	}

	expected := map[string]interface{}{
		"residential_address": map[string]interface{}{
			"city":    "Lagos",
			"country": "NG",
		},
	}

	assert.Equal(t, expected, Normalize(dotted))
	assert.Equal(t, expected, Normalize(underscored))

	dottedArray := map[string]interface{}{
		"identifying_information.0.number": "A123",
		"identifying_information.0.type":   "passport",
	}
	indexedArray := map[string]interface{}{
		"identifying_information_0_number": "A123",
		"identifying_information_0_type":   "passport",
	}

	expectedArray := map[string]interface{}{
		"identifying_information": []interface{}{
			map[string]interface{}{
				"number": "A123",
				"type":   "passport",
			},
		},
	}

	assert.Equal(t, expectedArray, Normalize(dottedArray))
	assert.Equal(t, expectedArray, Normalize(indexedArray))
}

func TestNormalizeScalarArrayElements(t *testing.T) {
	out := Normalize(map[string]interface{}{
		"endorsements_0": "sepa",
		"endorsements_2": "ach",
	})

	// Gaps compact away: index 1 was never provided.
	assert.Equal(t, map[string]interface{}{
		"endorsements": []interface{}{"sepa", "ach"},
	}, out)
}

func TestNormalizePassThrough(t *testing.T) {
	out := Normalize(map[string]interface{}{
		"first_name": "Ada",
		"birth_date": "1990-01-01",
	})

	// Underscores in plain field names must not be split.
	assert.Equal(t, map[string]interface{}{
		"first_name": "Ada",
		"birth_date": "1990-01-01",
	}, out)
}

func TestNormalizeEncodingPriority(t *testing.T) {
	// Priority order is dotted > indexed > underscored-prefix.
	out := Normalize(map[string]interface{}{
		"residential_address.city": "Accra",
		"residential_address_city": "Kumasi",
	})
	addr := out["residential_address"].(map[string]interface{})
	assert.Equal(t, "Accra", addr["city"])

	out = Normalize(map[string]interface{}{
		"identifying_information.0.number": "DOTTED",
		"identifying_information_0_number": "INDEXED",
	})
	entry := out["identifying_information"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "DOTTED", entry["number"])
}

func TestNormalizeIndexOrdering(t *testing.T) {
	out := Normalize(map[string]interface{}{
		"documents_1_description":  "bank statement",
		"documents_0_description":  "utility bill",
		"documents_10_description": "lease",
	})

	docs := out["documents"].([]interface{})
	assert.Len(t, docs, 3)
	assert.Equal(t, "utility bill", docs[0].(map[string]interface{})["description"])
	assert.Equal(t, "bank statement", docs[1].(map[string]interface{})["description"])
	assert.Equal(t, "lease", docs[2].(map[string]interface{})["description"])
}

func TestNormalizeOpaqueValues(t *testing.T) {
	marker := &struct{ name string }{"upload"}
	out := Normalize(map[string]interface{}{
		"identifying_information_0_image_front": marker,
	})

	entry := out["identifying_information"].([]interface{})[0].(map[string]interface{})
	assert.Same(t, marker, entry["image_front"].(*struct{ name string }))
}

func TestGetPath(t *testing.T) {
	root := Normalize(map[string]interface{}{
		"identifying_information_0_number": "A1",
		"residential_address.city":         "Berlin",
	})

	v, ok := GetPath(root, "identifying_information.0.number")
	assert.True(t, ok)
	assert.Equal(t, "A1", v)

	v, ok = GetPath(root, "residential_address.city")
	assert.True(t, ok)
	assert.Equal(t, "Berlin", v)

	_, ok = GetPath(root, "identifying_information.3.number")
	assert.False(t, ok)
}
