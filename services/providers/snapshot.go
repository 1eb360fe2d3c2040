package providers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/towoju5/bridge-verification-system-sub001/types"
	"github.com/xeipuuv/gojsonschema"
)

// snapshotSchema is the structural contract every outbound snapshot must
// satisfy before it is handed to any partner API.
const snapshotSchema = `{
	"type": "object",
	"required": ["submission_id", "kind", "fields", "submitted_at"],
	"properties": {
		"submission_id": {"type": "string", "minLength": 36},
		"kind": {"type": "string", "enum": ["individual", "business"]},
		"fields": {"type": "object"},
		"documents": {
			"type": ["array", "null"],
			"items": {
				"type": "object",
				"required": ["storage_reference"],
				"properties": {
					"storage_reference": {"type": "string", "minLength": 1}
				}
			}
		},
		"identifying_information": {
			"type": ["array", "null"],
			"items": {
				"type": "object",
				"required": ["type", "issuing_country", "number"],
				"properties": {
					"type": {"type": "string", "minLength": 1},
					"issuing_country": {"type": "string", "minLength": 2},
					"number": {"type": "string", "minLength": 1}
				}
			}
		},
		"submitted_at": {"type": "string"}
	}
}`

// BuildSnapshot assembles the outbound view of a completed record and
// verifies it against the snapshot contract.
func BuildSnapshot(record *types.Submission, submittedAt time.Time) (*types.SubmissionSnapshot, error) {
	snapshot := &types.SubmissionSnapshot{
		SubmissionID:           record.ID,
		Kind:                   record.Kind,
		Fields:                 record.Fields,
		Documents:              record.Documents,
		IdentifyingInformation: record.IdentifyingInformation,
		SubmittedAt:            submittedAt,
	}

	encoded, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(snapshotSchema),
		gojsonschema.NewBytesLoader(encoded),
	)
	if err != nil {
		return nil, fmt.Errorf("snapshot schema check failed: %w", err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return nil, fmt.Errorf("snapshot is incomplete: %s", first.String())
	}
	return snapshot, nil
}
