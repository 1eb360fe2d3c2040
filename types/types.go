package types

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// SubmissionKind is the account kind a submission is collected for.
// It is fixed at creation and never changes.
type SubmissionKind string

const (
	KindIndividual SubmissionKind = "individual"
	KindBusiness   SubmissionKind = "business"
)

// SubmissionStatus is the lifecycle state of a submission.
// Transitions are one-way: in_progress -> submitted.
type SubmissionStatus string

const (
	StatusInProgress SubmissionStatus = "in_progress"
	StatusSubmitted  SubmissionStatus = "submitted"
)

// ClearSentinel is the explicit value a client sends to clear a nullable
// field. Omitting a field never clears it.
const ClearSentinel = "__clear__"

// Address is a postal address collected by the wizard. The proof reference
// points at a stored document when the step carried an upload.
type Address struct {
	StreetLine1    string `json:"street_line_1"`
	StreetLine2    string `json:"street_line_2,omitempty"`
	City           string `json:"city"`
	State          string `json:"state,omitempty"`
	PostalCode     string `json:"postal_code,omitempty"`
	Country        string `json:"country"`
	ProofOfAddress string `json:"proof_of_address_ref,omitempty"`
}

// DocumentRef is one entry in a submission's ordered document list.
type DocumentRef struct {
	PurposeTags      []string `json:"purpose_tags"`
	StorageReference string   `json:"storage_reference,omitempty"`
	Description      string   `json:"description,omitempty"`
}

// IdentifyingInformation is one identity-document record on a submission.
type IdentifyingInformation struct {
	Type           string `json:"type"`
	IssuingCountry string `json:"issuing_country"`
	Number         string `json:"number"`
	Expiration     string `json:"expiration,omitempty"`
	ImageFrontRef  string `json:"image_front_ref,omitempty"`
	ImageBackRef   string `json:"image_back_ref,omitempty"`
}

// Submission is the aggregate root for one in-progress or completed
// verification. Fields is an open mapping; each step only writes the keys
// it owns, and a step-save merges additively (never a full replace).
type Submission struct {
	ID                     uuid.UUID                `json:"id"`
	Kind                   SubmissionKind           `json:"kind"`
	CurrentStep            int                      `json:"current_step"`
	Status                 SubmissionStatus         `json:"status"`
	Fields                 map[string]interface{}   `json:"fields"`
	Documents              []DocumentRef            `json:"documents"`
	IdentifyingInformation []IdentifyingInformation `json:"identifying_information"`
	ForwardedProviders     []string                 `json:"forwarded_providers,omitempty"`
	CreatedAt              time.Time                `json:"created_at"`
	UpdatedAt              time.Time                `json:"updated_at"`
}

// Clone returns a deep copy of the submission. Step-saves mutate a copy so
// a failed save never leaves partial writes behind.
func (s *Submission) Clone() *Submission {
	if s == nil {
		return nil
	}
	out := *s
	out.Fields = deepCopyMap(s.Fields)
	out.Documents = append([]DocumentRef(nil), s.Documents...)
	for i := range out.Documents {
		out.Documents[i].PurposeTags = append([]string(nil), s.Documents[i].PurposeTags...)
	}
	out.IdentifyingInformation = append([]IdentifyingInformation(nil), s.IdentifyingInformation...)
	out.ForwardedProviders = append([]string(nil), s.ForwardedProviders...)
	return &out
}

func deepCopyMap(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return nil
	}
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return deepCopyMap(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = deepCopyValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

// DocumentStatus is the review state of a stored document. Review is owned
// by an external collaborator; this core only ever writes "uploaded".
type DocumentStatus string

const (
	DocumentUploaded DocumentStatus = "uploaded"
	DocumentPending  DocumentStatus = "pending"
	DocumentVerified DocumentStatus = "verified"
	DocumentRejected DocumentStatus = "rejected"
)

// StoredDocument is one persisted upload with audit metadata. It is
// created exactly once per successfully stored file.
type StoredDocument struct {
	ID                   uuid.UUID      `json:"id"`
	SubmissionID         uuid.UUID      `json:"submission_id"`
	Category             string         `json:"category"`
	StoragePath          string         `json:"storage_path"`
	OriginalName         string         `json:"original_name"`
	MimeType             string         `json:"mime_type"`
	SizeBytes            int64          `json:"size_bytes"`
	Side                 string         `json:"side,omitempty"`
	SourceFieldReference string         `json:"source_field_reference,omitempty"`
	IssuingCountry       string         `json:"issuing_country,omitempty"`
	Status               DocumentStatus `json:"status"`
	RejectionReason      string         `json:"rejection_reason,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
}

// FileUpload is an incoming file before it is stored. Open defers reading
// the content until the resolver actually persists it; validation only
// checks presence and declared metadata.
type FileUpload struct {
	Name        string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// SubmissionSnapshot is the complete view of a submitted record handed to
// the external verification providers.
type SubmissionSnapshot struct {
	SubmissionID           uuid.UUID                `json:"submission_id"`
	Kind                   SubmissionKind           `json:"kind"`
	Fields                 map[string]interface{}   `json:"fields"`
	Documents              []DocumentRef            `json:"documents"`
	IdentifyingInformation []IdentifyingInformation `json:"identifying_information"`
	SubmittedAt            time.Time                `json:"submitted_at"`
}

// ErrorData is a field-addressable error entry returned to the caller.
type ErrorData struct {
	Field   string `json:"field"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

// ReferenceItem is one entry of an ordered reference-data list.
type ReferenceItem struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Response is the standard API response envelope.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSubmissionRequest is the payload for starting a wizard pass.
type NewSubmissionRequest struct {
	Kind string `json:"kind" binding:"required,oneof=individual business"`
}

// NewSubmissionResponse carries the new submission identity and the
// session token scoped to it.
type NewSubmissionResponse struct {
	SubmissionID uuid.UUID `json:"submissionId"`
	Token        string    `json:"token"`
	CurrentStep  int       `json:"currentStep"`
	MaxSteps     int       `json:"maxSteps"`
}

// StepViewResponse is the accumulated state the form layer renders from.
type StepViewResponse struct {
	SubmissionID  uuid.UUID                  `json:"submissionId"`
	Kind          SubmissionKind             `json:"kind"`
	CurrentStep   int                        `json:"currentStep"`
	MaxSteps      int                        `json:"maxSteps"`
	Status        SubmissionStatus           `json:"status"`
	Fields        map[string]interface{}     `json:"fields"`
	ReferenceData map[string][]ReferenceItem `json:"referenceData,omitempty"`
}

// StepSaveResponse is the outcome of a successful step-save.
type StepSaveResponse struct {
	Success    bool        `json:"success"`
	NextStep   *int        `json:"nextStep"`
	IsComplete bool        `json:"isComplete"`
	Record     *Submission `json:"record"`
}

// MarkSubmittedResponse is the outcome of the final submit call.
type MarkSubmittedResponse struct {
	Success            bool     `json:"success"`
	Message            string   `json:"message"`
	ForwardedProviders []string `json:"forwardedProviders,omitempty"`
}

// SendEmailPayload is the input to the notification service.
type SendEmailPayload struct {
	FromAddress string
	ToAddress   string
	Subject     string
	Body        string
	HTMLBody    string
	DynamicData map[string]interface{}
}

// SendEmailResponse is the provider acknowledgement for a sent email.
type SendEmailResponse struct {
	Id       string `json:"id"`
	Response string `json:"response"`
}
