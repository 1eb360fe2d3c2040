// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/ent/verificationsubmission"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

// VerificationSubmission is the model entity for the VerificationSubmission schema.
type VerificationSubmission struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind verificationsubmission.Kind `json:"kind,omitempty"`
	// CurrentStep holds the value of the "current_step" field.
	CurrentStep int `json:"current_step,omitempty"`
	// Status holds the value of the "status" field.
	Status verificationsubmission.Status `json:"status,omitempty"`
	// Fields holds the value of the "fields" field.
	Fields map[string]interface{} `json:"fields,omitempty"`
	// Documents holds the value of the "documents" field.
	Documents []types.DocumentRef `json:"documents,omitempty"`
	// IdentifyingInformation holds the value of the "identifying_information" field.
	IdentifyingInformation []types.IdentifyingInformation `json:"identifying_information,omitempty"`
	// ForwardedProviders holds the value of the "forwarded_providers" field.
	ForwardedProviders []string `json:"forwarded_providers,omitempty"`
	// SubmittedAt holds the value of the "submitted_at" field.
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerificationSubmissionQuery when eager-loading is set.
	Edges        VerificationSubmissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerificationSubmissionEdges holds the relations/edges for other nodes in the graph.
type VerificationSubmissionEdges struct {
	// StoredDocuments holds the value of the stored_documents edge.
	StoredDocuments []*StoredDocument `json:"stored_documents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StoredDocumentsOrErr returns the StoredDocuments value or an error if the edge
// was not loaded in eager-loading.
func (e VerificationSubmissionEdges) StoredDocumentsOrErr() ([]*StoredDocument, error) {
	if e.loadedTypes[0] {
		return e.StoredDocuments, nil
	}
	return nil, &NotLoadedError{edge: "stored_documents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationSubmission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationsubmission.FieldFields, verificationsubmission.FieldDocuments, verificationsubmission.FieldIdentifyingInformation, verificationsubmission.FieldForwardedProviders:
			values[i] = new([]byte)
		case verificationsubmission.FieldCurrentStep:
			values[i] = new(sql.NullInt64)
		case verificationsubmission.FieldKind, verificationsubmission.FieldStatus:
			values[i] = new(sql.NullString)
		case verificationsubmission.FieldCreatedAt, verificationsubmission.FieldUpdatedAt, verificationsubmission.FieldSubmittedAt:
			values[i] = new(sql.NullTime)
		case verificationsubmission.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationSubmission fields.
func (vs *VerificationSubmission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationsubmission.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				vs.ID = *value
			}
		case verificationsubmission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				vs.CreatedAt = value.Time
			}
		case verificationsubmission.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				vs.UpdatedAt = value.Time
			}
		case verificationsubmission.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				vs.Kind = verificationsubmission.Kind(value.String)
			}
		case verificationsubmission.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				vs.CurrentStep = int(value.Int64)
			}
		case verificationsubmission.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				vs.Status = verificationsubmission.Status(value.String)
			}
		case verificationsubmission.FieldFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &vs.Fields); err != nil {
					return fmt.Errorf("unmarshal field fields: %w", err)
				}
			}
		case verificationsubmission.FieldDocuments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field documents", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &vs.Documents); err != nil {
					return fmt.Errorf("unmarshal field documents: %w", err)
				}
			}
		case verificationsubmission.FieldIdentifyingInformation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field identifying_information", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &vs.IdentifyingInformation); err != nil {
					return fmt.Errorf("unmarshal field identifying_information: %w", err)
				}
			}
		case verificationsubmission.FieldForwardedProviders:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field forwarded_providers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &vs.ForwardedProviders); err != nil {
					return fmt.Errorf("unmarshal field forwarded_providers: %w", err)
				}
			}
		case verificationsubmission.FieldSubmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_at", values[i])
			} else if value.Valid {
				vs.SubmittedAt = new(time.Time)
				*vs.SubmittedAt = value.Time
			}
		default:
			vs.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationSubmission.
// This includes values selected through modifiers, order, etc.
func (vs *VerificationSubmission) Value(name string) (ent.Value, error) {
	return vs.selectValues.Get(name)
}

// QueryStoredDocuments queries the "stored_documents" edge of the VerificationSubmission entity.
func (vs *VerificationSubmission) QueryStoredDocuments() *StoredDocumentQuery {
	return NewVerificationSubmissionClient(vs.config).QueryStoredDocuments(vs)
}

// Update returns a builder for updating this VerificationSubmission.
// Note that you need to call VerificationSubmission.Unwrap() before calling this method if this VerificationSubmission
// was returned from a transaction, and the transaction was committed or rolled back.
func (vs *VerificationSubmission) Update() *VerificationSubmissionUpdateOne {
	return NewVerificationSubmissionClient(vs.config).UpdateOne(vs)
}

// Unwrap unwraps the VerificationSubmission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (vs *VerificationSubmission) Unwrap() *VerificationSubmission {
	_tx, ok := vs.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationSubmission is not a transactional entity")
	}
	vs.config.driver = _tx.drv
	return vs
}

// String implements the fmt.Stringer.
func (vs *VerificationSubmission) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationSubmission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", vs.ID))
	builder.WriteString("created_at=")
	builder.WriteString(vs.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(vs.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", vs.Kind))
	builder.WriteString(", ")
	builder.WriteString("current_step=")
	builder.WriteString(fmt.Sprintf("%v", vs.CurrentStep))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", vs.Status))
	builder.WriteString(", ")
	builder.WriteString("fields=")
	builder.WriteString(fmt.Sprintf("%v", vs.Fields))
	builder.WriteString(", ")
	builder.WriteString("documents=")
	builder.WriteString(fmt.Sprintf("%v", vs.Documents))
	builder.WriteString(", ")
	builder.WriteString("identifying_information=")
	builder.WriteString(fmt.Sprintf("%v", vs.IdentifyingInformation))
	builder.WriteString(", ")
	builder.WriteString("forwarded_providers=")
	builder.WriteString(fmt.Sprintf("%v", vs.ForwardedProviders))
	builder.WriteString(", ")
	if v := vs.SubmittedAt; v != nil {
		builder.WriteString("submitted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// VerificationSubmissions is a parsable slice of VerificationSubmission.
type VerificationSubmissions []*VerificationSubmission
