// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/ent/storeddocument"
	"github.com/towoju5/bridge-verification-system-sub001/ent/verificationsubmission"
)

// StoredDocument is the model entity for the StoredDocument schema.
type StoredDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// StoragePath holds the value of the "storage_path" field.
	StoragePath string `json:"storage_path,omitempty"`
	// OriginalName holds the value of the "original_name" field.
	OriginalName string `json:"original_name,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType string `json:"mime_type,omitempty"`
	// SizeBytes holds the value of the "size_bytes" field.
	SizeBytes int64 `json:"size_bytes,omitempty"`
	// Side holds the value of the "side" field.
	Side storeddocument.Side `json:"side,omitempty"`
	// SourceFieldReference holds the value of the "source_field_reference" field.
	SourceFieldReference string `json:"source_field_reference,omitempty"`
	// IssuingCountry holds the value of the "issuing_country" field.
	IssuingCountry string `json:"issuing_country,omitempty"`
	// Status holds the value of the "status" field.
	Status storeddocument.Status `json:"status,omitempty"`
	// RejectionReason holds the value of the "rejection_reason" field.
	RejectionReason *string `json:"rejection_reason,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StoredDocumentQuery when eager-loading is set.
	Edges                                    StoredDocumentEdges `json:"edges"`
	verification_submission_stored_documents *uuid.UUID
	selectValues                             sql.SelectValues
}

// StoredDocumentEdges holds the relations/edges for other nodes in the graph.
type StoredDocumentEdges struct {
	// Submission holds the value of the submission edge.
	Submission *VerificationSubmission `json:"submission,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubmissionOrErr returns the Submission value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StoredDocumentEdges) SubmissionOrErr() (*VerificationSubmission, error) {
	if e.Submission != nil {
		return e.Submission, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: verificationsubmission.Label}
	}
	return nil, &NotLoadedError{edge: "submission"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StoredDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case storeddocument.FieldSizeBytes:
			values[i] = new(sql.NullInt64)
		case storeddocument.FieldCategory, storeddocument.FieldStoragePath, storeddocument.FieldOriginalName, storeddocument.FieldMimeType, storeddocument.FieldSide, storeddocument.FieldSourceFieldReference, storeddocument.FieldIssuingCountry, storeddocument.FieldStatus, storeddocument.FieldRejectionReason:
			values[i] = new(sql.NullString)
		case storeddocument.FieldCreatedAt, storeddocument.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case storeddocument.FieldID:
			values[i] = new(uuid.UUID)
		case storeddocument.ForeignKeys[0]: // verification_submission_stored_documents
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StoredDocument fields.
func (sd *StoredDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case storeddocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				sd.ID = *value
			}
		case storeddocument.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				sd.CreatedAt = value.Time
			}
		case storeddocument.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				sd.UpdatedAt = value.Time
			}
		case storeddocument.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				sd.Category = value.String
			}
		case storeddocument.FieldStoragePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_path", values[i])
			} else if value.Valid {
				sd.StoragePath = value.String
			}
		case storeddocument.FieldOriginalName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_name", values[i])
			} else if value.Valid {
				sd.OriginalName = value.String
			}
		case storeddocument.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				sd.MimeType = value.String
			}
		case storeddocument.FieldSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size_bytes", values[i])
			} else if value.Valid {
				sd.SizeBytes = value.Int64
			}
		case storeddocument.FieldSide:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field side", values[i])
			} else if value.Valid {
				sd.Side = storeddocument.Side(value.String)
			}
		case storeddocument.FieldSourceFieldReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_field_reference", values[i])
			} else if value.Valid {
				sd.SourceFieldReference = value.String
			}
		case storeddocument.FieldIssuingCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issuing_country", values[i])
			} else if value.Valid {
				sd.IssuingCountry = value.String
			}
		case storeddocument.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				sd.Status = storeddocument.Status(value.String)
			}
		case storeddocument.FieldRejectionReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rejection_reason", values[i])
			} else if value.Valid {
				sd.RejectionReason = new(string)
				*sd.RejectionReason = value.String
			}
		case storeddocument.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field verification_submission_stored_documents", values[i])
			} else if value.Valid {
				sd.verification_submission_stored_documents = new(uuid.UUID)
				*sd.verification_submission_stored_documents = *value.S.(*uuid.UUID)
			}
		default:
			sd.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StoredDocument.
// This includes values selected through modifiers, order, etc.
func (sd *StoredDocument) Value(name string) (ent.Value, error) {
	return sd.selectValues.Get(name)
}

// QuerySubmission queries the "submission" edge of the StoredDocument entity.
func (sd *StoredDocument) QuerySubmission() *VerificationSubmissionQuery {
	return NewStoredDocumentClient(sd.config).QuerySubmission(sd)
}

// Update returns a builder for updating this StoredDocument.
// Note that you need to call StoredDocument.Unwrap() before calling this method if this StoredDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (sd *StoredDocument) Update() *StoredDocumentUpdateOne {
	return NewStoredDocumentClient(sd.config).UpdateOne(sd)
}

// Unwrap unwraps the StoredDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sd *StoredDocument) Unwrap() *StoredDocument {
	_tx, ok := sd.config.driver.(*txDriver)
	if !ok {
		panic("ent: StoredDocument is not a transactional entity")
	}
	sd.config.driver = _tx.drv
	return sd
}

// String implements the fmt.Stringer.
func (sd *StoredDocument) String() string {
	var builder strings.Builder
	builder.WriteString("StoredDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sd.ID))
	builder.WriteString("created_at=")
	builder.WriteString(sd.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(sd.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(sd.Category)
	builder.WriteString(", ")
	builder.WriteString("storage_path=")
	builder.WriteString(sd.StoragePath)
	builder.WriteString(", ")
	builder.WriteString("original_name=")
	builder.WriteString(sd.OriginalName)
	builder.WriteString(", ")
	builder.WriteString("mime_type=")
	builder.WriteString(sd.MimeType)
	builder.WriteString(", ")
	builder.WriteString("size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", sd.SizeBytes))
	builder.WriteString(", ")
	builder.WriteString("side=")
	builder.WriteString(fmt.Sprintf("%v", sd.Side))
	builder.WriteString(", ")
	builder.WriteString("source_field_reference=")
	builder.WriteString(sd.SourceFieldReference)
	builder.WriteString(", ")
	builder.WriteString("issuing_country=")
	builder.WriteString(sd.IssuingCountry)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", sd.Status))
	builder.WriteString(", ")
	if v := sd.RejectionReason; v != nil {
		builder.WriteString("rejection_reason=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// StoredDocuments is a parsable slice of StoredDocument.
type StoredDocuments []*StoredDocument
