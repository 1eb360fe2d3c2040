// Code generated by ent, DO NOT EDIT.

package verificationsubmission

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the verificationsubmission type in the database.
	Label = "verification_submission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldCurrentStep holds the string denoting the current_step field in the database.
	FieldCurrentStep = "current_step"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFields holds the string denoting the fields field in the database.
	FieldFields = "fields"
	// FieldDocuments holds the string denoting the documents field in the database.
	FieldDocuments = "documents"
	// FieldIdentifyingInformation holds the string denoting the identifying_information field in the database.
	FieldIdentifyingInformation = "identifying_information"
	// FieldForwardedProviders holds the string denoting the forwarded_providers field in the database.
	FieldForwardedProviders = "forwarded_providers"
	// FieldSubmittedAt holds the string denoting the submitted_at field in the database.
	FieldSubmittedAt = "submitted_at"
	// EdgeStoredDocuments holds the string denoting the stored_documents edge name in mutations.
	EdgeStoredDocuments = "stored_documents"
	// Table holds the table name of the verificationsubmission in the database.
	Table = "verification_submissions"
	// StoredDocumentsTable is the table that holds the stored_documents relation/edge.
	StoredDocumentsTable = "stored_documents"
	// StoredDocumentsInverseTable is the table name for the StoredDocument entity.
	// It exists in this package in order to avoid circular dependency with the "storeddocument" package.
	StoredDocumentsInverseTable = "stored_documents"
	// StoredDocumentsColumn is the table column denoting the stored_documents relation/edge.
	StoredDocumentsColumn = "verification_submission_stored_documents"
)

// Columns holds all SQL columns for verificationsubmission fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldKind,
	FieldCurrentStep,
	FieldStatus,
	FieldFields,
	FieldDocuments,
	FieldIdentifyingInformation,
	FieldForwardedProviders,
	FieldSubmittedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultCurrentStep holds the default value on creation for the "current_step" field.
	DefaultCurrentStep int
	// DefaultFields holds the default value on creation for the "fields" field.
	DefaultFields map[string]interface{}
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindIndividual Kind = "individual"
	KindBusiness   Kind = "business"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindIndividual, KindBusiness:
		return nil
	default:
		return fmt.Errorf("verificationsubmission: invalid enum value for kind field: %q", k)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusInProgress is the default value of the Status enum.
const DefaultStatus = StatusInProgress

// Status values.
const (
	StatusInProgress Status = "in_progress"
	StatusSubmitted  Status = "submitted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInProgress, StatusSubmitted:
		return nil
	default:
		return fmt.Errorf("verificationsubmission: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the VerificationSubmission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByCurrentStep orders the results by the current_step field.
func ByCurrentStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStep, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySubmittedAt orders the results by the submitted_at field.
func BySubmittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedAt, opts...).ToFunc()
}

// ByStoredDocumentsCount orders the results by stored_documents count.
func ByStoredDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStoredDocumentsStep(), opts...)
	}
}

// ByStoredDocuments orders the results by stored_documents terms.
func ByStoredDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStoredDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStoredDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StoredDocumentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StoredDocumentsTable, StoredDocumentsColumn),
	)
}
