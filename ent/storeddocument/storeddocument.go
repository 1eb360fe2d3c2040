// Code generated by ent, DO NOT EDIT.

package storeddocument

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the storeddocument type in the database.
	Label = "stored_document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldStoragePath holds the string denoting the storage_path field in the database.
	FieldStoragePath = "storage_path"
	// FieldOriginalName holds the string denoting the original_name field in the database.
	FieldOriginalName = "original_name"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldSizeBytes holds the string denoting the size_bytes field in the database.
	FieldSizeBytes = "size_bytes"
	// FieldSide holds the string denoting the side field in the database.
	FieldSide = "side"
	// FieldSourceFieldReference holds the string denoting the source_field_reference field in the database.
	FieldSourceFieldReference = "source_field_reference"
	// FieldIssuingCountry holds the string denoting the issuing_country field in the database.
	FieldIssuingCountry = "issuing_country"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRejectionReason holds the string denoting the rejection_reason field in the database.
	FieldRejectionReason = "rejection_reason"
	// EdgeSubmission holds the string denoting the submission edge name in mutations.
	EdgeSubmission = "submission"
	// Table holds the table name of the storeddocument in the database.
	Table = "stored_documents"
	// SubmissionTable is the table that holds the submission relation/edge.
	SubmissionTable = "stored_documents"
	// SubmissionInverseTable is the table name for the VerificationSubmission entity.
	// It exists in this package in order to avoid circular dependency with the "verificationsubmission" package.
	SubmissionInverseTable = "verification_submissions"
	// SubmissionColumn is the table column denoting the submission relation/edge.
	SubmissionColumn = "verification_submission_stored_documents"
)

// Columns holds all SQL columns for storeddocument fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCategory,
	FieldStoragePath,
	FieldOriginalName,
	FieldMimeType,
	FieldSizeBytes,
	FieldSide,
	FieldSourceFieldReference,
	FieldIssuingCountry,
	FieldStatus,
	FieldRejectionReason,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "stored_documents"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"verification_submission_stored_documents",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
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
	// DefaultMimeType holds the default value on creation for the "mime_type" field.
	DefaultMimeType string
	// DefaultSizeBytes holds the default value on creation for the "size_bytes" field.
	DefaultSizeBytes int64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Side defines the type for the "side" enum field.
type Side string

// Side values.
const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

func (s Side) String() string {
	return string(s)
}

// SideValidator is a validator for the "side" field enum values. It is called by the builders before save.
func SideValidator(s Side) error {
	switch s {
	case SideFront, SideBack:
		return nil
	default:
		return fmt.Errorf("storeddocument: invalid enum value for side field: %q", s)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusUploaded is the default value of the Status enum.
const DefaultStatus = StatusUploaded

// Status values.
const (
	StatusUploaded Status = "uploaded"
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusUploaded, StatusPending, StatusVerified, StatusRejected:
		return nil
	default:
		return fmt.Errorf("storeddocument: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the StoredDocument queries.
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

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByStoragePath orders the results by the storage_path field.
func ByStoragePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoragePath, opts...).ToFunc()
}

// ByOriginalName orders the results by the original_name field.
func ByOriginalName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalName, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// BySizeBytes orders the results by the size_bytes field.
func BySizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeBytes, opts...).ToFunc()
}

// BySide orders the results by the side field.
func BySide(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSide, opts...).ToFunc()
}

// BySourceFieldReference orders the results by the source_field_reference field.
func BySourceFieldReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFieldReference, opts...).ToFunc()
}

// ByIssuingCountry orders the results by the issuing_country field.
func ByIssuingCountry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssuingCountry, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRejectionReason orders the results by the rejection_reason field.
func ByRejectionReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectionReason, opts...).ToFunc()
}

// BySubmissionField orders the results by submission field.
func BySubmissionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubmissionStep(), sql.OrderByField(field, opts...))
	}
}
func newSubmissionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubmissionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubmissionTable, SubmissionColumn),
	)
}
