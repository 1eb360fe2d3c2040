// Code generated by ent, DO NOT EDIT.

package storeddocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldCategory, v))
}

// StoragePath applies equality check predicate on the "storage_path" field. It's identical to StoragePathEQ.
func StoragePath(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldStoragePath, v))
}

// OriginalName applies equality check predicate on the "original_name" field. It's identical to OriginalNameEQ.
func OriginalName(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldOriginalName, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldMimeType, v))
}

// SizeBytes applies equality check predicate on the "size_bytes" field. It's identical to SizeBytesEQ.
func SizeBytes(v int64) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldSizeBytes, v))
}

// SourceFieldReference applies equality check predicate on the "source_field_reference" field. It's identical to SourceFieldReferenceEQ.
func SourceFieldReference(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldSourceFieldReference, v))
}

// IssuingCountry applies equality check predicate on the "issuing_country" field. It's identical to IssuingCountryEQ.
func IssuingCountry(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldIssuingCountry, v))
}

// RejectionReason applies equality check predicate on the "rejection_reason" field. It's identical to RejectionReasonEQ.
func RejectionReason(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldRejectionReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLTE(FieldUpdatedAt, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldContainsFold(FieldCategory, v))
}

// StoragePathEQ applies the EQ predicate on the "storage_path" field.
func StoragePathEQ(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldStoragePath, v))
}

// StoragePathNEQ applies the NEQ predicate on the "storage_path" field.
func StoragePathNEQ(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNEQ(FieldStoragePath, v))
}

// StoragePathIn applies the In predicate on the "storage_path" field.
func StoragePathIn(vs ...string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIn(FieldStoragePath, vs...))
}

// StoragePathNotIn applies the NotIn predicate on the "storage_path" field.
func StoragePathNotIn(vs ...string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotIn(FieldStoragePath, vs...))
}

// StoragePathGT applies the GT predicate on the "storage_path" field.
func StoragePathGT(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGT(FieldStoragePath, v))
}

// StoragePathGTE applies the GTE predicate on the "storage_path" field.
func StoragePathGTE(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGTE(FieldStoragePath, v))
}

// StoragePathLT applies the LT predicate on the "storage_path" field.
func StoragePathLT(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLT(FieldStoragePath, v))
}

// StoragePathLTE applies the LTE predicate on the "storage_path" field.
func StoragePathLTE(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLTE(FieldStoragePath, v))
}

// StoragePathContains applies the Contains predicate on the "storage_path" field.
func StoragePathContains(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldContains(FieldStoragePath, v))
}

// StoragePathHasPrefix applies the HasPrefix predicate on the "storage_path" field.
func StoragePathHasPrefix(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldHasPrefix(FieldStoragePath, v))
}

// StoragePathHasSuffix applies the HasSuffix predicate on the "storage_path" field.
func StoragePathHasSuffix(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldHasSuffix(FieldStoragePath, v))
}

// StoragePathEqualFold applies the EqualFold predicate on the "storage_path" field.
func StoragePathEqualFold(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEqualFold(FieldStoragePath, v))
}

// StoragePathContainsFold applies the ContainsFold predicate on the "storage_path" field.
func StoragePathContainsFold(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldContainsFold(FieldStoragePath, v))
}

// OriginalNameEQ applies the EQ predicate on the "original_name" field.
func OriginalNameEQ(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldOriginalName, v))
}

// OriginalNameNEQ applies the NEQ predicate on the "original_name" field.
func OriginalNameNEQ(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNEQ(FieldOriginalName, v))
}

// OriginalNameIn applies the In predicate on the "original_name" field.
func OriginalNameIn(vs ...string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIn(FieldOriginalName, vs...))
}

// OriginalNameNotIn applies the NotIn predicate on the "original_name" field.
func OriginalNameNotIn(vs ...string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotIn(FieldOriginalName, vs...))
}

// OriginalNameGT applies the GT predicate on the "original_name" field.
func OriginalNameGT(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGT(FieldOriginalName, v))
}

// OriginalNameGTE applies the GTE predicate on the "original_name" field.
func OriginalNameGTE(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGTE(FieldOriginalName, v))
}

// OriginalNameLT applies the LT predicate on the "original_name" field.
func OriginalNameLT(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLT(FieldOriginalName, v))
}

// OriginalNameLTE applies the LTE predicate on the "original_name" field.
func OriginalNameLTE(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLTE(FieldOriginalName, v))
}

// OriginalNameContains applies the Contains predicate on the "original_name" field.
func OriginalNameContains(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldContains(FieldOriginalName, v))
}

// OriginalNameHasPrefix applies the HasPrefix predicate on the "original_name" field.
func OriginalNameHasPrefix(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldHasPrefix(FieldOriginalName, v))
}

// OriginalNameHasSuffix applies the HasSuffix predicate on the "original_name" field.
func OriginalNameHasSuffix(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldHasSuffix(FieldOriginalName, v))
}

// OriginalNameEqualFold applies the EqualFold predicate on the "original_name" field.
func OriginalNameEqualFold(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEqualFold(FieldOriginalName, v))
}

// OriginalNameContainsFold applies the ContainsFold predicate on the "original_name" field.
func OriginalNameContainsFold(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldContainsFold(FieldOriginalName, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldContainsFold(FieldMimeType, v))
}

// SizeBytesEQ applies the EQ predicate on the "size_bytes" field.
func SizeBytesEQ(v int64) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldSizeBytes, v))
}

// SizeBytesNEQ applies the NEQ predicate on the "size_bytes" field.
func SizeBytesNEQ(v int64) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNEQ(FieldSizeBytes, v))
}

// SizeBytesIn applies the In predicate on the "size_bytes" field.
func SizeBytesIn(vs ...int64) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIn(FieldSizeBytes, vs...))
}

// SizeBytesNotIn applies the NotIn predicate on the "size_bytes" field.
func SizeBytesNotIn(vs ...int64) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotIn(FieldSizeBytes, vs...))
}

// SizeBytesGT applies the GT predicate on the "size_bytes" field.
func SizeBytesGT(v int64) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGT(FieldSizeBytes, v))
}

// SizeBytesGTE applies the GTE predicate on the "size_bytes" field.
func SizeBytesGTE(v int64) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGTE(FieldSizeBytes, v))
}

// SizeBytesLT applies the LT predicate on the "size_bytes" field.
func SizeBytesLT(v int64) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLT(FieldSizeBytes, v))
}

// SizeBytesLTE applies the LTE predicate on the "size_bytes" field.
func SizeBytesLTE(v int64) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLTE(FieldSizeBytes, v))
}

// SideEQ applies the EQ predicate on the "side" field.
func SideEQ(v Side) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldSide, v))
}

// SideNEQ applies the NEQ predicate on the "side" field.
func SideNEQ(v Side) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNEQ(FieldSide, v))
}

// SideIn applies the In predicate on the "side" field.
func SideIn(vs ...Side) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIn(FieldSide, vs...))
}

// SideNotIn applies the NotIn predicate on the "side" field.
func SideNotIn(vs ...Side) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotIn(FieldSide, vs...))
}

// SideIsNil applies the IsNil predicate on the "side" field.
func SideIsNil() predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIsNull(FieldSide))
}

// SideNotNil applies the NotNil predicate on the "side" field.
func SideNotNil() predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotNull(FieldSide))
}

// SourceFieldReferenceEQ applies the EQ predicate on the "source_field_reference" field.
func SourceFieldReferenceEQ(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldSourceFieldReference, v))
}

// SourceFieldReferenceNEQ applies the NEQ predicate on the "source_field_reference" field.
func SourceFieldReferenceNEQ(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNEQ(FieldSourceFieldReference, v))
}

// SourceFieldReferenceIn applies the In predicate on the "source_field_reference" field.
func SourceFieldReferenceIn(vs ...string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIn(FieldSourceFieldReference, vs...))
}

// SourceFieldReferenceNotIn applies the NotIn predicate on the "source_field_reference" field.
func SourceFieldReferenceNotIn(vs ...string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotIn(FieldSourceFieldReference, vs...))
}

// SourceFieldReferenceGT applies the GT predicate on the "source_field_reference" field.
func SourceFieldReferenceGT(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGT(FieldSourceFieldReference, v))
}

// SourceFieldReferenceGTE applies the GTE predicate on the "source_field_reference" field.
func SourceFieldReferenceGTE(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGTE(FieldSourceFieldReference, v))
}

// SourceFieldReferenceLT applies the LT predicate on the "source_field_reference" field.
func SourceFieldReferenceLT(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLT(FieldSourceFieldReference, v))
}

// SourceFieldReferenceLTE applies the LTE predicate on the "source_field_reference" field.
func SourceFieldReferenceLTE(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLTE(FieldSourceFieldReference, v))
}

// SourceFieldReferenceContains applies the Contains predicate on the "source_field_reference" field.
func SourceFieldReferenceContains(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldContains(FieldSourceFieldReference, v))
}

// SourceFieldReferenceHasPrefix applies the HasPrefix predicate on the "source_field_reference" field.
func SourceFieldReferenceHasPrefix(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldHasPrefix(FieldSourceFieldReference, v))
}

// SourceFieldReferenceHasSuffix applies the HasSuffix predicate on the "source_field_reference" field.
func SourceFieldReferenceHasSuffix(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldHasSuffix(FieldSourceFieldReference, v))
}

// SourceFieldReferenceIsNil applies the IsNil predicate on the "source_field_reference" field.
func SourceFieldReferenceIsNil() predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIsNull(FieldSourceFieldReference))
}

// SourceFieldReferenceNotNil applies the NotNil predicate on the "source_field_reference" field.
func SourceFieldReferenceNotNil() predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotNull(FieldSourceFieldReference))
}

// SourceFieldReferenceEqualFold applies the EqualFold predicate on the "source_field_reference" field.
func SourceFieldReferenceEqualFold(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEqualFold(FieldSourceFieldReference, v))
}

// SourceFieldReferenceContainsFold applies the ContainsFold predicate on the "source_field_reference" field.
func SourceFieldReferenceContainsFold(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldContainsFold(FieldSourceFieldReference, v))
}

// IssuingCountryEQ applies the EQ predicate on the "issuing_country" field.
func IssuingCountryEQ(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldIssuingCountry, v))
}

// IssuingCountryNEQ applies the NEQ predicate on the "issuing_country" field.
func IssuingCountryNEQ(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNEQ(FieldIssuingCountry, v))
}

// IssuingCountryIn applies the In predicate on the "issuing_country" field.
func IssuingCountryIn(vs ...string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIn(FieldIssuingCountry, vs...))
}

// IssuingCountryNotIn applies the NotIn predicate on the "issuing_country" field.
func IssuingCountryNotIn(vs ...string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotIn(FieldIssuingCountry, vs...))
}

// IssuingCountryGT applies the GT predicate on the "issuing_country" field.
func IssuingCountryGT(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGT(FieldIssuingCountry, v))
}

// IssuingCountryGTE applies the GTE predicate on the "issuing_country" field.
func IssuingCountryGTE(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGTE(FieldIssuingCountry, v))
}

// IssuingCountryLT applies the LT predicate on the "issuing_country" field.
func IssuingCountryLT(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLT(FieldIssuingCountry, v))
}

// IssuingCountryLTE applies the LTE predicate on the "issuing_country" field.
func IssuingCountryLTE(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLTE(FieldIssuingCountry, v))
}

// IssuingCountryContains applies the Contains predicate on the "issuing_country" field.
func IssuingCountryContains(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldContains(FieldIssuingCountry, v))
}

// IssuingCountryHasPrefix applies the HasPrefix predicate on the "issuing_country" field.
func IssuingCountryHasPrefix(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldHasPrefix(FieldIssuingCountry, v))
}

// IssuingCountryHasSuffix applies the HasSuffix predicate on the "issuing_country" field.
func IssuingCountryHasSuffix(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldHasSuffix(FieldIssuingCountry, v))
}

// IssuingCountryIsNil applies the IsNil predicate on the "issuing_country" field.
func IssuingCountryIsNil() predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIsNull(FieldIssuingCountry))
}

// IssuingCountryNotNil applies the NotNil predicate on the "issuing_country" field.
func IssuingCountryNotNil() predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotNull(FieldIssuingCountry))
}

// IssuingCountryEqualFold applies the EqualFold predicate on the "issuing_country" field.
func IssuingCountryEqualFold(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEqualFold(FieldIssuingCountry, v))
}

// IssuingCountryContainsFold applies the ContainsFold predicate on the "issuing_country" field.
func IssuingCountryContainsFold(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldContainsFold(FieldIssuingCountry, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotIn(FieldStatus, vs...))
}

// RejectionReasonEQ applies the EQ predicate on the "rejection_reason" field.
func RejectionReasonEQ(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEQ(FieldRejectionReason, v))
}

// RejectionReasonNEQ applies the NEQ predicate on the "rejection_reason" field.
func RejectionReasonNEQ(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNEQ(FieldRejectionReason, v))
}

// RejectionReasonIn applies the In predicate on the "rejection_reason" field.
func RejectionReasonIn(vs ...string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIn(FieldRejectionReason, vs...))
}

// RejectionReasonNotIn applies the NotIn predicate on the "rejection_reason" field.
func RejectionReasonNotIn(vs ...string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotIn(FieldRejectionReason, vs...))
}

// RejectionReasonGT applies the GT predicate on the "rejection_reason" field.
func RejectionReasonGT(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGT(FieldRejectionReason, v))
}

// RejectionReasonGTE applies the GTE predicate on the "rejection_reason" field.
func RejectionReasonGTE(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldGTE(FieldRejectionReason, v))
}

// RejectionReasonLT applies the LT predicate on the "rejection_reason" field.
func RejectionReasonLT(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLT(FieldRejectionReason, v))
}

// RejectionReasonLTE applies the LTE predicate on the "rejection_reason" field.
func RejectionReasonLTE(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldLTE(FieldRejectionReason, v))
}

// RejectionReasonContains applies the Contains predicate on the "rejection_reason" field.
func RejectionReasonContains(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldContains(FieldRejectionReason, v))
}

// RejectionReasonHasPrefix applies the HasPrefix predicate on the "rejection_reason" field.
func RejectionReasonHasPrefix(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldHasPrefix(FieldRejectionReason, v))
}

// RejectionReasonHasSuffix applies the HasSuffix predicate on the "rejection_reason" field.
func RejectionReasonHasSuffix(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldHasSuffix(FieldRejectionReason, v))
}

// RejectionReasonIsNil applies the IsNil predicate on the "rejection_reason" field.
func RejectionReasonIsNil() predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldIsNull(FieldRejectionReason))
}

// RejectionReasonNotNil applies the NotNil predicate on the "rejection_reason" field.
func RejectionReasonNotNil() predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldNotNull(FieldRejectionReason))
}

// RejectionReasonEqualFold applies the EqualFold predicate on the "rejection_reason" field.
func RejectionReasonEqualFold(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldEqualFold(FieldRejectionReason, v))
}

// RejectionReasonContainsFold applies the ContainsFold predicate on the "rejection_reason" field.
func RejectionReasonContainsFold(v string) predicate.StoredDocument {
	return predicate.StoredDocument(sql.FieldContainsFold(FieldRejectionReason, v))
}

// HasSubmission applies the HasEdge predicate on the "submission" edge.
func HasSubmission() predicate.StoredDocument {
	return predicate.StoredDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubmissionTable, SubmissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionWith applies the HasEdge predicate on the "submission" edge with a given conditions (other predicates).
func HasSubmissionWith(preds ...predicate.VerificationSubmission) predicate.StoredDocument {
	return predicate.StoredDocument(func(s *sql.Selector) {
		step := newSubmissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StoredDocument) predicate.StoredDocument {
	return predicate.StoredDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StoredDocument) predicate.StoredDocument {
	return predicate.StoredDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StoredDocument) predicate.StoredDocument {
	return predicate.StoredDocument(sql.NotPredicates(p))
}
