// Code generated by ent, DO NOT EDIT.

package verificationsubmission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldEQ(FieldUpdatedAt, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v int) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldEQ(FieldCurrentStep, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldEQ(FieldSubmittedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldLTE(FieldUpdatedAt, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNotIn(FieldKind, vs...))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v int) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v int) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...int) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...int) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v int) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v int) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v int) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v int) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldLTE(FieldCurrentStep, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNotIn(FieldStatus, vs...))
}

// DocumentsIsNil applies the IsNil predicate on the "documents" field.
func DocumentsIsNil() predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldIsNull(FieldDocuments))
}

// DocumentsNotNil applies the NotNil predicate on the "documents" field.
func DocumentsNotNil() predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNotNull(FieldDocuments))
}

// IdentifyingInformationIsNil applies the IsNil predicate on the "identifying_information" field.
func IdentifyingInformationIsNil() predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldIsNull(FieldIdentifyingInformation))
}

// IdentifyingInformationNotNil applies the NotNil predicate on the "identifying_information" field.
func IdentifyingInformationNotNil() predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNotNull(FieldIdentifyingInformation))
}

// ForwardedProvidersIsNil applies the IsNil predicate on the "forwarded_providers" field.
func ForwardedProvidersIsNil() predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldIsNull(FieldForwardedProviders))
}

// ForwardedProvidersNotNil applies the NotNil predicate on the "forwarded_providers" field.
func ForwardedProvidersNotNil() predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNotNull(FieldForwardedProviders))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldLTE(FieldSubmittedAt, v))
}

// SubmittedAtIsNil applies the IsNil predicate on the "submitted_at" field.
func SubmittedAtIsNil() predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldIsNull(FieldSubmittedAt))
}

// SubmittedAtNotNil applies the NotNil predicate on the "submitted_at" field.
func SubmittedAtNotNil() predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.FieldNotNull(FieldSubmittedAt))
}

// HasStoredDocuments applies the HasEdge predicate on the "stored_documents" edge.
func HasStoredDocuments() predicate.VerificationSubmission {
	return predicate.VerificationSubmission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StoredDocumentsTable, StoredDocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStoredDocumentsWith applies the HasEdge predicate on the "stored_documents" edge with a given conditions (other predicates).
func HasStoredDocumentsWith(preds ...predicate.StoredDocument) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(func(s *sql.Selector) {
		step := newStoredDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationSubmission) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationSubmission) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationSubmission) predicate.VerificationSubmission {
	return predicate.VerificationSubmission(sql.NotPredicates(p))
}
