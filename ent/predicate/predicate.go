// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// StoredDocument is the predicate function for storeddocument builders.
type StoredDocument func(*sql.Selector)

// VerificationSubmission is the predicate function for verificationsubmission builders.
type VerificationSubmission func(*sql.Selector)
