// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/ent/schema"
	"github.com/towoju5/bridge-verification-system-sub001/ent/storeddocument"
	"github.com/towoju5/bridge-verification-system-sub001/ent/verificationsubmission"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	storeddocumentMixin := schema.StoredDocument{}.Mixin()
	storeddocumentMixinFields0 := storeddocumentMixin[0].Fields()
	_ = storeddocumentMixinFields0
	storeddocumentFields := schema.StoredDocument{}.Fields()
	_ = storeddocumentFields
	// storeddocumentDescCreatedAt is the schema descriptor for created_at field.
	storeddocumentDescCreatedAt := storeddocumentMixinFields0[0].Descriptor()
	// storeddocument.DefaultCreatedAt holds the default value on creation for the created_at field.
	storeddocument.DefaultCreatedAt = storeddocumentDescCreatedAt.Default.(func() time.Time)
	// storeddocumentDescUpdatedAt is the schema descriptor for updated_at field.
	storeddocumentDescUpdatedAt := storeddocumentMixinFields0[1].Descriptor()
	// storeddocument.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	storeddocument.DefaultUpdatedAt = storeddocumentDescUpdatedAt.Default.(func() time.Time)
	// storeddocument.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	storeddocument.UpdateDefaultUpdatedAt = storeddocumentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// storeddocumentDescMimeType is the schema descriptor for mime_type field.
	storeddocumentDescMimeType := storeddocumentFields[4].Descriptor()
	// storeddocument.DefaultMimeType holds the default value on creation for the mime_type field.
	storeddocument.DefaultMimeType = storeddocumentDescMimeType.Default.(string)
	// storeddocumentDescSizeBytes is the schema descriptor for size_bytes field.
	storeddocumentDescSizeBytes := storeddocumentFields[5].Descriptor()
	// storeddocument.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	storeddocument.DefaultSizeBytes = storeddocumentDescSizeBytes.Default.(int64)
	// storeddocumentDescID is the schema descriptor for id field.
	storeddocumentDescID := storeddocumentFields[0].Descriptor()
	// storeddocument.DefaultID holds the default value on creation for the id field.
	storeddocument.DefaultID = storeddocumentDescID.Default.(func() uuid.UUID)
	verificationsubmissionMixin := schema.VerificationSubmission{}.Mixin()
	verificationsubmissionMixinFields0 := verificationsubmissionMixin[0].Fields()
	_ = verificationsubmissionMixinFields0
	verificationsubmissionFields := schema.VerificationSubmission{}.Fields()
	_ = verificationsubmissionFields
	// verificationsubmissionDescCreatedAt is the schema descriptor for created_at field.
	verificationsubmissionDescCreatedAt := verificationsubmissionMixinFields0[0].Descriptor()
	// verificationsubmission.DefaultCreatedAt holds the default value on creation for the created_at field.
	verificationsubmission.DefaultCreatedAt = verificationsubmissionDescCreatedAt.Default.(func() time.Time)
	// verificationsubmissionDescUpdatedAt is the schema descriptor for updated_at field.
	verificationsubmissionDescUpdatedAt := verificationsubmissionMixinFields0[1].Descriptor()
	// verificationsubmission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	verificationsubmission.DefaultUpdatedAt = verificationsubmissionDescUpdatedAt.Default.(func() time.Time)
	// verificationsubmission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	verificationsubmission.UpdateDefaultUpdatedAt = verificationsubmissionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// verificationsubmissionDescCurrentStep is the schema descriptor for current_step field.
	verificationsubmissionDescCurrentStep := verificationsubmissionFields[2].Descriptor()
	// verificationsubmission.DefaultCurrentStep holds the default value on creation for the current_step field.
	verificationsubmission.DefaultCurrentStep = verificationsubmissionDescCurrentStep.Default.(int)
	// verificationsubmissionDescFields is the schema descriptor for fields field.
	verificationsubmissionDescFields := verificationsubmissionFields[4].Descriptor()
	// verificationsubmission.DefaultFields holds the default value on creation for the fields field.
	verificationsubmission.DefaultFields = verificationsubmissionDescFields.Default.(map[string]interface{})
	// verificationsubmissionDescID is the schema descriptor for id field.
	verificationsubmissionDescID := verificationsubmissionFields[0].Descriptor()
	// verificationsubmission.DefaultID holds the default value on creation for the id field.
	verificationsubmission.DefaultID = verificationsubmissionDescID.Default.(func() uuid.UUID)
}
