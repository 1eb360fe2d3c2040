// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// StoredDocumentsColumns holds the columns for the "stored_documents" table.
	StoredDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "category", Type: field.TypeString},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "original_name", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString, Default: ""},
		{Name: "size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "side", Type: field.TypeEnum, Nullable: true, Enums: []string{"front", "back"}},
		{Name: "source_field_reference", Type: field.TypeString, Nullable: true},
		{Name: "issuing_country", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"uploaded", "pending", "verified", "rejected"}, Default: "uploaded"},
		{Name: "rejection_reason", Type: field.TypeString, Nullable: true},
		{Name: "verification_submission_stored_documents", Type: field.TypeUUID},
	}
	// StoredDocumentsTable holds the schema information for the "stored_documents" table.
	StoredDocumentsTable = &schema.Table{
		Name:       "stored_documents",
		Columns:    StoredDocumentsColumns,
		PrimaryKey: []*schema.Column{StoredDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stored_documents_verification_submissions_stored_documents",
				Columns:    []*schema.Column{StoredDocumentsColumns[13]},
				RefColumns: []*schema.Column{VerificationSubmissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// VerificationSubmissionsColumns holds the columns for the "verification_submissions" table.
	VerificationSubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"individual", "business"}},
		{Name: "current_step", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "submitted"}, Default: "in_progress"},
		{Name: "fields", Type: field.TypeJSON},
		{Name: "documents", Type: field.TypeJSON, Nullable: true},
		{Name: "identifying_information", Type: field.TypeJSON, Nullable: true},
		{Name: "forwarded_providers", Type: field.TypeJSON, Nullable: true},
		{Name: "submitted_at", Type: field.TypeTime, Nullable: true},
	}
	// VerificationSubmissionsTable holds the schema information for the "verification_submissions" table.
	VerificationSubmissionsTable = &schema.Table{
		Name:       "verification_submissions",
		Columns:    VerificationSubmissionsColumns,
		PrimaryKey: []*schema.Column{VerificationSubmissionsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		StoredDocumentsTable,
		VerificationSubmissionsTable,
	}
)

func init() {
	StoredDocumentsTable.ForeignKeys[0].RefTable = VerificationSubmissionsTable
}
