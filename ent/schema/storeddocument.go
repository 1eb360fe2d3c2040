package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// StoredDocument holds the schema definition for the StoredDocument entity.
type StoredDocument struct {
	ent.Schema
}

func (StoredDocument) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the StoredDocument.
func (StoredDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("category"),
		field.String("storage_path"),
		field.String("original_name"),
		field.String("mime_type").Default(""),
		field.Int64("size_bytes").Default(0),
		field.Enum("side").
			Values("front", "back").
			Optional(),
		field.String("source_field_reference").
			Optional(),
		field.String("issuing_country").
			Optional(),
		field.Enum("status").
			Values("uploaded", "pending", "verified", "rejected").
			Default("uploaded"),
		field.String("rejection_reason").
			Optional().
			Nillable(),
	}
}

// Edges of the StoredDocument.
func (StoredDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("submission", VerificationSubmission.Type).
			Ref("stored_documents").
			Required().
			Unique(),
	}
}
