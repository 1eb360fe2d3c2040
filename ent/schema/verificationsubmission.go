package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

// VerificationSubmission holds the schema definition for the VerificationSubmission entity.
type VerificationSubmission struct {
	ent.Schema
}

func (VerificationSubmission) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the VerificationSubmission.
func (VerificationSubmission) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Enum("kind").
			Values("individual", "business").
			Immutable(),
		field.Int("current_step").
			Default(1),
		field.Enum("status").
			Values("in_progress", "submitted").
			Default("in_progress"),
		field.JSON("fields", map[string]interface{}{}).
			Default(map[string]interface{}{}),
		field.JSON("documents", []types.DocumentRef{}).
			Optional(),
		field.JSON("identifying_information", []types.IdentifyingInformation{}).
			Optional(),
		field.JSON("forwarded_providers", []string{}).
			Optional(),
		field.Time("submitted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the VerificationSubmission.
func (VerificationSubmission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stored_documents", StoredDocument.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
