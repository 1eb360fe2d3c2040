package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/ent"
	"github.com/towoju5/bridge-verification-system-sub001/ent/storeddocument"
	"github.com/towoju5/bridge-verification-system-sub001/ent/verificationsubmission"
	"github.com/towoju5/bridge-verification-system-sub001/services/submission"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

// SubmissionStore is the postgres-backed submission.Store.
type SubmissionStore struct {
	client *ent.Client
}

// NewSubmissionStore creates a store over the shared ent client.
func NewSubmissionStore(client *ent.Client) *SubmissionStore {
	return &SubmissionStore{client: client}
}

// CreateSubmission starts a fresh record at step 1.
func (s *SubmissionStore) CreateSubmission(ctx context.Context, kind types.SubmissionKind) (*types.Submission, error) {
	row, err := s.client.VerificationSubmission.
		Create().
		SetKind(verificationsubmission.Kind(kind)).
		SetFields(map[string]interface{}{}).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	return toSubmission(row), nil
}

// GetSubmission loads one record by id.
func (s *SubmissionStore) GetSubmission(ctx context.Context, id uuid.UUID) (*types.Submission, error) {
	row, err := s.client.VerificationSubmission.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, submission.ErrNotFound
		}
		return nil, err
	}
	return toSubmission(row), nil
}

// UpdateSubmission persists the merged record wholesale.
func (s *SubmissionStore) UpdateSubmission(ctx context.Context, record *types.Submission) error {
	update := s.client.VerificationSubmission.
		UpdateOneID(record.ID).
		SetCurrentStep(record.CurrentStep).
		SetStatus(verificationsubmission.Status(record.Status)).
		SetFields(record.Fields).
		SetDocuments(record.Documents).
		SetIdentifyingInformation(record.IdentifyingInformation).
		SetForwardedProviders(record.ForwardedProviders)

	if record.Status == types.StatusSubmitted {
		update = update.SetSubmittedAt(time.Now())
	}

	err := update.Exec(ctx)
	if ent.IsNotFound(err) {
		return submission.ErrNotFound
	}
	return err
}

// CreateStoredDocuments writes the audit rows for stored uploads.
func (s *SubmissionStore) CreateStoredDocuments(ctx context.Context, docs []types.StoredDocument) error {
	builders := make([]*ent.StoredDocumentCreate, 0, len(docs))
	for _, doc := range docs {
		builder := s.client.StoredDocument.
			Create().
			SetID(doc.ID).
			SetSubmissionID(doc.SubmissionID).
			SetCategory(doc.Category).
			SetStoragePath(doc.StoragePath).
			SetOriginalName(doc.OriginalName).
			SetMimeType(doc.MimeType).
			SetSizeBytes(doc.SizeBytes).
			SetSourceFieldReference(doc.SourceFieldReference).
			SetIssuingCountry(doc.IssuingCountry).
			SetStatus(storeddocument.Status(doc.Status))
		if doc.Side != "" {
			builder = builder.SetSide(storeddocument.Side(doc.Side))
		}
		builders = append(builders, builder)
	}
	return s.client.StoredDocument.CreateBulk(builders...).Exec(ctx)
}

// ListForwardingRetryCandidates returns recently submitted records,
// oldest first. The engine decides per record whether any provider
// forwarding is still outstanding.
func (s *SubmissionStore) ListForwardingRetryCandidates(ctx context.Context, since time.Time, limit int) ([]uuid.UUID, error) {
	return s.client.VerificationSubmission.
		Query().
		Where(
			verificationsubmission.StatusEQ(verificationsubmission.StatusSubmitted),
			verificationsubmission.UpdatedAtGTE(since),
		).
		Order(ent.Asc(verificationsubmission.FieldUpdatedAt)).
		Limit(limit).
		IDs(ctx)
}

// ListStoredDocuments returns the audit rows for one submission in upload
// order.
func (s *SubmissionStore) ListStoredDocuments(ctx context.Context, submissionID uuid.UUID) ([]types.StoredDocument, error) {
	rows, err := s.client.StoredDocument.
		Query().
		Where(storeddocument.HasSubmissionWith(verificationsubmission.IDEQ(submissionID))).
		Order(ent.Asc(storeddocument.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]types.StoredDocument, 0, len(rows))
	for _, row := range rows {
		doc := types.StoredDocument{
			ID:                   row.ID,
			SubmissionID:         submissionID,
			Category:             row.Category,
			StoragePath:          row.StoragePath,
			OriginalName:         row.OriginalName,
			MimeType:             row.MimeType,
			SizeBytes:            row.SizeBytes,
			Side:                 string(row.Side),
			SourceFieldReference: row.SourceFieldReference,
			IssuingCountry:       row.IssuingCountry,
			Status:               types.DocumentStatus(row.Status),
			CreatedAt:            row.CreatedAt,
		}
		if row.RejectionReason != nil {
			doc.RejectionReason = *row.RejectionReason
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func toSubmission(row *ent.VerificationSubmission) *types.Submission {
	return &types.Submission{
		ID:                     row.ID,
		Kind:                   types.SubmissionKind(row.Kind),
		CurrentStep:            row.CurrentStep,
		Status:                 types.SubmissionStatus(row.Status),
		Fields:                 row.Fields,
		Documents:              row.Documents,
		IdentifyingInformation: row.IdentifyingInformation,
		ForwardedProviders:     row.ForwardedProviders,
		CreatedAt:              row.CreatedAt,
		UpdatedAt:              row.UpdatedAt,
	}
}
