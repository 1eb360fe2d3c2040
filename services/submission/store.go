// Package submission implements the step-sequenced submission engine: the
// record store contract, the state machine over wizard steps and the
// forwarding of completed records to external verification providers.
package submission

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

// ErrNotFound is returned by stores when a submission does not exist.
var ErrNotFound = errors.New("submission not found")

// Store is the persistence contract the engine runs against. Update must
// persist the record it is given wholesale; the engine prepares a fully
// merged copy before calling it, so a failed Update leaves the stored
// record unchanged.
type Store interface {
	CreateSubmission(ctx context.Context, kind types.SubmissionKind) (*types.Submission, error)
	GetSubmission(ctx context.Context, id uuid.UUID) (*types.Submission, error)
	UpdateSubmission(ctx context.Context, record *types.Submission) error
	CreateStoredDocuments(ctx context.Context, docs []types.StoredDocument) error
	ListStoredDocuments(ctx context.Context, submissionID uuid.UUID) ([]types.StoredDocument, error)
}
