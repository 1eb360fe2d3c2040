package submission

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

// MemoryStore is an in-process Store used by tests and local development.
// It hands out deep copies so callers can never mutate stored state
// without going through Update.
type MemoryStore struct {
	mu          sync.RWMutex
	submissions map[uuid.UUID]*types.Submission
	documents   map[uuid.UUID][]types.StoredDocument
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		submissions: map[uuid.UUID]*types.Submission{},
		documents:   map[uuid.UUID][]types.StoredDocument{},
	}
}

// CreateSubmission starts a fresh record at step 1.
func (m *MemoryStore) CreateSubmission(_ context.Context, kind types.SubmissionKind) (*types.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	record := &types.Submission{
		ID:          uuid.New(),
		Kind:        kind,
		CurrentStep: 1,
		Status:      types.StatusInProgress,
		Fields:      map[string]interface{}{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.submissions[record.ID] = record
	return record.Clone(), nil
}

// GetSubmission returns a copy of the record or ErrNotFound.
func (m *MemoryStore) GetSubmission(_ context.Context, id uuid.UUID) (*types.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.submissions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return record.Clone(), nil
}

// UpdateSubmission replaces the stored record.
func (m *MemoryStore) UpdateSubmission(_ context.Context, record *types.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.submissions[record.ID]; !ok {
		return ErrNotFound
	}
	clone := record.Clone()
	clone.UpdatedAt = time.Now()
	m.submissions[record.ID] = clone
	return nil
}

// CreateStoredDocuments appends audit records for stored files.
func (m *MemoryStore) CreateStoredDocuments(_ context.Context, docs []types.StoredDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range docs {
		m.documents[doc.SubmissionID] = append(m.documents[doc.SubmissionID], doc)
	}
	return nil
}

// ListStoredDocuments returns the audit records for one submission.
func (m *MemoryStore) ListStoredDocuments(_ context.Context, submissionID uuid.UUID) ([]types.StoredDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]types.StoredDocument(nil), m.documents[submissionID]...), nil
}
