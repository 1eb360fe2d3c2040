package upload

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/services/form"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

// Resolver replaces file uploads inside a validated step payload with
// durable storage references. It walks the step schema rather than the
// payload, so only schema-known file positions are touched. Values that
// already are storage references pass through untouched, which makes a
// retried step-save idempotent: nothing is re-uploaded.
type Resolver struct {
	backend Backend
	timeout time.Duration
}

// NewResolver builds a Resolver over the given backend. timeout bounds
// each individual store call.
func NewResolver(backend Backend, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Resolver{backend: backend, timeout: timeout}
}

// ResolveDocuments stores every pending upload in the payload, mutating it
// in place, and returns one audit record per file actually stored.
func (r *Resolver) ResolveDocuments(ctx context.Context, submissionID uuid.UUID, kind types.SubmissionKind, step int, payload map[string]interface{}) ([]types.StoredDocument, error) {
	schema, err := form.Schema(kind, step)
	if err != nil {
		return nil, err
	}

	var stored []types.StoredDocument
	if err := r.walkFields(ctx, submissionID, "", schema, payload, &stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (r *Resolver) walkFields(ctx context.Context, submissionID uuid.UUID, prefix string, schema map[string]form.Rule, payload map[string]interface{}, stored *[]types.StoredDocument) error {
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rule := schema[name]
		value, present := payload[name]
		if !present || value == types.ClearSentinel {
			continue
		}
		path := joinPath(prefix, name)

		switch rule.Type {
		case form.TypeFile:
			upload, ok := value.(*types.FileUpload)
			if !ok {
				continue
			}
			doc, ref, err := r.storeOne(ctx, submissionID, path, rule, upload, payload)
			if err != nil {
				return err
			}
			payload[name] = ref
			*stored = append(*stored, doc)

		case form.TypeObject:
			child, ok := value.(map[string]interface{})
			if !ok {
				continue
			}
			if err := r.walkFields(ctx, submissionID, path, rule.Fields, child, stored); err != nil {
				return err
			}

		case form.TypeArray:
			items, ok := value.([]interface{})
			if !ok || rule.Elem == nil {
				continue
			}
			for i, item := range items {
				elemPath := fmt.Sprintf("%s.%d", path, i)
				switch rule.Elem.Type {
				case form.TypeObject:
					child, ok := item.(map[string]interface{})
					if !ok {
						continue
					}
					if err := r.walkFields(ctx, submissionID, elemPath, rule.Elem.Fields, child, stored); err != nil {
						return err
					}
				case form.TypeFile:
					upload, ok := item.(*types.FileUpload)
					if !ok {
						continue
					}
					doc, ref, err := r.storeOne(ctx, submissionID, elemPath, *rule.Elem, upload, payload)
					if err != nil {
						return err
					}
					items[i] = ref
					*stored = append(*stored, doc)
				}
			}
		}
	}
	return nil
}

func (r *Resolver) storeOne(ctx context.Context, submissionID uuid.UUID, path string, rule form.Rule, upload *types.FileUpload, siblings map[string]interface{}) (types.StoredDocument, string, error) {
	body, err := upload.Open()
	if err != nil {
		return types.StoredDocument{}, "", fmt.Errorf("failed to open upload %s: %w", path, err)
	}
	defer body.Close()

	storeCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	ref, err := r.backend.Store(storeCtx, rule.Category, upload.Name, body, upload.Size, upload.ContentType)
	if err != nil {
		return types.StoredDocument{}, "", fmt.Errorf("failed to store document %s: %w", path, err)
	}

	doc := types.StoredDocument{
		ID:                   uuid.New(),
		SubmissionID:         submissionID,
		Category:             rule.Category,
		StoragePath:          ref,
		OriginalName:         upload.Name,
		MimeType:             upload.ContentType,
		SizeBytes:            upload.Size,
		Side:                 rule.Side,
		SourceFieldReference: path,
		Status:               types.DocumentUploaded,
		CreatedAt:            time.Now(),
	}
	if country, ok := siblings["issuing_country"].(string); ok {
		doc.IssuingCountry = country
	}
	return doc, ref, nil
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
