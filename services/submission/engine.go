package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/services/email"
	"github.com/towoju5/bridge-verification-system-sub001/services/form"
	"github.com/towoju5/bridge-verification-system-sub001/services/providers"
	serrors "github.com/towoju5/bridge-verification-system-sub001/services/submission/errors"
	"github.com/towoju5/bridge-verification-system-sub001/services/upload"
	"github.com/towoju5/bridge-verification-system-sub001/types"
	u "github.com/towoju5/bridge-verification-system-sub001/utils"
	"github.com/towoju5/bridge-verification-system-sub001/utils/logger"
)

// Engine is the submission state machine. Every mutation goes through a
// per-submission lock, validates against the current step's schema and
// merges into a copy of the record, so a failed save leaves the stored
// record exactly as it was.
type Engine struct {
	store     Store
	validator *form.Validator
	mapper    *form.Mapper
	resolver  *upload.Resolver
	providers []providers.VerificationProvider
	notifier  email.EmailServiceInterface
	locks     *keyedMutex
}

// NewEngine wires the engine. notifier may be nil when notifications are
// disabled.
func NewEngine(store Store, validator *form.Validator, mapper *form.Mapper, resolver *upload.Resolver, providerSet []providers.VerificationProvider, notifier email.EmailServiceInterface) *Engine {
	return &Engine{
		store:     store,
		validator: validator,
		mapper:    mapper,
		resolver:  resolver,
		providers: providerSet,
		notifier:  notifier,
		locks:     newKeyedMutex(),
	}
}

// Start opens a fresh submission of the given kind at step 1.
func (e *Engine) Start(ctx context.Context, kind string) (*types.Submission, error) {
	submissionKind := types.SubmissionKind(kind)
	if submissionKind != types.KindIndividual && submissionKind != types.KindBusiness {
		return nil, serrors.ErrValidation{Errors: []types.ErrorData{{
			Field: "kind", Kind: form.RejectionOutOfDomain,
			Message: "Kind must be individual or business",
		}}}
	}

	record, err := e.store.CreateSubmission(ctx, submissionKind)
	if err != nil {
		return nil, serrors.ErrStorage{Err: err}
	}
	return record, nil
}

// GetStepView returns the accumulated state the form layer renders from.
func (e *Engine) GetStepView(ctx context.Context, id uuid.UUID) (*types.StepViewResponse, error) {
	record, err := e.getRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	return &types.StepViewResponse{
		SubmissionID: record.ID,
		Kind:         record.Kind,
		CurrentStep:  record.CurrentStep,
		MaxSteps:     form.MaxSteps(record.Kind),
		Status:       record.Status,
		Fields:       record.Fields,
	}, nil
}

// SaveStep validates and persists one wizard step. step must equal the
// record's current step; saving any other step is rejected without
// touching the record.
func (e *Engine) SaveStep(ctx context.Context, id uuid.UUID, step int, payload map[string]interface{}) (*types.StepSaveResponse, error) {
	unlock := e.locks.Lock(id)
	defer unlock()

	record, err := e.getRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	// A record that has reported completion is closed to further edits
	// whether or not it has been forwarded yet.
	if record.Status == types.StatusSubmitted || isComplete(record) {
		return nil, serrors.ErrState{Message: "submission is closed"}
	}
	if step != record.CurrentStep {
		return nil, serrors.ErrState{Message: fmt.Sprintf("expected step %d, got step %d", record.CurrentStep, step)}
	}

	normalized := form.Normalize(payload)
	validated, rejections, err := e.validator.ValidateStep(ctx, record.Kind, step, normalized)
	if err != nil {
		return nil, err
	}
	if len(rejections) > 0 {
		return nil, serrors.ErrValidation{Errors: rejections}
	}

	storedDocs, err := e.resolver.ResolveDocuments(ctx, record.ID, record.Kind, step, validated)
	if err != nil {
		return nil, serrors.ErrStorage{Err: err}
	}

	mapped, err := e.mapper.Map(record.Kind, step, validated)
	if err != nil {
		return nil, err
	}

	clone := record.Clone()
	mergeFields(clone.Fields, mapped.Fields)
	for _, path := range mapped.Cleared {
		removePath(clone.Fields, path)
	}
	if mapped.SetDocuments {
		clone.Documents = mapped.Documents
	}
	if mapped.SetIdentifying {
		clone.IdentifyingInformation = mapped.IdentifyingInformation
	}

	maxSteps := form.MaxSteps(record.Kind)
	if clone.CurrentStep < maxSteps {
		clone.CurrentStep++
	}

	if len(storedDocs) > 0 {
		if err := e.store.CreateStoredDocuments(ctx, storedDocs); err != nil {
			return nil, serrors.ErrStorage{Err: err}
		}
	}
	if err := e.store.UpdateSubmission(ctx, clone); err != nil {
		return nil, serrors.ErrStorage{Err: err}
	}

	response := &types.StepSaveResponse{
		Success:    true,
		IsComplete: isComplete(clone),
		Record:     clone,
	}
	if !response.IsComplete {
		next := clone.CurrentStep
		response.NextStep = &next
	}
	return response, nil
}

// MarkSubmitted closes a completed record and forwards it to every
// enabled provider. The record is persisted as submitted before any
// forwarding happens; a provider failure is surfaced but never reopens
// the record, and the background retry replays only the providers that
// have not accepted it yet.
func (e *Engine) MarkSubmitted(ctx context.Context, id uuid.UUID) (*types.MarkSubmittedResponse, error) {
	unlock := e.locks.Lock(id)
	defer unlock()

	record, err := e.getRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Status == types.StatusSubmitted {
		return nil, serrors.ErrState{Message: "submission is closed"}
	}
	if !isComplete(record) {
		return nil, serrors.ErrState{Message: "submission is incomplete"}
	}

	snapshot, err := providers.BuildSnapshot(record, time.Now())
	if err != nil {
		return nil, serrors.ErrState{Message: err.Error()}
	}

	clone := record.Clone()
	clone.Status = types.StatusSubmitted
	if err := e.store.UpdateSubmission(ctx, clone); err != nil {
		return nil, serrors.ErrStorage{Err: err}
	}

	forwardErr := e.forward(ctx, clone, snapshot)
	if err := e.store.UpdateSubmission(ctx, clone); err != nil {
		return nil, serrors.ErrStorage{Err: err}
	}
	if forwardErr != nil {
		return nil, forwardErr
	}

	e.notifySubmitted(ctx, clone)

	return &types.MarkSubmittedResponse{
		Success:            true,
		Message:            "Submission received",
		ForwardedProviders: clone.ForwardedProviders,
	}, nil
}

// RetryForwarding replays the outstanding provider forwarding of an
// already submitted record. It is a no-op for records that are still
// open or that every provider has accepted.
func (e *Engine) RetryForwarding(ctx context.Context, id uuid.UUID) error {
	unlock := e.locks.Lock(id)
	defer unlock()

	record, err := e.getRecord(ctx, id)
	if err != nil {
		return err
	}
	if record.Status != types.StatusSubmitted || e.pendingProviders(record) == 0 {
		return nil
	}

	snapshot, err := providers.BuildSnapshot(record, time.Now())
	if err != nil {
		return serrors.ErrState{Message: err.Error()}
	}

	clone := record.Clone()
	forwardErr := e.forward(ctx, clone, snapshot)
	if err := e.store.UpdateSubmission(ctx, clone); err != nil {
		return serrors.ErrStorage{Err: err}
	}
	if forwardErr != nil {
		return forwardErr
	}

	e.notifySubmitted(ctx, clone)
	return nil
}

// forward submits the snapshot to every provider not yet recorded on the
// clone, appending each acceptance. Stops at the first failure; the
// acceptances gathered so far stay on the clone for the caller to
// persist.
func (e *Engine) forward(ctx context.Context, clone *types.Submission, snapshot *types.SubmissionSnapshot) error {
	for _, provider := range e.providers {
		if u.ContainsString(clone.ForwardedProviders, provider.Name()) {
			continue
		}
		reference, err := provider.Submit(ctx, snapshot)
		if err != nil {
			return serrors.ErrUpstreamProvider{Provider: provider.Name(), Err: err}
		}
		logger.WithFields(logger.Fields{
			"SubmissionID": clone.ID,
			"Provider":     provider.Name(),
			"Reference":    reference,
		}).Infof("Forwarded submission to provider")
		clone.ForwardedProviders = append(clone.ForwardedProviders, provider.Name())
	}
	return nil
}

// pendingProviders counts the enabled providers that have not accepted
// the record yet.
func (e *Engine) pendingProviders(record *types.Submission) int {
	pending := 0
	for _, provider := range e.providers {
		if !u.ContainsString(record.ForwardedProviders, provider.Name()) {
			pending++
		}
	}
	return pending
}

func (e *Engine) getRecord(ctx context.Context, id uuid.UUID) (*types.Submission, error) {
	record, err := e.store.GetSubmission(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, serrors.ErrSession{Message: "submission not found"}
		}
		return nil, serrors.ErrStorage{Err: err}
	}
	return record, nil
}

// notifySubmitted is best-effort: a failed notification never fails the
// submit.
func (e *Engine) notifySubmitted(ctx context.Context, record *types.Submission) {
	if e.notifier == nil {
		return
	}
	toAddress, _ := record.Fields["email"].(string)
	if toAddress == "" {
		return
	}
	displayName, _ := record.Fields["first_name"].(string)
	if displayName == "" {
		displayName, _ = record.Fields["business_name"].(string)
	}
	if _, err := e.notifier.SendSubmissionReceivedEmail(ctx, toAddress, displayName, record.ID.String()); err != nil {
		logger.Warnf("Failed to send submission confirmation for %s: %v", record.ID, err)
	}
}

// isComplete reports whether every step has been saved. The final step of
// both kinds owns the attestation, which is required there, so its
// presence marks the record complete.
func isComplete(record *types.Submission) bool {
	if record.CurrentStep < form.MaxSteps(record.Kind) {
		return false
	}
	accepted, _ := record.Fields["attestation"].(bool)
	return accepted
}

// mergeFields merges src into dst additively: nested maps merge key by
// key, everything else (including arrays) is replaced wholesale.
func mergeFields(dst, src map[string]interface{}) {
	for key, value := range src {
		srcChild, srcIsMap := value.(map[string]interface{})
		dstChild, dstIsMap := dst[key].(map[string]interface{})
		if srcIsMap && dstIsMap {
			mergeFields(dstChild, srcChild)
			continue
		}
		dst[key] = value
	}
}

// removePath deletes the value at a dotted path, leaving emptied parent
// maps in place.
func removePath(fields map[string]interface{}, path string) {
	segments := strings.Split(path, ".")
	current := fields
	for i, segment := range segments {
		if i == len(segments)-1 {
			delete(current, segment)
			return
		}
		child, ok := current[segment].(map[string]interface{})
		if !ok {
			return
		}
		current = child
	}
}
