// Package wizard exposes the step-sequenced submission flow over HTTP.
package wizard

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/services/form"
	"github.com/towoju5/bridge-verification-system-sub001/services/refdata"
	"github.com/towoju5/bridge-verification-system-sub001/services/submission"
	serrors "github.com/towoju5/bridge-verification-system-sub001/services/submission/errors"
	"github.com/towoju5/bridge-verification-system-sub001/types"
	u "github.com/towoju5/bridge-verification-system-sub001/utils"
	"github.com/towoju5/bridge-verification-system-sub001/utils/logger"
	"github.com/towoju5/bridge-verification-system-sub001/utils/token"
)

// WizardController handles the submission wizard endpoints.
type WizardController struct {
	engine  *submission.Engine
	refdata refdata.Provider
}

// NewWizardController creates a controller over the given engine.
func NewWizardController(engine *submission.Engine, refdataProvider refdata.Provider) *WizardController {
	return &WizardController{
		engine:  engine,
		refdata: refdataProvider,
	}
}

// CreateSubmission starts a new wizard pass and returns its session token.
func (ctrl *WizardController) CreateSubmission(ctx *gin.Context) {
	var payload types.NewSubmissionRequest
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error",
			"Failed to validate payload", u.GetErrorData(err))
		return
	}

	record, err := ctrl.engine.Start(ctx, payload.Kind)
	if err != nil {
		ctrl.handleEngineError(ctx, err)
		return
	}

	sessionToken, err := token.GenerateSessionToken(record.ID)
	if err != nil {
		logger.Errorf("Failed to sign session token for %s: %v", record.ID, err)
		u.APIResponse(ctx, http.StatusInternalServerError, "error",
			"Failed to create submission", nil)
		return
	}

	u.APIResponse(ctx, http.StatusCreated, "success", "Submission created", types.NewSubmissionResponse{
		SubmissionID: record.ID,
		Token:        sessionToken,
		CurrentStep:  record.CurrentStep,
		MaxSteps:     form.MaxSteps(record.Kind),
	})
}

// GetStep returns the accumulated record state plus the reference lists
// the current step's fields validate against.
func (ctrl *WizardController) GetStep(ctx *gin.Context) {
	id, ok := ctrl.submissionID(ctx)
	if !ok {
		return
	}

	view, err := ctrl.engine.GetStepView(ctx, id)
	if err != nil {
		ctrl.handleEngineError(ctx, err)
		return
	}

	view.ReferenceData = ctrl.referenceDataForStep(ctx, view.Kind, view.CurrentStep)

	u.APIResponse(ctx, http.StatusOK, "success", "Submission retrieved", view)
}

// SaveStep validates and persists one wizard step.
func (ctrl *WizardController) SaveStep(ctx *gin.Context) {
	id, ok := ctrl.submissionID(ctx)
	if !ok {
		return
	}

	step, err := strconv.Atoi(ctx.Param("step"))
	if err != nil || step < 1 {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Invalid step number", nil)
		return
	}

	payload, err := ctrl.stepPayload(ctx)
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error",
			"Failed to parse payload", u.GetErrorData(err))
		return
	}

	result, err := ctrl.engine.SaveStep(ctx, id, step, payload)
	if err != nil {
		ctrl.handleEngineError(ctx, err)
		return
	}

	u.APIResponse(ctx, http.StatusOK, "success", "Step saved", result)
}

// Submit forwards the completed record to the verification providers and
// closes it.
func (ctrl *WizardController) Submit(ctx *gin.Context) {
	id, ok := ctrl.submissionID(ctx)
	if !ok {
		return
	}

	result, err := ctrl.engine.MarkSubmitted(ctx, id)
	if err != nil {
		ctrl.handleEngineError(ctx, err)
		return
	}

	u.APIResponse(ctx, http.StatusOK, "success", "Submission received", result)
}

func (ctrl *WizardController) submissionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Invalid submission id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// stepPayload reads the step fields from either a JSON body or a
// multipart form. Multipart file parts become pending uploads; everything
// else stays a string for the validator to coerce.
func (ctrl *WizardController) stepPayload(ctx *gin.Context) (map[string]interface{}, error) {
	contentType := ctx.GetHeader("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		payload := map[string]interface{}{}
		if err := ctx.ShouldBindJSON(&payload); err != nil {
			return nil, err
		}
		return payload, nil
	}

	multipart, err := ctx.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	payload := map[string]interface{}{}
	for key, values := range multipart.Value {
		if len(values) > 0 {
			payload[key] = values[0]
		}
	}
	for key, files := range multipart.File {
		if len(files) == 0 {
			continue
		}
		header := files[0]
		payload[key] = &types.FileUpload{
			Name:        header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Open:        func() (io.ReadCloser, error) { return header.Open() },
		}
	}
	return payload, nil
}

// referenceDataForStep resolves every enum list the step's schema points
// at. Failures degrade to an empty map; the step view is still usable.
func (ctrl *WizardController) referenceDataForStep(ctx *gin.Context, kind types.SubmissionKind, step int) map[string][]types.ReferenceItem {
	schema, err := form.Schema(kind, step)
	if err != nil {
		return nil
	}

	listNames := map[string]bool{}
	collectEnumLists(schema, listNames)
	if len(listNames) == 0 {
		return nil
	}

	names := make([]string, 0, len(listNames))
	for name := range listNames {
		names = append(names, name)
	}
	sort.Strings(names)

	data := map[string][]types.ReferenceItem{}
	for _, name := range names {
		items, err := ctrl.refdata.Lookup(ctx, name)
		if err != nil {
			logger.Warnf("Failed to resolve reference list %s: %v", name, err)
			continue
		}
		data[name] = items
	}
	return data
}

func collectEnumLists(schema map[string]form.Rule, into map[string]bool) {
	for _, rule := range schema {
		if rule.EnumList != "" {
			into[rule.EnumList] = true
		}
		if rule.Fields != nil {
			collectEnumLists(rule.Fields, into)
		}
		if rule.Elem != nil {
			collectEnumLists(map[string]form.Rule{"": *rule.Elem}, into)
		}
	}
}

// handleEngineError maps the engine's typed failures onto HTTP statuses.
func (ctrl *WizardController) handleEngineError(ctx *gin.Context, err error) {
	var validationErr serrors.ErrValidation
	if errors.As(err, &validationErr) {
		u.APIResponse(ctx, http.StatusBadRequest, "error",
			"Failed to validate step", validationErr.Errors)
		return
	}

	var sessionErr serrors.ErrSession
	if errors.As(err, &sessionErr) {
		u.APIResponse(ctx, http.StatusNotFound, "error", sessionErr.Message, nil)
		return
	}

	var stateErr serrors.ErrState
	if errors.As(err, &stateErr) {
		u.APIResponse(ctx, http.StatusConflict, "error", stateErr.Message, nil)
		return
	}

	var storageErr serrors.ErrStorage
	if errors.As(err, &storageErr) {
		logger.Errorf("Storage failure: %v", storageErr)
		u.APIResponse(ctx, http.StatusServiceUnavailable, "error",
			"Service temporarily unavailable", nil)
		return
	}

	var upstreamErr serrors.ErrUpstreamProvider
	if errors.As(err, &upstreamErr) {
		logger.WithFields(logger.Fields{
			"Provider": upstreamErr.Provider,
			"Error":    fmt.Sprintf("%v", upstreamErr.Err),
		}).Errorf("Provider forwarding failed")
		u.APIResponse(ctx, http.StatusBadGateway, "error",
			"Failed to forward submission, please retry", nil)
		return
	}

	logger.Errorf("Unhandled engine error: %v", err)
	u.APIResponse(ctx, http.StatusInternalServerError, "error",
		"Internal server error", nil)
}
