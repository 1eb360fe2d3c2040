// Package errors defines the typed failures the submission engine
// returns. Callers branch on the type to choose an HTTP status; the
// engine never returns bare strings for expected failure modes.
package errors

import (
	"fmt"

	"github.com/towoju5/bridge-verification-system-sub001/types"
)

// ErrValidation carries the structured field rejections of one step-save
// attempt. The submission record is untouched when it is returned.
type ErrValidation struct {
	Errors []types.ErrorData
}

func (e ErrValidation) Error() string {
	return fmt.Sprintf("validation failed with %d field error(s)", len(e.Errors))
}

// ErrSession means the submission the caller addressed does not exist or
// is not theirs to touch.
type ErrSession struct {
	Message string
}

func (e ErrSession) Error() string {
	return e.Message
}

// ErrState means the operation is not allowed in the submission's current
// lifecycle state, e.g. saving a step that is not the current one or
// touching a submitted record.
type ErrState struct {
	Message string
}

func (e ErrState) Error() string {
	return e.Message
}

// ErrStorage wraps a persistence or document-store failure.
type ErrStorage struct {
	Err error
}

func (e ErrStorage) Error() string {
	return fmt.Sprintf("storage failure: %v", e.Err)
}

func (e ErrStorage) Unwrap() error {
	return e.Err
}

// ErrUpstreamProvider wraps a failure from an external verification
// provider during forwarding.
type ErrUpstreamProvider struct {
	Provider string
	Err      error
}

func (e ErrUpstreamProvider) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e ErrUpstreamProvider) Unwrap() error {
	return e.Err
}
