package services

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind int

const (
	// KindValidation is a client mistake: missing or invalid input.
	KindValidation ErrorKind = iota + 1
	// KindUpstream is a failure of the generative model call.
	KindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// PipelineError is returned by every pipeline stage. Handlers map it to an
// HTTP response by Kind; the message is safe to show to clients.
type PipelineError struct {
	Kind    ErrorKind
	Field   string
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NewValidationError(field, message string) *PipelineError {
	return &PipelineError{Kind: KindValidation, Field: field, Message: message}
}

func NewValidationErrorf(field, format string, args ...interface{}) *PipelineError {
	return NewValidationError(field, fmt.Sprintf(format, args...))
}

// NewUpstreamError keeps a stack trace on err so logs printed with %+v show
// where the model call failed.
func NewUpstreamError(message string, err error) *PipelineError {
	if err == nil {
		err = errors.New(message)
	}
	return &PipelineError{Kind: KindUpstream, Message: message, Err: errors.WithStack(err)}
}

func IsValidation(err error) bool {
	var pe *PipelineError
	return errors.As(err, &pe) && pe.Kind == KindValidation
}

func IsUpstream(err error) bool {
	var pe *PipelineError
	return errors.As(err, &pe) && pe.Kind == KindUpstream
}

// AsPipelineError extracts a *PipelineError from err's chain.
func AsPipelineError(err error) (*PipelineError, bool) {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
