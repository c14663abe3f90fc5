package apperror

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// FieldError describes a single failing field in a validation result.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s is %s", e.Field, e.Message)
}

// ValidationError carries every failing field, never just the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Fields[0].String()
}

// Messages returns one formatted line per failing field, in order.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.String()
	}
	return msgs
}

// ConflictError reports a natural-key collision with an existing record.
type ConflictError struct {
	Resource string
	Field    string
	Value    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("this %s %s (%s) already exists", e.Resource, e.Field, e.Value)
}

// NotFoundError reports a missing record for the given resource.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// WorkflowError reports a multi-step operation that could not complete
// atomically. Nothing is persisted when it is returned.
type WorkflowError struct {
	Step    string
	Message string
}

func (e *WorkflowError) Error() string {
	if e.Step != "" {
		return fmt.Sprintf("%s: %s", e.Step, e.Message)
	}
	return e.Message
}

func NewValidation(fields []FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func NewConflict(resource, field, value string) *ConflictError {
	return &ConflictError{Resource: resource, Field: field, Value: value}
}

func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

func NewWorkflow(step, format string, args ...interface{}) *WorkflowError {
	return &WorkflowError{Step: step, Message: fmt.Sprintf(format, args...)}
}

// StatusCode maps the taxonomy to HTTP status codes. Anything outside the
// taxonomy is unexpected and maps to 500.
func StatusCode(err error) int {
	var (
		validation *ValidationError
		conflict   *ConflictError
		notFound   *NotFoundError
		workflow   *WorkflowError
	)
	switch {
	case errors.As(err, &validation):
		return 400
	case errors.As(err, &notFound), errors.Is(err, gorm.ErrRecordNotFound):
		return 404
	case errors.As(err, &conflict):
		return 409
	case errors.As(err, &workflow):
		return 500
	default:
		return 500
	}
}

// Public reports whether the error message is safe to return to clients.
// Unexpected errors are logged server-side and replaced with a generic body.
func Public(err error) bool {
	var (
		validation *ValidationError
		conflict   *ConflictError
		notFound   *NotFoundError
		workflow   *WorkflowError
	)
	return errors.As(err, &validation) ||
		errors.As(err, &conflict) ||
		errors.As(err, &notFound) ||
		errors.As(err, &workflow) ||
		errors.Is(err, gorm.ErrRecordNotFound)
}
