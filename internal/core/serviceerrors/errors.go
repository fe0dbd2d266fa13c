package serviceerrors

import (
	"errors"
	"strings"

	"github.com/kruglovma/sklad/internal/core/domain"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindConflict
	KindUnprocessableEntity
	KindInvalidRequest
)

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

// ServiceError carries the error kind for HTTP mapping and, when the
// failure is attributable to specific input fields, the violated rules.
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Fields  []domain.FieldError
}

func (e *ServiceError) Error() string {
	return e.Message
}

// FieldErrors returns the structured field/message pairs, if any.
func FieldErrors(err error) []domain.FieldError {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Fields
	}
	return nil
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Message: message}
}

// NewFieldConflictError attaches a conflict to the field that caused it,
// so the client can re-render the message on the form.
func NewFieldConflictError(field, message string) *ServiceError {
	return &ServiceError{
		Kind:    KindConflict,
		Message: message,
		Fields:  []domain.FieldError{{Field: field, Message: message}},
	}
}

func NewUnprocessableEntityError(message string) *ServiceError {
	return &ServiceError{Kind: KindUnprocessableEntity, Message: message}
}

func NewInvalidRequestError(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidRequest, Message: message}
}

// NewValidationError wraps the collected rule violations of one request.
func NewValidationError(fields []domain.FieldError) *ServiceError {
	messages := make([]string, len(fields))
	for i, fe := range fields {
		messages[i] = fe.Message
	}
	return &ServiceError{
		Kind:    KindInvalidRequest,
		Message: strings.Join(messages, ", "),
		Fields:  fields,
	}
}
