package entities

import (
	"errors"
	"fmt"
)

// ErrorKind is the structured failure category returned to callers so they can
// localize messages without parsing free text.
type ErrorKind string

const (
	KindValidation             ErrorKind = "VALIDATION_ERROR"
	KindInvalidOrderState      ErrorKind = "INVALID_ORDER_STATE"
	KindDuplicateInvoiceNumber ErrorKind = "DUPLICATE_INVOICE_NUMBER"
	KindAlreadySettled         ErrorKind = "ALREADY_SETTLED"
	KindNotFound               ErrorKind = "NOT_FOUND"
	KindConflict               ErrorKind = "CONFLICT"
	KindUnauthorized           ErrorKind = "UNAUTHORIZED"
	KindStorageFailure         ErrorKind = "STORAGE_FAILURE"
	KindInternal               ErrorKind = "INTERNAL_ERROR"
)

var (
	ErrValidation             = errors.New("validation error")
	ErrInvalidOrderState      = errors.New("invalid order state")
	ErrDuplicateInvoiceNumber = errors.New("duplicate invoice number")
	ErrAlreadySettled         = errors.New("installment already settled")
	ErrNotFound               = errors.New("not found")
	ErrConflict               = errors.New("conflict")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrStorageFailure         = errors.New("storage failure")
)

var kinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrValidation, KindValidation},
	{ErrInvalidOrderState, KindInvalidOrderState},
	{ErrDuplicateInvoiceNumber, KindDuplicateInvoiceNumber},
	{ErrAlreadySettled, KindAlreadySettled},
	{ErrNotFound, KindNotFound},
	{ErrConflict, KindConflict},
	{ErrUnauthorized, KindUnauthorized},
	{ErrStorageFailure, KindStorageFailure},
}

// KindOf resolves the kind of err by walking its wrap chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// ValidationError reports a malformed or missing field. It is rejected before
// any mutation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StorageError wraps a failed storage call. Always retryable.
func StorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %v", ErrStorageFailure, op, err)
}
