package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an application error.
type Kind string

const (
	KindInputMissing  Kind = "INPUT_MISSING"
	KindLookupFailed  Kind = "LOOKUP_FAILED"
	KindStorageFailed Kind = "STORAGE_FAILED"
	KindConfigInvalid Kind = "CONFIG_INVALID"
)

// User-facing messages shown next to the search input.
const (
	MsgInputMissing = "Digite o autor/nome do repositório."
	MsgLookupFailed = "Repositório não encontrado."
)

// AppError represents an application error
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewInputMissingError is returned when a search is submitted without an identifier.
func NewInputMissingError() *AppError {
	return &AppError{
		Kind:    KindInputMissing,
		Message: MsgInputMissing,
	}
}

// NewLookupFailedError wraps any failure to resolve a repository.
func NewLookupFailedError(identifier string, err error) *AppError {
	return &AppError{
		Kind:    KindLookupFailed,
		Message: MsgLookupFailed,
		Err:     fmt.Errorf("looking up %q: %w", identifier, err),
	}
}

// NewStorageError creates a new storage error
func NewStorageError(message string, err error) *AppError {
	return &AppError{
		Kind:    KindStorageFailed,
		Message: message,
		Err:     err,
	}
}

// NewConfigError creates a new configuration error
func NewConfigError(field, message string) *AppError {
	return &AppError{
		Kind:    KindConfigInvalid,
		Message: field + ": " + message,
	}
}

// KindOf returns the kind of the first AppError in err's chain, or "" if none.
func KindOf(err error) Kind {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsInputMissing checks if the error is an input missing error
func IsInputMissing(err error) bool {
	return KindOf(err) == KindInputMissing
}

// IsLookupFailed checks if the error is a lookup failed error
func IsLookupFailed(err error) bool {
	return KindOf(err) == KindLookupFailed
}

// UserMessage returns the message to display for err. Errors that are not
// AppErrors fall back to err.Error().
func UserMessage(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
