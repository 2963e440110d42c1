package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrBookNotFound   = fmt.Errorf("book %w", ErrNotFound)
	ErrMemberNotFound = fmt.Errorf("member %w", ErrNotFound)
	ErrRecordNotFound = fmt.Errorf("circulation record %w", ErrNotFound)
	ErrNoActiveIssue  = fmt.Errorf("active issue %w", ErrNotFound)

	ErrOutOfStock     = errors.New("book is out of stock")
	ErrDuplicateIssue = errors.New("member already has this book issued")
	ErrInvalidState   = errors.New("circulation record is not issued")
	ErrValidation     = errors.New("validation error")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidMemberID    = errors.New("invalid member id")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrPersistence        = errors.New("persistence failure")
)

// ValidationError is a rejected input that is reported back to the caller as is.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type ErrorKind string

const (
	KindNotFound     ErrorKind = "NotFound"
	KindOutOfStock   ErrorKind = "OutOfStock"
	KindDuplicate    ErrorKind = "DuplicateIssue"
	KindInvalidState ErrorKind = "InvalidState"
	KindValidation   ErrorKind = "ValidationError"
	KindAuth         ErrorKind = "Unauthorized"
	KindForbidden    ErrorKind = "Forbidden"
	KindPersistence  ErrorKind = "PersistenceFailure"
	KindInternal     ErrorKind = "Internal"
)

// Kind classifies err for callers that branch on the failure category.
func Kind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrOutOfStock):
		return KindOutOfStock
	case errors.Is(err, ErrDuplicateIssue):
		return KindDuplicate
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidMemberID), errors.Is(err, ErrUnauthorized):
		return KindAuth
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrPersistence):
		return KindPersistence
	}
	return KindInternal
}

type ErrorResponse struct {
	Message string    `json:"message"`
	Kind    ErrorKind `json:"kind"`
}
