package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrDuplicate      = errors.New("duplicate")
	ErrNotAuthor      = errors.New("not the author")
	ErrAuthentication = errors.New("authentication failed")
)

type AppError struct {
	Err     error  // sentinel kind, for errors.Is
	Message string // human-readable message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string, id int) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %d", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func Duplicate(resource, field string) *AppError {
	return &AppError{
		Err:     ErrDuplicate,
		Message: fmt.Sprintf("%s with this %s already exists", resource, field),
		Field:   field,
	}
}

// NotAuthor reports that the requester does not own the resource it is
// trying to mutate. HTTP handlers map this to 403 Forbidden.
func NotAuthor(resource string) *AppError {
	return &AppError{
		Err:     ErrNotAuthor,
		Message: fmt.Sprintf("You are not the author of this %s.", resource),
	}
}

func AuthenticationFailed(message string) *AppError {
	return &AppError{
		Err:     ErrAuthentication,
		Message: message,
	}
}
