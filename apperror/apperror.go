package apperror

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindModeration
	KindConflict
	KindMissingSession
	KindNotFound
)

var (
	ErrValidation     = errors.New("validation error")
	ErrModeration     = errors.New("moderation rejected")
	ErrConflict       = errors.New("conflict")
	ErrMissingSession = errors.New("missing session")
	ErrNotFound       = errors.New("not found")
)

type AppError struct {
	Kind    Kind
	Err     error  // underlying cause
	Message string // client facing message
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Err: ErrValidation, Message: message}
}

func Moderation(message string) *AppError {
	return &AppError{Kind: KindModeration, Err: ErrModeration, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Err: ErrConflict, Message: message}
}

func MissingSession() *AppError {
	return &AppError{Kind: KindMissingSession, Err: ErrMissingSession, Message: "Session ID required"}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Err: ErrNotFound, Message: message}
}

// Internal wraps an unexpected failure. message is what the client sees; err
// is only logged.
func Internal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Err: err, Message: message}
}

// Status maps an error to its HTTP status code. Anything that is not an
// AppError is a 500.
func Status(err error) int {
	var ae *AppError
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Kind {
	case KindValidation, KindModeration, KindConflict, KindMissingSession:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client facing text for err, or fallback when err carries
// none.
func Message(err error, fallback string) string {
	var ae *AppError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}
