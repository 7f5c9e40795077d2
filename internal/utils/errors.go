package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrNotFound           = errors.New("not_found")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrSlugExists         = errors.New("slug_exists")
	ErrInvalidStatus      = errors.New("invalid_status")
	ErrTokenRevoked       = errors.New("token_revoked")
	ErrEmptyValue         = errors.New("empty_value")
	ErrIndexOutOfRange    = errors.New("index_out_of_range")
)

// AppError carries an HTTP status and public error code from the
// service layer up to the controller.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
		return
	}
	RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
}
