package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

const (
	ErrCodeInvalidPayload     = "invalid_payload"
	ErrCodeValidation         = "validation_error"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeTokenExpired       = "token_expired"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeInternal           = "internal_server_error"
	ErrCodeNotFound           = "not_found"
	ErrCodeConflict           = "conflict"
	ErrCodeSlugExists         = "slug_exists"
	ErrCodeInvalidStatus      = "invalid_status"
	ErrCodeUploadFailed       = "upload_failed"
	ErrCodeFileTooLarge       = "file_too_large"
)

// Every handler responds with the same discriminated envelope:
// {"success":true,"data":...} or {"success":false,"error":{...}}.
// Nothing above the HTTP layer writes a bare payload or panics across
// its boundary.

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// RespondErrorWithCode builds a JSON error envelope with a standard
// code and public message. The optional `details` is included if
// non-nil; devErrs are logged, never sent to the client.
func RespondErrorWithCode(
	w http.ResponseWriter,
	status int,
	errorCode string,
	publicMessage string,
	details any,
	devErrs ...error,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	env := ErrorEnvelope{
		Error: ErrorBody{
			Code:    errorCode,
			Message: publicMessage,
		},
	}
	if details != nil {
		env.Error.Details = details
	}
	_ = json.NewEncoder(w).Encode(env)

	if len(devErrs) > 0 && devErrs[0] != nil {
		Logger.WithFields(logrus.Fields{
			"status": status,
			"error":  devErrs[0].Error(),
		}).Error(publicMessage)
	} else {
		Logger.WithFields(logrus.Fields{
			"status": status,
		}).Error(publicMessage)
	}
}

// RespondWithData wraps a successful payload in the envelope.
func RespondWithData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(SuccessEnvelope{Success: true, Data: data})
}
