package oidcsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/oidcreg/pkg/httpx"
)

// ErrorCodeInvalidClientMetadata is the error code for every rejected registration.
const ErrorCodeInvalidClientMetadata = "invalid_client_metadata"

// RegistrationError is a rejected registration. It is written by the server
// and returned by Client.Register.
type RegistrationError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error"`
	Message    string `json:"error_message"`
}

// NewRegistrationError returns a 400 invalid_client_metadata error with message.
func NewRegistrationError(message string) *RegistrationError {
	return &RegistrationError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidClientMetadata,
		Message:    message,
	}
}

// Error implements the error interface.
func (e *RegistrationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes the error envelope to w.
func (e *RegistrationError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:        e.Code,
		ErrorMessage: e.Message,
	})
}

// parseErrorResponse converts a non-success response into a typed error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &RegistrationError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Error,
			Message:    errResp.ErrorMessage,
		}
	}

	return &RegistrationError{
		StatusCode: resp.StatusCode,
		Code:       "server_error",
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
