// Package httputil centralizes JSON response writing and request decoding so
// every handler emits the same envelopes.
package httputil

import (
	"encoding/json"
	"net/http"

	"trustgate/pkg/apperr"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates an error into the standard error envelope. Internal
// errors omit the description so storage and dependency failures never leak
// detail to callers.
func WriteError(w http.ResponseWriter, err error) {
	code := apperr.CodeOf(err)
	body := map[string]string{"error": string(code)}
	if msg := apperr.MessageOf(err); msg != "" {
		body["error_description"] = msg
	}
	WriteJSON(w, statusFor(code), body)
}

func statusFor(code apperr.Code) int {
	switch code {
	case apperr.CodeBadRequest, apperr.CodeValidation:
		return http.StatusBadRequest
	case apperr.CodeUnauthorized:
		return http.StatusUnauthorized
	case apperr.CodeForbidden:
		return http.StatusForbidden
	case apperr.CodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Validatable is implemented by request DTOs that validate and normalize
// themselves after decoding.
type Validatable interface {
	Validate() error
}

// DecodeJSON decodes the request body into a DTO and runs its validation.
// On failure it writes the error response and returns false.
func DecodeJSON[T any, PT interface {
	*T
	Validatable
}](w http.ResponseWriter, r *http.Request) (PT, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apperr.New(apperr.CodeBadRequest, "invalid JSON body"))
		return nil, false
	}
	ptr := PT(&req)
	if err := ptr.Validate(); err != nil {
		WriteError(w, err)
		return nil, false
	}
	return ptr, true
}
