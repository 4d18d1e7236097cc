// Package apperr defines typed application errors that carry a stable code.
// Transport layers translate codes to HTTP statuses; services only attach
// codes and messages.
package apperr

import "errors"

type Code string

const (
	CodeBadRequest      Code = "bad_request"
	CodeValidation      Code = "validation_error"
	CodeUnauthorized    Code = "unauthorized"
	CodeForbidden       Code = "forbidden"
	CodeTooManyRequests Code = "rate_limited"
	CodeInternal        Code = "internal_error"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// CodeOf extracts the application code from an error chain. Unknown errors
// are internal: never leak their message to callers.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// MessageOf extracts the caller-safe message from an error chain. Internal
// errors yield an empty message.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Code != CodeInternal {
		return appErr.Message
	}
	return ""
}
