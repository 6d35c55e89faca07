package docconv

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EUNSUPPORTED = "unsupported"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("docconv error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// UnsupportedConversionError is returned when no converter is registered
// for a requested format pair. Source and Target hold the names exactly as
// the caller passed them, before normalization.
type UnsupportedConversionError struct {
	Source string
	Target string
}

// Error implements the error interface.
func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("no converter available for %s to %s conversion", e.Source, e.Target)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var unsupported *UnsupportedConversionError
	if errors.As(err, &unsupported) {
		return EUNSUPPORTED
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error."
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var unsupported *UnsupportedConversionError
	if errors.As(err, &unsupported) {
		return unsupported.Error()
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
