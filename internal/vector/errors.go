package vector

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes vector errors.
type ErrorCode string

const (
	// CodeOutOfRange indicates an index outside [0, Len).
	CodeOutOfRange ErrorCode = "OUT_OF_RANGE"

	// CodeInvalidValue indicates a value outside [MinValue, MaxValue].
	CodeInvalidValue ErrorCode = "INVALID_VALUE"

	// CodeInvalidLength indicates a requested length outside [0, MaxLength].
	CodeInvalidLength ErrorCode = "INVALID_LENGTH"

	// CodeEmptyCollection indicates a statistic requested on an empty vector.
	CodeEmptyCollection ErrorCode = "EMPTY_COLLECTION"

	// CodeExportFailed indicates the export destination could not be written.
	CodeExportFailed ErrorCode = "EXPORT_FAILED"
)

// Sentinels for errors.Is. They match any *Error with the same Code.
var (
	ErrOutOfRange      = &Error{Code: CodeOutOfRange, Message: "index out of range"}
	ErrInvalidValue    = &Error{Code: CodeInvalidValue, Message: "value out of range"}
	ErrInvalidLength   = &Error{Code: CodeInvalidLength, Message: "invalid length"}
	ErrEmptyCollection = &Error{Code: CodeEmptyCollection, Message: "empty collection"}
	ErrExportFailed    = &Error{Code: CodeExportFailed, Message: "export failed"}
)

// Error is the error type shared by the vector, stats and export packages.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Details contains additional context (index, value, length, destination).
	Details map[string]string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewOutOfRangeError creates an Error for an index outside [0, length).
func NewOutOfRangeError(index, length int) *Error {
	return &Error{
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("index %d out of range [0, %d)", index, length),
		Details: map[string]string{
			"index":  fmt.Sprintf("%d", index),
			"length": fmt.Sprintf("%d", length),
		},
	}
}

// NewInvalidValueError creates an Error for a value outside the allowed range.
func NewInvalidValueError(value int) *Error {
	return &Error{
		Code:    CodeInvalidValue,
		Message: fmt.Sprintf("value %d must be in range [%d, %d]", value, MinValue, MaxValue),
		Details: map[string]string{
			"value": fmt.Sprintf("%d", value),
		},
	}
}

// NewInvalidLengthError creates an Error for a length outside [0, MaxLength].
func NewInvalidLengthError(length int) *Error {
	return &Error{
		Code:    CodeInvalidLength,
		Message: fmt.Sprintf("length %d must be in range [0, %d]", length, MaxLength),
		Details: map[string]string{
			"length": fmt.Sprintf("%d", length),
		},
	}
}

// NewEmptyCollectionError creates an Error for a statistic that needs at
// least one element.
func NewEmptyCollectionError(op string) *Error {
	return &Error{
		Code:    CodeEmptyCollection,
		Message: fmt.Sprintf("cannot compute %s of an empty vector", op),
		Details: map[string]string{
			"op": op,
		},
	}
}

// NewExportFailedError wraps an I/O failure while exporting to destination.
func NewExportFailedError(destination string, err error) *Error {
	return &Error{
		Code:    CodeExportFailed,
		Message: fmt.Sprintf("could not write %s", destination),
		Details: map[string]string{
			"destination": destination,
		},
		Err: err,
	}
}
