package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/clampvec/internal/vector"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Domain failure (value out of range, empty vector, export failed)
	ExitCommandError = 2 // Command error (malformed input, bad config, journal unavailable)
)

// Error codes reported in CLI output.
const (
	ErrCodeGeneric         = "E001" // Generic/unknown error
	ErrCodeParse           = "E002" // Malformed vector or number
	ErrCodeOutOfRange      = "E003" // Index out of range
	ErrCodeInvalidValue    = "E004" // Value outside [-100, 100]
	ErrCodeInvalidLength   = "E005" // Length outside [0, MaxLength]
	ErrCodeEmptyCollection = "E006" // Statistic of an empty vector
	ErrCodeExportFailed    = "E007" // Export destination not writable
	ErrCodeConfig          = "E008" // Config load/validation error
	ErrCodeJournal         = "E009" // Journal open/read/write error
)

var vectorErrCodes = map[vector.ErrorCode]string{
	vector.CodeOutOfRange:      ErrCodeOutOfRange,
	vector.CodeInvalidValue:    ErrCodeInvalidValue,
	vector.CodeInvalidLength:   ErrCodeInvalidLength,
	vector.CodeEmptyCollection: ErrCodeEmptyCollection,
	vector.CodeExportFailed:    ErrCodeExportFailed,
}

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E002", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs data as JSON, or the text lines as-is in text mode.
func (f *OutputFormatter) Success(data any, lines ...string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	if len(lines) == 0 {
		_, err := fmt.Fprintln(f.Writer, data)
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(f.Writer, line); err != nil {
			return err
		}
	}
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Fail reports err and returns the ExitError the command should return.
// Vector errors keep their own code and exit with ExitFailure; anything else
// is reported under fallbackCode with ExitCommandError.
func (f *OutputFormatter) Fail(err error, fallbackCode string) error {
	var verr *vector.Error
	if errors.As(err, &verr) {
		code := vectorErrCodes[verr.Code]
		var details any
		if len(verr.Details) > 0 {
			details = verr.Details
		}
		_ = f.Error(code, err.Error(), details)
		return WrapExitError(ExitFailure, code, err)
	}

	_ = f.Error(fallbackCode, err.Error(), nil)
	return WrapExitError(ExitCommandError, fallbackCode, err)
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
