// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for the jackc toolchain.
//              Codes classify infrastructure faults (I/O, configuration,
//              history store) and the two families of language faults the
//              front end reports (lexical and syntactic).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Reduced to compiler codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Source access
	CodeIOError        Code = "IO_ERROR"
	CodeNotInitialized Code = "NOT_INITIALIZED"

	// Language faults
	CodeLexical Code = "LEXICAL"
	CodeSyntax  Code = "SYNTAX"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Run history
	CodeStoreError Code = "STORE_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax:
		return "source"
	case CodeIOError, CodeNotFound, CodeNotInitialized:
		return "io"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeStoreError:
		return "store"
	case CodeInvalidInput, CodeValidationFailed:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status a CLI should use for this code.
// Faults in the compiled program exit with 1, tool faults with 2.
func (c Code) ExitCode() int {
	switch c {
	case CodeLexical, CodeSyntax:
		return 1
	default:
		return 2
	}
}
