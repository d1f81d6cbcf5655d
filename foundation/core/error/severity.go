// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses the
//              severity to pick the level an error is reported at.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Code mapping for compiler codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks faults in user input, e.g. a syntax error in a source file
	SeverityLow Severity = iota

	// SeverityMedium marks recoverable tool faults
	SeverityMedium

	// SeverityHigh marks faults that stop the tool, e.g. unreadable sources
	SeverityHigh

	// SeverityCritical marks internal invariant violations
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeIOError, CodeNotInitialized, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	case CodeStoreError:
		return SeverityMedium

	case CodeLexical, CodeSyntax, CodeNotFound, CodeInvalidInput, CodeValidationFailed:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
