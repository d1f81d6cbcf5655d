// Package error provides structured errors for the jackc toolchain.
//
// Package: error
// Title: Structured Error Handling
// Description: Errors carry a code, a severity derived from the code, the
//              failing operation and key/value details. The logger reads
//              these to choose levels and fields; the CLI maps codes to
//              exit statuses.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Usage:
//
//	err := error.New("cannot open source").
//		WithCode(error.CodeIOError).
//		WithOperation("compiler.CompileUnit").
//		WithDetail("file", path)
//
//	if error.HasCode(err, error.CodeIOError) {
//		// ...
//	}
package error
