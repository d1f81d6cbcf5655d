// Package filex provides the file helpers of the jackc toolchain.
//
// Package: filex
// Title: File Operations
// Description: Existence checks, whole-file reads and directory listings
//              filtered by extension. Failures are returned as structured
//              errors with CodeNotFound or CodeIOError.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-01-26 v0.1.1: Enhanced documentation with examples
// - 2026-10-19 v0.2.0: Reduced to source file access
//
// Usage:
//
//	files, err := filex.ListFiles("src", ".jack")
//	if err != nil {
//		return err
//	}
//	for _, f := range files {
//		// ...
//	}
package filex
