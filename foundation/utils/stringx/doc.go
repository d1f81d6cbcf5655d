// Package stringx provides Unicode-aware string helpers.
//
// Package: stringx
// Title: String Utilities
// Description: Blank checks, truncation and padding used when validating
//              configuration and aligning terminal output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
package stringx
