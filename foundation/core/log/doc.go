// Package log provides structured logging for the jackc toolchain.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logging with persistent context fields, a session
//              correlation ID, JSON, text and console output formats and
//              severity-aware logging of structured errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Usage:
//
//	import mdwlog "github.com/msto63/jackc/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:        mdwlog.LevelDebug,
//		Format:       mdwlog.FormatJSON,
//		EnableCaller: true,
//	}).
//		WithField("component", "jack-compiler").
//		WithCorrelationID(sessionID)
//
//	logger.Info("unit compiled", mdwlog.Fields{"file": path})
//
//	timer := logger.StartTimer("compile_unit")
//	// ... compile
//	timer.StopWithResult(ok)
package log
