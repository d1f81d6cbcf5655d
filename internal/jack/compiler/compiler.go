// File: compiler.go
// Title: Jack Compilation Driver
// Description: Runs the scanner and parser over single units and whole
//              directories, stopping at the first faulty unit. Each unit
//              gets a fresh scope table, and outcomes can be recorded to
//              the run history.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package compiler

import (
	"context"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/jackc/foundation/core/error"
	mdwlog "github.com/msto63/jackc/foundation/core/log"
	"github.com/msto63/jackc/foundation/utils/filex"
	"github.com/msto63/jackc/internal/jack/lexer"
	"github.com/msto63/jackc/internal/jack/parser"
	"github.com/msto63/jackc/internal/jack/symbols"
	"github.com/msto63/jackc/internal/store"
)

// DefaultExtension selects Jack sources in a directory
const DefaultExtension = ".jack"

// Recorder receives one run per compiled unit
type Recorder interface {
	Record(ctx context.Context, run *store.Run) error
}

// Options configures the compiler
type Options struct {
	Logger    *mdwlog.Logger
	Extension string
	Recorder  Recorder
}

// UnitResult is the outcome of one compiled unit
type UnitResult struct {
	File     string
	Result   parser.Result
	Duration time.Duration
}

// Summary is the outcome of a compilation session. Failed points into
// Units at the unit that stopped the session.
type Summary struct {
	SessionID string
	Units     []UnitResult
	Failed    *UnitResult
}

// OK reports whether every unit compiled
func (s Summary) OK() bool {
	return s.Failed == nil
}

// Compiler drives the front end over source units
type Compiler struct {
	table     *symbols.Table
	recorder  Recorder
	ext       string
	base      *mdwlog.Logger
	logger    *mdwlog.Logger
	sessionID string
	inited    bool
}

// New creates a compiler. Init must be called before compiling.
func New(opts Options) *Compiler {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}

	base := opts.Logger.WithField("component", "jack-compiler")
	return &Compiler{
		table:    symbols.New(),
		recorder: opts.Recorder,
		ext:      opts.Extension,
		base:     base,
		logger:   base,
	}
}

// Init resets the scope table and starts a new session
func (c *Compiler) Init() {
	c.table.ResetAll()
	c.sessionID = uuid.New().String()
	c.logger = c.base.WithCorrelationID(c.sessionID)
	c.inited = true

	c.logger.Debug("Compiler initialized", mdwlog.Fields{"extension": c.ext})
}

// Stop ends the session. Compiling again requires Init.
func (c *Compiler) Stop() {
	if !c.inited {
		return
	}
	c.inited = false
	c.logger.Debug("Compiler stopped")
}

// SessionID returns the ID of the current session
func (c *Compiler) SessionID() string {
	return c.sessionID
}

// Table returns the scope table filled by the last compiled unit
func (c *Compiler) Table() *symbols.Table {
	return c.table
}

// CompileUnit scans and parses one file. The error return covers tool
// faults only; faults in the source are reported in the Result.
func (c *Compiler) CompileUnit(path string) (parser.Result, error) {
	unit, err := c.compileUnit(path)
	if err != nil {
		return parser.Result{}, err
	}
	return unit.Result, nil
}

// CompileDir compiles every source file of dir in lexical order and stops
// at the first faulty unit.
func (c *Compiler) CompileDir(dir string) (Summary, error) {
	files, err := SourceFiles(dir, c.ext)
	if err != nil {
		return Summary{SessionID: c.sessionID}, err
	}
	return c.CompileFiles(files)
}

// Compile accepts files and directories. Directories expand to their
// source files; the session stops at the first faulty unit.
func (c *Compiler) Compile(paths ...string) (Summary, error) {
	var files []string
	for _, p := range paths {
		if !filex.Exists(p) {
			return Summary{SessionID: c.sessionID}, mdwerror.New("source path not found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("compiler.Compile").
				WithDetail("path", p)
		}
		if !filex.IsDir(p) {
			files = append(files, p)
			continue
		}
		dirFiles, err := SourceFiles(p, c.ext)
		if err != nil {
			return Summary{SessionID: c.sessionID}, err
		}
		files = append(files, dirFiles...)
	}
	return c.CompileFiles(files)
}

// CompileFiles compiles the files in the given order and stops at the
// first faulty unit.
func (c *Compiler) CompileFiles(files []string) (Summary, error) {
	summary := Summary{SessionID: c.sessionID}

	for _, file := range files {
		unit, err := c.compileUnit(file)
		if err != nil {
			return summary, err
		}
		summary.Units = append(summary.Units, unit)
		if !unit.Result.OK() {
			summary.Failed = &summary.Units[len(summary.Units)-1]
			break
		}
	}

	c.logger.Info("Session finished", mdwlog.Fields{
		"units": len(summary.Units),
		"ok":    summary.OK(),
	})
	return summary, nil
}

func (c *Compiler) compileUnit(path string) (UnitResult, error) {
	if !c.inited {
		return UnitResult{}, mdwerror.New("compiler not initialized").
			WithCode(mdwerror.CodeNotInitialized).
			WithOperation("compiler.CompileUnit").
			WithDetail("file", path)
	}

	// Class scope lives for one unit
	c.table.ResetAll()

	scanner, err := lexer.Open(path)
	if err != nil {
		return UnitResult{}, err
	}
	defer scanner.Close()

	timer := c.logger.StartTimer("compile_unit").WithField("file", path)
	start := time.Now()

	res := parser.New(scanner, parser.Options{
		Logger:   c.logger,
		Declarer: c.table,
		Unit:     path,
	}).Parse()

	unit := UnitResult{File: path, Result: res, Duration: time.Since(start)}
	timer.StopWithResult(res.OK())

	if err := scanner.Err(); err != nil {
		return unit, ioError(err, "failed to read source file", "compiler.CompileUnit", path)
	}

	if !res.OK() {
		c.logger.LogError(AsError(res))
	}
	c.record(unit)

	return unit, nil
}

func (c *Compiler) record(unit UnitResult) {
	if c.recorder == nil {
		return
	}

	run := &store.Run{
		SessionID:  c.sessionID,
		File:       unit.File,
		Status:     store.StatusOK,
		DurationMs: float64(unit.Duration.Nanoseconds()) / 1e6,
	}
	if !unit.Result.OK() {
		run.Status = store.StatusFailed
		run.Kind = unit.Result.Kind.String()
		run.Lexeme = unit.Result.Token.Value
		run.Line = unit.Result.Token.Line
	}

	// History is best effort; a failing store never fails a compile
	if err := c.recorder.Record(context.Background(), run); err != nil {
		c.logger.LogError(err)
	}
}

// SourceFiles lists the files of dir ending in ext, in lexical order.
// A file named only ext is skipped.
func SourceFiles(dir, ext string) ([]string, error) {
	return filex.ListFiles(dir, ext)
}

// AsError converts a failed result into a structured error carrying the
// fault kind, lexeme, line and file. It returns nil for success.
func AsError(res parser.Result) error {
	if res.OK() {
		return nil
	}

	code := mdwerror.CodeSyntax
	if res.Kind == parser.LexerError {
		code = mdwerror.CodeLexical
	}

	err := mdwerror.Wrap(res.Err(), "source rejected").
		WithCode(code).
		WithOperation("compiler.CompileUnit").
		WithDetail("kind", res.Kind.String()).
		WithDetail("lexeme", res.Token.Value).
		WithDetail("line", res.Token.Line).
		WithDetail("file", res.Token.File)
	if res.Token.Code != lexer.ErrNone {
		err = err.WithDetail("lexical", res.Token.Code.String())
	}
	return err
}

func ioError(err error, msg, op, path string) *mdwerror.Error {
	return mdwerror.Wrap(err, msg).
		WithCode(mdwerror.CodeIOError).
		WithOperation(op).
		WithDetail("path", path)
}
