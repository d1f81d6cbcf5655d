// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context propagation,
//              formatters and severity-aware error logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/jackc/foundation/core/error"
)

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}

	if logger.level != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.level, DefaultLevel())
	}

	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	})

	if logger.level != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.level, LevelError)
	}
	if logger.name != "test-logger" {
		t.Errorf("NewWithConfig() name = %v, want test-logger", logger.name)
	}
	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestNewWithConfig_Caller(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf, EnableCaller: true})

	logger.Debug("with caller")

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	caller, _ := data["caller"].(string)
	if !strings.HasPrefix(caller, "logger_test.go:") {
		t.Errorf("caller = %q, want logger_test.go:<line>", caller)
	}

	buf.Reset()
	NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf}).Debug("without caller")
	if strings.Contains(buf.String(), `"caller"`) {
		t.Errorf("caller should be omitted by default, got %q", buf.String())
	}
}

func TestNewWithConfig_CallerSurvivesClone(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatText, Output: &buf, EnableCaller: true}).
		WithField("component", "jack-parser")

	logger.Warn("careful")
	if !strings.Contains(buf.String(), "caller=logger_test.go:") {
		t.Errorf("text output should carry the caller, got %q", buf.String())
	}
}

func TestNewWithConfig_DisableColors(t *testing.T) {
	tests := []struct {
		name    string
		disable bool
		wantEsc bool
	}{
		{"colors", false, true},
		{"plain", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithConfig(Config{
				Level:         LevelWarn,
				Format:        FormatConsole,
				Output:        &buf,
				DisableColors: tt.disable,
			})

			logger.Warn("careful")
			if got := strings.Contains(buf.String(), "\033["); got != tt.wantEsc {
				t.Errorf("escape codes present = %v, want %v (%q)", got, tt.wantEsc, buf.String())
			}
		})
	}
}

func TestIsLevelEnabled(t *testing.T) {
	logger := NewWithConfig(Config{Level: LevelDebug, Output: io.Discard})

	if !logger.IsLevelEnabled(LevelWarn) || !logger.IsLevelEnabled(LevelDebug) {
		t.Error("levels at or above debug should be enabled")
	}
	if logger.IsLevelEnabled(LevelTrace) {
		t.Error("trace should be disabled at debug level")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("messages below warn should be dropped, got %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn message missing from output %q", buf.String())
	}
}

func TestLoggerJSONContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf, Name: "jackc"}).
		WithField("component", "jack-compiler").
		WithCorrelationID("session-1")

	logger.Info("unit compiled", Fields{"file": "Main.jack"})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	want := map[string]string{
		"message":        "unit compiled",
		"level":          "info",
		"logger":         "jackc",
		"component":      "jack-compiler",
		"correlation_id": "session-1",
		"file":           "Main.jack",
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("field %s = %v, want %v", k, data[k], v)
		}
	}
}

func TestLoggerWithFieldIsolation(t *testing.T) {
	base := New()
	child := base.WithField("component", "lexer")

	if _, ok := base.contextFields["component"]; ok {
		t.Error("WithField() should not modify the parent logger")
	}
	if child.contextFields["component"] != "lexer" {
		t.Error("WithField() should set the field on the child")
	}
}

func TestLogError_SeverityMapsToLevel(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{
			name:      "syntax fault logs at info",
			err:       mdwerror.New("; expected").WithCode(mdwerror.CodeSyntax),
			wantLevel: "info",
		},
		{
			name:      "store fault logs at warn",
			err:       mdwerror.New("insert failed").WithCode(mdwerror.CodeStoreError),
			wantLevel: "warn",
		},
		{
			name:      "io fault logs at error",
			err:       mdwerror.New("cannot open").WithCode(mdwerror.CodeIOError),
			wantLevel: "error",
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("boom"),
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithConfig(Config{Level: LevelTrace, Format: FormatJSON, Output: &buf})

			logger.LogError(tt.err)

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
		})
	}
}

func TestLogError_IncludesDetails(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelTrace, Format: FormatJSON, Output: &buf})

	logger.LogError(mdwerror.New("; expected").
		WithCode(mdwerror.CodeSyntax).
		WithOperation("compiler.CompileUnit").
		WithDetail("line", 3))

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if data["error_code"] != "SYNTAX" {
		t.Errorf("error_code = %v, want SYNTAX", data["error_code"])
	}
	if data["error_operation"] != "compiler.CompileUnit" {
		t.Errorf("error_operation = %v", data["error_operation"])
	}
	if data["error_line"] != float64(3) {
		t.Errorf("error_line = %v, want 3", data["error_line"])
	}
}

func TestLogError_Nil(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelTrace, Output: &buf})

	logger.LogError(nil)

	if buf.Len() != 0 {
		t.Errorf("LogError(nil) should not write, got %q", buf.String())
	}
}

func TestTextFormatter_SortsFields(t *testing.T) {
	f := &TextFormatter{DisableTimestamp: true}
	entry := NewEntry(LevelInfo, "msg")
	entry.Fields["b"] = 2
	entry.Fields["a"] = 1

	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got, want := string(out), "[INF] msg [a=1 b=2]\n"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestConsoleFormatter_DisableColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true
	f.DisableTimestamp = true

	out, err := f.Format(NewEntry(LevelWarn, "careful"))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if strings.Contains(string(out), "\033[") {
		t.Errorf("Format() should not emit escape codes, got %q", out)
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if lvl, err := ParseLevel("Warning"); err != nil || lvl != LevelWarn {
		t.Errorf("ParseLevel(Warning) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
	if f, err := ParseFormat("JSON"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(JSON) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestTimer_StopWithResult(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf})

	timer := logger.StartTimer("compile_unit").WithField("file", "Main.jack")
	time.Sleep(time.Millisecond)
	elapsed := timer.StopWithResult(true)

	if elapsed <= 0 {
		t.Error("StopWithResult() should return a positive duration")
	}
	if again := timer.StopWithResult(true); again != 0 {
		t.Errorf("second StopWithResult() = %v, want 0", again)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if data["message"] != "compile_unit completed" || data["file"] != "Main.jack" {
		t.Errorf("unexpected timer entry %v", data)
	}
}
