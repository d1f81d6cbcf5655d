// File: filex.go
// Title: Core File Utilities
// Description: File existence checks, whole-file reads and extension
//              filtered directory listings used by the compiler driver
//              and the command line.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-19 v0.2.0: Reduced to source file access, coded errors

package filex

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	mdwerror "github.com/msto63/jackc/foundation/core/error"
)

// ===============================
// File Existence and Basic Info
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ===============================
// File Reading Operations
// ===============================

// ReadString reads the entire file and returns its contents as a string
func ReadString(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", pathError(err, "failed to read file", "filex.ReadString", path)
	}
	return string(content), nil
}

// ===============================
// Directory Operations
// ===============================

// ListFiles returns the regular files of dir whose names end in ext, in
// lexical order. Subdirectories are not descended into, and a file named
// only ext does not match. An empty ext matches every file.
func ListFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, pathError(err, "failed to read directory", "filex.ListFiles", dir)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() {
			continue
		}
		if ext != "" && (len(name) <= len(ext) || !strings.HasSuffix(name, ext)) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}

	sort.Strings(files)
	return files, nil
}

func pathError(err error, msg, op, path string) *mdwerror.Error {
	code := mdwerror.CodeIOError
	if os.IsNotExist(err) {
		code = mdwerror.CodeNotFound
	}
	return mdwerror.Wrap(err, msg).
		WithCode(code).
		WithOperation(op).
		WithDetail("path", path)
}
