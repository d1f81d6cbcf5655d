// File: table.go
// Title: Jack Scope Table
// Description: Two flat scopes mapping identifiers to type, storage kind
//              and a dense per-kind index. Static and field symbols live in
//              the class scope; arguments and locals live in the subroutine
//              scope, which shadows the class scope on lookup.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package symbols

import (
	"fmt"
	"strings"
)

// Kind is the storage kind of a symbol
type Kind int

const (
	KindStatic Kind = iota
	KindField
	KindArg
	KindVar
	KindNone
)

// String returns the Jack keyword naming the kind
func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindField:
		return "field"
	case KindArg:
		return "argument"
	case KindVar:
		return "var"
	default:
		return "none"
	}
}

// ParseKind parses a kind name. "arg" is accepted for argument and
// "local" for var.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "static":
		return KindStatic, nil
	case "field":
		return KindField, nil
	case "argument", "arg":
		return KindArg, nil
	case "var", "local":
		return KindVar, nil
	default:
		return KindNone, fmt.Errorf("unknown symbol kind %q", s)
	}
}

func (k Kind) classScoped() bool {
	return k == KindStatic || k == KindField
}

func (k Kind) subroutineScoped() bool {
	return k == KindArg || k == KindVar
}

// Symbol is a defined identifier. Index counts symbols of the same kind
// in the same scope, starting at 0.
type Symbol struct {
	Name  string
	Type  string
	Kind  Kind
	Index int
}

type scope struct {
	symbols []Symbol
	counts  [KindNone]int
}

func (s *scope) reset() {
	s.symbols = s.symbols[:0]
	s.counts = [KindNone]int{}
}

func (s *scope) define(name, typ string, kind Kind) {
	s.symbols = append(s.symbols, Symbol{Name: name, Type: typ, Kind: kind, Index: s.counts[kind]})
	s.counts[kind]++
}

// find searches newest first so a redefinition shadows the older entry
func (s *scope) find(name string) (Symbol, bool) {
	for i := len(s.symbols) - 1; i >= 0; i-- {
		if s.symbols[i].Name == name {
			return s.symbols[i], true
		}
	}
	return Symbol{}, false
}

func (s *scope) snapshot() []Symbol {
	out := make([]Symbol, len(s.symbols))
	copy(out, s.symbols)
	return out
}

// Table holds the class scope and the subroutine scope.
// The zero value is an empty table ready for use.
type Table struct {
	class      scope
	subroutine scope
}

// New creates an empty table
func New() *Table {
	return &Table{}
}

// ResetAll empties both scopes
func (t *Table) ResetAll() {
	t.class.reset()
	t.subroutine.reset()
}

// ResetSubroutine empties the subroutine scope only
func (t *Table) ResetSubroutine() {
	t.subroutine.reset()
}

// Define adds a symbol to the scope selected by kind and assigns it the
// next index of that kind. Duplicates are not rejected; the newer symbol
// shadows the older one. KindNone is ignored.
func (t *Table) Define(name, typ string, kind Kind) {
	switch {
	case kind.classScoped():
		t.class.define(name, typ, kind)
	case kind.subroutineScoped():
		t.subroutine.define(name, typ, kind)
	}
}

// VarCount returns how many symbols of kind are defined in its scope
func (t *Table) VarCount(kind Kind) int {
	switch {
	case kind.classScoped():
		return t.class.counts[kind]
	case kind.subroutineScoped():
		return t.subroutine.counts[kind]
	default:
		return 0
	}
}

// Lookup finds name in the subroutine scope, then in the class scope
func (t *Table) Lookup(name string) (Symbol, bool) {
	if sym, ok := t.subroutine.find(name); ok {
		return sym, true
	}
	return t.class.find(name)
}

// KindOf returns the kind of name, or KindNone if it is undefined
func (t *Table) KindOf(name string) Kind {
	if sym, ok := t.Lookup(name); ok {
		return sym.Kind
	}
	return KindNone
}

// TypeOf returns the declared type of name, or "" if it is undefined
func (t *Table) TypeOf(name string) string {
	if sym, ok := t.Lookup(name); ok {
		return sym.Type
	}
	return ""
}

// IndexOf returns the index of name, or -1 if it is undefined
func (t *Table) IndexOf(name string) int {
	if sym, ok := t.Lookup(name); ok {
		return sym.Index
	}
	return -1
}

// ClassSymbols returns the class scope in definition order
func (t *Table) ClassSymbols() []Symbol {
	return t.class.snapshot()
}

// SubroutineSymbols returns the subroutine scope in definition order
func (t *Table) SubroutineSymbols() []Symbol {
	return t.subroutine.snapshot()
}
