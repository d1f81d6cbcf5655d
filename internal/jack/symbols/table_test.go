// File: table_test.go
// Title: Scope Table Tests
// Description: Tests for index density, counts, shadowing and resets.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package symbols

import (
	"fmt"
	"testing"
)

func TestTable_DenseIndicesPerKind(t *testing.T) {
	kinds := []Kind{KindStatic, KindField, KindArg, KindVar}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			table := New()
			const n = 5
			for i := 0; i < n; i++ {
				table.Define(fmt.Sprintf("%s%d", kind, i), "int", kind)
			}

			if got := table.VarCount(kind); got != n {
				t.Errorf("VarCount(%s) = %d, want %d", kind, got, n)
			}
			for i := 0; i < n; i++ {
				name := fmt.Sprintf("%s%d", kind, i)
				if got := table.IndexOf(name); got != i {
					t.Errorf("IndexOf(%s) = %d, want %d", name, got, i)
				}
			}
		})
	}
}

func TestTable_KindsCountIndependently(t *testing.T) {
	table := New()
	table.Define("a", "int", KindStatic)
	table.Define("b", "int", KindField)
	table.Define("c", "Point", KindStatic)
	table.Define("d", "char", KindArg)
	table.Define("e", "boolean", KindVar)
	table.Define("f", "int", KindArg)

	tests := []struct {
		name  string
		kind  Kind
		index int
		typ   string
	}{
		{"a", KindStatic, 0, "int"},
		{"b", KindField, 0, "int"},
		{"c", KindStatic, 1, "Point"},
		{"d", KindArg, 0, "char"},
		{"e", KindVar, 0, "boolean"},
		{"f", KindArg, 1, "int"},
	}
	for _, tt := range tests {
		if got := table.KindOf(tt.name); got != tt.kind {
			t.Errorf("KindOf(%s) = %s, want %s", tt.name, got, tt.kind)
		}
		if got := table.IndexOf(tt.name); got != tt.index {
			t.Errorf("IndexOf(%s) = %d, want %d", tt.name, got, tt.index)
		}
		if got := table.TypeOf(tt.name); got != tt.typ {
			t.Errorf("TypeOf(%s) = %s, want %s", tt.name, got, tt.typ)
		}
	}

	counts := map[Kind]int{KindStatic: 2, KindField: 1, KindArg: 2, KindVar: 1, KindNone: 0}
	for kind, want := range counts {
		if got := table.VarCount(kind); got != want {
			t.Errorf("VarCount(%s) = %d, want %d", kind, got, want)
		}
	}
}

func TestTable_Shadowing(t *testing.T) {
	table := New()
	table.Define("x", "int", KindField)
	table.Define("x", "char", KindVar)

	if got := table.KindOf("x"); got != KindVar {
		t.Fatalf("KindOf(x) = %s, want var", got)
	}
	if got := table.TypeOf("x"); got != "char" {
		t.Fatalf("TypeOf(x) = %s, want char", got)
	}

	table.ResetSubroutine()

	if got := table.KindOf("x"); got != KindField {
		t.Errorf("after ResetSubroutine KindOf(x) = %s, want field", got)
	}
	if got := table.TypeOf("x"); got != "int" {
		t.Errorf("after ResetSubroutine TypeOf(x) = %s, want int", got)
	}
}

func TestTable_RedefinitionInSameScope(t *testing.T) {
	table := New()
	table.Define("x", "int", KindStatic)
	table.Define("x", "boolean", KindStatic)

	if got := table.TypeOf("x"); got != "boolean" {
		t.Errorf("TypeOf(x) = %s, want the newer boolean", got)
	}
	if got := table.IndexOf("x"); got != 1 {
		t.Errorf("IndexOf(x) = %d, want 1", got)
	}
	if got := table.VarCount(KindStatic); got != 2 {
		t.Errorf("VarCount(static) = %d, want 2", got)
	}
}

func TestTable_NotFoundSentinels(t *testing.T) {
	table := New()

	if got := table.KindOf("missing"); got != KindNone {
		t.Errorf("KindOf() = %s, want none", got)
	}
	if got := table.TypeOf("missing"); got != "" {
		t.Errorf("TypeOf() = %q, want empty", got)
	}
	if got := table.IndexOf("missing"); got != -1 {
		t.Errorf("IndexOf() = %d, want -1", got)
	}
	if _, ok := table.Lookup("missing"); ok {
		t.Error("Lookup() should report not found")
	}
}

func TestTable_DefineNoneIsIgnored(t *testing.T) {
	table := New()
	table.Define("ghost", "int", KindNone)

	if table.KindOf("ghost") != KindNone {
		t.Error("Define with KindNone should not add a symbol")
	}
	if len(table.ClassSymbols())+len(table.SubroutineSymbols()) != 0 {
		t.Error("both scopes should stay empty")
	}
}

func TestTable_ResetAll(t *testing.T) {
	table := New()
	table.Define("s", "int", KindStatic)
	table.Define("a", "int", KindArg)

	table.ResetAll()

	for _, kind := range []Kind{KindStatic, KindField, KindArg, KindVar} {
		if got := table.VarCount(kind); got != 0 {
			t.Errorf("VarCount(%s) = %d after ResetAll", kind, got)
		}
	}
	table.Define("t", "int", KindStatic)
	if got := table.IndexOf("t"); got != 0 {
		t.Errorf("IndexOf(t) = %d, want indices to restart at 0", got)
	}
}

func TestTable_Snapshots(t *testing.T) {
	table := New()
	table.Define("a", "int", KindField)
	table.Define("b", "int", KindStatic)
	table.Define("p", "int", KindArg)

	class := table.ClassSymbols()
	if len(class) != 2 || class[0].Name != "a" || class[1].Name != "b" {
		t.Fatalf("ClassSymbols() = %v", class)
	}

	class[0].Name = "mutated"
	if table.ClassSymbols()[0].Name != "a" {
		t.Error("snapshot must not alias the table")
	}

	sub := table.SubroutineSymbols()
	if len(sub) != 1 || sub[0] != (Symbol{Name: "p", Type: "int", Kind: KindArg, Index: 0}) {
		t.Errorf("SubroutineSymbols() = %v", sub)
	}
}

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"static":   KindStatic,
		"Field":    KindField,
		"argument": KindArg,
		"arg":      KindArg,
		"var":      KindVar,
		"local":    KindVar,
	}
	for input, want := range tests {
		got, err := ParseKind(input)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %s, %v, want %s", input, got, err, want)
		}
	}
	if _, err := ParseKind("global"); err == nil {
		t.Error("ParseKind(global) should fail")
	}
}
