package caret

import (
	"bytes"
	"strings"
	"testing"
)

func TestEmit_EndToEnd(t *testing.T) {
	f := NewFile("main.sg", "let x = 1;\n")
	out, err := Emit(New(Error).
		WithHeader("E0042", "unresolved name").
		WithLabel(Primary, f.MustSpan(5, 5), "not found in this scope").
		WithNote("declare it first"))
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}

	want := strings.Join([]string{
		"error[E0042]: unresolved name",
		"  ┌─ main.sg:1:1",
		"1 │ let x = 1;",
		"  │     ^ not found in this scope",
		"  = declare it first",
	}, "\n")
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestFprint_TrailingNewline(t *testing.T) {
	f := NewFile("main.sg", "x\n")
	var buf bytes.Buffer
	if err := Fprint(&buf, New(Warning).WithLabel(Primary, f.MustSpan(1, 1), "w"), DefaultOptions()); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("Fprint should end with a newline")
	}
}

func TestFileSet_RoundTrip(t *testing.T) {
	fs := NewFileSet()
	f := fs.AddVirtual("lib.sg", "pub fn id(x) { x }\n")
	if got, ok := fs.GetByPath("lib.sg"); !ok || got != f {
		t.Fatal("GetByPath failed after AddVirtual")
	}
}
