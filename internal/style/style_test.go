package style

import (
	"bytes"
	"testing"
)

func TestCompose_LeftFold(t *testing.T) {
	a := func(s string) string { return "a(" + s + ")" }
	b := func(s string) string { return "b(" + s + ")" }
	if got := Compose(a, b)("x"); got != "b(a(x))" {
		t.Errorf("Compose = %q, want left fold b(a(x))", got)
	}
}

func TestApply(t *testing.T) {
	wrap := func(s string) string { return "<" + s + ">" }
	if got := Apply("x", []Fn{wrap, wrap}); got != "<<x>>" {
		t.Errorf("Apply = %q", got)
	}
	if got := Apply("x", nil); got != "x" {
		t.Errorf("Apply with no fns = %q, want passthrough", got)
	}
}

func TestPlain_IsIdentity(t *testing.T) {
	tpl := Plain()
	for name, fn := range map[string]Fn{
		"Error":     tpl.Error,
		"Bug":       tpl.Bug,
		"Warning":   tpl.Warning,
		"Note":      tpl.Note,
		"Help":      tpl.Help,
		"Bold":      tpl.Bold,
		"Secondary": tpl.Secondary,
		"Code":      tpl.Code,
		"Gutter":    tpl.Gutter,
	} {
		if got := fn("text"); got != "text" {
			t.Errorf("Plain().%s = %q, want passthrough", name, got)
		}
	}
}

func TestAutoEnable_NonFile(t *testing.T) {
	if AutoEnable(&bytes.Buffer{}) {
		t.Error("AutoEnable must be false for non-file writers")
	}
}
