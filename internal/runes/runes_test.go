package runes

import (
	"testing"
)

func TestLen(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"日本語", 3},
	}
	for _, tt := range tests {
		if got := Len(tt.s); got != tt.want {
			t.Errorf("Len(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		name string
		s    string
		i, j int
		want string
	}{
		{"middle", "abcdef", 2, 4, "bcd"},
		{"full", "abc", 1, 3, "abc"},
		{"single", "abc", 2, 2, "b"},
		{"clip low", "abc", 0, 2, "ab"},
		{"clip high", "abc", 2, 10, "bc"},
		{"empty interval", "abc", 3, 2, ""},
		{"multibyte", "héllo", 2, 3, "él"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sub(tt.s, tt.i, tt.j); got != tt.want {
				t.Errorf("Sub(%q, %d, %d) = %q, want %q", tt.s, tt.i, tt.j, got, tt.want)
			}
		})
	}
}

func TestRep(t *testing.T) {
	if got := Rep("─", 3); got != "───" {
		t.Errorf("Rep = %q", got)
	}
	if got := Rep("x", 0); got != "" {
		t.Errorf("Rep with n=0 = %q, want empty", got)
	}
	if got := Rep("x", -1); got != "" {
		t.Errorf("Rep with negative n = %q, want empty", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		want  string
	}{
		{"short kept", "short", 40, "short"},
		{"cut with marker", "averylongpathname.sg", 10, "averylo..."},
		{"width zero disables", "anything", 0, "anything"},
		{"no room for marker", "abcdef", 2, "ab"},
		{"wide runes counted by display width", "日本語テスト", 5, "日..."},
		{"exact fit kept", "abc", 3, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.s, tt.width); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
			}
		})
	}
}
