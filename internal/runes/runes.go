// Package runes holds the codepoint-aware string primitives the renderer
// slices with. Positions are 1-based and inclusive; multi-byte sequences are
// never split.
package runes

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Len returns the codepoint count of s.
func Len(s string) int {
	return len([]rune(s))
}

// Sub returns the substring covering codepoints i..j inclusive, 1-based.
// Out-of-range bounds are clipped; an empty string is returned when the
// clipped interval is empty.
func Sub(s string, i, j int) string {
	rs := []rune(s)
	if i < 1 {
		i = 1
	}
	if j > len(rs) {
		j = len(rs)
	}
	if i > j {
		return ""
	}
	return string(rs[i-1 : j])
}

// Rep repeats s n times; n <= 0 yields the empty string.
func Rep(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

// Truncate caps s at the given display width. A cut is marked with "...",
// which counts against the width; when the budget cannot fit the marker the
// string is simply cut short. Width 0 disables the cap.
func Truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	tail := "..."
	budget := width - runewidth.StringWidth(tail)
	if budget < 1 {
		tail = ""
		budget = width
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > budget {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + tail
}
