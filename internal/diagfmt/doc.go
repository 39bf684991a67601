// Package diagfmt renders diagnostics into human-readable, optionally
// colorized terminal output: a header line, per-file code snippets with line
// numbers, caret and dash underlines, rounded multi-line brackets in the left
// gutter, gap markers between non-consecutive lines, and a footer of notes.
//
// The renderer is purely computational: no IO, no suspension, no shared
// mutable state between renderings. All per-render state (label depths,
// bracket tracking, color claims) lives in the render context, so distinct
// diagnostics over the same files render concurrently without coordination.
//
// Character indexing is codepoint-aware throughout. The returned string
// carries embedded escape sequences when color is enabled and must not be
// sliced further by callers.
package diagfmt
