// Package diag defines the diagnostic model consumed by the renderer.
//
// # Purpose
//
//   - Provide deterministic data structures that capture a message about one
//     or more source regions: severity, optional header, visible ranges,
//     labels, notes, and free-form colorizations.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, or interactive behaviour.
// Rendering responsibilities live in internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record. It is built through chainable With*
// mutators and consumed read-only by the renderer. Labels pointing at the
// identical region of the same file are deduplicated at insertion: the first
// one wins, the duplicate is dropped, and the attached Logger receives a
// warning. No other validation happens at insertion time; illegal coordinates
// surface later from the renderer.
//
// Keep the data model deterministic: rendering the same diagnostic twice must
// produce byte-identical output, so any new fields should avoid maps without
// ordered iteration and avoid side effects.
package diag
