// Package pinpoint renders human-readable diagnostic reports: a primary
// message anchored to a byte range of source text, decorated with labeled
// sub-ranges drawn as a box-drawn terminal diagram with connector lines
// from each label's tick to its message.
//
// # Data model
//
//   - Source: fully read source text plus its display name; the only
//     component with a user-visible failure path (acquisition).
//   - Label: immutable value: byte range, optional message, color, path
//     override and order key. Copies with overrides via the With* methods.
//   - Color / ColorGenerator: closed color value (named, indexed, RGB)
//     and a deterministic generator of pairwise-distinct colors.
//   - Kind: closed report classification mapped through an exhaustive
//     table onto the header word and default color.
//   - Config: the display toggles: Color and Compact.
//   - Report: the façade owning the message, span, labels and footer
//     lines; Render runs the pipeline.
//
// # Pipeline
//
// Render builds (or reuses) a source index, hands the primary span and
// labels to internal/layout for line selection and lane assignment, and
// internal/render emits the literal rows. Malformed label offsets are
// clamped, never rejected: layout and rendering are total over anything
// constructed through this package.
package pinpoint
