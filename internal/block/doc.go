// Package block implements the block model: one handle type carrying a
// stable identity, and one behavior per block kind.
//
// A Block is the unit a document sequence holds. It owns exactly one
// Behavior matching its current Type and delegates key handling,
// Markdown/HTML conversion, and rendering to it. Converting a block's
// type swaps the behavior in place without disturbing the handle's
// identity, so a block never changes position in its document when its
// kind changes.
//
// Kind-specific parsing is exposed as free functions keyed by Type
// (MarkdownTriggers, CanParseMarkdown, ParseMarkdown, CanParseHTML,
// ParseHTML) plus the dispatchers ParseLine and ParseFragment. Parse
// functions return nil on non-matching input, never an error.
package block
