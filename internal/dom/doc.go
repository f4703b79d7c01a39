// Package dom provides the lightweight element surface that rendered
// blocks live on.
//
// It stands in for the host document: an Element tree with ordered
// attributes, parent back-pointers, and named event listeners. Parsing
// and serialization bridge to golang.org/x/net/html, and selector
// matching uses cascadia, so HTML fragments round-trip through real
// HTML tooling rather than hand-rolled string surgery.
//
// The package knows nothing about blocks. The rendered-block contract
// (class="block", data-block-type, contenteditable) is applied by the
// block package on top of plain elements.
package dom
