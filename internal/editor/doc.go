// Package editor owns the document block sequence and the current-block
// binding.
//
// The Editor holds an ordered sequence of block handles plus a single
// current-block pointer naming which block the next keyboard or toolbar
// action targets. Every structural mutation (split, merge, delete-all,
// insert, type conversion) rebinds the pointer before returning, so it
// can never dangle. Rendered elements are resolved back to their blocks
// through an explicit identity map maintained on every mutation, not
// through tree traversal at lookup time.
//
// All mutations are synchronous. The only deferred work is the
// one-frame focus task queued after inserting a block; it carries no
// data-model state, so a caller observing the editor immediately after
// a mutation always sees a consistent sequence.
package editor
