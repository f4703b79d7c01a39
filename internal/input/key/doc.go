// Package key defines the keyboard event model consumed by block
// behaviors and the editor controller.
//
// Events arrive from the editing surface (a terminal screen, a test, or
// any other host) already normalized: character keys carry a rune,
// special keys carry a Key constant, and modifier state is a bitmask.
// Block behaviors inspect events and either consume them or decline,
// letting the surface's default editing apply.
package key
