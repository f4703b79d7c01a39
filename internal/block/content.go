package block

import "github.com/rivo/uniseg"

// ContentLength returns the length of text in grapheme clusters, the
// unit caret offsets are measured in.
func ContentLength(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// SplitContent divides text at the given grapheme-cluster offset.
// Offsets are clamped to [0, ContentLength(text)], so a split never
// lands inside a cluster and never fails.
func SplitContent(text string, at int) (left, right string) {
	if at <= 0 {
		return "", text
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
		if n == at {
			_, to := g.Positions()
			return text[:to], text[to:]
		}
	}
	return text, ""
}
