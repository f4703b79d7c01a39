package editor

import (
	"strings"

	"github.com/dshills/blockdown/internal/block"
)

// FromMarkdown replaces the document with blocks parsed from markdown
// source. Code fences and pipe tables span lines; everything else is
// parsed per line. Blank lines separate blocks. The current block is
// bound to the first parsed block, or to a fresh block of the default
// kind for empty input.
func (e *Editor) FromMarkdown(src string) {
	for _, b := range e.blocks {
		e.dropBlock(b)
	}
	e.blocks = nil
	e.current = nil

	lines := strings.Split(src, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.TrimSpace(line) == "":
			continue

		case block.CanParseMarkdown(block.Code, line):
			chunk := []string{line}
			for i++; i < len(lines); i++ {
				chunk = append(chunk, lines[i])
				if block.CanParseMarkdown(block.Code, lines[i]) {
					break
				}
			}
			e.appendParsed(block.ParseMarkdown(block.Code, strings.Join(chunk, "\n")))

		case strings.Contains(line, "|") && i+1 < len(lines) && strings.Contains(lines[i+1], "|"):
			chunk := []string{line}
			for i+1 < len(lines) && strings.Contains(lines[i+1], "|") {
				i++
				chunk = append(chunk, lines[i])
			}
			text := strings.Join(chunk, "\n")
			if b := block.ParseMarkdown(block.Table, text); b != nil {
				e.appendParsed(b)
				continue
			}
			// Not a table after all; fall back to per-line parsing.
			for _, l := range chunk {
				e.appendParsed(block.ParseLine(l))
			}

		default:
			e.appendParsed(block.ParseLine(line))
		}
	}

	if len(e.blocks) == 0 {
		e.blocks = []*block.Block{block.New(e.defaultKind)}
		e.renderBlock(e.blocks[0])
	}
	e.SetCurrent(e.blocks[0])
}

// appendParsed appends a parsed block to the sequence and renders it.
func (e *Editor) appendParsed(b *block.Block) {
	if b == nil {
		return
	}
	e.blocks = append(e.blocks, b)
	e.renderBlock(b)
}

// Markdown serializes the document. Consecutive list items stay
// adjacent; other block boundaries get a blank line, so the output
// reparses into the same sequence.
func (e *Editor) Markdown() string {
	var sb strings.Builder
	for i, b := range e.blocks {
		if i > 0 {
			if b.Type().IsListItem() && e.blocks[i-1].Type().IsListItem() {
				sb.WriteString("\n")
			} else {
				sb.WriteString("\n\n")
			}
		}
		sb.WriteString(b.ToMarkdown())
	}
	return sb.String()
}
