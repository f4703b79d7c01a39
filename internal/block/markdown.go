package block

import "strings"

// MarkdownTriggers returns the literal prefixes that, when typed at the
// start of a block, convert it to kind t. Kinds without a typing
// trigger return nil.
func MarkdownTriggers(t Type) []string {
	switch t {
	case H1, H2, H3:
		return []string{headingPrefix(t)}
	case Code:
		return codeFences
	case TaskList:
		return taskMarkers
	case UnorderedList:
		return bulletMarkers
	case OrderedList:
		return []string{"1. "}
	default:
		return nil
	}
}

// TriggerType resolves typed text to the kind whose trigger prefixes
// it. Kinds are tried in dispatch order, so task-list markers win over
// the bare bullet they start with.
func TriggerType(text string) (Type, bool) {
	for _, t := range types {
		for _, trigger := range MarkdownTriggers(t) {
			if strings.HasPrefix(text, trigger) {
				return t, true
			}
		}
	}
	return Paragraph, false
}

// CanParseMarkdown reports whether text matches kind t's markdown
// syntax. For Table, text may span multiple lines.
func CanParseMarkdown(t Type, text string) bool {
	switch t {
	case H1, H2, H3:
		return canParseHeadingMarkdown(t, text)
	case Code:
		return canParseCodeMarkdown(text)
	case TaskList:
		return canParseTaskMarkdown(text)
	case UnorderedList:
		return canParseBulletMarkdown(text)
	case OrderedList:
		return canParseNumberMarkdown(text)
	case Table:
		return canParseTableMarkdown(text)
	case Paragraph:
		return true
	default:
		return false
	}
}

// ParseMarkdown constructs a populated block from text matching kind
// t's syntax, or nil when the text does not match. It never fails with
// an error.
func ParseMarkdown(t Type, text string) *Block {
	switch t {
	case H1, H2, H3:
		return parseHeadingMarkdown(t, text)
	case Code:
		return parseCodeMarkdown(text)
	case TaskList:
		return parseTaskMarkdown(text)
	case UnorderedList:
		return parseBulletMarkdown(text)
	case OrderedList:
		return parseNumberMarkdown(text)
	case Table:
		return parseTableMarkdown(text)
	case Paragraph:
		return NewWithContent(Paragraph, text)
	default:
		return nil
	}
}

// lineKinds is the order ParseLine tries single-line syntaxes in.
// Table is absent: its syntax spans lines and is grouped by the caller.
var lineKinds = []Type{H1, H2, H3, Code, TaskList, UnorderedList, OrderedList}

// ParseLine dispatches a single markdown line to the first matching
// kind, falling back to a paragraph. It never returns nil.
func ParseLine(line string) *Block {
	for _, t := range lineKinds {
		if b := ParseMarkdown(t, line); b != nil {
			return b
		}
	}
	return NewWithContent(Paragraph, line)
}
