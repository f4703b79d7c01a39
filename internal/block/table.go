package block

import (
	"strings"

	"github.com/dshills/blockdown/internal/dom"
	"github.com/dshills/blockdown/internal/input/key"
)

// tableBehavior implements pipe-delimited tables. Headers and body
// rows live on the behavior and are rebuilt whenever the block is
// reparsed or converted.
type tableBehavior struct {
	headers []string
	rows    [][]string
}

func (t *tableBehavior) Type() Type { return Table }

// Headers returns the declared column headers.
func (t *tableBehavior) Headers() []string { return t.headers }

// Rows returns the body rows.
func (t *tableBehavior) Rows() [][]string { return t.rows }

func (t *tableBehavior) HandleKey(*Block, key.Event, string) bool { return false }

// HandleEnter always intercepts and appends a fresh empty row instead
// of splitting the block.
func (t *tableBehavior) HandleEnter(_ *Block, _ key.Event) bool {
	t.rows = append(t.rows, make([]string, len(t.headers)))
	return true
}

func (t *tableBehavior) Transform(tb Toolbar) error { return tb.Table() }

func (t *tableBehavior) ToMarkdown(b *Block) string {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return b.Content
	}
	var lines []string
	lines = append(lines, "| "+strings.Join(t.headers, " | ")+" |")

	seps := make([]string, len(t.headers))
	for i := range seps {
		seps[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(seps, " | ")+" |")

	for _, row := range t.rows {
		lines = append(lines, "| "+strings.Join(row, " | ")+" |")
	}
	return strings.Join(lines, "\n")
}

func (t *tableBehavior) ToHTML(b *Block) string { return t.Render(b).OuterHTML() }

func (t *tableBehavior) Render(b *Block) *dom.Element {
	table := dom.NewElement("table",
		dom.Attr{Key: "class", Val: ClassBlock},
		dom.Attr{Key: AttrType, Val: Table.String()})

	head := dom.NewElement("thead")
	headRow := dom.NewElement("tr")
	for _, h := range t.headers {
		th := dom.NewElement("th")
		th.SetTextContent(h)
		headRow.Append(th)
	}
	head.Append(headRow)
	table.Append(head)

	body := dom.NewElement("tbody")
	for _, row := range t.rows {
		tr := dom.NewElement("tr")
		for _, cell := range row {
			td := dom.NewElement("td", dom.Attr{Key: "contenteditable", Val: "true"})
			td.SetTextContent(cell)
			tr.Append(td)
		}
		body.Append(tr)
	}
	table.Append(body)
	return table
}

// splitCells splits a pipe-delimited line into trimmed cells, dropping
// every empty cell. For the header line this only removes the empties
// produced by the leading and trailing delimiters; for body rows it
// also removes blank interior cells, so a row may end up shorter than
// the header. That asymmetry is deliberate, observed behavior.
func splitCells(line string) []string {
	var cells []string
	for _, c := range strings.Split(line, "|") {
		c = strings.TrimSpace(c)
		if c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

// parseTableContent parses pipe-delimited markdown. Unparseable input
// yields empty headers and rows, never an error: fewer than two
// non-empty lines, or a first line without a pipe, is simply not a
// table. The second line is the delimiter row and is skipped no matter
// what it contains. Body rows that lose every cell are dropped.
func parseTableContent(text string) (headers []string, rows [][]string) {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 || !strings.Contains(lines[0], "|") {
		return nil, nil
	}

	headers = splitCells(lines[0])
	for _, l := range lines[2:] {
		if row := splitCells(l); len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return headers, rows
}

func canParseTableMarkdown(text string) bool {
	headers, _ := parseTableContent(text)
	return len(headers) > 0
}

func parseTableMarkdown(text string) *Block {
	headers, rows := parseTableContent(text)
	if len(headers) == 0 {
		return nil
	}
	b := NewWithContent(Table, text)
	tb := b.behavior.(*tableBehavior)
	tb.headers = headers
	tb.rows = rows
	return b
}

func canParseTableHTML(el *dom.Element) bool {
	return el.Tag == "table"
}

func parseTableHTML(el *dom.Element) *Block {
	b := New(Table)
	tb := b.behavior.(*tableBehavior)

	for _, th := range el.Query("th") {
		tb.headers = append(tb.headers, strings.TrimSpace(th.TextContent()))
	}
	for _, tr := range el.Query("tr") {
		var row []string
		for _, td := range tr.Query("td") {
			if cell := strings.TrimSpace(td.TextContent()); cell != "" {
				row = append(row, cell)
			}
		}
		if len(row) > 0 {
			tb.rows = append(tb.rows, row)
		}
	}

	b.Content = tb.ToMarkdown(b)
	b.HTML = el.OuterHTML()
	return b
}

// TableState returns the headers and rows of a table block. Empty for
// any other kind.
func TableState(b *Block) (headers []string, rows [][]string) {
	if t, ok := b.Behavior().(*tableBehavior); ok {
		return t.headers, t.rows
	}
	return nil, nil
}

// ParseTableContent exposes the table parsing policy for callers that
// want the raw state without a block.
func ParseTableContent(text string) (headers []string, rows [][]string) {
	return parseTableContent(text)
}
