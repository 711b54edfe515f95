package scandown

import (
	"bytes"

	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/diag"
)

// tryTable recognizes a GFM table: a header row followed by a delimiter
// row, or -- the headerless variant -- a delimiter row directly followed
// by one or more body rows with no preceding header. Body rows continue
// until a blank line, a non-table-looking line, or a row whose cell count
// disagrees with the delimiter row's column count.
func (sc *scanner) tryTable(lines []line) (*ast.Node, int, bool) {
	if len(lines) == 0 {
		return nil, 0, false
	}

	headerless := false
	var aligns []ast.Align
	var headerCells []string
	headerIdx := 0

	if al, ok := parseDelimiterRow(lines[0].bytes); ok {
		headerless = true
		aligns = al
	} else if len(lines) > 1 {
		if al, ok := parseDelimiterRow(lines[1].bytes); ok {
			cells := splitTableRow(lines[0].bytes)
			if len(cells) != len(al) {
				return nil, 0, false
			}
			aligns = al
			headerCells = cells
			headerIdx = 1
		} else {
			return nil, 0, false
		}
	} else {
		return nil, 0, false
	}

	n := ast.New(ast.Table)
	n.Alignments = aligns

	if !headerless {
		head := ast.New(ast.TableHead)
		row := ast.New(ast.TableRow)
		row.Header = true
		for ci, text := range headerCells {
			cell := ast.New(ast.TableCell)
			cell.Header = true
			cell.Align = aligns[ci]
			cell.Literal = text
			row.AppendChild(cell)
		}
		head.AppendChild(row)
		n.AppendChild(head)
	}

	bodyStart := headerIdx + 1
	bodyNode := ast.New(ast.TableBody)
	i := bodyStart
	for i < len(lines) {
		ln := lines[i]
		if isBlank(ln.bytes) {
			break
		}
		cells := splitTableRow(ln.bytes)
		if len(cells) != len(aligns) {
			if len(cells) > 0 {
				sc.diags.Addf(diag.Info, spanOfOne(ln), diag.MalformedTableRow,
					"table row has %d cells, expected %d; table ends here", len(cells), len(aligns))
			}
			break
		}
		row := ast.New(ast.TableRow)
		for ci, text := range cells {
			cell := ast.New(ast.TableCell)
			cell.Align = aligns[ci]
			cell.Literal = text
			row.AppendChild(cell)
		}
		row.Span = spanOfOne(ln)
		bodyNode.AppendChild(row)
		i++
	}
	if headerless && i == bodyStart {
		return nil, 0, false
	}
	n.AppendChild(bodyNode)
	n.Span = spanOf(lines[0], lines[i-1])
	return n, i, true
}

// parseDelimiterRow recognizes a table delimiter row: pipe-separated cells
// each matching `:?-+:?`, deriving column alignment.
func parseDelimiterRow(b []byte) ([]ast.Align, bool) {
	cells := splitTableRow(b)
	if len(cells) == 0 {
		return nil, false
	}
	aligns := make([]ast.Align, len(cells))
	for i, c := range cells {
		c = string(bytes.TrimSpace([]byte(c)))
		if c == "" {
			return nil, false
		}
		left := c[0] == ':'
		right := c[len(c)-1] == ':'
		dashes := c
		if left {
			dashes = dashes[1:]
		}
		if right && len(dashes) > 0 {
			dashes = dashes[:len(dashes)-1]
		}
		if len(dashes) == 0 {
			return nil, false
		}
		for _, ch := range dashes {
			if ch != '-' {
				return nil, false
			}
		}
		switch {
		case left && right:
			aligns[i] = ast.AlignCenter
		case left:
			aligns[i] = ast.AlignLeft
		case right:
			aligns[i] = ast.AlignRight
		default:
			aligns[i] = ast.AlignNone
		}
	}
	return aligns, true
}

// splitTableRow splits a pipe-delimited row into trimmed cell texts,
// honoring backslash-escaped pipes and dropping a leading/trailing empty
// cell produced by optional outer pipes.
func splitTableRow(b []byte) []string {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return nil
	}
	var cells []string
	var cur []byte
	escaped := false
	for _, c := range trimmed {
		switch {
		case escaped:
			cur = append(cur, byte(c))
			escaped = false
		case c == '\\':
			cur = append(cur, byte(c))
			escaped = true
		case c == '|':
			cells = append(cells, string(bytes.TrimSpace(cur)))
			cur = cur[:0]
		default:
			cur = append(cur, byte(c))
		}
	}
	cells = append(cells, string(bytes.TrimSpace(cur)))

	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}
