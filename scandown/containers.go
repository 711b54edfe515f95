package scandown

import (
	"bytes"
	"strings"

	"github.com/jcorbin/marco/ast"
)

// githubAlertKinds maps a GitHub-style `[!KIND]` alert marker to its
// normalized admonition kind.
var githubAlertKinds = map[string]string{
	"NOTE": "note", "TIP": "tip", "IMPORTANT": "important",
	"WARNING": "warning", "CAUTION": "caution",
}

// tryBlockQuote recognizes a block quote: a leading `>` (with optional
// single following space) on the first line, continuing while following
// lines either repeat the marker or, lazily, continue an open paragraph.
// When the first line's content is a GitHub alert marker (`[!KIND]`) or a
// custom-emoji marker (`[:emoji: Title]`), the container is reinterpreted
// as an Admonition instead of a plain BlockQuote.
func (sc *scanner) tryBlockQuote(lines []line, depth int) (*ast.Node, int, bool) {
	if len(lines) == 0 {
		return nil, 0, false
	}
	if _, _, ok := quoteMarker(stripped3(lines[0].bytes)); !ok {
		return nil, 0, false
	}

	var inner []line
	i := 0
	openParagraph := false
	for i < len(lines) {
		ln := lines[i]
		if _, tail, ok := quoteMarker(stripped3(ln.bytes)); ok {
			inner = append(inner, line{bytes: tail, offset: ln.offset, lineNo: ln.lineNo})
			i++
			openParagraph = !isBlank(tail)
			continue
		}
		if isBlank(ln.bytes) {
			break
		}
		if openParagraph && !startsNewBlock(ln) {
			inner = append(inner, ln)
			i++
			continue
		}
		break
	}
	if len(inner) == 0 {
		return nil, 0, false
	}

	if kind, title, ok := alertMarker(inner[0].bytes); ok && sc.opts.Admonitions {
		n := ast.New(ast.Admonition)
		n.AdmonitionKind = kind
		n.AdmonitionTitle = title
		rest := inner[1:]
		for _, c := range sc.parseSequence(rest, depth+1) {
			n.AppendChild(c)
		}
		n.Span = spanOf(lines[0], lines[i-1])
		return n, i, true
	}

	n := ast.New(ast.BlockQuote)
	for _, c := range sc.parseSequence(inner, depth+1) {
		n.AppendChild(c)
	}
	n.Span = spanOf(lines[0], lines[i-1])
	return n, i, true
}

func stripped3(b []byte) []byte {
	_, tail := stripUpTo3(b)
	return tail
}

// alertMarker recognizes a blockquote's first line as a GitHub alert
// (`[!NOTE]` etc.) or a custom-emoji admonition (`[:emoji: Title]`),
// returning the normalized kind and an optional title.
func alertMarker(b []byte) (kind, title string, ok bool) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) < 3 || trimmed[0] != '[' {
		return "", "", false
	}
	closeIdx := bytes.IndexByte(trimmed, ']')
	if closeIdx < 0 {
		return "", "", false
	}
	inner := trimmed[1:closeIdx]
	after := bytes.TrimSpace(trimmed[closeIdx+1:])

	if len(inner) > 1 && inner[0] == '!' {
		if k, known := githubAlertKinds[strings.ToUpper(string(inner[1:]))]; known {
			return k, string(after), true
		}
		return "", "", false
	}
	if len(inner) > 1 && inner[0] == ':' {
		if end := bytes.LastIndexByte(inner, ':'); end > 0 {
			title := strings.TrimSpace(string(inner[end+1:]))
			if title == "" {
				title = strings.TrimSpace(string(after))
			}
			return "note", title, true
		}
	}
	return "", "", false
}

// startsNewBlock reports whether ln looks like the start of a block other
// than a paragraph, for the lazy-continuation approximation: a line that
// is not blank and does not open a recognizable new block is treated as a
// continuation of an open paragraph inside a blockquote or list item.
func startsNewBlock(ln line) bool {
	_, indent := stripUpTo3(ln.bytes)
	if _, _, ok := quoteMarker(indent); ok {
		return false // handled by the blockquote loop itself
	}
	if tryThematicBreak(ln) {
		return true
	}
	if delim, _, tail := delimiter(indent, 6, '#'); delim != 0 && (len(tail) == 0 || tail[0] == ' ' || tail[0] == '\t') {
		return true
	}
	if mark, _, _ := fence(indent, 3, '`', '~'); mark != 0 {
		return true
	}
	return false
}

// tryList recognizes an unordered or ordered list: one or more items
// sharing a marker family, each item's content indented to the marker's
// content column. Items may be separated by any number of blank lines; a
// blank run ends the list unless the next non-blank line is another item
// of the same family or is indented to the content column of the line
// before the blank run.
func (sc *scanner) tryList(lines []line, depth int) (*ast.Node, int, bool) {
	if len(lines) == 0 {
		return nil, 0, false
	}
	firstDelim, _, _, ok := listItemStart(lines[0])
	if !ok {
		return nil, 0, false
	}

	n := ast.New(ast.List)
	n.Ordered = firstDelim == '.' || firstDelim == ')'
	n.Delimiter = firstDelim
	tight := true
	sawBlankBetween := false

	i := 0
	itemCount := 0
	for i < len(lines) {
		if isBlank(lines[i].bytes) {
			// a blank run inside the list; continue only if another item
			// or a continuation line follows before a non-indented line.
			j := i
			for j < len(lines) && isBlank(lines[j].bytes) {
				j++
			}
			if j >= len(lines) {
				i = j
				break
			}
			if delim, _, _, ok := listItemStart(lines[j]); ok && sameFamily(delim, firstDelim) {
				sawBlankBetween = true
				i = j
				continue
			}
			if w, _ := indentWidth(lines[j].bytes); w >= itemContentColumn(lines[i-1]) {
				sawBlankBetween = true
				i = j
				continue
			}
			break
		}

		delim, markerWidth, contentCol, ok := listItemStart(lines[i])
		if !ok || !sameFamily(delim, firstDelim) {
			break
		}
		if itemCount == 0 && n.Ordered {
			n.Start = ordinalValue(lines[i].bytes)
		}
		_ = markerWidth

		item, consumed, loose := sc.scanListItem(lines[i:], contentCol, depth)
		if consumed == 0 {
			break
		}
		if loose || sawBlankBetween {
			tight = false
		}
		sawBlankBetween = false
		n.AppendChild(item)
		itemCount++
		i += consumed
	}

	if itemCount == 0 {
		return nil, 0, false
	}
	n.Tight = tight
	n.Span = spanOf(lines[0], lines[i-1])
	return n, i, true
}

// listItemStart recognizes a list marker at the start of ln (after up to 3
// indent columns), returning the marker byte, its on-line width, and the
// absolute content column content begins at (marker column + width +
// following space, or +1 when the item's first line is otherwise empty).
func listItemStart(ln line) (delim byte, markerWidth, contentCol int, ok bool) {
	indentCols, indent := stripUpTo3(ln.bytes)
	delim, markerWidth, tail, ok := listMarker(indent)
	if !ok {
		return 0, 0, 0, false
	}
	if len(tail) == 0 {
		return delim, markerWidth, indentCols + markerWidth + 1, true
	}
	if tail[0] != ' ' && tail[0] != '\t' {
		return 0, 0, 0, false
	}
	spaces, _ := trimIndent(tail, indentCols+markerWidth, 4)
	if spaces == 0 {
		spaces = 1
	}
	return delim, markerWidth, indentCols + markerWidth + spaces, true
}

func sameFamily(a, b byte) bool {
	group := func(c byte) int {
		switch c {
		case '-', '*', '+':
			return 1
		default:
			return 2
		}
	}
	return group(a) == group(b)
}

func ordinalValue(b []byte) int {
	_, indent := stripUpTo3(b)
	n := 0
	for _, c := range indent {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	return n
}

func itemContentColumn(ln line) int {
	_, _, col, ok := listItemStart(ln)
	if !ok {
		w, _ := indentWidth(ln.bytes)
		return w
	}
	return col
}

// scanListItem consumes one list item's lines: its opening line (stripped
// of the marker) plus every following line indented to at least
// contentCol, or lazily continuing an open paragraph. Reports whether a
// blank line was found inside the item (making the enclosing list loose).
func (sc *scanner) scanListItem(lines []line, contentCol, depth int) (*ast.Node, int, bool) {
	_, _, _, ok := listItemStart(lines[0])
	if !ok {
		return nil, 0, false
	}
	indentCols, firstIndent := stripUpTo3(lines[0].bytes)
	_, markerWidth, markerTail, _ := listMarker(firstIndent)
	_, markerContentBytes := trimIndent(markerTail, indentCols+markerWidth, contentCol-(indentCols+markerWidth))
	firstContent := line{bytes: markerContentBytes, offset: lines[0].offset, lineNo: lines[0].lineNo}

	inner := []line{firstContent}
	i := 1
	loose := false
	openParagraph := !isBlank(firstContent.bytes)
	for i < len(lines) {
		ln := lines[i]
		if isBlank(ln.bytes) {
			j := i
			for j < len(lines) && isBlank(lines[j].bytes) {
				j++
			}
			if j < len(lines) {
				w, _ := indentWidth(lines[j].bytes)
				if w >= contentCol {
					loose = true
					inner = append(inner, blankLines(lines[i:j])...)
					i = j
					continue
				}
			}
			break
		}
		w, _ := indentWidth(ln.bytes)
		if w >= contentCol {
			_, stripped := trimIndent(ln.bytes, 0, contentCol)
			inner = append(inner, line{bytes: stripped, offset: ln.offset, lineNo: ln.lineNo})
			i++
			openParagraph = true
			continue
		}
		if openParagraph && !startsNewBlock(ln) {
			if _, _, _, isItem := listItemStart(ln); !isItem {
				inner = append(inner, ln)
				i++
				continue
			}
		}
		break
	}

	item := ast.New(ast.Item)
	children := sc.parseSequence(inner, depth+1)
	if len(children) > 0 && children[0].Kind == ast.Paragraph && sc.opts.TaskLists {
		if state, rest, ok := taskMarkerPrefix(children[0].Literal); ok {
			item.Task = state
			children[0].Literal = rest
		}
	}
	for _, c := range children {
		item.AppendChild(c)
	}
	item.Delimiter = firstContentDelim(lines[0])
	item.Span = spanOf(lines[0], lines[i-1])
	return item, i, loose
}

func firstContentDelim(ln line) byte {
	_, indent := stripUpTo3(ln.bytes)
	d, _, _, _ := listMarker(indent)
	return d
}

func blankLines(lines []line) []line {
	out := make([]line, len(lines))
	copy(out, lines)
	return out
}

// taskMarkerPrefix recognizes a leading "[ ] ", "[x] " or "[X] " task
// marker on a paragraph's first line of text, per §4.1.
func taskMarkerPrefix(text string) (ast.TaskState, string, bool) {
	if len(text) < 4 || text[0] != '[' || text[2] != ']' || text[3] != ' ' {
		return ast.NoTask, text, false
	}
	switch text[1] {
	case ' ':
		return ast.Unchecked, text[4:], true
	case 'x', 'X':
		return ast.Checked, text[4:], true
	default:
		return ast.NoTask, text, false
	}
}
