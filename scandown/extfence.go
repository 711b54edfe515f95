package scandown

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/diag"
)

// tryFencedExtension recognizes the `:::kind[title]` ... `:::` container
// family: a fenced admonition when kind is neither "tabs" nor "slides", a
// TabBlock when kind is "tabs" (segments separated by `--- name ---`
// lines), or a Slideshow when kind is "slides" (segments separated by a
// bare `---` line), with an optional `[seconds]` timer.
func (sc *scanner) tryFencedExtension(lines []line, depth int) (*ast.Node, int, bool) {
	if len(lines) == 0 {
		return nil, 0, false
	}
	first := lines[0]
	indentCols, _ := indentWidth(first.bytes)
	_, indent := stripUpTo3(first.bytes)
	if !bytes.HasPrefix(indent, []byte(":::")) {
		return nil, 0, false
	}
	head := bytes.TrimSpace(indent[3:])
	kind, arg := splitKindArg(head)
	if kind == "" {
		return nil, 0, false
	}

	end := fenceExtensionEnd(lines, 1, indentCols)
	body := lines[1:end]

	switch {
	case kind == "tabs" && sc.opts.TabBlocks:
		n := sc.buildTabBlock(body, arg, depth)
		return n, closingWidth(lines, end), true
	case kind == "slides" && sc.opts.Slideshows:
		n := sc.buildSlideshow(body, arg, depth)
		return n, closingWidth(lines, end), true
	case sc.opts.Admonitions:
		n := sc.buildFencedAdmonition(body, kind, arg, depth)
		return n, closingWidth(lines, end), true
	}
	return nil, 0, false
}

// splitKindArg splits "kind[arg]" into its two parts; arg is empty when
// there is no bracketed suffix.
func splitKindArg(head []byte) (kind, arg string) {
	open := bytes.IndexByte(head, '[')
	if open < 0 {
		return string(bytes.TrimSpace(head)), ""
	}
	if head[len(head)-1] != ']' {
		return string(bytes.TrimSpace(head)), ""
	}
	return string(bytes.TrimSpace(head[:open])), string(head[open+1 : len(head)-1])
}

// fenceExtensionEnd finds the index of the first closing `:::` line at or
// below the opening fence's indent, starting the search at from. It
// returns len(lines) if none is found (truncated block).
func fenceExtensionEnd(lines []line, from, indentCols int) int {
	for i := from; i < len(lines); i++ {
		_, tail := trimIndent(lines[i].bytes, 0, indentCols+3)
		trimmed := bytes.TrimSpace(tail)
		if bytes.Equal(bytes.TrimSpace(lines[i].bytes), []byte(":::")) || bytes.Equal(trimmed, []byte(":::")) {
			return i
		}
	}
	return len(lines)
}

func closingWidth(lines []line, end int) int {
	if end < len(lines) {
		return end + 1
	}
	return end
}

// buildFencedAdmonition builds an Admonition from captured body lines,
// normalizing kind and pulling an optional title from the bracketed arg.
func (sc *scanner) buildFencedAdmonition(body []line, kind, title string, depth int) *ast.Node {
	n := ast.New(ast.Admonition)
	n.AdmonitionKind = normalizeAdmonitionKind(kind)
	n.AdmonitionTitle = title
	if n.AdmonitionKind != strings.ToLower(kind) {
		sc.diags.Addf(diag.Info, spanOfLines(body), diag.UnknownAdmonitionKind,
			"unknown admonition kind %q, degraded to note", kind)
	}
	for _, c := range sc.parseSequence(body, depth+1) {
		n.AppendChild(c)
	}
	n.Span = spanOfLines(body)
	return n
}

// buildTabBlock splits body into `--- name ---` delimited segments, each
// becoming a Tab child named from its separator line.
func (sc *scanner) buildTabBlock(body []line, title string, depth int) *ast.Node {
	n := ast.New(ast.TabBlock)
	n.Title = title

	var (
		segs  [][]line
		names []string
		name  string
		start = len(body)
	)
	for i, ln := range body {
		if sepName, ok := tabSeparatorName(ln.bytes); ok {
			if i > start {
				segs = append(segs, body[start:i])
				names = append(names, name)
			}
			name = sepName
			start = i + 1
			continue
		}
		if start == len(body) {
			start = i // no leading separator: first segment starts at body[0]
		}
	}
	if start < len(body) {
		segs = append(segs, body[start:])
		names = append(names, name)
	}

	for i, seg := range segs {
		tab := ast.New(ast.Tab)
		tab.Title = names[i]
		for _, c := range sc.parseSequence(seg, depth+1) {
			tab.AppendChild(c)
		}
		if len(seg) > 0 {
			tab.Span = spanOfLines(seg)
		}
		n.AppendChild(tab)
	}
	if len(body) > 0 {
		n.Span = spanOfLines(body)
	}
	return n
}

// tabSeparatorName recognizes a `--- name ---` tab-segment separator line.
func tabSeparatorName(b []byte) (string, bool) {
	trimmed := bytes.TrimSpace(b)
	if !bytes.HasPrefix(trimmed, []byte("---")) || !bytes.HasSuffix(trimmed, []byte("---")) {
		return "", false
	}
	inner := bytes.TrimSpace(trimmed[3 : len(trimmed)-3])
	if len(inner) == 0 || bytes.ContainsAny(inner, "-") {
		return "", false // a bare "---" or "-----" is not a named separator
	}
	return string(inner), true
}

func (sc *scanner) buildSlideshow(body []line, timerArg string, depth int) *ast.Node {
	n := ast.New(ast.Slideshow)
	if secs, err := strconv.Atoi(strings.TrimSpace(timerArg)); err == nil {
		n.Timer = secs
	}
	segs := splitOnBareLine(body, "---")
	for _, seg := range segs {
		slide := ast.New(ast.Slide)
		for _, c := range sc.parseSequence(seg, depth+1) {
			slide.AppendChild(c)
		}
		if len(seg) > 0 {
			slide.Span = spanOfLines(seg)
		}
		n.AppendChild(slide)
	}
	if len(body) > 0 {
		n.Span = spanOfLines(body)
	}
	return n
}

// splitOnBareLine splits body at lines whose trimmed content equals sep,
// dropping the separator lines themselves and any empty leading segment.
func splitOnBareLine(body []line, sep string) [][]line {
	var segs [][]line
	start := 0
	for i, ln := range body {
		if string(bytes.TrimSpace(ln.bytes)) == sep {
			if i > start {
				segs = append(segs, body[start:i])
			}
			start = i + 1
		}
	}
	if start < len(body) {
		segs = append(segs, body[start:])
	}
	return segs
}

func spanOfLines(lines []line) ast.Span {
	if len(lines) == 0 {
		return ast.Span{}
	}
	return spanOf(lines[0], lines[len(lines)-1])
}

func normalizeAdmonitionKind(kind string) string {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "note", "tip", "important", "warning", "caution":
		return strings.ToLower(kind)
	default:
		return "note"
	}
}
