package scandown

import (
	"bytes"
	"strings"

	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/diag"
)

// tryFencedCode recognizes a ``` or ~~~ fenced code block, capturing lines
// up to a matching (or wider) closing fence of the same mark, or end of
// input if none closes.
func (sc *scanner) tryFencedCode(lines []line) (*ast.Node, int, bool) {
	if len(lines) == 0 {
		return nil, 0, false
	}
	first := lines[0]
	indentCols, indent := stripUpTo3(first.bytes)
	mark, width, tail := fence(indent, 3, '`', '~')
	if mark == 0 {
		return nil, 0, false
	}
	info := string(bytes.TrimSpace(tail))
	if mark == '`' && bytes.IndexByte(tail, '`') >= 0 {
		return nil, 0, false // backtick info strings may not contain a backtick
	}

	n := ast.New(ast.CodeBlock)
	n.InfoString = info
	n.Delimiter = mark

	var body strings.Builder
	i := 1
	closed := false
	for ; i < len(lines); i++ {
		ln := lines[i]
		_, lnIndent := trimIndent(ln.bytes, 0, indentCols)
		if closeMark, closeWidth, closeTail := fence(bytes.TrimLeft(ln.bytes, " \t"), width, mark); closeMark == mark && closeWidth >= width && isBlank(closeTail) {
			closed = true
			i++
			break
		}
		body.Write(lnIndent)
		body.WriteByte('\n')
	}
	if !closed {
		sc.diags.Addf(diag.Info, spanOfOne(first), diag.TruncatedFencedBlock,
			"fenced code block opened at line %d runs to end of input with no closing fence", first.lineNo)
	}
	n.Literal = body.String()
	n.Span = spanOf(first, lines[i-1])
	return n, i, true
}

// tryIndentedCode recognizes a run of lines indented >= 4 columns (an
// indented code block), per §4.1. A blank line is allowed inside as long
// as a further indented line follows before the run ends.
func tryIndentedCode(lines []line) (int, bool) {
	if len(lines) == 0 {
		return 0, false
	}
	n, _ := indentWidth(lines[0].bytes)
	if n < 4 || isBlank(lines[0].bytes) {
		return 0, false
	}
	i := 1
	lastNonBlank := 1
	for i < len(lines) {
		ln := lines[i]
		if isBlank(ln.bytes) {
			i++
			continue
		}
		w, _ := indentWidth(ln.bytes)
		if w < 4 {
			break
		}
		i++
		lastNonBlank = i
	}
	return lastNonBlank, true
}

// indentedCodeNode builds the CodeBlock node for a run recognized by
// tryIndentedCode, stripping exactly 4 columns of indent from every line
// (blank lines contribute an empty line to the literal).
func indentedCodeNode(lines []line) *ast.Node {
	n := ast.New(ast.CodeBlock)
	var body strings.Builder
	for _, ln := range lines {
		if isBlank(ln.bytes) {
			body.WriteByte('\n')
			continue
		}
		_, tail := trimIndent(ln.bytes, 0, 4)
		body.Write(tail)
		body.WriteByte('\n')
	}
	n.Literal = body.String()
	n.Span = spanOf(lines[0], lines[len(lines)-1])
	return n
}
