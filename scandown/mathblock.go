package scandown

import (
	"bytes"
	"strings"

	"github.com/jcorbin/marco/ast"
)

// tryBlockMath recognizes a `$$` fenced display-math block, capturing
// lines verbatim up to a closing `$$` line (or end of input).
func (sc *scanner) tryBlockMath(lines []line) (*ast.Node, int, bool) {
	if len(lines) == 0 {
		return nil, 0, false
	}
	first := lines[0]
	_, indent := stripUpTo3(first.bytes)
	if !bytes.HasPrefix(indent, []byte("$$")) {
		return nil, 0, false
	}
	if rest := bytes.TrimSpace(indent[2:]); len(rest) > 0 {
		return nil, 0, false // "$$ x" is not a fence open, leave for inline math
	}

	n := ast.New(ast.MathBlock)
	var body strings.Builder
	i := 1
	for ; i < len(lines); i++ {
		ln := lines[i]
		trimmed := bytes.TrimSpace(ln.bytes)
		if bytes.Equal(trimmed, []byte("$$")) {
			i++
			break
		}
		body.Write(ln.bytes)
		body.WriteByte('\n')
	}
	n.Literal = body.String()
	n.Span = spanOf(first, lines[i-1])
	return n, i, true
}
