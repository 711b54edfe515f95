package scandown

import (
	"bytes"
	"strings"

	"github.com/jcorbin/marco/ast"
)

// htmlBlockTags are the block-level tag names that open a CommonMark type-6
// HTML block (condition 6 of the 7 start conditions).
var htmlBlockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "base": true, "basefont": true,
	"blockquote": true, "body": true, "caption": true, "center": true, "col": true,
	"colgroup": true, "dd": true, "details": true, "dialog": true, "dir": true,
	"div": true, "dl": true, "dt": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "frame": true, "frameset": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"head": true, "header": true, "hr": true, "html": true, "iframe": true,
	"legend": true, "li": true, "link": true, "main": true, "menu": true,
	"menuitem": true, "nav": true, "noframes": true, "ol": true, "optgroup": true,
	"option": true, "p": true, "param": true, "section": true, "source": true,
	"summary": true, "table": true, "tbody": true, "td": true, "tfoot": true,
	"th": true, "thead": true, "title": true, "tr": true, "track": true, "ul": true,
}

// tryHTMLBlock recognizes the subset of CommonMark's 7 HTML block start
// conditions most embedders actually hit in practice: a raw `<!--`
// comment, a `<?` processing instruction, a `<!DOCTYPE`/`<![CDATA[`
// declaration, and a start/end tag whose name is in htmlBlockTags
// (condition 6). Condition 7 (a complete tag of any other name alone on
// its line) is not recognized; such a line starts a paragraph. Capture
// runs to the
// matching end condition or a blank line, whichever is simpler for the
// condition in question.
func tryHTMLBlock(lines []line) (*ast.Node, int, bool) {
	if len(lines) == 0 {
		return nil, 0, false
	}
	first := bytes.TrimLeft(lines[0].bytes, " \t")
	if len(first) == 0 || first[0] != '<' {
		return nil, 0, false
	}

	switch {
	case bytes.HasPrefix(first, []byte("<!--")):
		return captureHTMLUntil(lines, []byte("-->"))
	case bytes.HasPrefix(first, []byte("<?")):
		return captureHTMLUntil(lines, []byte("?>"))
	case bytes.HasPrefix(first, []byte("<![CDATA[")):
		return captureHTMLUntil(lines, []byte("]]>"))
	case bytes.HasPrefix(first, []byte("<!")):
		return captureHTMLUntil(lines, []byte(">"))
	}

	tag, _ := htmlTagName(first)
	if tag == "" {
		return nil, 0, false
	}
	if !htmlBlockTags[strings.ToLower(tag)] {
		return nil, 0, false
	}
	return captureHTMLUntilBlank(lines)
}

// htmlTagName extracts the tag name from a line starting with '<' or
// "</", without validating full tag syntax.
func htmlTagName(b []byte) (name string, closing bool) {
	i := 1
	if i < len(b) && b[i] == '/' {
		closing = true
		i++
	}
	start := i
	for i < len(b) && (isAlnum(b[i]) || b[i] == '-') {
		i++
	}
	if i == start {
		return "", false
	}
	return string(b[start:i]), closing
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// captureHTMLUntil consumes lines verbatim, including the line containing
// the end marker, stopping at end of input if the marker never appears.
func captureHTMLUntil(lines []line, marker []byte) (*ast.Node, int, bool) {
	var body strings.Builder
	i := 0
	for ; i < len(lines); i++ {
		body.Write(lines[i].bytes)
		body.WriteByte('\n')
		if bytes.Contains(lines[i].bytes, marker) {
			i++
			break
		}
	}
	n := ast.New(ast.HTMLBlock)
	n.Literal = body.String()
	n.Span = spanOf(lines[0], lines[i-1])
	return n, i, true
}

// captureHTMLUntilBlank consumes lines verbatim up to (excluding) the next
// blank line or end of input.
func captureHTMLUntilBlank(lines []line) (*ast.Node, int, bool) {
	var body strings.Builder
	i := 0
	for ; i < len(lines); i++ {
		if isBlank(lines[i].bytes) {
			break
		}
		body.Write(lines[i].bytes)
		body.WriteByte('\n')
	}
	if i == 0 {
		i = 1
		body.Write(lines[0].bytes)
		body.WriteByte('\n')
	}
	n := ast.New(ast.HTMLBlock)
	n.Literal = body.String()
	n.Span = spanOf(lines[0], lines[i-1])
	return n, i, true
}
