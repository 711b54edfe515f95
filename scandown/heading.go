package scandown

import (
	"bytes"

	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/opts"
)

// tryATXHeading recognizes a `#`..`######` heading line, stripping a
// trailing run of `#` (the CommonMark "closing sequence") and, when
// heading_ids is on, a trailing `{#id}`.
func tryATXHeading(ln line, o opts.Options) (*ast.Node, bool) {
	_, indent := stripUpTo3(ln.bytes)
	delim, level, tail := delimiter(indent, 6, '#')
	if delim == 0 {
		return nil, false
	}
	if len(tail) > 0 && tail[0] != ' ' && tail[0] != '\t' {
		return nil, false // e.g. "#5" is not a heading
	}
	content := bytes.TrimSpace(tail)
	content = trimATXClose(content)

	n := ast.New(ast.Heading)
	n.Level = level
	n.Span = spanOfOne(ln)

	if o.HeadingIDs {
		if id, rest, ok := extractHeadingID(content); ok {
			n.ID = id
			content = rest
		}
	}
	n.Literal = string(bytes.TrimSpace(content))
	return n, true
}

// trimATXClose strips a trailing run of one or more '#' characters
// preceded by at least one space, per the ATX closing-sequence rule; when
// content is nothing but '#' characters, all of it is the closing
// sequence and the result is empty.
func trimATXClose(content []byte) []byte {
	end := len(content)
	for end > 0 && content[end-1] == '#' {
		end--
	}
	if end == len(content) {
		return content
	}
	if end > 0 && (content[end-1] == ' ' || content[end-1] == '\t') {
		return bytes.TrimRight(content[:end], " \t")
	}
	if end == 0 {
		return content[:0]
	}
	return content
}

// extractHeadingID pulls a trailing `{#id}` off content, per §4.1.
func extractHeadingID(content []byte) (id string, rest []byte, ok bool) {
	trimmed := bytes.TrimRight(content, " \t")
	if len(trimmed) < 4 || trimmed[len(trimmed)-1] != '}' {
		return "", content, false
	}
	open := bytes.LastIndexByte(trimmed, '{')
	if open < 0 || open+1 >= len(trimmed) || trimmed[open+1] != '#' {
		return "", content, false
	}
	idBytes := trimmed[open+2 : len(trimmed)-1]
	if len(idBytes) == 0 || bytes.ContainsAny(idBytes, " \t{}") {
		return "", content, false
	}
	return string(idBytes), bytes.TrimRight(trimmed[:open], " \t"), true
}

// setextLevel reports whether ln is a setext underline: a run of one or
// more '=' (level 1) or '-' (level 2), no other non-space characters,
// after up to 3 leading indent columns.
func setextLevel(ln line) (level int, ok bool) {
	_, indent := stripUpTo3(ln.bytes)
	indent = bytes.TrimRight(indent, " \t")
	if len(indent) == 0 {
		return 0, false
	}
	mark := indent[0]
	if mark != '=' && mark != '-' {
		return 0, false
	}
	for _, c := range indent {
		if c != mark {
			return 0, false
		}
	}
	if mark == '=' {
		return 1, true
	}
	return 2, true
}
