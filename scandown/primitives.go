// Package scandown implements the block scanner described by the engine's
// design: a line-oriented walk over the source maintaining a stack of open
// containers, generalized from an earlier token-cutting bufio.SplitFunc
// implementation into a full AST tree builder. The low level line
// recognizers below (delimiter runs, fences, rulers, ordinals, indent
// trimming) are a direct generalization of that implementation: bytes in,
// bytes out, no allocation on the common path.
package scandown

import "bytes"

// delimiter matches a run of 1..maxWidth of any mark byte at the start of
// line, followed by whitespace or end of line. Returns the matched byte,
// the run width, and the remaining tail.
func delimiter(line []byte, maxWidth int, marks ...byte) (delim byte, width int, tail []byte) {
	if len(line) == 0 {
		return 0, 0, nil
	}
	if delim = line[0]; !isByte(delim, marks...) {
		return 0, 0, nil
	}
	width++
	tail = line[1:]
	for {
		if len(tail) == 0 {
			return delim, width, tail
		}
		switch tail[0] {
		case delim:
			if width++; width > maxWidth {
				return 0, 0, nil
			}
			tail = tail[1:]
		case ' ', '\t':
			return delim, width, tail
		default:
			return 0, 0, nil
		}
	}
}

// ordinal matches an ordered list marker: 1-9 digits followed by '.' or ')'.
func ordinal(line []byte) (delim byte, width int, tail []byte) {
	tail = line
	for len(tail) > 0 {
		switch c := tail[0]; {
		case c >= '0' && c <= '9':
			width++
			tail = tail[1:]
			continue
		case c == '.' || c == ')':
			delim = c
			tail = tail[1:]
		}
		break
	}
	if delim == 0 || width < 1 || width > 9 {
		return 0, 0, nil
	}
	width++
	return delim, width, tail
}

// fence matches a run of >= min identical fence-marker bytes.
func fence(line []byte, min int, marks ...byte) (mark byte, width int, tail []byte) {
	if len(line) == 0 {
		return 0, 0, nil
	}
	if mark = line[0]; !isByte(mark, marks...) {
		return 0, 0, nil
	}
	width++
	for ; width < len(line); width++ {
		if line[width] != mark {
			break
		}
	}
	if width < min {
		return 0, 0, nil
	}
	return mark, width, line[width:]
}

// ruler matches a thematic break: a run of one mark byte with any amount
// of interspersed whitespace, at least 3 mark bytes total.
func ruler(line []byte, marks ...byte) (mark byte, count int, ok bool) {
	if len(line) == 0 {
		return 0, 0, false
	}
	if mark = line[0]; !isByte(mark, marks...) {
		return 0, 0, false
	}
	count = 1
	for i := 1; i < len(line); i++ {
		switch line[i] {
		case mark:
			count++
		case ' ', '\t':
		default:
			return 0, 0, false
		}
	}
	return mark, count, count >= 3
}

// quoteMarker matches a blockquote marker: '>' optionally followed by a
// single space (consumed as part of the marker width).
func quoteMarker(line []byte) (width int, tail []byte, ok bool) {
	if len(line) == 0 || line[0] != '>' {
		return 0, nil, false
	}
	width = 1
	tail = line[1:]
	if len(tail) > 0 && tail[0] == ' ' {
		width++
		tail = tail[1:]
	} else if len(tail) > 0 && tail[0] == '\t' {
		width++
		tail = expandOneTab(tail[1:])
	}
	return width, tail, true
}

// listMarker matches an unordered or ordered list marker followed by
// required whitespace (or end of line, for an empty first item).
func listMarker(line []byte) (delim byte, markerWidth int, tail []byte, ok bool) {
	delim, markerWidth, tail = delimiter(line, 1, '-', '*', '+')
	if delim == 0 {
		delim, markerWidth, tail = ordinal(line)
	}
	if delim == 0 {
		return 0, 0, nil, false
	}
	return delim, markerWidth, tail, true
}

func isByte(b byte, any ...byte) bool {
	for _, ab := range any {
		if b == ab {
			return true
		}
	}
	return false
}

// trimIndent consumes up to limit columns of leading space/tab indent
// (tabs expand to the next multiple of 4, per §4.1's tab policy), starting
// from a prior partial-tab-stop offset. It returns the number of columns
// consumed and the remaining tail.
func trimIndent(line []byte, prior, limit int) (n int, tail []byte) {
	tail = line
	for n < limit && len(tail) > 0 {
		switch tail[0] {
		case ' ':
			n++
			tail = tail[1:]
		case '\t':
			stop := ((prior+n)/4 + 1) * 4
			step := stop - (prior + n)
			if n+step > limit {
				return n, tail
			}
			n += step
			tail = tail[1:]
			prior = 0
		default:
			return n, tail
		}
	}
	return n, tail
}

// expandOneTab consumes a single already-accounted-for tab's worth of
// leading space, treating a literal tab as already expanded by the caller.
func expandOneTab(tail []byte) []byte {
	return tail
}

func trimNewline(line []byte) []byte {
	i := len(line)
	for i > 0 && (line[i-1] == '\n' || line[i-1] == '\r') {
		i--
	}
	return line[:i]
}

// indentWidth measures the leading indent width of line in columns, tabs
// expanding to the next multiple of 4.
func indentWidth(line []byte) (n int, tail []byte) {
	return trimIndent(line, 0, 1<<30)
}

// isBlank reports whether line, after trimming trailing newline, consists
// only of spaces and tabs.
func isBlank(line []byte) bool {
	return len(bytes.TrimLeft(trimNewline(line), " \t")) == 0
}
