package inline

import "github.com/jcorbin/marco/ast"

// delimRun records one run of '*' or '_' pushed by tryEmphasisDelim, for
// the process_emphasis pass to pair against a matching closer.
type delimRun struct {
	node     *ast.Node // the Text node holding the run's literal
	char     byte
	length   int // remaining unconsumed run length
	origLen  int
	canOpen  bool
	canClose bool
}

// tryEmphasisDelim recognizes a run of '*' or '_', classifies its
// left/right flanking per the CommonMark delimiter-run rules, and pushes
// it onto the delimiter stack for later pairing by processEmphasis.
func (p *parser) tryEmphasisDelim(parent *ast.Node) bool {
	c := p.text[p.pos]
	length := runLength(p.text, p.pos, c)
	before := boundaryByte(p.text, p.pos-1)
	after := boundaryByte(p.text, p.pos+length)

	leftFlank := !isSpaceByte(after) && (!isPunctByte(after) || isSpaceByte(before) || isPunctByte(before))
	rightFlank := !isSpaceByte(before) && (!isPunctByte(before) || isSpaceByte(after) || isPunctByte(after))

	var canOpen, canClose bool
	if c == '_' {
		canOpen = leftFlank && (!rightFlank || isPunctByte(before))
		canClose = rightFlank && (!leftFlank || isPunctByte(after))
	} else {
		canOpen = leftFlank
		canClose = rightFlank
	}

	if !canOpen && !canClose {
		return false
	}

	lit := p.text[p.pos : p.pos+length]
	p.pos += length
	node := p.appendText(parent, lit)
	p.delims = append(p.delims, &delimRun{
		node: node, char: c, length: length, origLen: length,
		canOpen: canOpen, canClose: canClose,
	})
	return true
}

func boundaryByte(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return ' '
	}
	return s[i]
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

func isPunctByte(b byte) bool {
	switch {
	case b >= '!' && b <= '/':
		return true
	case b >= ':' && b <= '@':
		return true
	case b >= '[' && b <= '`':
		return true
	case b >= '{' && b <= '~':
		return true
	default:
		return false
	}
}

// processEmphasis pairs closers with the nearest matching unconsumed
// opener of the same marker among delims[from:to], wrapping the content
// between them in Strong (length-2 pairing) or Emphasis (length-1) nodes,
// skipping pairings that would violate the "rule of 3".
func (p *parser) processEmphasis(parent *ast.Node, from, to int) {
	delims := p.delims[from:to]
	for ci := 0; ci < len(delims); {
		closer := delims[ci]
		if !closer.canClose || closer.length <= 0 {
			ci++
			continue
		}

		matched := false
		for oi := ci - 1; oi >= 0; oi-- {
			opener := delims[oi]
			if opener.char != closer.char || !opener.canOpen || opener.length <= 0 {
				continue
			}
			if violatesRuleOfThree(opener, closer) {
				continue
			}

			m := 1
			if opener.length >= 2 && closer.length >= 2 {
				m = 2
			}
			kind := ast.Emphasis
			if m == 2 {
				kind = ast.Strong
			}

			wrapper := ast.New(kind)
			anchor := opener.node.Next
			if anchor != nil {
				anchor.InsertBefore(wrapper)
			} else {
				parent.AppendChild(wrapper)
			}
			for c := anchor; c != nil && c != closer.node; {
				next := c.Next
				wrapper.AppendChild(c)
				c = next
			}
			wrapper.Span = ast.Span{Start: opener.node.Span.Start, End: closer.node.Span.End}

			opener.length -= m
			closer.length -= m
			trimDelimNode(opener, m, true)
			trimDelimNode(closer, m, false)
			matched = true
			break
		}

		// A closer with remaining length keeps trying against the next
		// nearest opener (re-wrapping what's left of its run, e.g. the
		// outer em of "***strong emph***" after the inner strong pairs
		// off two of its three stars); only advance past it once it's
		// fully consumed or no opener remains.
		if !matched || closer.length <= 0 {
			ci++
		}
	}
}

// trimDelimNode shrinks a (still partially unconsumed) delimiter run's
// backing Text node's literal by m characters, trimming from the tail
// when fromTail is true (an opener keeps its unused prefix before the new
// wrapper) or from the head otherwise (a closer keeps its unused suffix
// after). A fully consumed run's node is unlinked.
func trimDelimNode(d *delimRun, m int, fromTail bool) {
	if d.length <= 0 {
		d.node.Unlink()
		return
	}
	lit := d.node.Literal
	if fromTail {
		d.node.Literal = lit[:len(lit)-m]
		d.node.Span.End.Offset -= m
		d.node.Span.End.Column -= m
	} else {
		d.node.Literal = lit[m:]
		d.node.Span.Start.Offset += m
		d.node.Span.Start.Column += m
	}
}

// violatesRuleOfThree implements CommonMark's rule 9/10 refinement: if
// either delimiter can both open and close, the sum of the two runs'
// original lengths must not be a multiple of 3 unless both are.
func violatesRuleOfThree(opener, closer *delimRun) bool {
	if !(opener.canOpen && opener.canClose) && !(closer.canOpen && closer.canClose) {
		return false
	}
	sum := opener.origLen + closer.origLen
	if sum%3 != 0 {
		return false
	}
	return opener.origLen%3 != 0 || closer.origLen%3 != 0
}
