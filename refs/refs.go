// Package refs implements the Reference Table built during block
// scanning: link reference definitions and footnote definitions, keyed by
// a normalized label. The inline phase reads link definitions from it and
// also writes to it: footnote numbering and inline footnotes.
package refs

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/jcorbin/marco/ast"
)

// Definition is a resolved link reference definition's payload.
type Definition struct {
	Destination string
	Title       string
	Span        ast.Span
}

// FootnoteDefinition holds a footnote definition's content and assigned
// numbering state. Number is 0 until the definition is first referenced;
// Used tracks whether any reference has resolved to it yet.
type FootnoteDefinition struct {
	Label string
	Node  *ast.Node // the FootnoteDefinition AST node holding the content
	Span  ast.Span
	Used  bool
	Number int
}

// Table maps normalized labels to link/footnote definitions. Construct it
// with NewTable; the zero Table has nil maps and cannot be written to. The
// block scanner adds every definition. The inline parser looks links up
// and also mutates the table: ReferenceFootnote numbers a footnote on its
// first reference and DefineInlineFootnote adds inline footnotes.
type Table struct {
	links     map[string]Definition
	footnotes map[string]*FootnoteDefinition
	order     []string // footnote labels in definition order, for unreferenced-omission bookkeeping
	nextNum   int
	anonCounter int
}

// NewTable returns an empty, ready-to-populate Table.
func NewTable() *Table {
	return &Table{
		links:     make(map[string]Definition),
		footnotes: make(map[string]*FootnoteDefinition),
	}
}

// Normalize folds a link or footnote label per the spec: Unicode
// case-folding, collapsing runs of internal whitespace to a single space,
// and trimming leading/trailing whitespace.
func Normalize(label string) string {
	fields := strings.FieldsFunc(label, unicode.IsSpace)
	for i, f := range fields {
		fields[i] = strings.ToLower(strings.Map(foldRune, f))
	}
	return strings.Join(fields, " ")
}

func foldRune(r rune) rune {
	return unicode.ToLower(unicode.ToUpper(r))
}

// DefineLink records a link reference definition. The first definition for
// a given normalized label wins; it returns false if label was already
// defined (the caller should emit a duplicate_link_reference diagnostic
// and ignore the new one, per §4.1).
func (t *Table) DefineLink(label string, def Definition) bool {
	key := Normalize(label)
	if key == "" {
		return false
	}
	if _, exists := t.links[key]; exists {
		return false
	}
	t.links[key] = def
	return true
}

// LookupLink resolves a normalized label against defined link references.
func (t *Table) LookupLink(label string) (Definition, bool) {
	def, ok := t.links[Normalize(label)]
	return def, ok
}

// DefineFootnote records a footnote definition under its label, associated
// with the AST node holding its block content. As with links, the first
// definition for a label wins.
func (t *Table) DefineFootnote(label string, node *ast.Node, span ast.Span) bool {
	key := Normalize(label)
	if key == "" {
		return false
	}
	if _, exists := t.footnotes[key]; exists {
		return false
	}
	fd := &FootnoteDefinition{Label: key, Node: node, Span: span}
	t.footnotes[key] = fd
	t.order = append(t.order, key)
	return true
}

// ReferenceFootnote marks the footnote at label as used, assigning it the
// next numbering slot on its first reference. It returns the assigned
// number, or ok=false if no definition exists.
func (t *Table) ReferenceFootnote(label string) (number int, ok bool) {
	fd, exists := t.footnotes[Normalize(label)]
	if !exists {
		return 0, false
	}
	if !fd.Used {
		fd.Used = true
		t.nextNum++
		fd.Number = t.nextNum
		if fd.Node != nil {
			fd.Node.Number = fd.Number
		}
	}
	return fd.Number, true
}

// DefineInlineFootnote synthesizes an anonymous label ("fn-<n>" style,
// guaranteed unique against any user-defined labels) for an inline
// footnote (`^[...]`), registers it as immediately used, and returns the
// assigned number alongside the synthesized label.
func (t *Table) DefineInlineFootnote(node *ast.Node, span ast.Span) (label string, number int) {
	for {
		t.anonCounter++
		label = anonLabelPrefix + strconv.Itoa(t.anonCounter)
		if _, exists := t.footnotes[label]; !exists {
			break
		}
	}
	fd := &FootnoteDefinition{Label: label, Node: node, Span: span, Used: true}
	t.nextNum++
	fd.Number = t.nextNum
	node.Number = fd.Number
	t.footnotes[label] = fd
	t.order = append(t.order, label)
	return label, fd.Number
}

// FootnotesInUseOrder returns the definitions that were referenced at
// least once, ordered by first-reference number (spec §4.3: "numbering is
// assigned in order of first reference, not definition order"; unreferenced
// definitions are omitted).
func (t *Table) FootnotesInUseOrder() []*FootnoteDefinition {
	used := make([]*FootnoteDefinition, 0, len(t.footnotes))
	for _, label := range t.order {
		if fd := t.footnotes[label]; fd.Used {
			used = append(used, fd)
		}
	}
	// stable sort by assigned number (small N; insertion sort keeps this
	// dependency-free and avoids importing sort for a handful of items)
	for i := 1; i < len(used); i++ {
		for j := i; j > 0 && used[j-1].Number > used[j].Number; j-- {
			used[j-1], used[j] = used[j], used[j-1]
		}
	}
	return used
}

const anonLabelPrefix = "fn-"
