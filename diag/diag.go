// Package diag collects non-fatal parse-time diagnostics. The core never
// fails to parse; malformed input either falls back to literal rendering
// or is recorded here, and the renderer never consults this package.
package diag

import (
	"fmt"

	"github.com/jcorbin/marco/ast"
)

// Severity ranks a Diagnostic. The parser never emits Error: Markdown is,
// by construction, parseable.
type Severity int

// Severities.
const (
	Info Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "info"
}

// Code names a specific diagnostic condition.
type Code string

// Diagnostic codes.
const (
	DuplicateLinkReference Code = "duplicate_link_reference"
	UnmatchedFootnoteRef   Code = "unmatched_footnote_reference"
	MalformedTableRow      Code = "malformed_table_row"
	UnknownAdmonitionKind  Code = "unknown_admonition_kind"
	TruncatedFencedBlock   Code = "truncated_fenced_block"
	InvalidHeadingID       Code = "invalid_heading_id"
	UnknownReference       Code = "unknown_reference"
	NestingDepthExceeded   Code = "nesting_depth_exceeded"
)

// Diagnostic is a single recorded warning or informational note.
type Diagnostic struct {
	Severity Severity
	Span     ast.Span
	Code     Code
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%v: %s at %v: %s", d.Severity, d.Code, d.Span.Start, d.Message)
}

// Collector accumulates Diagnostics during a single parse. The zero value
// is ready to use.
type Collector struct {
	items []Diagnostic
}

// Add records a new diagnostic.
func (c *Collector) Add(severity Severity, span ast.Span, code Code, message string) {
	c.items = append(c.items, Diagnostic{severity, span, code, message})
}

// Addf is Add with fmt.Sprintf-style message formatting.
func (c *Collector) Addf(severity Severity, span ast.Span, code Code, format string, args ...interface{}) {
	c.Add(severity, span, code, fmt.Sprintf(format, args...))
}

// Diagnostics returns the accumulated diagnostics in emission order. The
// returned slice is owned by the caller.
func (c *Collector) Diagnostics() []Diagnostic {
	if len(c.items) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports how many diagnostics have been recorded.
func (c *Collector) Len() int { return len(c.items) }
