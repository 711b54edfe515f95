package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/diag"
)

func TestCollector_Add(t *testing.T) {
	var c diag.Collector
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Diagnostics())

	span := ast.Span{Start: ast.Position{Line: 3, Column: 1}}
	c.Add(diag.Warning, span, diag.DuplicateLinkReference, "duplicate label")

	require.Equal(t, 1, c.Len())
	got := c.Diagnostics()
	require.Len(t, got, 1)
	assert.Equal(t, diag.Warning, got[0].Severity)
	assert.Equal(t, diag.DuplicateLinkReference, got[0].Code)
	assert.Equal(t, "duplicate label", got[0].Message)
}

func TestCollector_Addf(t *testing.T) {
	var c diag.Collector
	c.Addf(diag.Info, ast.Span{}, diag.UnmatchedFootnoteRef, "footnote %q missing", "a")

	got := c.Diagnostics()
	require.Len(t, got, 1)
	assert.Equal(t, `footnote "a" missing`, got[0].Message)
}

func TestCollector_Diagnostics_returnsACopy(t *testing.T) {
	var c diag.Collector
	c.Add(diag.Info, ast.Span{}, diag.MalformedTableRow, "m")

	got := c.Diagnostics()
	got[0].Message = "mutated"

	assert.Equal(t, "m", c.Diagnostics()[0].Message, "caller mutating the returned slice must not affect the collector")
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", diag.Info.String())
	assert.Equal(t, "warning", diag.Warning.String())
}

func TestDiagnostic_String(t *testing.T) {
	d := diag.Diagnostic{
		Severity: diag.Warning,
		Span:     ast.Span{Start: ast.Position{Line: 2, Column: 5}},
		Code:     diag.NestingDepthExceeded,
		Message:  "too deep",
	}
	s := d.String()
	assert.Contains(t, s, "warning")
	assert.Contains(t, s, "nesting_depth_exceeded")
	assert.Contains(t, s, "too deep")
}
