package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHTML(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"<p>a</p>\n", "<p>a</p>"},
		{"<ul>\n  <li>a</li>\n</ul>\n", "<ul><li>a</li></ul>"},
		{"  leading and trailing  ", "leading and trailing"},
	} {
		assert.Equal(t, tc.want, normalizeHTML(tc.in), "normalizeHTML(%q)", tc.in)
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string][2]int{
		"tables":  {1, 1},
		"emphasis": {2, 2},
		"headers": {0, 1},
	}
	assert.Equal(t, []string{"emphasis", "headers", "tables"}, sortedKeys(m))
}
