// Package emoji supplies the shortcode→Unicode lookup table backing the
// EmojiShortcode inline extension. Per spec §9, the recognized shortcode
// set is a configuration table, not something the inline parser itself
// should own; this package is that table, built atop the terminal-renderer
// shortcode map kyokomi/emoji ships (see xrstf-go-term-markdown, which
// depends on it for the same purpose rendering Markdown with emoji to a
// terminal).
package emoji

import (
	kyokomi "github.com/kyokomi/emoji/v2"
)

// Lookup resolves a bare shortcode name (without surrounding colons, e.g.
// "smile") to its Unicode rendering. ok is false for unknown names, in
// which case the inline parser must fall back to literal `:name:` text.
func Lookup(name string) (rendered string, ok bool) {
	rendered, ok = kyokomi.CodeMap()[":"+name+":"]
	return rendered, ok
}

// Known reports whether name is a recognized shortcode.
func Known(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// ValidName reports whether s is syntactically a legal shortcode body:
// lowercase ASCII letters, digits, underscore, plus and hyphen, non-empty.
// This guards the inline scanner's `:name:` attempt before it pays for a
// map lookup, and rejects uppercase letters, spaces and other punctuation
// that would otherwise masquerade as shortcodes.
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '+', r == '-':
		default:
			return false
		}
	}
	return true
}
