// Package opts defines the shared Options struct threaded through the
// block scanner, inline parser and HTML renderer, plus the user-mention
// resolver table an embedder may override.
package opts

import "github.com/jcorbin/marco/mention"

// Options configures every optional behavior named in the engine's
// external interface. The zero value is not ready to use; call Default()
// to get the documented all-extensions-on baseline.
type Options struct {
	GFMTables            bool
	GFMStrikethrough     bool
	GFMAutolinkLiterals  bool
	TaskLists            bool
	Footnotes            bool
	HighlightMark        bool
	SuperscriptSubscript bool
	EmojiShortcodes      bool
	Admonitions          bool
	TabBlocks            bool
	Slideshows           bool
	Math                 bool
	UserMentions         bool
	HeadingIDs           bool
	UnsafeHTML           bool

	// TabWidth is the tab-stop width reported by TabStop, default 4. The
	// block scanner does not read it: it always expands tabs to the next
	// multiple of 4 columns.
	TabWidth int

	// MaxNestingDepth caps open-container recursion depth (blockquote /
	// list / admonition / tab / slideshow nesting). 0 means unlimited. A
	// block that would exceed it is rejected and demoted to a paragraph,
	// with an Info diagnostic recorded.
	MaxNestingDepth int

	// MentionResolver maps (platform, username) to a profile URL for the
	// UserMention extension. Defaults to mention.DefaultResolver.
	MentionResolver *mention.Resolver
}

// Default returns the documented baseline: every extension on, 4-column
// tabs, unlimited nesting, unsafe HTML off.
func Default() Options {
	return Options{
		GFMTables:            true,
		GFMStrikethrough:     true,
		GFMAutolinkLiterals:  true,
		TaskLists:            true,
		Footnotes:            true,
		HighlightMark:        true,
		SuperscriptSubscript: true,
		EmojiShortcodes:      true,
		Admonitions:          true,
		TabBlocks:            true,
		Slideshows:           true,
		Math:                 true,
		UserMentions:         true,
		HeadingIDs:           true,
		UnsafeHTML:           false,
		TabWidth:             4,
		MaxNestingDepth:      0,
		MentionResolver:      mention.DefaultResolver,
	}
}

// Resolver returns o.MentionResolver, falling back to the default when the
// caller built an Options by hand and left it nil.
func (o Options) Resolver() *mention.Resolver {
	if o.MentionResolver != nil {
		return o.MentionResolver
	}
	return mention.DefaultResolver
}

// TabStop returns o.TabWidth, defaulting to 4 when it is zero or negative.
func (o Options) TabStop() int {
	if o.TabWidth <= 0 {
		return 4
	}
	return o.TabWidth
}
