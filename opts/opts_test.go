package opts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/marco/mention"
	"github.com/jcorbin/marco/opts"
)

func TestDefault(t *testing.T) {
	o := opts.Default()
	assert.True(t, o.GFMTables)
	assert.True(t, o.Footnotes)
	assert.False(t, o.UnsafeHTML, "unsafe HTML must be off by default")
	assert.Equal(t, 4, o.TabWidth)
	assert.Equal(t, 0, o.MaxNestingDepth)
	assert.Same(t, mention.DefaultResolver, o.MentionResolver)
}

func TestOptions_Resolver_fallsBackWhenNil(t *testing.T) {
	var o opts.Options
	assert.Same(t, mention.DefaultResolver, o.Resolver())

	custom := mention.NewResolver(map[string]string{"x": "https://x.test/%s"}, "x")
	o.MentionResolver = custom
	assert.Same(t, custom, o.Resolver())
}

func TestOptions_TabStop(t *testing.T) {
	var o opts.Options
	assert.Equal(t, 4, o.TabStop(), "zero value falls back to 4")

	o.TabWidth = 8
	assert.Equal(t, 8, o.TabStop())

	o.TabWidth = -1
	assert.Equal(t, 4, o.TabStop())
}
