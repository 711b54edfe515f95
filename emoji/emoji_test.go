package emoji_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/marco/emoji"
)

func TestValidName(t *testing.T) {
	for _, tc := range []struct {
		name string
		want bool
	}{
		{"smile", true},
		{"thumbs_up", true},
		{"+1", true},
		{"a-b", true},
		{"", false},
		{"Smile", false},
		{"sm le", false},
		{"smile!", false},
	} {
		assert.Equal(t, tc.want, emoji.ValidName(tc.name), "ValidName(%q)", tc.name)
	}
}

func TestKnown_unrecognizedName(t *testing.T) {
	assert.False(t, emoji.Known("definitely_not_a_real_shortcode_xyz"))
	_, ok := emoji.Lookup("definitely_not_a_real_shortcode_xyz")
	assert.False(t, ok)
}
