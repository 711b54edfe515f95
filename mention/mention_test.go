package mention_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/marco/mention"
)

func TestDefaultResolver(t *testing.T) {
	url, ok := mention.DefaultResolver.Resolve("rsc", "github")
	assert.True(t, ok)
	assert.Equal(t, "https://github.com/rsc", url)

	url, ok = mention.DefaultResolver.Resolve("rsc", "")
	assert.True(t, ok, "empty platform falls back to the resolver's Default")
	assert.Equal(t, "https://github.com/rsc", url)

	_, ok = mention.DefaultResolver.Resolve("rsc", "friendster")
	assert.False(t, ok)
}

func TestNewResolver_customDefault(t *testing.T) {
	r := mention.NewResolver(map[string]string{
		"example": "https://example.com/users/%s",
	}, "example")

	url, ok := r.Resolve("alice", "")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/users/alice", url)

	_, ok = r.Resolve("alice", "github")
	assert.False(t, ok, "a resolver built with only its own table shouldn't know unrelated platforms")
}
