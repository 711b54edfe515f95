// Package mention resolves `@username[platform]` user mentions to profile
// URLs. Resolution is a pure lookup against a small, swappable table of
// known platforms; an unresolved mention still carries its intended
// display form so the renderer can fall back to plain text (spec §4.2).
package mention

import "fmt"

// Resolver maps a platform name to a URL template containing a single "%s"
// for the username.
type Resolver struct {
	templates map[string]string
	// Default is used when no platform is given in the mention source.
	Default string
}

// NewResolver returns a Resolver seeded with the given platform name,
// URL-template pairs (e.g. {"github": "https://github.com/%s"}).
func NewResolver(templates map[string]string, defaultPlatform string) *Resolver {
	r := &Resolver{templates: make(map[string]string, len(templates)), Default: defaultPlatform}
	for k, v := range templates {
		r.templates[k] = v
	}
	return r
}

// DefaultResolver is the built-in resolver used when Options doesn't override it,
// covering the handful of platforms a user mention plausibly names.
var DefaultResolver = NewResolver(map[string]string{
	"github":    "https://github.com/%s",
	"gitlab":    "https://gitlab.com/%s",
	"twitter":   "https://twitter.com/%s",
	"x":         "https://x.com/%s",
	"slack":     "https://slack.com/team/%s",
	"mastodon":  "https://mastodon.social/@%s",
}, "github")

// Resolve returns the profile URL for username on platform (platform may
// be empty, meaning the resolver's Default). ok is false when the
// platform is unrecognized.
func (r *Resolver) Resolve(username, platform string) (url string, ok bool) {
	if platform == "" {
		platform = r.Default
	}
	tmpl, known := r.templates[platform]
	if !known {
		return "", false
	}
	return fmt.Sprintf(tmpl, username), true
}
