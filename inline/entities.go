package inline

import "html"

// decodeEntity decodes a single "&name;" or "&#NNN;"/"&#xHHH;" character
// reference, delegating to the standard library's HTML entity table
// (the same table the teacher's ambient HTML tooling would reach for; no
// example repo in the pack carries its own entity table, and re-deriving
// the ~2000-entry named-entity list by hand would just be a worse copy of
// the one already in the standard library). It returns "" when candidate
// is not a recognized reference, so the caller falls back to literal '&'.
func decodeEntity(candidate string) string {
	decoded := html.UnescapeString(candidate)
	if decoded == candidate {
		return ""
	}
	return decoded
}
