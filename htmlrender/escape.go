package htmlrender

import (
	"fmt"
	"strings"
)

// escapeText escapes the four characters CommonMark requires in text and
// code content.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr escapes an attribute value: the same four characters plus a
// single quote, since attribute values in this renderer are always
// double-quoted but may themselves contain a double quote from source.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
)

// urlUnreserved is the set of ASCII bytes a destination URL may contain
// unescaped, per §4.4: the unreserved set plus the generic/sub-delimiter
// punctuation a URL commonly carries.
const urlUnreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789" +
	":/?#[]@!$&'()*+,;=%-._~"

// escapeURL percent-encodes bytes outside urlUnreserved in a link/image
// destination. Bytes already part of a valid %XX escape are left alone by
// virtue of '%' itself being in the unreserved set.
func escapeURL(s string) string {
	needsEscape := false
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(urlUnreserved, s[i]) < 0 {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(urlUnreserved, c) >= 0 {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
