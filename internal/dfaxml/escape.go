package dfaxml

import "strings"

// The five entities this grammar recognizes, per spec.md §4.2: no other
// entity reference is decoded, and a bare '&' not beginning one of these
// is passed through literally. Grounded on original_source's
// private_toXmlString/private_fromXmlString (src/xml.c), which define the
// exact same five-entity mapping.
var (
	escaper = strings.NewReplacer(
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
		"&", "&amp;",
	)
)

func escape(s string) string {
	return escaper.Replace(s)
}

// unescape decodes the five entities above, left to right, leaving any
// other '&' (including a malformed or unknown entity reference) untouched.
func unescape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); {
		if s[i] == '&' {
			if rest := s[i:]; strings.HasPrefix(rest, "&lt;") {
				sb.WriteByte('<')
				i += len("&lt;")
				continue
			} else if strings.HasPrefix(rest, "&gt;") {
				sb.WriteByte('>')
				i += len("&gt;")
				continue
			} else if strings.HasPrefix(rest, "&quot;") {
				sb.WriteByte('"')
				i += len("&quot;")
				continue
			} else if strings.HasPrefix(rest, "&apos;") {
				sb.WriteByte('\'')
				i += len("&apos;")
				continue
			} else if strings.HasPrefix(rest, "&amp;") {
				sb.WriteByte('&')
				i += len("&amp;")
				continue
			}
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}
