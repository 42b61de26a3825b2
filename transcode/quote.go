package transcode

import (
	"encoding/hex"
	"unicode"
	"unicode/utf8"
)

// appendQuoted appends v as a JSON string. Control characters, the double
// quote and the backslash are escaped, and invalid UTF-8 becomes U+FFFD.
func appendQuoted(d []byte, v string) []byte {
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	d = append(d, '"')
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) || r == '\u2028' || r == '\u2029' {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
				continue
			}
			d = utf8.AppendRune(d, r)
		}
	}
	return append(d, '"')
}
