package parse

import "bytes"

// Fragment is a slice of a stream between document separator lines.
type Fragment struct {
	Index int
	// Line is the 1-based line on which the fragment starts.
	Line int
	Text []byte

	skip bool
}

// Blank reports whether the fragment holds only whitespace, comments or
// directives.
func (f *Fragment) Blank() bool {
	for _, ln := range bytes.Split(f.Text, []byte{'\n'}) {
		ln = bytes.TrimSpace(ln)
		if len(ln) == 0 || ln[0] == '#' || ln[0] == '%' {
			continue
		}
		return false
	}
	return true
}

// SplitDocuments splits d on `---` document start and `...` document end
// lines. Content following `---` on the same line stays in the new
// fragment.
func SplitDocuments(d []byte) []Fragment {
	var (
		res   []Fragment
		cur   []byte
		start = 1
	)
	flush := func() {
		res = append(res, Fragment{Index: len(res), Line: start, Text: cur})
		cur = nil
	}
	lines := bytes.SplitAfter(d, []byte{'\n'})
	for i, ln := range lines {
		body := bytes.TrimRight(ln, "\r\n")
		switch {
		case isMarker(body, "---"):
			if len(cur) != 0 || len(res) != 0 {
				flush()
			}
			start = i + 1
			rest := bytes.TrimLeft(body[3:], " \t")
			if len(rest) != 0 {
				cur = append(cur, rest...)
				cur = append(cur, '\n')
			}
		case isMarker(body, "..."):
			flush()
			start = i + 2
		default:
			cur = append(cur, ln...)
		}
	}
	if len(cur) != 0 {
		flush()
	}
	return res
}

func isMarker(ln []byte, m string) bool {
	if !bytes.HasPrefix(ln, []byte(m)) {
		return false
	}
	if len(ln) == len(m) {
		return true
	}
	return ln[len(m)] == ' ' || ln[len(m)] == '\t'
}
