// Package layout arranges serialized rows as items of one sequence or as a
// stream of documents.
package layout

import (
	"strings"

	"github.com/signadot/yamlrows/format"
)

const (
	itemMarker   = "- "
	itemIndent   = "  "
	docSeparator = "---"
)

// Apply arranges text, the serialization of row number row, according to l.
//
// SequenceLayout prefixes the first line with "- " and indents the other
// non-empty lines by two spaces. DocumentLayout puts a "---" line before
// every row but the first, and only in block style since flow rows are not
// newline delimited.
func Apply(text string, row int, l format.Layout, style format.Style) string {
	switch l {
	case format.SequenceLayout:
		return sequenceItem(text)
	case format.DocumentLayout:
		if row == 0 || style.IsFlow() {
			return text
		}
		return docSeparator + "\n" + text
	default:
		return text
	}
}

func sequenceItem(text string) string {
	lines := strings.Split(text, "\n")
	buf := &strings.Builder{}
	buf.Grow(len(text) + 2*len(lines))
	for i, line := range lines {
		if i == 0 {
			buf.WriteString(itemMarker)
			buf.WriteString(line)
			continue
		}
		buf.WriteByte('\n')
		if line != "" {
			buf.WriteString(itemIndent)
		}
		buf.WriteString(line)
	}
	return buf.String()
}
