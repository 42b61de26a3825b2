package rows

import (
	"io"

	"github.com/signadot/yamlrows/convert"
	"github.com/signadot/yamlrows/encode"
	"github.com/signadot/yamlrows/format"
	"github.com/signadot/yamlrows/layout"
	"github.com/signadot/yamlrows/value"
)

type WriteOptions struct {
	Style  format.Style
	Layout format.Layout
	// Row is the index of the value among the values written, used by
	// format.DocumentLayout.
	Row      int
	MaxDepth int
	// Indent is the block style indentation, 2 when 0.
	Indent int
}

// Format serializes v.
func Format(v value.Value, opts WriteOptions) (string, error) {
	nr := convert.ToNode(v, convert.MaxDepth(opts.MaxDepth))
	text, err := encode.String(nr.Node,
		encode.EncodeStyle(opts.Style),
		encode.EncodeIndent(opts.Indent),
		encode.EncodeMaxDepth(opts.MaxDepth))
	if err != nil {
		return "", err
	}
	return layout.Apply(text, opts.Row, opts.Layout, opts.Style), nil
}

// Write writes each value on its own lines, numbering rows from
// opts.Row.
func Write(w io.Writer, values []value.Value, opts WriteOptions) error {
	first := opts.Row
	for i, v := range values {
		opts.Row = first + i
		s, err := Format(v, opts)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}
