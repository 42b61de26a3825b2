package transcode

import (
	"io"
	"math"
	"strconv"

	"github.com/signadot/yamlrows/infer"
	"github.com/signadot/yamlrows/ir"
)

// ToJSON returns the JSON text of node. Absent nodes are null.
func ToJSON(node *ir.Node, opts ...Option) string {
	o := newOpts(opts)
	return string(o.appendNode(nil, node, 0))
}

// WriteJSON writes the JSON text of node followed by a newline.
func WriteJSON(w io.Writer, node *ir.Node, opts ...Option) error {
	o := newOpts(opts)
	d := o.appendNode(nil, node, 0)
	_, err := w.Write(append(d, '\n'))
	return err
}

func (o *jsonOpts) appendNode(d []byte, node *ir.Node, depth int) []byte {
	if depth > o.maxDepth {
		return appendQuoted(d, ir.DepthSentinel)
	}
	if ir.IsAbsent(node) {
		return append(d, "null"...)
	}
	switch node.Type {
	case ir.ScalarType:
		return appendScalar(d, node)
	case ir.SequenceType:
		if len(node.Values) == 0 {
			return append(d, "[]"...)
		}
		d = append(d, '[')
		for i, v := range node.Values {
			if i != 0 {
				d = append(d, ',')
			}
			d = o.newline(d, depth+1)
			d = o.appendNode(d, v, depth+1)
		}
		d = o.newline(d, depth)
		return append(d, ']')
	case ir.MapType:
		if len(node.Fields) == 0 {
			return append(d, "{}"...)
		}
		d = append(d, '{')
		for i, f := range node.Fields {
			if i != 0 {
				d = append(d, ',')
			}
			d = o.newline(d, depth+1)
			d = appendQuoted(d, f.String)
			d = append(d, ':')
			if o.indent > 0 {
				d = append(d, ' ')
			}
			d = o.appendNode(d, node.Values[i], depth+1)
		}
		d = o.newline(d, depth)
		return append(d, '}')
	}
	return append(d, "null"...)
}

func (o *jsonOpts) newline(d []byte, depth int) []byte {
	if o.indent == 0 {
		return d
	}
	d = append(d, '\n')
	for range depth * o.indent {
		d = append(d, ' ')
	}
	return d
}

// appendScalar emits bare JSON literals only for true, false, null and
// finite numbers. The only JSON booleans are lowercase true and false, so
// other boolean aliases such as yes or True stay strings and keep their text.
func appendScalar(d []byte, node *ir.Node) []byte {
	s := node.String
	if node.Quoted {
		return appendQuoted(d, s)
	}
	switch s {
	case "true", "false":
		return append(d, s...)
	}
	if infer.IsNullLexeme(s) {
		return append(d, "null"...)
	}
	if n, ok := infer.ParseInteger(s); ok {
		return strconv.AppendInt(d, n, 10)
	}
	if f, ok := infer.ParseDouble(s); ok && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return strconv.AppendFloat(d, f, 'g', -1, 64)
	}
	return appendQuoted(d, s)
}
