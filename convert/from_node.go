package convert

import (
	"github.com/signadot/yamlrows/debug"
	"github.com/signadot/yamlrows/encode"
	"github.com/signadot/yamlrows/format"
	"github.com/signadot/yamlrows/infer"
	"github.com/signadot/yamlrows/ir"
	"github.com/signadot/yamlrows/schema"
	"github.com/signadot/yamlrows/value"
)

// FromNode converts node to a value of type t.
//
// A missing node gives NULL with outcome Absent and an explicit null gives
// NULL with outcome Converted. Scalars are parsed according to t, and
// containers are converted element by element. Anything that does not fit
// becomes NULL with outcome Degraded. VARCHAR and YAML targets accept any
// node, holding containers as flow style document text.
func FromNode(node *ir.Node, t *schema.Type, opts ...Option) Result {
	c := &fromConv{opts: newOpts(opts)}
	v, o := c.convert(node, t, 0)
	if debug.Convert() {
		debug.Logf("from node %s as %s: %s (%s)\n", traceNode(node), t, v, o)
	}
	return Result{Value: v, Outcome: o, Degraded: c.degraded}
}

type fromConv struct {
	opts     *convOpts
	degraded int
}

func (c *fromConv) degrade(t *schema.Type) (value.Value, Outcome) {
	c.degraded++
	return value.NullOf(t), Degraded
}

func (c *fromConv) convert(node *ir.Node, t *schema.Type, depth int) (value.Value, Outcome) {
	if t == nil || t.ID == schema.Null {
		t = schema.Scalar(schema.String)
	}
	if node == nil || node.Type == ir.UndefinedType {
		return value.NullOf(t), Absent
	}
	if depth > c.opts.maxDepth {
		switch t.ID {
		case schema.String:
			return value.String(ir.DepthSentinel), DepthExceeded
		case schema.YAML:
			return value.YAML(encode.MustString(ir.DepthNode())), DepthExceeded
		}
		return value.NullOf(t), DepthExceeded
	}
	if node.Type == ir.NullType {
		return value.NullOf(t), Converted
	}
	switch t.ID {
	case schema.String:
		if node.Type == ir.ScalarType {
			return value.String(node.String), Converted
		}
		text, o := c.text(node, depth)
		if o == Degraded {
			return c.degrade(t)
		}
		return value.String(text), o
	case schema.YAML:
		text, o := c.text(node, depth)
		if o == Degraded {
			return c.degrade(t)
		}
		return value.YAML(text), o
	case schema.List:
		return c.list(node, t, depth)
	case schema.Struct:
		return c.structure(node, t, depth)
	}
	if node.Type != ir.ScalarType {
		return c.degrade(t)
	}
	v, ok := scalarFromLexeme(node.String, t)
	if !ok {
		return c.degrade(t)
	}
	return v, Converted
}

// text renders node as flow style document text, limited to the depth that
// remains.
func (c *fromConv) text(node *ir.Node, depth int) (string, Outcome) {
	remaining := c.opts.maxDepth - depth
	if remaining < 1 && !node.Type.IsLeaf() {
		return encode.MustString(ir.DepthNode()), DepthExceeded
	}
	s, err := encode.String(node, encode.EncodeStyle(format.FlowStyle), encode.EncodeMaxDepth(max(remaining, 1)))
	if err != nil {
		return "", Degraded
	}
	o := Converted
	if node.Depth()-1 > remaining {
		o = DepthExceeded
	}
	return s, o
}

func (c *fromConv) list(node *ir.Node, t *schema.Type, depth int) (value.Value, Outcome) {
	if node.Type != ir.SequenceType {
		return c.degrade(t)
	}
	elems := make([]value.Value, len(node.Values))
	res := Converted
	for i, v := range node.Values {
		ev, o := c.convert(v, t.Elem, depth+1)
		elems[i] = ev
		res = worse(res, o)
	}
	return value.List(t.Elem, elems...), res
}

func (c *fromConv) structure(node *ir.Node, t *schema.Type, depth int) (value.Value, Outcome) {
	if node.Type != ir.MapType {
		return c.degrade(t)
	}
	fields := make([]value.Value, len(t.Fields))
	res := Converted
	for i, f := range t.Fields {
		fv, o := c.convert(ir.Get(node, f.Name), f.Type, depth+1)
		fields[i] = fv
		res = worse(res, o)
	}
	return value.Struct(t, fields...), res
}

// scalarFromLexeme parses a scalar lexeme as a value of a scalar type.
func scalarFromLexeme(s string, t *schema.Type) (value.Value, bool) {
	switch t.ID {
	case schema.Boolean:
		b, ok := infer.ParseBool(s)
		if !ok {
			return value.Value{}, false
		}
		return value.Bool(b), true
	case schema.TinyInt, schema.SmallInt, schema.Integer, schema.BigInt:
		n, ok := infer.ParseInteger(s)
		if !ok {
			f, fok := infer.ParseDouble(s)
			if !fok {
				return value.Value{}, false
			}
			n, ok = infer.IntegralDouble(f)
			if !ok {
				return value.Value{}, false
			}
		}
		lo, hi, _ := schema.IntegerRange(t.ID)
		if n < lo || n > hi {
			return value.Value{}, false
		}
		return value.IntOf(t.ID, n), true
	case schema.Double:
		f, ok := infer.ParseDouble(s)
		if !ok {
			return value.Value{}, false
		}
		return value.Double(f), true
	case schema.Date:
		d, ok := value.ParseDate(s)
		if !ok {
			return value.Value{}, false
		}
		return value.Date(d), true
	case schema.Time:
		tod, ok := value.ParseTime(s)
		if !ok {
			return value.Value{}, false
		}
		return value.TimeOfDay(tod), true
	case schema.Timestamp:
		ts, ok := value.ParseTimestamp(s)
		if !ok {
			return value.Value{}, false
		}
		return value.Timestamp(ts), true
	}
	return value.Value{}, false
}

// traceNode renders node for debug traces, giving the encoding error in
// place of the node when it cannot be encoded.
func traceNode(node *ir.Node) string {
	s, err := encode.String(node, encode.EncodeStyle(format.FlowStyle))
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return s
}
