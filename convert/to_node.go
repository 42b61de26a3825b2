package convert

import (
	"fmt"

	"github.com/signadot/yamlrows/debug"
	"github.com/signadot/yamlrows/encode"
	"github.com/signadot/yamlrows/ir"
	"github.com/signadot/yamlrows/parse"
	"github.com/signadot/yamlrows/schema"
	"github.com/signadot/yamlrows/value"
)

// ToNode converts v to a document node. Booleans and numbers use the
// emitter's typed lexemes, strings are quoted when NeedsQuote says so, YAML
// values are parsed back into nodes, lists become sequences and structs
// become maps in field order. ToNode does not fail: values it cannot
// represent become quoted text, and a null node is the last resort.
func ToNode(v value.Value, opts ...Option) (res NodeResult) {
	defer func() {
		if r := recover(); r != nil {
			res = NodeResult{Node: ir.Null(), Outcome: Degraded}
		}
	}()
	c := &toConv{opts: newOpts(opts)}
	n, o := c.convert(v, 0)
	if debug.Convert() {
		debug.Logf("to node %s: %s (%s)\n", v, traceNode(n), o)
	}
	return NodeResult{Node: n, Outcome: o}
}

type toConv struct {
	opts *convOpts
}

func (c *toConv) convert(v value.Value, depth int) (*ir.Node, Outcome) {
	if depth > c.opts.maxDepth {
		return ir.DepthNode(), DepthExceeded
	}
	if v.Null || v.Type == nil {
		return ir.Null(), Converted
	}
	switch v.Type.ID {
	case schema.Null:
		return ir.Null(), Converted
	case schema.Boolean:
		return typed(v, v.Bool), Converted
	case schema.TinyInt, schema.SmallInt, schema.Integer, schema.BigInt:
		return typed(v, v.Int), Converted
	case schema.Double:
		return typed(v, v.Float), Converted
	case schema.Date, schema.Time, schema.Timestamp:
		s, _ := v.Lexeme()
		return ir.FromString(s), Converted
	case schema.String:
		return stringNode(v.Str), Converted
	case schema.YAML:
		return c.yaml(v.Str, depth)
	case schema.List:
		vals := make([]*ir.Node, len(v.Elems))
		res := Converted
		for i := range v.Elems {
			n, o := c.convert(v.Elems[i], depth+1)
			vals[i] = n
			res = worse(res, o)
		}
		return ir.FromSlice(vals), res
	case schema.Struct:
		kvs := make([]ir.KeyVal, len(v.Type.Fields))
		res := Converted
		for i, f := range v.Type.Fields {
			var fv value.Value
			if i < len(v.Fields) {
				fv = v.Fields[i]
			}
			n, o := c.convert(fv, depth+1)
			kvs[i] = ir.KeyVal{Key: f.Name, Val: n}
			res = worse(res, o)
		}
		return ir.FromKeyVals(kvs), res
	}
	return ir.FromQuoted(fmt.Sprint(v.Interface())), Degraded
}

// typed emits x with the emitter's typed lexeme, falling back to the
// value's own quoted text.
func typed(v value.Value, x any) *ir.Node {
	s, err := encode.ScalarLexeme(x)
	if err != nil {
		return ir.FromQuoted(v.String())
	}
	return ir.FromString(s)
}

func stringNode(s string) *ir.Node {
	if NeedsQuote(s) {
		return ir.FromQuoted(s)
	}
	return ir.FromString(s)
}

// yaml parses passthrough text. Text that does not parse is kept as a
// quoted string.
func (c *toConv) yaml(text string, depth int) (*ir.Node, Outcome) {
	remaining := c.opts.maxDepth - depth
	n, err := parse.ParseString(text, parse.ParseMaxDepth(max(remaining, 1)))
	if err != nil {
		return ir.FromQuoted(text), Degraded
	}
	if remaining < 1 && !n.Type.IsLeaf() {
		return ir.DepthNode(), DepthExceeded
	}
	if hasSentinel(n) {
		return n, DepthExceeded
	}
	return n, Converted
}

func hasSentinel(n *ir.Node) bool {
	found := false
	_ = n.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if y.Type == ir.ScalarType && y.Quoted && y.String == ir.DepthSentinel {
			found = true
		}
		return !found, nil
	})
	return found
}
