package infer

import (
	"github.com/signadot/yamlrows/debug"
	"github.com/signadot/yamlrows/ir"
	"github.com/signadot/yamlrows/schema"
)

type inferOpts struct {
	maxDepth int
}

type Option func(*inferOpts)

// MaxDepth bounds the nesting depth inferred. Deeper values are typed YAML.
func MaxDepth(n int) Option {
	return func(o *inferOpts) { o.maxDepth = n }
}

func newOpts(opts []Option) *inferOpts {
	res := &inferOpts{maxDepth: ir.DefaultMaxDepth}
	for _, o := range opts {
		o(res)
	}
	if res.maxDepth <= 0 {
		res.maxDepth = ir.DefaultMaxDepth
	}
	return res
}

// Node infers the type of a single document. Absent and null nodes give
// schema.Null.
func Node(node *ir.Node, opts ...Option) *schema.Type {
	o := newOpts(opts)
	res := o.node(node, 0)
	if debug.Infer() {
		debug.Logf("infer %s\n", res)
	}
	return res
}

// Population infers the merged type of nodes, folding left to right.
func Population(nodes []*ir.Node, opts ...Option) *schema.Type {
	o := newOpts(opts)
	var res *schema.Type
	for _, n := range nodes {
		res = schema.Merge(res, o.node(n, 0))
	}
	if res == nil {
		return schema.Scalar(schema.Null)
	}
	return res
}

func (o *inferOpts) node(node *ir.Node, depth int) *schema.Type {
	if depth > o.maxDepth {
		return schema.Passthrough()
	}
	if node == nil {
		return schema.Scalar(schema.Null)
	}
	switch node.Type {
	case ir.ScalarType:
		if node.Quoted {
			return schema.Scalar(schema.String)
		}
		return schema.Scalar(DetectScalar(node.String))
	case ir.SequenceType:
		return o.sequence(node, depth)
	case ir.MapType:
		return o.mapping(node, depth)
	default:
		return schema.Scalar(schema.Null)
	}
}

func (o *inferOpts) sequence(node *ir.Node, depth int) *schema.Type {
	if len(node.Values) == 0 {
		return schema.ListOf(schema.Scalar(schema.String))
	}
	var elem *schema.Type
	for _, v := range node.Values {
		vt := o.node(v, depth+1)
		if vt.ID == schema.Null {
			continue
		}
		if elem == nil {
			elem = vt
			continue
		}
		elem = unify(elem, vt)
		if elem.ID == schema.String {
			break
		}
	}
	if elem == nil {
		elem = schema.Scalar(schema.Null)
	}
	return schema.ListOf(elem)
}

// unify reconciles the types of two elements of one sequence. Unlike
// schema.Merge, a kind mismatch collapses to VARCHAR.
func unify(a, b *schema.Type) *schema.Type {
	switch {
	case a.ID == b.ID && a.ID.IsNested():
		return schema.Merge(a, b)
	case a.ID == b.ID:
		return a
	case a.ID.IsNumeric() && b.ID.IsNumeric():
		return schema.Scalar(schema.Wider(a.ID, b.ID))
	default:
		return schema.Scalar(schema.String)
	}
}

func (o *inferOpts) mapping(node *ir.Node, depth int) *schema.Type {
	fields := make([]schema.Field, 0, len(node.Fields))
	seen := make(map[string]bool, len(node.Fields))
	for i, f := range node.Fields {
		if seen[f.String] {
			continue
		}
		seen[f.String] = true
		fields = append(fields, schema.Field{Name: f.String, Type: o.node(node.Values[i], depth+1)})
	}
	return schema.StructOf(fields...)
}
