package convert

import "github.com/signadot/yamlrows/ir"

type convOpts struct {
	maxDepth int
}

type Option func(*convOpts)

// MaxDepth sets the recursion ceiling of both directions. The default is
// ir.DefaultMaxDepth.
func MaxDepth(n int) Option {
	return func(o *convOpts) { o.maxDepth = n }
}

func newOpts(opts []Option) *convOpts {
	res := &convOpts{maxDepth: ir.DefaultMaxDepth}
	for _, o := range opts {
		o(res)
	}
	if res.maxDepth <= 0 {
		res.maxDepth = ir.DefaultMaxDepth
	}
	return res
}
