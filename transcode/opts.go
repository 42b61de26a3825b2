package transcode

import "github.com/signadot/yamlrows/ir"

type jsonOpts struct {
	indent   int
	maxDepth int
}

type Option func(*jsonOpts)

// JSONIndent pretty prints with n spaces per level. 0 gives compact output.
func JSONIndent(n int) Option {
	return func(o *jsonOpts) { o.indent = n }
}

// JSONMaxDepth bounds the depth transcoded. Deeper values become the depth
// sentinel string.
func JSONMaxDepth(n int) Option {
	return func(o *jsonOpts) { o.maxDepth = n }
}

func newOpts(opts []Option) *jsonOpts {
	res := &jsonOpts{maxDepth: ir.DefaultMaxDepth}
	for _, o := range opts {
		o(res)
	}
	if res.indent < 0 {
		res.indent = 0
	}
	if res.maxDepth <= 0 {
		res.maxDepth = ir.DefaultMaxDepth
	}
	return res
}
