package encode

import (
	"github.com/signadot/yamlrows/format"
	"github.com/signadot/yamlrows/ir"
)

type EncodeOption func(*EncState)

func EncodeStyle(s format.Style) EncodeOption {
	return func(es *EncState) { es.style = s }
}

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeMaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent:   2,
		maxDepth: ir.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent < 1 {
		es.indent = 2
	}
	if es.maxDepth <= 0 {
		es.maxDepth = ir.DefaultMaxDepth
	}
	return es
}
