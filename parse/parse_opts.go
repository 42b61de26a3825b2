package parse

import (
	"log/slog"

	"github.com/signadot/yamlrows/ir"
)

type parseOpts struct {
	tolerant   bool
	maxDocSize int64
	maxDepth   int
	maxNodes   int
	logger     *slog.Logger
	report     *Report
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{maxDepth: ir.DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.logger == nil {
		pOpts.logger = slog.New(slog.DiscardHandler)
	}
	if pOpts.maxDepth <= 0 {
		pOpts.maxDepth = ir.DefaultMaxDepth
	}
	return pOpts
}

type ParseOption func(*parseOpts)

// ParseTolerant enables document boundary recovery for malformed streams.
func ParseTolerant(v bool) ParseOption {
	return func(o *parseOpts) { o.tolerant = v }
}

// ParseMaxDocumentSize bounds the byte size of each document; 0 means no
// bound.
func ParseMaxDocumentSize(n int64) ParseOption {
	return func(o *parseOpts) { o.maxDocSize = n }
}

func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParseMaxNodes bounds the nodes of each document after alias expansion;
// 0 means no bound.
func ParseMaxNodes(n int) ParseOption {
	return func(o *parseOpts) { o.maxNodes = n }
}

func ParseLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.logger = l }
}

// ParseReport fills r with counts describing the parse.
func ParseReport(r *Report) ParseOption {
	return func(o *parseOpts) { o.report = r }
}

// Report describes how a stream was parsed.
type Report struct {
	Documents int
	// Recovered is set when the stream was parsed fragment by fragment.
	Recovered bool
	Discarded int
	Oversized int
}
