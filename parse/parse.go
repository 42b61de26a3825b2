package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/yamlrows/debug"
	"github.com/signadot/yamlrows/ir"

	"gopkg.in/yaml.v3"
)

const mergeTag = "!!merge"

// Parse parses the first document in d. An empty stream gives a null node.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	docs, err := ParseAll(d, opts...)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return ir.Null(), nil
	}
	return docs[0], nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseAll parses every document in d.
func ParseAll(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := newParseOpts(opts)
	if pOpts.maxDocSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSizeLimit, pOpts.maxDocSize)
	}
	report := pOpts.report
	if report == nil {
		report = &Report{}
	}
	*report = Report{}

	if pOpts.maxDocSize > 0 {
		frags := SplitDocuments(d)
		oversized := false
		for i := range frags {
			frag := &frags[i]
			if int64(len(frag.Text)) <= pOpts.maxDocSize {
				continue
			}
			if !pOpts.tolerant {
				return nil, fmt.Errorf("%w: document at line %d has %d bytes, limit %d",
					ErrDocumentTooLarge, frag.Line, len(frag.Text), pOpts.maxDocSize)
			}
			pOpts.logger.Warn("skipping oversized document",
				"line", frag.Line, "bytes", len(frag.Text), "limit", pOpts.maxDocSize)
			frag.skip = true
			report.Oversized++
			oversized = true
		}
		if oversized {
			return parseFragments(frags, pOpts, report), nil
		}
	}

	docs, err := decodeStream(d, pOpts)
	if err == nil {
		report.Documents = len(docs)
		return docs, nil
	}
	if !pOpts.tolerant {
		return nil, err
	}
	pOpts.logger.Info("recovering malformed stream", "error", err)
	return parseFragments(SplitDocuments(d), pOpts, report), nil
}

func parseFragments(frags []Fragment, pOpts *parseOpts, report *Report) []*ir.Node {
	report.Recovered = true
	var res []*ir.Node
	for i := range frags {
		frag := &frags[i]
		if frag.skip || frag.Blank() {
			continue
		}
		docs, err := decodeStream(frag.Text, pOpts)
		if err != nil {
			pOpts.logger.Warn("discarding malformed document",
				"fragment", frag.Index, "line", frag.Line, "error", err)
			report.Discarded++
			continue
		}
		res = append(res, docs...)
	}
	report.Documents = len(res)
	pOpts.logger.Info("recovered stream", "documents", report.Documents,
		"discarded", report.Discarded, "oversized", report.Oversized)
	return res
}

func decodeStream(d []byte, pOpts *parseOpts) ([]*ir.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(d))
	var res []*ir.Node
	for i := 0; ; i++ {
		yn := &yaml.Node{}
		err := dec.Decode(yn)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrParse, i, err)
		}
		c := newConverter(pOpts)
		node := c.fromYAML(yn, 0)
		if c.err != nil {
			return nil, fmt.Errorf("document %d: %w", i, c.err)
		}
		if debug.Parse() {
			debug.Logf("parsed document %d: %s (%d nodes, %d from aliases)\n", i, node.Type, c.nodes, c.aliasNodes)
		}
		res = append(res, node)
	}
}

// converter turns one yaml.v3 document into an ir.Node. Aliases are
// expanded into copies. An alias back into an anchor being expanded gives
// ir.DepthNode, and conversion fails once alias copies dominate the nodes
// produced or the node bound is passed.
type converter struct {
	opts *parseOpts

	anchors    map[*yaml.Node]bool
	aliasDepth int
	nodes      int
	aliasNodes int
	err        error
}

func newConverter(pOpts *parseOpts) *converter {
	return &converter{opts: pOpts, anchors: map[*yaml.Node]bool{}}
}

func (c *converter) count() {
	c.nodes++
	if c.aliasDepth > 0 {
		c.aliasNodes++
	}
	if c.opts.maxNodes > 0 && c.nodes > c.opts.maxNodes {
		c.err = fmt.Errorf("%w: more than %d nodes", ErrTooManyNodes, c.opts.maxNodes)
		return
	}
	if c.aliasNodes <= 100 || c.nodes <= 1000 {
		return
	}
	if float64(c.aliasNodes)/float64(c.nodes) > allowedAliasRatio(c.nodes) {
		c.err = fmt.Errorf("%w: %d of %d nodes come from aliases", ErrExcessiveAliasing, c.aliasNodes, c.nodes)
	}
}

// allowedAliasRatio follows the yaml.v3 decoder: nearly anything goes for
// small documents, at most 10% aliasing for very large ones.
func allowedAliasRatio(nodes int) float64 {
	const (
		low  = 400_000
		high = 4_000_000
	)
	switch {
	case nodes <= low:
		return 0.99
	case nodes >= high:
		return 0.10
	}
	return 0.99 - 0.89*float64(nodes-low)/float64(high-low)
}

func (c *converter) fromYAML(yn *yaml.Node, depth int) *ir.Node {
	if c.err != nil {
		return ir.Null()
	}
	if depth > c.opts.maxDepth {
		return ir.DepthNode()
	}
	if yn.Anchor != "" {
		if c.anchors[yn] {
			return ir.DepthNode()
		}
		c.anchors[yn] = true
		defer delete(c.anchors, yn)
	}
	if yn.Kind != yaml.DocumentNode && yn.Kind != yaml.AliasNode {
		c.count()
	}
	switch yn.Kind {
	case yaml.DocumentNode:
		if len(yn.Content) == 0 {
			return ir.Null()
		}
		return c.fromYAML(yn.Content[0], depth)
	case yaml.AliasNode:
		if yn.Alias == nil {
			return ir.Null()
		}
		c.aliasDepth++
		defer func() { c.aliasDepth-- }()
		return c.fromYAML(yn.Alias, depth+1)
	case yaml.ScalarNode:
		return fromScalar(yn)
	case yaml.SequenceNode:
		vals := make([]*ir.Node, len(yn.Content))
		for i, child := range yn.Content {
			vals[i] = c.fromYAML(child, depth+1)
		}
		return ir.FromSlice(vals).WithTag(explicitTag(yn))
	case yaml.MappingNode:
		return c.fromMapping(yn, depth)
	default:
		return ir.Null()
	}
}

func fromScalar(yn *yaml.Node) *ir.Node {
	tag := yn.ShortTag()
	quoted := yn.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle|yaml.LiteralStyle|yaml.FoldedStyle) != 0
	if yn.Style&yaml.TaggedStyle != 0 && tag == "!!str" {
		quoted = true
	}
	if !quoted && tag == "!!null" {
		return ir.Null().WithTag(explicitTag(yn))
	}
	res := ir.FromString(yn.Value)
	res.Quoted = quoted
	return res.WithTag(explicitTag(yn))
}

func explicitTag(yn *yaml.Node) string {
	if yn.Style&yaml.TaggedStyle == 0 {
		return ""
	}
	return yn.Tag
}

func (c *converter) fromMapping(yn *yaml.Node, depth int) *ir.Node {
	n := len(yn.Content) / 2
	kvs := make([]ir.KeyVal, 0, n)
	explicit := make(map[string]bool, n)
	for i := 0; i+1 < len(yn.Content); i += 2 {
		k := yn.Content[i]
		if isMergeKey(k) {
			continue
		}
		explicit[keyString(k)] = true
	}
	seen := make(map[string]bool, n)
	for i := 0; i+1 < len(yn.Content); i += 2 {
		k, v := yn.Content[i], yn.Content[i+1]
		if isMergeKey(k) {
			for _, src := range mergeSources(v) {
				merged := c.fromYAML(src, depth+1)
				if merged.Type != ir.MapType {
					continue
				}
				for j, f := range merged.Fields {
					if explicit[f.String] || seen[f.String] {
						continue
					}
					seen[f.String] = true
					kvs = append(kvs, ir.KeyVal{Key: f.String, Val: merged.Values[j]})
				}
			}
			continue
		}
		key := keyString(k)
		seen[key] = true
		kvs = append(kvs, ir.KeyVal{Key: key, Val: c.fromYAML(v, depth+1)})
	}
	return ir.FromKeyVals(kvs).WithTag(explicitTag(yn))
}

func isMergeKey(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.ShortTag() == mergeTag
}

// mergeSources returns the nodes merged by a << value, keeping aliases so
// their expansion is counted.
func mergeSources(v *yaml.Node) []*yaml.Node {
	if v.Kind == yaml.AliasNode && v.Alias != nil && v.Alias.Kind == yaml.SequenceNode {
		v = v.Alias
	}
	if v.Kind == yaml.SequenceNode {
		return v.Content
	}
	return []*yaml.Node{v}
}

func keyString(k *yaml.Node) string {
	if k.Kind == yaml.AliasNode && k.Alias != nil {
		k = k.Alias
	}
	if k.Kind == yaml.ScalarNode {
		return k.Value
	}
	c := *k
	c.Style |= yaml.FlowStyle
	d, err := yaml.Marshal(&c)
	if err != nil {
		return k.Value
	}
	return strings.TrimSpace(string(d))
}
