package encode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/yamlrows/format"
	"github.com/signadot/yamlrows/ir"

	"gopkg.in/yaml.v3"
)

type EncState struct {
	indent   int
	maxDepth int
	style    format.Style
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	s, err := String(node, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}

// String returns the encoding of node without a trailing newline.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	es := newEncState(opts)
	yn := toYAML(node, es, 0)
	buf := bytes.NewBuffer(nil)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(es.indent)
	if err := enc.Encode(yn); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func toYAML(node *ir.Node, es *EncState, depth int) *yaml.Node {
	if depth > es.maxDepth {
		return quotedScalar(ir.DepthSentinel)
	}
	if node == nil {
		return nullScalar()
	}
	switch node.Type {
	case ir.UndefinedType, ir.NullType:
		return nullScalar()
	case ir.ScalarType:
		if node.Quoted {
			return quotedScalar(node.String)
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Value: node.String}
	case ir.SequenceType:
		yn := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		yn.Content = make([]*yaml.Node, len(node.Values))
		for i, v := range node.Values {
			yn.Content[i] = toYAML(v, es, depth+1)
		}
		if es.style.IsFlow() {
			yn.Style = yaml.FlowStyle
		}
		return yn
	case ir.MapType:
		yn := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		yn.Content = make([]*yaml.Node, 0, 2*len(node.Fields))
		for i, f := range node.Fields {
			key := &yaml.Node{Kind: yaml.ScalarNode, Value: f.String}
			if f.Quoted {
				key = quotedScalar(f.String)
			}
			yn.Content = append(yn.Content, key, toYAML(node.Values[i], es, depth+1))
		}
		if es.style.IsFlow() {
			yn.Style = yaml.FlowStyle
		}
		return yn
	default:
		panic("type")
	}
}

func nullScalar() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func quotedScalar(v string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.SingleQuotedStyle,
		Value: v,
	}
}
