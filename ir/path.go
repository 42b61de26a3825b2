package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	afterSubtree := false
	for x != nil {
		if x.Subtree {
			buf.WriteString("..")
			afterSubtree = true
			x = x.Next
			continue
		}
		if x.IndexAll {
			buf.WriteString("[*]")
			x = x.Next
			afterSubtree = false
			continue
		}
		if x.Field != nil {
			if !afterSubtree {
				buf.WriteByte('.')
			}
			buf.WriteString(pathString(*x.Field))
			x = x.Next
			afterSubtree = false
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest := frag[2:]
			if rest == "" {
				return fmt.Errorf("expected field or index after '..'")
			}
			if rest[0] != '[' {
				rest = "." + rest
			}
			next := &Path{}
			if err := parseFrag(rest, next); err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(frag[i+2:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field name")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				escaped = false
				res = append(res, c)
				continue
			}
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the node at yPath. A missing field or index yields an
// undefined node rather than an error; errors are reserved for malformed
// paths and wildcards.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for yp != nil {
		if yp.IndexAll {
			return nil, fmt.Errorf("%w: any index in get", ErrPath)
		}
		if yp.Subtree {
			return nil, fmt.Errorf("%w: recurse .. in get", ErrPath)
		}
		if yp.Index != nil {
			index := *yp.Index
			if res.Type != SequenceType || index >= len(res.Values) {
				return Undefined(), nil
			}
			res = res.Values[index]
			yp = yp.Next
			continue
		}
		if yp.Field != nil {
			v := Get(res, *yp.Field)
			if v == nil {
				return Undefined(), nil
			}
			res = v
			yp = yp.Next
			continue
		}
		if yp.Next != nil {
			return nil, fmt.Errorf("%w: unexpected next w/out index or field", ErrPath)
		}
		break
	}
	return res.Clone(), nil
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// ListPath appends to dst a clone of every node matched by yPath, which may
// contain [*] and .. wildcards.
func (y *Node) ListPath(dst []*Node, yPath string) ([]*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	return y.ListParsedPath(dst, yp), nil
}

func (y *Node) ListParsedPath(dst []*Node, yp *Path) []*Node {
	if yp == nil {
		return append(dst, y.Clone())
	}
	if yp.Subtree {
		_ = y.Visit(func(node *Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			dst = node.ListParsedPath(dst, yp.Next)
			return !node.Type.IsLeaf(), nil
		})
		return dst
	}
	switch y.Type {
	case MapType:
		if yp.IndexAll || yp.Index != nil {
			return dst
		}
		if yp.Field == nil {
			if yp.Next == nil {
				return append(dst, y.Clone())
			}
			return dst
		}
		field := *yp.Field
		for i := range y.Fields {
			if y.Fields[i].String != field {
				continue
			}
			dst = y.Values[i].ListParsedPath(dst, yp.Next)
		}
		return dst

	case SequenceType:
		if yp.Field != nil {
			return dst
		}
		if yp.Index == nil && !yp.IndexAll {
			if yp.Next == nil {
				return append(dst, y.Clone())
			}
			return dst
		}
		if yp.Index != nil {
			idx := *yp.Index
			if idx < len(y.Values) {
				dst = y.Values[idx].ListParsedPath(dst, yp.Next)
			}
			return dst
		}
		for _, yv := range y.Values {
			dst = yv.ListParsedPath(dst, yp.Next)
		}
		return dst

	default:
		if yp.Field != nil || yp.Index != nil || yp.IndexAll {
			return dst
		}
		if yp.Next == nil {
			dst = append(dst, y.Clone())
		}
		return dst
	}
}
