package schema

import (
	"github.com/signadot/yamlrows/debug"
	"github.com/signadot/yamlrows/ir"
)

// Merge returns the type reconciling a and b. Neither argument is modified.
//
// A nil or Null side defers to the other side. Structs union their fields,
// keeping the field order of a followed by the fields only b has. An empty
// struct defers to the other struct. Lists merge their element types.
// Numeric types widen: integer widths and DOUBLE only record the magnitude
// seen so far, so a wider numeric type holds both sides. Every other
// mismatch yields YAML.
func Merge(a, b *Type) *Type {
	res := merge(a, b, 0)
	if debug.Merge() {
		debug.Logf("merge %s + %s = %s\n", a, b, res)
	}
	return res
}

// MergeAll folds Merge over ts from left to right. It returns nil when ts is
// empty.
func MergeAll(ts ...*Type) *Type {
	var res *Type
	for _, t := range ts {
		res = merge(res, t, 0)
	}
	return res
}

func merge(a, b *Type, depth int) *Type {
	switch {
	case a == nil:
		return b.Clone()
	case b == nil:
		return a.Clone()
	case depth > ir.DefaultMaxDepth:
		return Passthrough()
	case a.ID == Null:
		return b.Clone()
	case b.ID == Null:
		return a.Clone()
	case a.ID == YAML || b.ID == YAML:
		return Passthrough()
	}
	if a.ID != b.ID {
		if a.ID.IsNumeric() && b.ID.IsNumeric() {
			return Scalar(Wider(a.ID, b.ID))
		}
		return Passthrough()
	}
	switch a.ID {
	case List:
		return ListOf(merge(a.Elem, b.Elem, depth+1))
	case Struct:
		return mergeStruct(a, b, depth)
	default:
		return Scalar(a.ID)
	}
}

func mergeStruct(a, b *Type, depth int) *Type {
	if len(a.Fields) == 0 {
		return b.Clone()
	}
	if len(b.Fields) == 0 {
		return a.Clone()
	}
	bIndex := make(map[string]int, len(b.Fields))
	for i, f := range b.Fields {
		if _, present := bIndex[f.Name]; !present {
			bIndex[f.Name] = i
		}
	}
	seen := make(map[string]bool, len(a.Fields))
	fields := make([]Field, 0, len(a.Fields)+len(b.Fields))
	for _, f := range a.Fields {
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		ft := f.Type.Clone()
		if i, ok := bIndex[f.Name]; ok {
			ft = merge(f.Type, b.Fields[i].Type, depth+1)
		}
		fields = append(fields, Field{Name: f.Name, Type: ft})
	}
	for _, f := range b.Fields {
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		fields = append(fields, Field{Name: f.Name, Type: f.Type.Clone()})
	}
	return StructOf(fields...)
}
