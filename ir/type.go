package ir

import "fmt"

type Type int

const (
	UndefinedType Type = iota
	NullType
	ScalarType
	SequenceType
	MapType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		UndefinedType: "Undefined",
		NullType:      "Null",
		ScalarType:    "Scalar",
		SequenceType:  "Sequence",
		MapType:       "Map",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Undefined": UndefinedType,
		"Null":      NullType,
		"Scalar":    ScalarType,
		"Sequence":  SequenceType,
		"Map":       MapType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func (t Type) IsLeaf() bool {
	switch t {
	case SequenceType, MapType:
		return false
	default:
		return true
	}
}

// IsAbsent reports whether a node of this type carries no value.
func (t Type) IsAbsent() bool {
	return t == UndefinedType || t == NullType
}
