package schema

import (
	"math"
	"strings"
)

type ID int

const (
	Null ID = iota
	Boolean
	TinyInt
	SmallInt
	Integer
	BigInt
	Double
	Date
	Time
	Timestamp
	String
	YAML
	List
	Struct
)

func (id ID) String() string {
	s, ok := map[ID]string{
		Null:      "NULL",
		Boolean:   "BOOLEAN",
		TinyInt:   "TINYINT",
		SmallInt:  "SMALLINT",
		Integer:   "INTEGER",
		BigInt:    "BIGINT",
		Double:    "DOUBLE",
		Date:      "DATE",
		Time:      "TIME",
		Timestamp: "TIMESTAMP",
		String:    "VARCHAR",
		YAML:      "YAML",
		List:      "LIST",
		Struct:    "STRUCT",
	}[id]
	if ok {
		return s
	}
	return "<unknown type id>"
}

func (id ID) IsNumeric() bool {
	return numericRank(id) != 0
}

func (id ID) IsInteger() bool {
	switch id {
	case TinyInt, SmallInt, Integer, BigInt:
		return true
	default:
		return false
	}
}

func (id ID) IsTemporal() bool {
	switch id {
	case Date, Time, Timestamp:
		return true
	default:
		return false
	}
}

func (id ID) IsNested() bool {
	return id == List || id == Struct
}

// numericRank orders the numeric ids by width; 0 means not numeric.
func numericRank(id ID) int {
	switch id {
	case TinyInt:
		return 1
	case SmallInt:
		return 2
	case Integer:
		return 3
	case BigInt:
		return 4
	case Double:
		return 5
	default:
		return 0
	}
}

// Wider returns the wider of two numeric ids.
func Wider(a, b ID) ID {
	if numericRank(b) > numericRank(a) {
		return b
	}
	return a
}

// IntegerFor returns the narrowest integer id whose range holds v.
func IntegerFor(v int64) ID {
	switch {
	case v >= math.MinInt8 && v <= math.MaxInt8:
		return TinyInt
	case v >= math.MinInt16 && v <= math.MaxInt16:
		return SmallInt
	case v >= math.MinInt32 && v <= math.MaxInt32:
		return Integer
	default:
		return BigInt
	}
}

// IntegerRange returns the bounds of an integer id.
func IntegerRange(id ID) (lo, hi int64, ok bool) {
	switch id {
	case TinyInt:
		return math.MinInt8, math.MaxInt8, true
	case SmallInt:
		return math.MinInt16, math.MaxInt16, true
	case Integer:
		return math.MinInt32, math.MaxInt32, true
	case BigInt:
		return math.MinInt64, math.MaxInt64, true
	default:
		return 0, 0, false
	}
}

type Type struct {
	ID     ID
	Elem   *Type
	Fields []Field
}

type Field struct {
	Name string
	Type *Type
}

// Scalar returns a type without children. Nested ids get a VARCHAR element
// or no fields.
func Scalar(id ID) *Type {
	switch id {
	case List:
		return ListOf(Scalar(String))
	case Struct:
		return StructOf()
	}
	return &Type{ID: id}
}

func ListOf(elem *Type) *Type {
	if elem == nil {
		elem = Scalar(String)
	}
	return &Type{ID: List, Elem: elem}
}

func StructOf(fields ...Field) *Type {
	if fields == nil {
		fields = []Field{}
	}
	return &Type{ID: Struct, Fields: fields}
}

// Passthrough returns the YAML type.
func Passthrough() *Type {
	return &Type{ID: YAML}
}

func (t *Type) Clone() *Type {
	if t == nil {
		return nil
	}
	res := &Type{ID: t.ID}
	if t.Elem != nil {
		res.Elem = t.Elem.Clone()
	}
	if t.Fields != nil {
		res.Fields = make([]Field, len(t.Fields))
		for i, f := range t.Fields {
			res.Fields[i] = Field{Name: f.Name, Type: f.Type.Clone()}
		}
	}
	return res
}

func (t *Type) Equal(o *Type) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil || t.ID != o.ID {
		return false
	}
	switch t.ID {
	case List:
		return t.Elem.Equal(o.Elem)
	case Struct:
		if len(t.Fields) != len(o.Fields) {
			return false
		}
		for i := range t.Fields {
			if t.Fields[i].Name != o.Fields[i].Name {
				return false
			}
			if !t.Fields[i].Type.Equal(o.Fields[i].Type) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Field returns the type and index of the named field of a struct type.
func (t *Type) Field(name string) (*Type, int) {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return t.Fields[i].Type, i
		}
	}
	return nil, -1
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.ID {
	case List:
		return t.Elem.String() + "[]"
	case Struct:
		buf := &strings.Builder{}
		buf.WriteString("STRUCT(")
		for i, f := range t.Fields {
			if i != 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(QuoteName(f.Name))
			buf.WriteByte(' ')
			buf.WriteString(f.Type.String())
		}
		buf.WriteByte(')')
		return buf.String()
	default:
		return t.ID.String()
	}
}

func (t *Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	pt, err := ParseType(string(d))
	if err != nil {
		return err
	}
	*t = *pt
	return nil
}

// QuoteName returns n as it appears in a type string, double quoted
// unless it is a plain identifier.
func QuoteName(n string) string {
	if isIdent(n) {
		return n
	}
	return `"` + strings.ReplaceAll(n, `"`, `""`) + `"`
}

func isIdent(n string) bool {
	if n == "" {
		return false
	}
	for i, c := range n {
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// Finalize replaces every Null placeholder in t with VARCHAR.
func Finalize(t *Type) *Type {
	if t == nil {
		return Scalar(String)
	}
	switch t.ID {
	case Null:
		return Scalar(String)
	case List:
		return ListOf(Finalize(t.Elem))
	case Struct:
		fields := make([]Field, len(t.Fields))
		for i, f := range t.Fields {
			fields[i] = Field{Name: f.Name, Type: Finalize(f.Type)}
		}
		return StructOf(fields...)
	default:
		return t.Clone()
	}
}
