package value

import (
	"math"
	"strconv"
	"time"

	"github.com/signadot/yamlrows/schema"
)

type Value struct {
	Type *schema.Type
	Null bool

	Bool  bool
	Int   int64
	Float float64
	// Str holds String values and the document text of YAML values.
	Str  string
	Time time.Time

	Elems []Value
	// Fields is parallel to Type.Fields.
	Fields []Value
}

func NullOf(t *schema.Type) Value {
	return Value{Type: t, Null: true}
}

func Bool(b bool) Value {
	return Value{Type: schema.Scalar(schema.Boolean), Bool: b}
}

// Int returns an integer value of the narrowest width holding v.
func Int(v int64) Value {
	return Value{Type: schema.Scalar(schema.IntegerFor(v)), Int: v}
}

// IntOf returns an integer value of width id, which must hold v.
func IntOf(id schema.ID, v int64) Value {
	return Value{Type: schema.Scalar(id), Int: v}
}

func Double(f float64) Value {
	return Value{Type: schema.Scalar(schema.Double), Float: f}
}

func String(s string) Value {
	return Value{Type: schema.Scalar(schema.String), Str: s}
}

// YAML returns a passthrough value holding document text.
func YAML(text string) Value {
	return Value{Type: schema.Passthrough(), Str: text}
}

// Date returns a DATE value for the calendar day of t, or a null DATE when
// the year is outside MinYear and MaxYear.
func Date(t time.Time) Value {
	y, m, d := t.Date()
	if y < MinYear || y > MaxYear {
		return NullOf(schema.Scalar(schema.Date))
	}
	return Value{Type: schema.Scalar(schema.Date), Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// TimeOfDay returns a TIME value holding the clock of t.
func TimeOfDay(t time.Time) Value {
	h, m, s := t.Clock()
	return Value{Type: schema.Scalar(schema.Time), Time: time.Date(0, 1, 1, h, m, s, t.Nanosecond(), time.UTC)}
}

// Timestamp returns a TIMESTAMP value in UTC, or a null TIMESTAMP when the
// UTC year is outside MinYear and MaxYear.
func Timestamp(t time.Time) Value {
	if !InYearRange(t) {
		return NullOf(schema.Scalar(schema.Timestamp))
	}
	return Value{Type: schema.Scalar(schema.Timestamp), Time: t.UTC()}
}

// List returns a list value with element type elem. A nil elems gives an
// empty list.
func List(elem *schema.Type, elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{Type: schema.ListOf(elem), Elems: elems}
}

// Struct returns a struct value of type t. Missing trailing fields are set
// to NULL of their declared type.
func Struct(t *schema.Type, fields ...Value) Value {
	res := make([]Value, len(t.Fields))
	for i, f := range t.Fields {
		if i < len(fields) {
			res[i] = fields[i]
			continue
		}
		res[i] = NullOf(f.Type)
	}
	return Value{Type: t, Fields: res}
}

// Field returns the value of the named struct field.
func (v Value) Field(name string) (Value, bool) {
	if v.Type == nil || v.Type.ID != schema.Struct || v.Null {
		return Value{}, false
	}
	_, i := v.Type.Field(name)
	if i < 0 || i >= len(v.Fields) {
		return Value{}, false
	}
	return v.Fields[i], true
}

// ID returns the type id of v, or Null for an untyped value.
func (v Value) ID() schema.ID {
	if v.Type == nil {
		return schema.Null
	}
	return v.Type.ID
}

func (v Value) Equal(o Value) bool {
	if v.Null != o.Null || !v.Type.Equal(o.Type) {
		return false
	}
	if v.Null {
		return true
	}
	switch v.ID() {
	case schema.Null:
		return true
	case schema.Boolean:
		return v.Bool == o.Bool
	case schema.TinyInt, schema.SmallInt, schema.Integer, schema.BigInt:
		return v.Int == o.Int
	case schema.Double:
		if math.IsNaN(v.Float) {
			return math.IsNaN(o.Float)
		}
		return v.Float == o.Float
	case schema.Date, schema.Time, schema.Timestamp:
		return v.Time.Equal(o.Time)
	case schema.String, schema.YAML:
		return v.Str == o.Str
	case schema.List:
		return equalValues(v.Elems, o.Elems)
	case schema.Struct:
		return equalValues(v.Fields, o.Fields)
	}
	return false
}

func equalValues(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Interface returns v as a plain Go value: nil, bool, int64, float64,
// string, time.Time, []any or map[string]any. TIME values are returned as
// their lexical form.
func (v Value) Interface() any {
	if v.Null {
		return nil
	}
	switch v.ID() {
	case schema.Boolean:
		return v.Bool
	case schema.TinyInt, schema.SmallInt, schema.Integer, schema.BigInt:
		return v.Int
	case schema.Double:
		return v.Float
	case schema.Date, schema.Timestamp:
		return v.Time
	case schema.Time:
		return FormatTime(v.Time)
	case schema.String, schema.YAML:
		return v.Str
	case schema.List:
		res := make([]any, len(v.Elems))
		for i := range v.Elems {
			res[i] = v.Elems[i].Interface()
		}
		return res
	case schema.Struct:
		res := make(map[string]any, len(v.Fields))
		for i := range v.Fields {
			res[v.Type.Fields[i].Name] = v.Fields[i].Interface()
		}
		return res
	}
	return nil
}

// Lexeme returns the canonical lexical form of a non-null scalar value. It
// returns false for nested and null values.
func (v Value) Lexeme() (string, bool) {
	if v.Null {
		return "", false
	}
	switch v.ID() {
	case schema.Boolean:
		return strconv.FormatBool(v.Bool), true
	case schema.TinyInt, schema.SmallInt, schema.Integer, schema.BigInt:
		return strconv.FormatInt(v.Int, 10), true
	case schema.Double:
		return strconv.FormatFloat(v.Float, 'g', -1, 64), true
	case schema.Date:
		return FormatDate(v.Time), true
	case schema.Time:
		return FormatTime(v.Time), true
	case schema.Timestamp:
		return FormatTimestamp(v.Time), true
	case schema.String, schema.YAML:
		return v.Str, true
	}
	return "", false
}

func (v Value) String() string {
	if v.Null {
		return "NULL"
	}
	if s, ok := v.Lexeme(); ok {
		return s
	}
	buf := []byte{}
	switch v.ID() {
	case schema.List:
		buf = append(buf, '[')
		for i := range v.Elems {
			if i != 0 {
				buf = append(buf, ", "...)
			}
			buf = append(buf, v.Elems[i].String()...)
		}
		buf = append(buf, ']')
	case schema.Struct:
		buf = append(buf, '{')
		for i := range v.Fields {
			if i != 0 {
				buf = append(buf, ", "...)
			}
			buf = append(buf, v.Type.Fields[i].Name...)
			buf = append(buf, ": "...)
			buf = append(buf, v.Fields[i].String()...)
		}
		buf = append(buf, '}')
	default:
		return "NULL"
	}
	return string(buf)
}
