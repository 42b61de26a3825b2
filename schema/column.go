package schema

import "strings"

// Column is one named, typed output column.
type Column struct {
	Name string
	Type *Type
}

type Columns []Column

// ColumnsOf returns the fields of a struct type as columns, or a single
// column named fallback for any other type.
func ColumnsOf(t *Type, fallback string) Columns {
	if t == nil || t.ID != Struct {
		return Columns{{Name: fallback, Type: t}}
	}
	res := make(Columns, len(t.Fields))
	for i, f := range t.Fields {
		res[i] = Column{Name: f.Name, Type: f.Type}
	}
	return res
}

// Struct returns the struct type with one field per column.
func (cs Columns) Struct() *Type {
	fields := make([]Field, len(cs))
	for i, c := range cs {
		fields[i] = Field{Name: c.Name, Type: c.Type}
	}
	return StructOf(fields...)
}

func (cs Columns) Names() []string {
	res := make([]string, len(cs))
	for i := range cs {
		res[i] = cs[i].Name
	}
	return res
}

func (cs Columns) Index(name string) int {
	for i := range cs {
		if cs[i].Name == name {
			return i
		}
	}
	return -1
}

func (cs Columns) String() string {
	buf := &strings.Builder{}
	for i, c := range cs {
		if i != 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(QuoteName(c.Name))
		buf.WriteByte(' ')
		buf.WriteString(c.Type.String())
	}
	return buf.String()
}
