package schema

import (
	"fmt"
	"strings"
)

var typeNames = map[string]ID{
	"NULL":      Null,
	"BOOLEAN":   Boolean,
	"BOOL":      Boolean,
	"TINYINT":   TinyInt,
	"INT1":      TinyInt,
	"SMALLINT":  SmallInt,
	"INT2":      SmallInt,
	"INTEGER":   Integer,
	"INT":       Integer,
	"INT4":      Integer,
	"BIGINT":    BigInt,
	"INT8":      BigInt,
	"DOUBLE":    Double,
	"FLOAT8":    Double,
	"DATE":      Date,
	"TIME":      Time,
	"TIMESTAMP": Timestamp,
	"DATETIME":  Timestamp,
	"VARCHAR":   String,
	"TEXT":      String,
	"STRING":    String,
	"YAML":      YAML,
}

// ParseType parses a type in the notation produced by Type.String. Names are
// case insensitive and common aliases such as INT, BOOL and TEXT are
// accepted. A list may be written T[] or LIST(T).
func ParseType(s string) (*Type, error) {
	p := &typeParser{src: s}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("trailing input %q", p.src[p.pos:])
	}
	return t, nil
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) errorf(f string, args ...any) error {
	return fmt.Errorf("%w: %q at offset %d: %s", ErrBadType, p.src, p.pos, fmt.Sprintf(f, args...))
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *typeParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *typeParser) expect(c byte) error {
	if p.peek() != c {
		return p.errorf("expected %q", c)
	}
	p.pos++
	return nil
}

func (p *typeParser) ident() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

func (p *typeParser) parseType() (*Type, error) {
	t, err := p.parseBase()
	if err != nil {
		return nil, err
	}
	for p.peek() == '[' {
		p.pos++
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		t = ListOf(t)
	}
	return t, nil
}

func (p *typeParser) parseBase() (*Type, error) {
	name := p.ident()
	if name == "" {
		return nil, p.errorf("expected type name")
	}
	upper := strings.ToUpper(name)
	switch upper {
	case "LIST":
		if err := p.expect('('); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return ListOf(elem), nil
	case "STRUCT":
		return p.parseStruct()
	}
	id, ok := typeNames[upper]
	if !ok {
		return nil, p.errorf("unknown type %q", name)
	}
	return Scalar(id), nil
}

func (p *typeParser) parseStruct() (*Type, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	fields := []Field{}
	if p.peek() == ')' {
		p.pos++
		return StructOf(fields...), nil
	}
	for {
		name, err := p.fieldName()
		if err != nil {
			return nil, err
		}
		ft, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: name, Type: ft})
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return StructOf(fields...), nil
		default:
			return nil, p.errorf("expected ',' or ')'")
		}
	}
}

func (p *typeParser) fieldName() (string, error) {
	if p.peek() != '"' {
		name := p.ident()
		if name == "" {
			return "", p.errorf("expected field name")
		}
		return name, nil
	}
	p.pos++
	buf := &strings.Builder{}
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		p.pos++
		if c != '"' {
			buf.WriteByte(c)
			continue
		}
		if p.pos < len(p.src) && p.src[p.pos] == '"' {
			buf.WriteByte('"')
			p.pos++
			continue
		}
		return buf.String(), nil
	}
	return "", p.errorf("unterminated field name")
}
