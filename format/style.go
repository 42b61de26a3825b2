package format

import "fmt"

// Style selects between indentation based (block) and delimiter based
// (flow) serialization.
type Style int

const (
	BlockStyle Style = iota
	FlowStyle
)

func ParseStyle(v string) (Style, error) {
	s, ok := map[string]Style{
		"b":     BlockStyle,
		"block": BlockStyle,
		"f":     FlowStyle,
		"flow":  FlowStyle,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: style %q", ErrBadFormat, v)
}

func (s Style) String() string {
	d, err := s.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (s Style) MarshalText() ([]byte, error) {
	switch s {
	case BlockStyle:
		return []byte("block"), nil
	case FlowStyle:
		return []byte("flow"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a style>", s)
	}
}

func (s *Style) UnmarshalText(d []byte) error {
	ps, err := ParseStyle(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

func (s Style) IsFlow() bool  { return s == FlowStyle }
func (s Style) IsBlock() bool { return s == BlockStyle }
