package format

import "fmt"

// Layout is the row layout applied on top of single document output.
type Layout int

const (
	// NoLayout leaves each row's text untouched.
	NoLayout Layout = iota
	// SequenceLayout renders every row as an item of one top level sequence.
	SequenceLayout
	// DocumentLayout renders every row as its own document.
	DocumentLayout
)

func ParseLayout(v string) (Layout, error) {
	l, ok := map[string]Layout{
		"":         NoLayout,
		"none":     NoLayout,
		"sequence": SequenceLayout,
		"seq":      SequenceLayout,
		"document": DocumentLayout,
		"doc":      DocumentLayout,
	}[v]
	if ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w: layout %q", ErrBadFormat, v)
}

func (l Layout) String() string {
	d, err := l.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (l Layout) MarshalText() ([]byte, error) {
	switch l {
	case NoLayout:
		return []byte("none"), nil
	case SequenceLayout:
		return []byte("sequence"), nil
	case DocumentLayout:
		return []byte("document"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a layout>", l)
	}
}

func (l *Layout) UnmarshalText(d []byte) error {
	pl, err := ParseLayout(string(d))
	if err != nil {
		return err
	}
	*l = pl
	return nil
}
