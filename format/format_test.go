package format

import (
	"errors"
	"testing"
)

func TestStyleText(t *testing.T) {
	for _, s := range []Style{BlockStyle, FlowStyle} {
		d, err := s.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Style
		if err := got.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Errorf("got %s want %s", got, s)
		}
	}
	if _, err := ParseStyle("inline"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestLayoutText(t *testing.T) {
	tests := map[string]Layout{
		"":         NoLayout,
		"none":     NoLayout,
		"seq":      SequenceLayout,
		"sequence": SequenceLayout,
		"doc":      DocumentLayout,
	}
	for in, want := range tests {
		got, err := ParseLayout(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %s want %s", in, got, want)
		}
	}
	if _, err := ParseLayout("table"); err == nil {
		t.Error("expected error")
	}
}

func TestMultiDocText(t *testing.T) {
	for _, m := range AllMultiDocs() {
		got, err := ParseMultiDoc(m.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != m {
			t.Errorf("got %s want %s", got, m)
		}
	}
	if MultiDoc(42).String() == "" {
		t.Error("expected error text for unknown mode")
	}
}
