package encode

import (
	"math"
	"strings"
	"testing"

	"github.com/signadot/yamlrows/format"
	"github.com/signadot/yamlrows/ir"
	"github.com/signadot/yamlrows/parse"
)

func sample() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromString("1")},
		{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromString("x"), ir.FromString("y")})},
		{Key: "c", Val: ir.FromQuoted("yes")},
		{Key: "d", Val: ir.Null()},
	})
}

func TestEncodeFlow(t *testing.T) {
	got, err := String(sample(), EncodeStyle(format.FlowStyle))
	if err != nil {
		t.Fatal(err)
	}
	want := "{a: 1, b: [x, y], c: 'yes', d: null}"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeBlock(t *testing.T) {
	got, err := String(sample())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "{") || strings.Contains(got, "[") {
		t.Errorf("block output contains flow delimiters: %q", got)
	}
	if !strings.HasPrefix(got, "a: 1\nb:\n") {
		t.Errorf("unexpected block output %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("trailing newline not trimmed")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, style := range []format.Style{format.BlockStyle, format.FlowStyle} {
		doc := ir.FromSlice([]*ir.Node{
			sample(),
			ir.FromSlice(nil),
			ir.FromKeyVals(nil),
			ir.FromQuoted(""),
			ir.FromQuoted("two\nlines"),
			ir.FromQuoted("a: b"),
		})
		txt, err := String(doc, EncodeStyle(style))
		if err != nil {
			t.Fatal(err)
		}
		back, err := parse.ParseString(txt)
		if err != nil {
			t.Fatalf("%s: %v\n%s", style, err, txt)
		}
		if !ir.Equal(doc, back) {
			t.Errorf("%s: round trip mismatch:\n%s", style, txt)
		}
	}
}

func TestEncodeMaxDepth(t *testing.T) {
	doc := ir.FromSlice([]*ir.Node{ir.FromSlice([]*ir.Node{ir.FromString("1")})})
	got, err := String(doc, EncodeStyle(format.FlowStyle), EncodeMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	if got != "[['"+ir.DepthSentinel+"']]" {
		t.Errorf("got %q", got)
	}
}

func TestScalarLexeme(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{int64(5), "5"},
		{int8(-3), "-3"},
		{true, "true"},
		{1.5, "1.5"},
		{math.Inf(1), ".inf"},
		{math.Inf(-1), "-.inf"},
		{math.NaN(), ".nan"},
	}
	for _, tc := range tests {
		got, err := ScalarLexeme(tc.in)
		if err != nil {
			t.Errorf("%v: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %q want %q", tc.in, got, tc.want)
		}
	}
	if _, err := ScalarLexeme([]int{1}); err == nil {
		t.Error("expected error for non scalar")
	}
}
