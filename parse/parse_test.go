package parse

import (
	"errors"
	"testing"

	"github.com/signadot/yamlrows/ir"
)

type parseTest struct {
	In   string
	Want *ir.Node
}

func TestParse(t *testing.T) {
	tests := []parseTest{
		{
			In:   "a: 1",
			Want: ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromString("1")}}),
		},
		{
			In:   "a: null\nb: ~\nc:",
			Want: ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.Null()}, {Key: "b", Val: ir.Null()}, {Key: "c", Val: ir.Null()}}),
		},
		{
			In:   "- 'yes'\n- \"42\"\n- yes\n- !!str 7",
			Want: ir.FromSlice([]*ir.Node{ir.FromQuoted("yes"), ir.FromQuoted("42"), ir.FromString("yes"), ir.FromQuoted("7")}),
		},
		{
			In:   "[1, [2, 3], {x: y}]",
			Want: ir.FromSlice([]*ir.Node{ir.FromString("1"), ir.FromSlice([]*ir.Node{ir.FromString("2"), ir.FromString("3")}), ir.FromKeyVals([]ir.KeyVal{{Key: "x", Val: ir.FromString("y")}})}),
		},
		{
			In: "base: &b {x: 1, y: 2}\nderived:\n  <<: *b\n  y: 3",
			Want: ir.FromKeyVals([]ir.KeyVal{
				{Key: "base", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "x", Val: ir.FromString("1")}, {Key: "y", Val: ir.FromString("2")}})},
				{Key: "derived", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "x", Val: ir.FromString("1")}, {Key: "y", Val: ir.FromString("3")}})},
			}),
		},
		{
			In:   "text: |\n  line one\n  line two\n",
			Want: ir.FromKeyVals([]ir.KeyVal{{Key: "text", Val: ir.FromQuoted("line one\nline two\n")}}),
		},
		{
			In:   "",
			Want: ir.Null(),
		},
	}
	for i, tc := range tests {
		got, err := ParseString(tc.In)
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if !ir.Equal(got, tc.Want) {
			t.Errorf("%d: parse of %q gave unexpected tree", i, tc.In)
		}
	}
}

func TestParseAll(t *testing.T) {
	docs, err := ParseAll([]byte("a: 1\n---\nb: 2\n---\n- 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 3 {
		t.Fatalf("got %d documents", len(docs))
	}
	if docs[2].Type != ir.SequenceType {
		t.Errorf("third document is %s", docs[2].Type)
	}
}

func TestParseStrictError(t *testing.T) {
	_, err := ParseAll([]byte("a: 1\n---\nb: [unclosed\n---\nc: 3\n"))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestParseTolerant(t *testing.T) {
	var report Report
	docs, err := ParseAll([]byte("a: 1\n---\nb: [unclosed\n---\nc: 3\n"),
		ParseTolerant(true), ParseReport(&report))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents", len(docs))
	}
	if ir.Get(docs[1], "c") == nil {
		t.Errorf("expected c in second recovered document")
	}
	if !report.Recovered || report.Discarded != 1 || report.Documents != 2 {
		t.Errorf("report %+v", report)
	}
}

func TestParseMaxDocumentSize(t *testing.T) {
	in := []byte("a: 1\n---\nlong: xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx\n---\nc: 3\n")
	if _, err := ParseAll(in, ParseMaxDocumentSize(20)); !errors.Is(err, ErrDocumentTooLarge) {
		t.Fatalf("expected ErrDocumentTooLarge, got %v", err)
	}
	var report Report
	docs, err := ParseAll(in, ParseMaxDocumentSize(20), ParseTolerant(true), ParseReport(&report))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 || report.Oversized != 1 {
		t.Errorf("got %d docs, report %+v", len(docs), report)
	}
	if _, err := ParseAll(in, ParseMaxDocumentSize(-1)); !errors.Is(err, ErrNegativeSizeLimit) {
		t.Errorf("expected ErrNegativeSizeLimit, got %v", err)
	}
}

func TestParseMaxDepth(t *testing.T) {
	got, err := ParseString("[[[[1]]]]", ParseMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	leaf := got.Values[0].Values[0].Values[0]
	if leaf.Type != ir.ScalarType || leaf.String != ir.DepthSentinel || !leaf.Quoted {
		t.Errorf("expected depth sentinel, got %s %q", leaf.Type, leaf.String)
	}
}

func TestSplitDocuments(t *testing.T) {
	frags := SplitDocuments([]byte("# head\n---\na: 1\n--- b: 2\n...\n---\n"))
	var texts []string
	for i := range frags {
		if frags[i].Blank() {
			continue
		}
		texts = append(texts, string(frags[i].Text))
	}
	if len(texts) != 2 || texts[0] != "a: 1\n" || texts[1] != "b: 2\n" {
		t.Errorf("got %q", texts)
	}
}

func TestParseRecursiveAlias(t *testing.T) {
	got, err := ParseString("&a [*a, *a]\n")
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.SequenceType || len(got.Values) != 2 {
		t.Fatalf("got %s with %d values", got.Type, len(got.Values))
	}
	for i, v := range got.Values {
		if v.String != ir.DepthSentinel || !v.Quoted {
			t.Errorf("%d: expected depth sentinel, got %s %q", i, v.Type, v.String)
		}
	}

	got, err = ParseString("a: &m\n  x: 1\n  <<: *m\n")
	if err != nil {
		t.Fatal(err)
	}
	a := ir.Get(got, "a")
	if a == nil || len(a.Fields) != 1 || ir.Get(a, "x") == nil {
		t.Errorf("self merge gave unexpected tree")
	}
}

const aliasBomb = `a: &a [x, x, x, x, x, x, x, x, x, x]
b: &b [*a, *a, *a, *a, *a, *a, *a, *a, *a, *a]
c: &c [*b, *b, *b, *b, *b, *b, *b, *b, *b, *b]
d: &d [*c, *c, *c, *c, *c, *c, *c, *c, *c, *c]
e: &e [*d, *d, *d, *d, *d, *d, *d, *d, *d, *d]
f: &f [*e, *e, *e, *e, *e, *e, *e, *e, *e, *e]
g: [*f, *f, *f, *f, *f, *f, *f, *f, *f, *f]
`

func TestParseAliasExpansion(t *testing.T) {
	_, err := ParseString(aliasBomb)
	if !errors.Is(err, ErrExcessiveAliasing) || !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrExcessiveAliasing, got %v", err)
	}

	var report Report
	docs, err := ParseAll([]byte("a: 1\n---\n"+aliasBomb+"---\nc: 3\n"), ParseTolerant(true), ParseReport(&report))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 || report.Discarded != 1 {
		t.Errorf("got %d docs, report %+v", len(docs), report)
	}

	// modest reuse stays within the ratio
	got, err := ParseString("a: &a {x: 1, y: 2}\nb: [*a, *a, *a]\n")
	if err != nil {
		t.Fatal(err)
	}
	if b := ir.Get(got, "b"); b == nil || len(b.Values) != 3 || ir.Get(b.Values[2], "y") == nil {
		t.Errorf("aliases not expanded")
	}
}

func TestParseMaxNodes(t *testing.T) {
	if _, err := ParseString("[1, 2, 3, 4]", ParseMaxNodes(4)); !errors.Is(err, ErrTooManyNodes) {
		t.Fatalf("expected ErrTooManyNodes, got %v", err)
	}
	if _, err := ParseString("[1, 2, 3, 4]", ParseMaxNodes(5)); err != nil {
		t.Fatal(err)
	}
}
