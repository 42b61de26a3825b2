package transcode

import (
	"errors"
	"testing"

	"github.com/signadot/yamlrows/encode"
	"github.com/signadot/yamlrows/format"
	"github.com/signadot/yamlrows/ir"
	"github.com/signadot/yamlrows/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func flow(n *ir.Node) string {
	return encode.MustString(n, encode.EncodeStyle(format.FlowStyle))
}

func TestToJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"null", "null"},
		{"~", "null"},
		{"true", "true"},
		{"yes", `"yes"`},
		{"True", `"True"`},
		{"OFF", `"OFF"`},
		{"'true'", `"true"`},
		{"42", "42"},
		{"'42'", `"42"`},
		{"+7", "7"},
		{"2.5", "2.5"},
		{".inf", `".inf"`},
		{".nan", `".nan"`},
		{"2024-01-15", `"2024-01-15"`},
		{"007", `"007"`},
		{"007.0", `"007.0"`},
		{"0.5", "0.5"},
		{`"tab\there \"q\" back\\slash"`, `"tab\there \"q\" back\\slash"`},
		{`"bell\a"`, `"bell\u0007"`},
		{"[]", "[]"},
		{"{}", "{}"},
		{"{1: a, b: [x, null, 3]}", `{"1":"a","b":["x",null,3]}`},
	}
	for _, tc := range tests {
		if got := ToJSON(mustParse(t, tc.in)); got != tc.want {
			t.Errorf("%q: got %s want %s", tc.in, got, tc.want)
		}
	}
}

func TestToJSONIndent(t *testing.T) {
	got := ToJSON(mustParse(t, "{a: [1, {b: x}], c: {}}"), JSONIndent(2))
	want := `{
  "a": [
    1,
    {
      "b": "x"
    }
  ],
  "c": {}
}`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestToJSONMaxDepth(t *testing.T) {
	got := ToJSON(mustParse(t, "[[1]]"), JSONMaxDepth(1))
	if want := `[["<max depth exceeded>"]]`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestMergePatch(t *testing.T) {
	tests := []struct {
		target, patch, want string
	}{
		{"{a: 1, b: 2}", "{b: null, c: 3}", "{a: 1, c: 3}"},
		{"{a: {x: 1, y: 2}}", "{a: {y: null, z: 3}}", "{a: {x: 1, z: 3}}"},
		{"{a: [1, 2]}", "{a: [3]}", "{a: [3]}"},
		{"[1, 2]", "{a: 1}", "{a: 1}"},
		{"{a: 1}", "[1]", "[1]"},
		{"{a: 1}", "x", "x"},
		{"{}", "{a: {b: null, c: 1}}", "{a: {c: 1}}"},
		{"{a: 1}", "{}", "{a: 1}"},
	}
	for _, tc := range tests {
		target := mustParse(t, tc.target)
		patch := mustParse(t, tc.patch)
		targetText, patchText := flow(target), flow(patch)
		got := MergePatch(target, patch)
		if !ir.Equal(got, mustParse(t, tc.want)) {
			t.Errorf("%s + %s: got %s want %s", tc.target, tc.patch, flow(got), tc.want)
		}
		if flow(target) != targetText || flow(patch) != patchText {
			t.Errorf("%s + %s: inputs modified", tc.target, tc.patch)
		}
	}
}

func TestMergePatchNoAliasing(t *testing.T) {
	target := mustParse(t, "{a: {x: 1}, b: [1]}")
	patch := mustParse(t, "{c: {y: 2}}")
	got := MergePatch(target, patch)
	ir.Get(ir.Get(got, "a"), "x").String = "changed"
	ir.Get(ir.Get(got, "c"), "y").String = "changed"
	if ir.Get(ir.Get(target, "a"), "x").String != "1" {
		t.Error("result aliases target")
	}
	if ir.Get(ir.Get(patch, "c"), "y").String != "2" {
		t.Error("result aliases patch")
	}
	if ir.Get(target, "a").Parent != target {
		t.Error("target parent links modified")
	}
}

// TestMergePatchAgreesWithJSON compares MergePatch with the RFC 7386
// implementation of github.com/evanphx/json-patch on JSON compatible trees.
func TestMergePatchAgreesWithJSON(t *testing.T) {
	cases := [][2]string{
		{`{"a":"b"}`, `{"a":"c"}`},
		{`{"a":"b"}`, `{"b":"c"}`},
		{`{"a":"b"}`, `{"a":null}`},
		{`{"a":"b","b":"c"}`, `{"a":null}`},
		{`{"a":["b"]}`, `{"a":"c"}`},
		{`{"a":{"b":"c"}}`, `{"a":{"b":"d","c":null}}`},
		{`{"a":[{"b":"c"}]}`, `{"a":[1]}`},
		{`{}`, `{"a":{"bb":{"ccc":null}}}`},
	}
	for _, c := range cases {
		want, err := jsonpatch.MergePatch([]byte(c[0]), []byte(c[1]))
		if err != nil {
			t.Fatal(err)
		}
		got := ToJSON(MergePatch(mustParse(t, c[0]), mustParse(t, c[1])))
		if !jsonpatch.Equal([]byte(got), want) {
			t.Errorf("%s + %s: got %s want %s", c[0], c[1], got, want)
		}
	}
}

func TestApplyJSONPatch(t *testing.T) {
	doc := mustParse(t, "{a: 1, b: [x, y]}")
	patch := `[
		{"op": "replace", "path": "/a", "value": 2},
		{"op": "add", "path": "/b/-", "value": "z"},
		{"op": "add", "path": "/c", "value": {"d": true}}
	]`
	got, err := ApplyJSONPatch(doc, []byte(patch))
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, "{a: 2, b: [x, y, z], c: {d: true}}")
	if ToJSON(got) != ToJSON(want) {
		t.Errorf("got %s want %s", ToJSON(got), ToJSON(want))
	}
}

func TestApplyJSONPatchError(t *testing.T) {
	doc := mustParse(t, "{a: 1}")
	for _, p := range []string{"not json", `[{"op": "remove", "path": "/nope"}]`} {
		if _, err := ApplyJSONPatch(doc, []byte(p)); !errors.Is(err, ErrPatch) {
			t.Errorf("%q: expected ErrPatch, got %v", p, err)
		}
	}
}
