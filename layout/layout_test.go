package layout

import (
	"testing"

	"github.com/signadot/yamlrows/format"
)

func TestApply(t *testing.T) {
	tests := []struct {
		text   string
		row    int
		layout format.Layout
		style  format.Style
		want   string
	}{
		{"a: 1", 0, format.NoLayout, format.BlockStyle, "a: 1"},
		{"a: 1\nb:\n  - x", 3, format.SequenceLayout, format.BlockStyle, "- a: 1\n  b:\n    - x"},
		{"{a: 1}", 0, format.SequenceLayout, format.FlowStyle, "- {a: 1}"},
		{"a: |\n  one\n\n  two", 0, format.SequenceLayout, format.BlockStyle, "- a: |\n    one\n\n    two"},
		{"a: 1", 0, format.DocumentLayout, format.BlockStyle, "a: 1"},
		{"a: 1\nb: 2", 1, format.DocumentLayout, format.BlockStyle, "---\na: 1\nb: 2"},
		{"{a: 1}", 1, format.DocumentLayout, format.FlowStyle, "{a: 1}"},
	}
	for _, tc := range tests {
		if got := Apply(tc.text, tc.row, tc.layout, tc.style); got != tc.want {
			t.Errorf("%s/%s row %d: got %q want %q", tc.layout, tc.style, tc.row, got, tc.want)
		}
	}
}
