package rows

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/signadot/yamlrows/format"
	"github.com/signadot/yamlrows/ir"
	"github.com/signadot/yamlrows/metrics"
	"github.com/signadot/yamlrows/parse"
	"github.com/signadot/yamlrows/schema"
	"github.com/signadot/yamlrows/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(name, s string) Source {
	return Source{Name: name, Text: []byte(s)}
}

func rowStrings(res *Result) []string {
	out := make([]string, len(res.Rows))
	for i := range res.Rows {
		out[i] = res.Value(i).String()
	}
	return out
}

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		opts    func(*Options)
		columns string
		rows    []string
	}{
		{
			name:    "disjoint fields",
			in:      "{a: 1}\n---\n{b: 2}\n",
			columns: "a TINYINT, b TINYINT",
			rows:    []string{"{a: 1, b: NULL}", "{a: NULL, b: 2}"},
		},
		{
			name:    "nested merge",
			in:      "x: {p: 1}\n---\nx: {q: 2}\n",
			columns: "x STRUCT(p TINYINT, q TINYINT)",
			rows:    []string{"{x: {p: 1, q: NULL}}", "{x: {p: NULL, q: 2}}"},
		},
		{
			name:    "conflict keeps text",
			in:      "v: 1\n---\nv: text\n",
			columns: "v YAML",
			rows:    []string{"{v: 1}", "{v: text}"},
		},
		{
			name:    "expanded sequence",
			in:      "- {id: 1, at: 2024-01-15}\n- {id: 300}\n",
			columns: "id SMALLINT, at DATE",
			rows:    []string{"{id: 1, at: 2024-01-15}", "{id: 300, at: NULL}"},
		},
		{
			name:    "unexpanded sequence",
			in:      "- {id: 1}\n- {id: 2}\n",
			opts:    func(o *Options) { o.ExpandSequences = false },
			columns: "value STRUCT(id TINYINT)[]",
			rows:    []string{"[{id: 1}, {id: 2}]"},
		},
		{
			name:    "path",
			in:      "items: [{n: 1}, {n: 2}]\nother: x\n",
			opts:    func(o *Options) { o.Path = "$.items" },
			columns: "n TINYINT",
			rows:    []string{"{n: 1}", "{n: 2}"},
		},
		{
			name:    "scalars",
			in:      "1\n---\n2.5\n---\nnull\n",
			columns: "value DOUBLE",
			rows:    []string{"1", "2.5"},
		},
		{
			name:    "first document",
			in:      "{a: 1}\n---\n{b: 2}\n",
			opts:    func(o *Options) { o.MultiDoc = format.FirstDocument },
			columns: "a TINYINT",
			rows:    []string{"{a: 1}"},
		},
		{
			name:    "document list",
			in:      "{a: 1}\n---\n{a: 2}\n",
			opts:    func(o *Options) { o.MultiDoc = format.DocumentList },
			columns: "documents STRUCT(a TINYINT)[]",
			rows:    []string{"{documents: [{a: 1}, {a: 2}]}"},
		},
		{
			name:    "no auto detect",
			in:      "{a: 1, b: [x]}\n",
			opts:    func(o *Options) { o.AutoDetect = false },
			columns: "a YAML, b YAML",
			rows:    []string{"{a: 1, b: [x]}"},
		},
		{
			name:    "sampled",
			in:      "{a: 1}\n---\n{a: x, b: true}\n",
			opts:    func(o *Options) { o.SampleRows = 1 },
			columns: "a TINYINT",
			rows:    []string{"{a: 1}", "{a: NULL}"},
		},
		{
			name: "explicit columns",
			in:   "{a: '7', b: 2024-01-15, c: z}\n",
			opts: func(o *Options) {
				o.Columns = schema.Columns{
					{Name: "a", Type: schema.Scalar(schema.BigInt)},
					{Name: "b", Type: schema.Scalar(schema.String)},
				}
			},
			columns: "a BIGINT, b VARCHAR",
			rows:    []string{"{a: 7, b: 2024-01-15}"},
		},
		{
			name:    "empty",
			in:      "",
			columns: "value VARCHAR",
			rows:    []string{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			if tc.opts != nil {
				tc.opts(&opts)
			}
			res, err := Read([]Source{text("in.yaml", tc.in)}, opts)
			require.NoError(t, err)
			assert.Equal(t, tc.columns, res.Columns.String())
			assert.Equal(t, tc.rows, rowStrings(res))
		})
	}
}

func TestReadSampleFiles(t *testing.T) {
	opts := DefaultOptions()
	opts.SampleFiles = 1
	res, err := Read([]Source{text("a.yaml", "{a: 1}"), text("b.yaml", "{b: 2}")}, opts)
	require.NoError(t, err)
	assert.Equal(t, "a TINYINT", res.Columns.String())
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "b.yaml", res.Rows[1].Source)
	assert.True(t, res.Rows[1].Values[0].Null)
}

func TestReadFrontmatter(t *testing.T) {
	opts := DefaultOptions()
	opts.MultiDoc = format.Frontmatter
	res, err := Read([]Source{
		text("a.md", "title: one\ntags: [x]\n---\n{n: 1}\n---\n{n: 2}\n"),
		text("b.md", "title: two\n---\n{n: 3}\n"),
	}, opts)
	require.NoError(t, err)
	assert.Equal(t, "n TINYINT", res.Columns.String())
	assert.Equal(t, []string{"{n: 1}", "{n: 2}", "{n: 3}"}, rowStrings(res))
	assert.Equal(t, "STRUCT(title VARCHAR, tags VARCHAR[])", res.MetadataType.String())
	require.Len(t, res.Metadata, 2)
	assert.Equal(t, "b.md", res.Metadata[1].Source)
	assert.Equal(t, "{title: two, tags: NULL}", res.Metadata[1].Value.String())
}

func TestReadDocs(t *testing.T) {
	doc := ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromString("v")}})
	res, err := Read([]Source{{Name: "mem", Docs: []*ir.Node{doc, ir.Null()}}}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"{k: v}"}, rowStrings(res))
}

func TestReadStrictError(t *testing.T) {
	_, err := Read([]Source{text("bad.yaml", "a: 1\n---\nb: [unclosed\n")}, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, parse.ErrParse))
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestReadTolerant(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewRead(reg)
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.Tolerant = true
	opts.Metrics = m
	res, err := Read([]Source{text("bad.yaml", "a: 1\n---\nb: [unclosed\n---\na: x\n")}, opts)
	require.NoError(t, err)
	assert.True(t, res.Report.Recovered)
	assert.Equal(t, 1, res.Report.Discarded)
	assert.Equal(t, "a YAML", res.Columns.String())
	assert.Len(t, res.Rows, 2)

	n, err := testutil.GatherAndCount(reg, "yamlrows_read_rows_total", "yamlrows_read_passthrough_columns_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	expected := `
# HELP yamlrows_read_documents_total Total number of documents read, by outcome
# TYPE yamlrows_read_documents_total counter
yamlrows_read_documents_total{outcome="discarded"} 1
yamlrows_read_documents_total{outcome="parsed"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "yamlrows_read_documents_total"))
}

func TestReadDegradedMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewRead(reg)
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.SampleRows = 1
	opts.Metrics = m
	_, err = Read([]Source{text("in.yaml", "{a: 1}\n---\n{a: x}\n")}, opts)
	require.NoError(t, err)
	expected := `
# HELP yamlrows_read_values_total Total number of column values converted, by outcome
# TYPE yamlrows_read_values_total counter
yamlrows_read_values_total{outcome="converted"} 1
yamlrows_read_values_total{outcome="degraded"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "yamlrows_read_values_total"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Options)
	}{
		{"negative size", func(o *Options) { o.MaxDocumentSize = -1 }},
		{"zero sample rows", func(o *Options) { o.SampleRows = 0 }},
		{"bad sample files", func(o *Options) { o.SampleFiles = -2 }},
		{"negative depth", func(o *Options) { o.MaxDepth = -1 }},
		{"bad multi doc", func(o *Options) { o.MultiDoc = format.MultiDoc(42) }},
		{"bad path", func(o *Options) { o.Path = "items" }},
		{"unnamed column", func(o *Options) { o.Columns = schema.Columns{{Type: schema.Scalar(schema.String)}} }},
		{"duplicate column", func(o *Options) {
			o.Columns = schema.Columns{
				{Name: "a", Type: schema.Scalar(schema.String)},
				{Name: "a", Type: schema.Scalar(schema.Integer)},
			}
		}},
		{"untyped column", func(o *Options) { o.Columns = schema.Columns{{Name: "a"}} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Tolerant = true
			tc.mod(&opts)
			assert.ErrorIs(t, opts.Validate(), ErrConfig)
			_, err := Read([]Source{text("bad.yaml", "[unclosed")}, opts)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
	opts := DefaultOptions()
	opts.SampleRows, opts.SampleFiles = Unlimited, Unlimited
	assert.NoError(t, opts.Validate())
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]byte(`
tolerant: true
multi_document: frontmatter
path: $.items
sample_rows: -1
columns:
  - {name: id, type: BIGINT}
  - {name: tags, type: "VARCHAR[]"}
`))
	require.NoError(t, err)
	assert.True(t, opts.Tolerant)
	assert.True(t, opts.AutoDetect)
	assert.Equal(t, format.Frontmatter, opts.MultiDoc)
	assert.Equal(t, "$.items", opts.Path)
	assert.Equal(t, Unlimited, opts.SampleRows)
	assert.Equal(t, DefaultSampleFiles, opts.SampleFiles)
	assert.Equal(t, "id BIGINT, tags VARCHAR[]", opts.Columns.String())

	for _, bad := range []string{
		"unknown_key: 1",
		"multi_document: all",
		"columns: [{name: a, type: NUMBER}]",
		"max_document_size: -5",
	} {
		_, err := ParseOptions([]byte(bad))
		assert.ErrorIs(t, err, ErrConfig, bad)
	}
}

func TestFormat(t *testing.T) {
	st := schema.StructOf(
		schema.Field{Name: "name", Type: schema.Scalar(schema.String)},
		schema.Field{Name: "tags", Type: schema.ListOf(schema.Scalar(schema.String))},
	)
	v := value.Struct(st, value.String("yes"), value.List(schema.Scalar(schema.String), value.String("a")))

	got, err := Format(v, WriteOptions{Style: format.FlowStyle})
	require.NoError(t, err)
	assert.Equal(t, "{name: 'yes', tags: [a]}", got)

	got, err = Format(v, WriteOptions{Layout: format.SequenceLayout})
	require.NoError(t, err)
	assert.Equal(t, "- name: 'yes'\n  tags:\n    - a", got)

	got, err = Format(v, WriteOptions{Indent: 4})
	require.NoError(t, err)
	assert.Equal(t, "name: 'yes'\ntags:\n    - a", got)
}

func TestWrite(t *testing.T) {
	vals := []value.Value{value.Int(1), value.String("two")}
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, vals, WriteOptions{Layout: format.DocumentLayout}))
	assert.Equal(t, "1\n---\ntwo\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(buf, vals, WriteOptions{Style: format.FlowStyle, Layout: format.DocumentLayout}))
	assert.Equal(t, "1\ntwo\n", buf.String())
}

func TestReadWriteRoundTrip(t *testing.T) {
	in := "- {id: 1, at: 2024-01-15T10:00:00, ok: true, note: 'yes'}\n- {id: 2, ok: false, note: plain}\n"
	res, err := Read([]Source{text("in.yaml", in)}, DefaultOptions())
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, res.Values(), WriteOptions{Layout: format.SequenceLayout}))

	again, err := Read([]Source{text("out.yaml", buf.String())}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, res.Columns.String(), again.Columns.String())
	require.Len(t, again.Rows, len(res.Rows))
	for i := range res.Rows {
		assert.True(t, res.Value(i).Equal(again.Value(i)), "row %d: %s != %s", i, res.Value(i), again.Value(i))
	}
}
