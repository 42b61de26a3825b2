package rows

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/signadot/yamlrows/convert"
	"github.com/signadot/yamlrows/format"
	"github.com/signadot/yamlrows/infer"
	"github.com/signadot/yamlrows/ir"
	"github.com/signadot/yamlrows/parse"
	"github.com/signadot/yamlrows/schema"
	"github.com/signadot/yamlrows/value"
)

// Source is one ordered input of Read. When Docs is nil, Text is parsed.
type Source struct {
	Name string
	Docs []*ir.Node
	Text []byte
}

type Row struct {
	Source string
	Values []value.Value
}

// Metadata is the converted first document of a source in
// format.Frontmatter mode.
type Metadata struct {
	Source string
	Value  value.Value
}

type Result struct {
	Columns schema.Columns
	// Unwrapped is set when rows are not maps and Columns is the single
	// ValueColumn.
	Unwrapped bool
	// RowType is the type of Value(i).
	RowType *schema.Type
	Rows    []Row

	MetadataType *schema.Type
	Metadata     []Metadata

	// Report sums the parse reports of sources given as text.
	Report parse.Report
}

// Value returns row i as one value: the value column of an unwrapped
// result, a struct of the columns otherwise.
func (r *Result) Value(i int) value.Value {
	if r.Unwrapped {
		return r.Rows[i].Values[0]
	}
	return value.Struct(r.RowType, r.Rows[i].Values...)
}

// Values returns every row as a value.
func (r *Result) Values() []value.Value {
	res := make([]value.Value, len(r.Rows))
	for i := range r.Rows {
		res[i] = r.Value(i)
	}
	return res
}

type rowSet struct {
	source string
	nodes  []*ir.Node
}

type reader struct {
	opts *Options
	log  *slog.Logger
	path *ir.Path
}

// Read infers a schema for the rows of sources and converts every row
// against it. Options are validated before any document is read.
func Read(sources []Source, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	r := &reader{opts: &opts, log: opts.logger()}
	if opts.Path != "" {
		p, err := ir.ParsePath(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		r.path = p
	}
	res := &Result{}
	var (
		sets   []rowSet
		fronts []*ir.Node
		names  []string
	)
	for i := range sources {
		src := &sources[i]
		docs, err := r.documents(src, &res.Report)
		if err != nil {
			return nil, err
		}
		switch opts.MultiDoc {
		case format.FirstDocument:
			docs = docs[:min(1, len(docs))]
		case format.Frontmatter:
			if len(docs) == 0 {
				break
			}
			fronts = append(fronts, docs[0])
			names = append(names, src.Name)
			docs = docs[1:]
		}
		set := rowSet{source: src.Name}
		if opts.MultiDoc == format.DocumentList {
			clones := make([]*ir.Node, len(docs))
			for j, d := range docs {
				clones[j] = d.Clone()
			}
			set.nodes = []*ir.Node{ir.FromSlice(clones)}
		} else {
			for _, d := range docs {
				set.nodes = r.extract(set.nodes, d)
			}
		}
		sets = append(sets, set)
	}

	start := time.Now()
	r.schema(sets, res)
	opts.Metrics.ObserveInference(time.Since(start))
	r.log.Debug("inferred schema", "columns", res.Columns.String(), "sources", len(sources))

	for _, set := range sets {
		for _, node := range set.nodes {
			res.Rows = append(res.Rows, Row{Source: set.source, Values: r.convertRow(node, res)})
		}
	}
	opts.Metrics.AddRows(len(res.Rows))

	if len(fronts) != 0 {
		res.MetadataType = schema.Finalize(infer.Population(fronts, infer.MaxDepth(opts.maxDepth())))
		for i, f := range fronts {
			cr := convert.FromNode(f, res.MetadataType, convert.MaxDepth(opts.maxDepth()))
			res.Metadata = append(res.Metadata, Metadata{Source: names[i], Value: cr.Value})
		}
	}
	return res, nil
}

func (r *reader) documents(src *Source, total *parse.Report) ([]*ir.Node, error) {
	if src.Docs != nil {
		r.opts.Metrics.AddDocuments("parsed", len(src.Docs))
		return src.Docs, nil
	}
	rep := &parse.Report{}
	docs, err := parse.ParseAll(src.Text,
		parse.ParseTolerant(r.opts.Tolerant),
		parse.ParseMaxDocumentSize(r.opts.MaxDocumentSize),
		parse.ParseMaxDepth(r.opts.maxDepth()),
		parse.ParseLogger(r.log.With("source", src.Name)),
		parse.ParseReport(rep))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name, err)
	}
	total.Documents += rep.Documents
	total.Discarded += rep.Discarded
	total.Oversized += rep.Oversized
	total.Recovered = total.Recovered || rep.Recovered
	r.opts.Metrics.AddDocuments("parsed", rep.Documents)
	r.opts.Metrics.AddDocuments("discarded", rep.Discarded)
	r.opts.Metrics.AddDocuments("oversized", rep.Oversized)
	return docs, nil
}

// extract appends the row nodes of doc to dst.
func (r *reader) extract(dst []*ir.Node, doc *ir.Node) []*ir.Node {
	if ir.IsAbsent(doc) {
		return dst
	}
	if r.path != nil {
		for _, m := range doc.ListParsedPath(nil, r.path) {
			switch {
			case m.Type == ir.SequenceType:
				dst = append(dst, m.Values...)
			case !ir.IsAbsent(m):
				dst = append(dst, m)
			}
		}
		return dst
	}
	if doc.Type == ir.SequenceType && r.opts.ExpandSequences {
		return append(dst, doc.Values...)
	}
	return append(dst, doc)
}

// sample returns the rows used for inference.
func (r *reader) sample(sets []rowSet) []*ir.Node {
	var res []*ir.Node
	for i, set := range sets {
		if r.opts.SampleFiles != Unlimited && i >= r.opts.SampleFiles {
			break
		}
		for _, n := range set.nodes {
			if r.opts.SampleRows != Unlimited && len(res) >= r.opts.SampleRows {
				return res
			}
			res = append(res, n)
		}
	}
	return res
}

func (r *reader) schema(sets []rowSet, res *Result) {
	defer func() {
		passthrough := 0
		for _, c := range res.Columns {
			if c.Type.ID == schema.YAML {
				passthrough++
			}
		}
		r.opts.Metrics.AddPassthroughColumns(passthrough)
		res.RowType = res.Columns.Struct()
		if res.Unwrapped {
			res.RowType = res.Columns[0].Type
		}
	}()
	if len(r.opts.Columns) != 0 {
		res.Columns = make(schema.Columns, len(r.opts.Columns))
		for i, c := range r.opts.Columns {
			res.Columns[i] = schema.Column{Name: c.Name, Type: c.Type.Clone()}
		}
		return
	}
	sample := r.sample(sets)
	depth := infer.MaxDepth(r.opts.maxDepth())
	if r.opts.MultiDoc == format.DocumentList {
		var docs []*ir.Node
		for _, n := range sample {
			docs = append(docs, n.Values...)
		}
		elem := schema.Finalize(infer.Population(docs, depth))
		res.Columns = schema.Columns{{Name: DocumentsColumn, Type: schema.ListOf(elem)}}
		if !r.opts.AutoDetect {
			res.Columns[0].Type = schema.Passthrough()
		}
		return
	}
	merged := infer.Population(sample, depth)
	switch {
	case merged.ID == schema.Struct && len(merged.Fields) != 0:
		res.Columns = schema.ColumnsOf(schema.Finalize(merged), ValueColumn)
	default:
		res.Unwrapped = true
		res.Columns = schema.Columns{{Name: ValueColumn, Type: schema.Finalize(merged)}}
	}
	if !r.opts.AutoDetect {
		for i := range res.Columns {
			res.Columns[i].Type = schema.Passthrough()
		}
	}
}

func (r *reader) convertRow(node *ir.Node, res *Result) []value.Value {
	depth := convert.MaxDepth(r.opts.maxDepth())
	if res.Unwrapped || r.opts.MultiDoc == format.DocumentList {
		cr := convert.FromNode(node, res.Columns[0].Type, depth)
		r.opts.Metrics.Value(cr.Outcome.String())
		return []value.Value{cr.Value}
	}
	vals := make([]value.Value, len(res.Columns))
	for i, c := range res.Columns {
		cr := convert.FromNode(ir.Get(node, c.Name), c.Type, depth)
		r.opts.Metrics.Value(cr.Outcome.String())
		vals[i] = cr.Value
	}
	return vals
}
