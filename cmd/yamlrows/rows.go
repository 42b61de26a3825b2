package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/yamlrows/rows"
	"github.com/signadot/yamlrows/schema"
	"github.com/signadot/yamlrows/value"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func rowsMain(cfg *RowsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rows.Parse(cc, args)
	if err != nil {
		return err
	}
	var where *vm.Program
	if cfg.Where != "" {
		where, err = expr.Compile(cfg.Where, expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: -where: %w", cli.ErrUsage, err)
		}
	}
	res, err := read(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	var sel *selection
	if cfg.Select != "" {
		sel, err = newSelection(res, cfg.Select)
		if err != nil {
			return err
		}
	}
	wOpts := rows.WriteOptions{
		Style:    cfg.Style,
		Layout:   cfg.Layout,
		MaxDepth: cfg.Opts.MaxDepth,
		Indent:   cfg.Indent,
	}
	if cfg.Metadata {
		for i, md := range res.Metadata {
			wOpts.Row = i
			if err := writeRow(cc.Out, cfg, md.Source, md.Value, wOpts); err != nil {
				return err
			}
		}
		return nil
	}
	n := 0
	for i := range res.Rows {
		v := res.Value(i)
		if where != nil {
			ok, err := expr.Run(where, whereEnv(res, i, v))
			if err != nil {
				return fmt.Errorf("-where on row %d of %s: %w", i, res.Rows[i].Source, err)
			}
			if b, _ := ok.(bool); !b {
				continue
			}
		}
		if sel != nil {
			v = sel.value(res.Rows[i])
		}
		wOpts.Row = n
		if err := writeRow(cc.Out, cfg, res.Rows[i].Source, v, wOpts); err != nil {
			return err
		}
		n++
	}
	return nil
}

func writeRow(w io.Writer, cfg *RowsConfig, source string, v value.Value, opts rows.WriteOptions) error {
	s, err := rows.Format(v, opts)
	if err != nil {
		return err
	}
	if cfg.Source {
		_, err = fmt.Fprintf(w, "# %s\n%s\n", source, s)
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// whereEnv exposes the columns of row i by name, along with row, source
// and index.
func whereEnv(res *rows.Result, i int, v value.Value) map[string]any {
	env := map[string]any{}
	if !res.Unwrapped {
		for j, c := range res.Columns {
			env[c.Name] = res.Rows[i].Values[j].Interface()
		}
	}
	env["row"] = v.Interface()
	env["source"] = res.Rows[i].Source
	env["index"] = i
	return env
}

// selection projects rows onto a subset of the columns.
type selection struct {
	typ     *schema.Type
	indices []int
}

// newSelection parses names, a comma separated list of columns of res.
func newSelection(res *rows.Result, names string) (*selection, error) {
	var cols schema.Columns
	sel := &selection{}
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		i := res.Columns.Index(name)
		if i == -1 {
			return nil, fmt.Errorf("%w: -select: no column %q in %s", cli.ErrUsage, name,
				strings.Join(res.Columns.Names(), ", "))
		}
		cols = append(cols, res.Columns[i])
		sel.indices = append(sel.indices, i)
	}
	sel.typ = cols.Struct()
	return sel, nil
}

func (s *selection) value(row rows.Row) value.Value {
	vals := make([]value.Value, len(s.indices))
	for i, j := range s.indices {
		vals[i] = row.Values[j]
	}
	return value.Struct(s.typ, vals...)
}
