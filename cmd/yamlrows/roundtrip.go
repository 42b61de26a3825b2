package main

import (
	"fmt"
	"strings"

	"github.com/signadot/yamlrows/format"
	"github.com/signadot/yamlrows/ir"
	"github.com/signadot/yamlrows/rows"

	"github.com/scott-cotton/cli"
)

func roundTripMain(cfg *RoundTripConfig, cc *cli.Context, args []string) error {
	args, err := cfg.RoundTrip.Parse(cc, args)
	if err != nil {
		return err
	}
	srcs, err := readSources(args)
	if err != nil {
		return err
	}
	c := cfg.colors(cc.Out)
	failed := 0
	for i := range srcs {
		src := &srcs[i]
		docs, err := documents(cfg.MainConfig, src)
		if err != nil {
			return err
		}
		want, got, err := roundTrip(cfg.MainConfig, src.Name, docs)
		if err != nil {
			return err
		}
		if want == got {
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: ok\n", src.Name)
			}
			continue
		}
		failed++
		fmt.Fprintf(cc.Out, "%s: differs\n", src.Name)
		if !cfg.Quiet {
			fmt.Fprint(cc.Out, lineDiff(want, got, c != nil))
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// roundTrip returns the encoding of docs and the encoding of the rows read
// from them, each document a row.
func roundTrip(cfg *MainConfig, name string, docs []*ir.Node) (want, got string, err error) {
	var present []*ir.Node
	for _, doc := range docs {
		if !ir.IsAbsent(doc) {
			present = append(present, doc)
		}
	}
	wb := &strings.Builder{}
	for i, doc := range present {
		if err := writeDoc(wb, doc, i); err != nil {
			return "", "", err
		}
	}
	opts := cfg.readOptions()
	opts.MultiDoc = format.DocumentRows
	opts.ExpandSequences = false
	opts.Path = ""
	res, err := rows.Read([]rows.Source{{Name: name, Docs: present}}, opts)
	if err != nil {
		return "", "", err
	}
	gb := &strings.Builder{}
	err = rows.Write(gb, res.Values(), rows.WriteOptions{
		Style:    format.BlockStyle,
		Layout:   format.DocumentLayout,
		MaxDepth: opts.MaxDepth,
	})
	if err != nil {
		return "", "", err
	}
	return wb.String(), gb.String(), nil
}
